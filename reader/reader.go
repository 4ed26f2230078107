// Package reader implements MeshLoader: parsing an STL file and
// conditioning it into a mesh with a valid bounding box (spec §4.1).
package reader

import (
	"errors"
	"io/fs"

	"github.com/hschendel/stl"

	"fffslice/data"
	"fffslice/errs"
)

const weldEpsilon = 1e-5 // mm, coincident-vertex dedup tolerance

// Loader implements handler.MeshLoader using hschendel/stl for parsing.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load parses path (binary or ASCII STL, auto-detected by the
// underlying library) and conditions the result: vertex welding,
// degenerate-triangle removal, then hole-filling if the mesh isn't
// watertight. Watertightness after repair is not asserted - open
// edges are tolerated by the slicer itself (spec §4.1, §4.3).
func (l *Loader) Load(path string) (*data.Mesh, error) {
	solid, err := stl.ReadFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, errs.Wrap(errs.IOError, err)
		}
		return nil, errs.Wrap(errs.InvalidMesh, err)
	}

	mesh := &data.Mesh{Triangles: make([]data.Triangle, 0, len(solid.Triangles))}
	for _, t := range solid.Triangles {
		tri := data.Triangle{
			V0: toVec3(t.Vertices[0]),
			V1: toVec3(t.Vertices[1]),
			V2: toVec3(t.Vertices[2]),
		}
		mesh.Triangles = append(mesh.Triangles, tri)
	}

	weldVertices(mesh, weldEpsilon)
	dropDegenerate(mesh)

	if !isWatertight(mesh) {
		fillHoles(mesh)
	}

	if len(mesh.Triangles) == 0 {
		return nil, errs.New(errs.InvalidMesh, "mesh has zero triangles after cleanup")
	}

	mesh.RecomputeBounds()
	return mesh, nil
}

func toVec3(v stl.Vec3) data.Vec3 {
	return data.Vec3{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}
