package reader

import "fffslice/data"

const degenerateAreaEpsilon = 1e-12 // mm^2

// weldVertices snaps near-coincident vertex positions (within eps) to
// one canonical representative, so that later edge-adjacency checks
// (isWatertight, fillHoles) can compare vertices by plain equality
// instead of by distance.
func weldVertices(mesh *data.Mesh, eps float64) {
	scale := 1 / eps
	key := func(v data.Vec3) [3]int64 {
		return [3]int64{
			int64(round(v.X * scale)),
			int64(round(v.Y * scale)),
			int64(round(v.Z * scale)),
		}
	}

	canon := map[[3]int64]data.Vec3{}
	weld := func(v data.Vec3) data.Vec3 {
		k := key(v)
		if c, ok := canon[k]; ok {
			return c
		}
		canon[k] = v
		return v
	}

	for i := range mesh.Triangles {
		t := &mesh.Triangles[i]
		t.V0 = weld(t.V0)
		t.V1 = weld(t.V1)
		t.V2 = weld(t.V2)
	}
}

func round(v float64) float64 {
	if v < 0 {
		return -round(-v)
	}
	return float64(int64(v + 0.5))
}

// dropDegenerate removes triangles whose area is below a fixed
// numerical-noise threshold.
func dropDegenerate(mesh *data.Mesh) {
	out := mesh.Triangles[:0]
	for _, t := range mesh.Triangles {
		if t.Area() > degenerateAreaEpsilon {
			out = append(out, t)
		}
	}
	mesh.Triangles = out
}

// directedEdge is one triangle edge in the triangle's own winding order.
type directedEdge struct {
	Start, End data.Vec3
}

func undirectedKey(a, b data.Vec3) [2]data.Vec3 {
	if vecLess(b, a) {
		a, b = b, a
	}
	return [2]data.Vec3{a, b}
}

func vecLess(a, b data.Vec3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func edgeCounts(mesh *data.Mesh) (counts map[[2]data.Vec3]int, directed map[[2]data.Vec3]directedEdge) {
	counts = map[[2]data.Vec3]int{}
	directed = map[[2]data.Vec3]directedEdge{}

	record := func(a, b data.Vec3) {
		k := undirectedKey(a, b)
		counts[k]++
		directed[k] = directedEdge{Start: a, End: b}
	}

	for _, t := range mesh.Triangles {
		record(t.V0, t.V1)
		record(t.V1, t.V2)
		record(t.V2, t.V0)
	}
	return
}

// isWatertight reports whether every edge is shared by exactly two
// triangles.
func isWatertight(mesh *data.Mesh) bool {
	counts, _ := edgeCounts(mesh)
	for _, c := range counts {
		if c != 2 {
			return false
		}
	}
	return true
}

// fillHoles chains boundary edges (shared by exactly one triangle)
// into loops and fan-triangulates each loop from its centroid, the
// same boundary-walk-then-patch idea the teacher uses for 2D section
// polygon stitching (slicer/slice/layer.go makePolygons), lifted to
// 3D triangle adjacency. Best-effort: a loop that can't be closed is
// left as-is rather than forcing an incorrect patch.
func fillHoles(mesh *data.Mesh) {
	counts, directed := edgeCounts(mesh)

	fromStart := map[data.Vec3]directedEdge{}
	var boundary []directedEdge
	for k, c := range counts {
		if c == 1 {
			e := directed[k]
			boundary = append(boundary, e)
			fromStart[e.Start] = e
		}
	}

	used := map[data.Vec3]bool{}
	for _, e := range boundary {
		if used[e.Start] {
			continue
		}
		loop := []data.Vec3{e.Start}
		used[e.Start] = true
		cur := e.End
		for {
			loop = append(loop, cur)
			if cur == e.Start {
				break
			}
			next, ok := fromStart[cur]
			if !ok || used[cur] {
				break
			}
			used[cur] = true
			cur = next.End
		}

		if len(loop) >= 4 && loop[len(loop)-1] == loop[0] {
			ring := loop[:len(loop)-1]
			fanTriangulate(mesh, ring)
		}
	}
}

func fanTriangulate(mesh *data.Mesh, ring []data.Vec3) {
	centroid := data.Vec3{}
	for _, v := range ring {
		centroid.X += v.X
		centroid.Y += v.Y
		centroid.Z += v.Z
	}
	n := float64(len(ring))
	centroid.X /= n
	centroid.Y /= n
	centroid.Z /= n

	for i := 0; i < len(ring); i++ {
		next := (i + 1) % len(ring)
		mesh.Triangles = append(mesh.Triangles, data.Triangle{
			V0: ring[i],
			V1: ring[next],
			V2: centroid,
		})
	}
}
