package clip

import "fffslice/data"

// Polygonize chains a section's unordered raw segments into closed
// rings, the same endpoint-chasing idea as the teacher's
// layer.makePolygons/RerunConnectPolygons (there it chases touching
// mesh faces in 3D; here it chases segment endpoints in 2D, since a
// slicer section carries no face-adjacency information once it's been
// projected to a plane). Rings shorter than 3 vertices are dropped.
// snapMM is the endpoint-coincidence tolerance; bridgeMM is a looser
// tolerance used to bridge gaps left by a non-watertight mesh, per the
// spec's tolerance for open edges.
func Polygonize(segments []data.Segment, snapMM, bridgeMM float64) data.Paths {
	chains := chainSegments(segments, snapMM)
	chains = bridgeChains(chains, bridgeMM)

	var rings data.Paths
	for _, c := range chains {
		if len(c) >= 3 && dist(c[0], c[len(c)-1]) <= bridgeMM {
			rings = append(rings, c)
		}
	}
	return rings
}

func dist(a, b data.Point2D) float64 {
	return a.Sub(b).Size()
}

// chainSegments greedily links segments whose endpoints coincide
// within snapMM into open or closed polylines.
func chainSegments(segments []data.Segment, snapMM float64) data.Paths {
	used := make([]bool, len(segments))
	var chains data.Paths

	for i := range segments {
		if used[i] {
			continue
		}
		used[i] = true
		chain := data.Path{segments[i].A, segments[i].B}

		for {
			tail := chain[len(chain)-1]
			next := -1
			reversed := false
			for j := range segments {
				if used[j] {
					continue
				}
				if dist(segments[j].A, tail) <= snapMM {
					next, reversed = j, false
					break
				}
				if dist(segments[j].B, tail) <= snapMM {
					next, reversed = j, true
					break
				}
			}
			if next == -1 {
				break
			}
			used[next] = true
			if reversed {
				chain = append(chain, segments[next].A)
			} else {
				chain = append(chain, segments[next].B)
			}
			if dist(chain[0], chain[len(chain)-1]) <= snapMM {
				break
			}
		}

		chains = append(chains, chain)
	}

	return chains
}

// bridgeChains repeatedly joins the pair of still-open chains whose
// endpoints are closest (within bridgeMM), mirroring the teacher's
// best-score merge loop in RerunConnectPolygons, until no more joins
// are possible.
func bridgeChains(chains data.Paths, bridgeMM float64) data.Paths {
	isClosed := func(c data.Path) bool {
		return len(c) >= 3 && dist(c[0], c[len(c)-1]) <= bridgeMM
	}

	for {
		joined := false
		for i, a := range chains {
			if a == nil || isClosed(a) {
				continue
			}
			best := -1
			bestDist := bridgeMM
			for j, b := range chains {
				if i == j || b == nil || isClosed(b) {
					continue
				}
				d := dist(a[len(a)-1], b[0])
				if d <= bestDist {
					best = j
					bestDist = d
				}
			}
			if best != -1 {
				chains[i] = append(chains[i], chains[best]...)
				chains[best] = nil
				joined = true
			}
		}
		if !joined {
			break
		}
	}

	var out data.Paths
	for _, c := range chains {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
