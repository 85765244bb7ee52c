package demo

import "github.com/bnema/lunar/internal/camera"

// Edge is a line segment in world space.
type Edge [2]camera.Vec3

const (
	gridHalf  = 10
	gridFloor = -2.0
)

// cubeEdges returns the wireframe of a unit cube centred on the origin.
func cubeEdges() []Edge {
	var corners [8]camera.Vec3
	for i := range corners {
		corners[i] = camera.Vec3{
			X: float64(i&1) - 0.5,
			Y: float64(i>>1&1) - 0.5,
			Z: float64(i>>2&1) - 0.5,
		}
	}
	var edges []Edge
	for i := range corners {
		for bit := 1; bit < 8; bit <<= 1 {
			if j := i | bit; j != i {
				edges = append(edges, Edge{corners[i], corners[j]})
			}
		}
	}
	return edges
}

// gridEdges returns a floor grid below the cube.
func gridEdges() []Edge {
	edges := make([]Edge, 0, 2*(2*gridHalf+1))
	for i := -gridHalf; i <= gridHalf; i++ {
		f := float64(i)
		edges = append(edges,
			Edge{{X: f, Y: gridFloor, Z: -gridHalf}, {X: f, Y: gridFloor, Z: gridHalf}},
			Edge{{X: -gridHalf, Y: gridFloor, Z: f}, {X: gridHalf, Y: gridFloor, Z: f}},
		)
	}
	return edges
}
