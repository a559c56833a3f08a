// Package scene holds the cube layout of the sample and the timing of its
// breadth-first reveal animation.
package scene

var (
	Blue  = Vec3{0, 0, 1}
	Green = Vec3{0, 1, 0}
	White = Vec3{1, 1, 1}
)

type Scene struct {
	Cubes []Vec3
	Edges [][2]int
}

// Default returns the seven cubes of the sample: one on the left, its three
// neighbours in the middle column and one neighbour of each on the right.
func Default() *Scene {
	return &Scene{
		Cubes: []Vec3{
			{-1.5, 0, -5},
			{0, 1, -5},
			{0, 0, -5},
			{0, -1, -5},
			{1.5, 1, -5},
			{1.5, 0, -5},
			{1.5, -1, -5},
		},
		Edges: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 4}, {2, 5}, {3, 6}},
	}
}

// Neighbors returns the cubes sharing an edge with cube i, in edge order.
func (s *Scene) Neighbors(i int) []int {
	var out []int
	for _, e := range s.Edges {
		switch i {
		case e[0]:
			out = append(out, e[1])
		case e[1]:
			out = append(out, e[0])
		}
	}
	return out
}

// BFSOrder returns the cubes reachable from root in breadth-first order.
func (s *Scene) BFSOrder(root int) []int {
	if root < 0 || root >= len(s.Cubes) {
		return nil
	}

	seen := make([]bool, len(s.Cubes))
	seen[root] = true
	order := []int{root}
	for head := 0; head < len(order); head++ {
		for _, n := range s.Neighbors(order[head]) {
			if n < 0 || n >= len(s.Cubes) || seen[n] {
				continue
			}
			seen[n] = true
			order = append(order, n)
		}
	}
	return order
}
