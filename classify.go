package basins

// RGB is an 8-bit color triple.
type RGB = [3]byte

// Palette maps class indices to colors. Index 4 is a placeholder that is
// never produced by the default attractor set.
var Palette = [...]RGB{
	{255, 255, 255},
	{0, 0, 0},
	{0, 0, 255},
	{255, 255, 0},
	{255, 255, 255},
}

// MaxAttractors is the largest attractor set with a palette color per class.
const MaxAttractors = len(Palette)

// Classify returns the index of the attractor nearest to p.
//
// Ties resolve to the lowest index. Returns -1 if attractors is empty.
func Classify(attractors []Attractor, p Point) int {
	if len(attractors) == 0 {
		return -1
	}

	best := 0
	bestDist := distance(p, attractors[0].Pos())
	for i := 1; i < len(attractors); i++ {
		if d := distance(p, attractors[i].Pos()); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// ColorFor returns the palette color of class idx, or black for indices
// outside the palette.
func ColorFor(idx int) RGB {
	if idx < 0 || idx >= len(Palette) {
		return RGB{}
	}
	return Palette[idx]
}
