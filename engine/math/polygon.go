package math

/**
 * @brief Clips the polygon subject against the convex polygon clipper using
 * the Sutherland-Hodgman algorithm. Both polygons are given as vertex lists;
 * the clipper must be wound so that its interior is to the left of each
 * edge (counter-clockwise). Returns the clipped polygon, which is empty when
 * the polygons do not overlap.
 */
func SutherlandHodgman(subject, clipper []Vector2d) []Vector2d {
	output := append([]Vector2d(nil), subject...)
	for i := range clipper {
		if len(output) == 0 {
			break
		}
		a := clipper[(i+len(clipper)-1)%len(clipper)]
		b := clipper[i]

		input := output
		output = make([]Vector2d, 0, len(input)+1)
		for j := range input {
			p := input[(j+len(input)-1)%len(input)]
			q := input[j]
			switch {
			case isInside(a, b, q):
				if !isInside(a, b, p) {
					output = append(output, lineIntersection(a, b, p, q))
				}
				output = append(output, q)
			case isInside(a, b, p):
				output = append(output, lineIntersection(a, b, p, q))
			}
		}
	}
	return output
}

// isInside reports whether c lies strictly left of the directed edge a->b.
func isInside(a, b, c Vector2d) bool {
	return (a.X-c.X)*(b.Y-c.Y) > (a.Y-c.Y)*(b.X-c.X)
}

// lineIntersection intersects the infinite lines through a, b and p, q.
func lineIntersection(a, b, p, q Vector2d) Vector2d {
	a1 := b.Y - a.Y
	b1 := a.X - b.X
	c1 := a1*a.X + b1*a.Y

	a2 := q.Y - p.Y
	b2 := p.X - q.X
	c2 := a2*p.X + b2*p.Y

	det := a1*b2 - a2*b1
	return Vector2d{
		X: (b2*c1 - b1*c2) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
}
