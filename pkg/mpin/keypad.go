package mpin

// point is a position on the standard telephone keypad grid:
// rows 123 / 456 / 789 with 0 centered below.
type point struct {
	x, y int
}

var keypadCoords = map[byte]point{
	'1': {0, 0}, '2': {1, 0}, '3': {2, 0},
	'4': {0, 1}, '5': {1, 1}, '6': {2, 1},
	'7': {0, 2}, '8': {1, 2}, '9': {2, 2},
	'0': {1, 3},
}

// cornerTraversals is the closed set of corner-to-corner keypad walks that
// count as weak. Only these rotations and reflections qualify; other
// orderings of the same digits ("1739") are deliberately excluded because
// the weakness is in the traversal, not the digit set. The set is empirical,
// not derivable from geometry alone.
var cornerTraversals = map[string]bool{
	"1397": true, "1793": true, "3179": true, "3971": true,
	"7139": true, "7931": true, "9317": true, "9713": true,
}

// collinear reports whether p1, p2, p3 lie on one line, using the
// cross-product-zero test to avoid slope division.
func collinear(p1, p2, p3 point) bool {
	return (p2.y-p1.y)*(p3.x-p2.x) == (p3.y-p2.y)*(p2.x-p1.x)
}

// KeypadPattern reports whether pin traces an easily-typed shape on the
// telephone keypad: a straight line (every consecutive coordinate triple
// collinear, "2580", "1234" rows aside), a four-digit L-shape with exactly
// one right-angle turn ("1478"), or one of the known corner traversals
// ("1397").
func KeypadPattern(pin string) bool {
	if len(pin) < 3 {
		return false
	}

	coords := make([]point, len(pin))
	for i := 0; i < len(pin); i++ {
		p, ok := keypadCoords[pin[i]]
		if !ok {
			return false
		}
		coords[i] = p
	}

	line := true
	for i := 0; i+2 < len(coords); i++ {
		if !collinear(coords[i], coords[i+1], coords[i+2]) {
			line = false
			break
		}
	}
	if line {
		return true
	}

	if len(coords) == 4 {
		rightAngles := 0
		for i := 1; i <= 2; i++ {
			dx1, dy1 := coords[i].x-coords[i-1].x, coords[i].y-coords[i-1].y
			dx2, dy2 := coords[i+1].x-coords[i].x, coords[i+1].y-coords[i].y
			if dx1*dx2+dy1*dy2 == 0 {
				rightAngles++
			}
		}
		if rightAngles == 1 {
			return true
		}
	}

	return cornerTraversals[pin]
}
