package combat

// Point is a 2D grid coordinate. Combatants hold position for the whole
// engagement; there is no movement.
type Point struct{ X, Y int }

// distanceSq compares in squared integer space so no square root is ever
// taken. The 64-bit intermediates keep 32-bit coordinates from overflowing.
func distanceSq(a, b Point) int64 {
	dx := int64(a.X) - int64(b.X)
	dy := int64(a.Y) - int64(b.Y)
	return dx*dx + dy*dy
}
