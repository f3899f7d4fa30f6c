package spacefight

// Resolve removes every bullet in mag that overlaps target and returns one
// hit event per removed bullet.
//
// It must run after Advance and before PruneOutOfBounds: a bullet whose
// advanced position overlaps the target scores even if that position is
// already past the edge of the field.
func Resolve(mag *Magazine, target Ship) []HitEvent {
	box := target.Box()

	var hits []HitEvent
	mag.removeIf(func(b Bullet) bool {
		if !b.Box().Intersects(box) {
			return false
		}
		hits = append(hits, HitEvent{Target: target.Side})
		return true
	})
	return hits
}
