package core

// SoundEffect identifies a sound the game asks the platform to play.
type SoundEffect int

const (
	SoundFire SoundEffect = iota // A bullet left a ship
	SoundHit                     // A bullet struck a ship
)

// String returns a human-readable name for the effect.
func (e SoundEffect) String() string {
	switch e {
	case SoundFire:
		return "fire"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}
