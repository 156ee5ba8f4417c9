package engine

// Sound is an opaque handle to a loaded sound
type Sound interface{ isSound() }

// SoundPlayer is implemented by the audio layer
type SoundPlayer interface {
	Load(name string, data []byte) (Sound, error)
	Play(sound Sound) error
	Stop(sound Sound)
}
