package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Sound Envelopes
const (
	ShortSoundDuration = 80 * time.Millisecond
	ShortSoundAttack   = 5 * time.Millisecond
	ShortSoundRelease  = 40 * time.Millisecond

	LongSoundDuration = 300 * time.Millisecond
	LongSoundAttack   = 10 * time.Millisecond
	LongSoundRelease  = 200 * time.Millisecond
)
