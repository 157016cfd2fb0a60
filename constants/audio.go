package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length; larger is safer, smaller is snappier
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume scales every effect, 0..1
	AudioMasterVolume = 0.5
)

// Chomp: two quick rising blips when krill are eaten
const (
	ChompLowHz        = 660.0
	ChompHighHz       = 990.0
	ChompBlipDuration = 45 * time.Millisecond
	ChompGapDuration  = 15 * time.Millisecond
	ChompVolume       = 0.6

	// ChompMaxRepeat caps blips when several krill are eaten in one tick
	ChompMaxRepeat = 3
)

// Harpoon: a low saw thud with a noise burst
const (
	HarpoonHz            = 110.0
	HarpoonSoundDuration = 300 * time.Millisecond
	HarpoonSoundAttack   = 5 * time.Millisecond
	HarpoonSoundRelease  = 200 * time.Millisecond
	HarpoonVolume        = 0.8
)
