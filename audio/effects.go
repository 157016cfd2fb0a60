package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/whale-simulator/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSaw WaveType = iota
	WaveNoise
)

// oscillator generates raw audio waves for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp and a release fade over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateChompSound generates one rising blip pair per krill, capped at ChompMaxRepeat
func CreateChompSound(rate beep.SampleRate, count int) (beep.Streamer, error) {
	count = min(max(count, 1), constants.ChompMaxRepeat)

	var parts []beep.Streamer
	for i := 0; i < count; i++ {
		low, err := generators.SineTone(rate, constants.ChompLowHz)
		if err != nil {
			return nil, err
		}
		high, err := generators.SineTone(rate, constants.ChompHighHz)
		if err != nil {
			return nil, err
		}
		parts = append(parts,
			beep.Take(rate.N(constants.ChompBlipDuration), low),
			beep.Take(rate.N(constants.ChompBlipDuration), high),
			generators.Silence(rate.N(constants.ChompGapDuration)),
		)
	}

	return newVolume(beep.Seq(parts...), constants.ChompVolume*constants.AudioMasterVolume), nil
}

// CreateHarpoonSound generates a low thud layered with a noise burst
func CreateHarpoonSound(rate beep.SampleRate) beep.Streamer {
	d := constants.HarpoonSoundDuration
	saw := NewEnvelope(NewOscillator(constants.HarpoonHz, d, WaveSaw, rate), d,
		constants.HarpoonSoundAttack, constants.HarpoonSoundRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		constants.HarpoonSoundAttack, constants.HarpoonSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(saw, 0.7),
		newVolume(noise, 0.3),
	)
	return newVolume(mixed, constants.HarpoonVolume*constants.AudioMasterVolume)
}
