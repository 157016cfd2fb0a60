package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/whale-simulator/constants"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager plays gameplay sound effects through the system speaker.
// Until Initialize succeeds every Play call is a silent no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	logger      *log.Logger
	initialized bool
	harpoon     *beep.Buffer
}

// NewSoundManager creates a sound manager; logger receives non-fatal failures
func NewSoundManager(logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "initialize speaker")
	}

	// Pre-render the harpoon thud; its noise layer is costly to synthesize per hit
	sm.harpoon = beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	sm.harpoon.Append(CreateHarpoonSound(sampleRate))

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether sound output is active
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// KrillEaten plays one chomp per krill eaten this tick
func (sm *SoundManager) KrillEaten(n int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || n <= 0 {
		return
	}

	chomp, err := CreateChompSound(sampleRate, n)
	if err != nil {
		sm.logger.Printf("chomp sound: %v", err)
		return
	}
	sm.play(chomp)
}

// WhaleDied plays the harpoon thud
func (sm *SoundManager) WhaleDied() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.play(sm.harpoon.Streamer(0, sm.harpoon.Len()))
}

// play adds s to the running mixer; the speaker goroutine reads the mixer concurrently
func (sm *SoundManager) play(s beep.Streamer) {
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
