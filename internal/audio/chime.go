package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// chime notes, played back to back
var chimeNotes = []struct {
	freq     float64
	duration time.Duration
}{
	{660, 60 * time.Millisecond},
	{990, 90 * time.Millisecond},
}

// Chime plays a short two-note blip. Until Init succeeds Play does nothing.
type Chime struct {
	mu          sync.Mutex
	initialized bool
	log         *zap.SugaredLogger
}

func NewChime(log *zap.SugaredLogger) *Chime {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Chime{log: log}
}

// Init opens the audio device. A failure is logged and leaves the chime
// silent; the caller can carry on without sound.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		c.log.Warnf("Audio: initialization failed, chime disabled: %v", err)
		return err
	}
	c.initialized = true
	return nil
}

func (c *Chime) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Play queues the chime at volume (0-1) and pan (-1 to 1).
func (c *Chime) Play(volume, pan float32) {
	if !c.Enabled() || volume <= 0 {
		return
	}
	s, err := Stream(volume, pan)
	if err != nil {
		c.log.Warnf("Audio: %v", err)
		return
	}
	speaker.Play(s)
}

func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// Stream builds the chime streamer without touching the audio device.
func Stream(volume, pan float32) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, n := range chimeNotes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(sampleRate.N(n.duration), tone))
	}
	return &effects.Pan{
		Streamer: withVolume(beep.Seq(notes...), float64(volume)),
		Pan:      float64(pan),
	}, nil
}

// withVolume maps a linear 0-1 volume onto effects.Volume's log scale.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
