// Package sound synthesizes the short feedback blips played by the switch.
package sound

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	clickDuration = 60 * time.Millisecond
	clickAttack   = 5 * time.Millisecond
	clickRelease  = 40 * time.Millisecond

	onFreq  = 880.0
	offFreq = 587.33
)

// tone generates a sine wave for a fixed number of samples.
type tone struct {
	freq     float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate) *tone {
	return &tone{freq: freq, total: rate.N(d), rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}
		v := math.Sin(2 * math.Pi * t.phase)
		samples[i][0] = v
		samples[i][1] = v
		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope ramps a stream in over attack samples and out over release samples.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, total, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if rs := e.total - e.release; e.release > 0 && e.position >= rs {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Click returns the blip played when the switch turns on or off.
func Click(rate beep.SampleRate, on bool, volume float64) beep.Streamer {
	freq := offFreq
	if on {
		freq = onFreq
	}
	s := newEnvelope(newTone(freq, clickDuration, rate), clickDuration, clickAttack, clickRelease, rate)
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// Player owns the speaker. Clicks are mixed into a single stream that is
// recorded by a Tap. It initializes lazily and turns itself off when no audio
// device is available.
type Player struct {
	rate    beep.SampleRate
	volume  float64
	once    sync.Once
	err     error
	enabled bool

	mixer *beep.Mixer
	tap   *Tap
}

func NewPlayer(rate beep.SampleRate, volume float64, enabled bool) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		rate:    rate,
		volume:  volume,
		enabled: enabled,
		mixer:   mixer,
		tap:     NewTap(mixer, rate.N(tapWindow)),
	}
}

const tapWindow = 250 * time.Millisecond

func (p *Player) Enabled() bool { return p.enabled && p.err == nil }

// SetEnabled toggles playback. It returns the new state.
func (p *Player) SetEnabled(on bool) bool {
	p.enabled = on
	return p.Enabled()
}

// Tap exposes the recently played samples.
func (p *Player) Tap() *Tap { return p.tap }

func (p *Player) init() error {
	p.once.Do(func() {
		if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
			p.err = fmt.Errorf("init speaker: %w", err)
			log.Printf("sound disabled: %v", p.err)
			return
		}
		speaker.Play(p.tap)
	})
	return p.err
}

// Click plays the switch blip.
func (p *Player) Click(on bool) {
	if !p.enabled {
		return
	}
	if err := p.init(); err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(Click(p.rate, on, p.volume))
	speaker.Unlock()
}
