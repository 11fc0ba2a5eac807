package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/core"
)

// WaveType selects an oscillator shape
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// waveforms map a phase in [0, 1) to an amplitude in [-1, 1]
var waveforms = [...]func(phase float64) float64{
	WaveSine: func(p float64) float64 { return math.Sin(2 * math.Pi * p) },
	WaveSquare: func(p float64) float64 {
		if p < 0.5 {
			return 1
		}
		return -1
	},
	WaveSaw:   func(p float64) float64 { return 2*p - 1 },
	WaveNoise: func(float64) float64 { return rand.Float64()*2 - 1 },
}

// oscillator sweeps linearly from base to base+sweep Hz over length samples
type oscillator struct {
	shape  func(float64) float64
	base   float64
	sweep  float64
	hz     float64
	phase  float64
	pos    int
	length int
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, 0, duration, wave, rate)
}

// NewSweep creates an oscillator whose pitch moves by sweep Hz over duration
func NewSweep(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	shape := waveforms[WaveSine]
	if wave >= 0 && int(wave) < len(waveforms) {
		shape = waveforms[wave]
	}
	return &oscillator{
		shape:  shape,
		base:   freq,
		sweep:  sweep,
		hz:     float64(rate),
		length: rate.N(duration),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	n := min(len(samples), o.length-o.pos)
	if n <= 0 {
		return 0, false
	}
	for i := 0; i < n; i++ {
		v := o.shape(o.phase)
		samples[i] = [2]float64{v, v}

		f := o.base + o.sweep*float64(o.pos)/float64(o.length)
		_, o.phase = math.Modf(o.phase + f/o.hz)
		o.pos++
	}
	return n, true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream up over attack samples and down over the last release samples
type envelope struct {
	src     beep.Streamer
	attack  int
	release int
	length  int
	pos     int
}

// NewEnvelope wraps s in a linear attack/sustain/release gain
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		src:     s,
		attack:  rate.N(attack),
		release: rate.N(release),
		length:  rate.N(duration),
	}
}

func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if left := e.length - pos; e.release > 0 && left <= e.release {
		g = min(g, float64(left)/float64(e.release))
	}
	return g
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	room := e.length - e.pos
	if room <= 0 {
		return 0, false
	}
	n, ok := e.src.Stream(samples[:min(len(samples), room)])
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.src.Err() }

// scaled applies a linear gain through beep's log-scale volume; 0 is silent
func scaled(s beep.Streamer, gain float64) beep.Streamer {
	v := &effects.Volume{Streamer: s, Base: 2}
	if gain <= 0 {
		v.Silent = true
	} else {
		v.Volume = math.Log2(gain)
	}
	return v
}

// tone is one note of a sound effect
type tone struct {
	freq, sweep float64
	wave        WaveType
	duration    time.Duration
	attack      time.Duration
	release     time.Duration
}

func short(freq, sweep float64, wave WaveType) tone {
	return tone{freq, sweep, wave, constant.ShortSoundDuration, constant.ShortSoundAttack, constant.ShortSoundRelease}
}

func long(freq, sweep float64, wave WaveType) tone {
	return tone{freq, sweep, wave, constant.LongSoundDuration, constant.LongSoundAttack, constant.LongSoundRelease}
}

// recipes are played as a sequence of tones
var recipes = [core.SoundTypeCount][]tone{
	core.SoundJump:        {short(300, 300, WaveSquare)},
	core.SoundLand:        {short(0, 0, WaveNoise)},
	core.SoundSwing:       {short(0, 0, WaveNoise)},
	core.SoundHit:         {short(180, -80, WaveSaw)},
	core.SoundEnemyDeath:  {long(0, 0, WaveNoise)},
	core.SoundPlayerHurt:  {short(220, -140, WaveSaw)},
	core.SoundPlayerDeath: {long(400, -200, WaveSquare), long(200, -140, WaveSquare)},
	core.SoundCoin:        {short(987.77, 0, WaveSquare), long(1318.51, 0, WaveSquare)},
	core.SoundHeart:       {short(660, 0, WaveSine), short(880, 0, WaveSine), short(1100, 0, WaveSine)},
	core.SoundShoot:       {short(700, -400, WaveSquare)},
	core.SoundBossRoar:    {long(70, -20, WaveSaw), long(60, -20, WaveSaw)},
	core.SoundDoor:        {long(440, 220, WaveSine)},
	core.SoundBounce:      {short(500, 100, WaveSine)},
}

// Effect builds the streamer for a sound at volume; nil for unknown sounds
func Effect(s core.SoundType, vol float64, rate beep.SampleRate) beep.Streamer {
	if s < 0 || s >= core.SoundTypeCount || len(recipes[s]) == 0 {
		return nil
	}

	notes := make([]beep.Streamer, 0, len(recipes[s]))
	for _, t := range recipes[s] {
		osc := NewSweep(t.freq, t.sweep, t.duration, t.wave, rate)
		notes = append(notes, NewEnvelope(osc, t.duration, t.attack, t.release, rate))
	}
	return scaled(beep.Seq(notes...), vol)
}

// EffectLength is the sample count of a sound's recipe
func EffectLength(s core.SoundType, rate beep.SampleRate) int {
	if s < 0 || s >= core.SoundTypeCount {
		return 0
	}
	n := 0
	for _, t := range recipes[s] {
		n += rate.N(t.duration)
	}
	return n
}
