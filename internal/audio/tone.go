package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Tone is a finite streamer that glides from one frequency to another
// and fades out linearly.
type Tone struct {
	sr       beep.SampleRate
	from, to float64
	wave     Wave
	volume   float64
	pos      int
	total    int
	phase    float64
}

// NewTone creates a tone lasting d.
func NewTone(sr beep.SampleRate, from, to float64, d time.Duration, wave Wave, volume float64) *Tone {
	return &Tone{
		sr:     sr,
		from:   from,
		to:     to,
		wave:   wave,
		volume: volume,
		total:  sr.N(d),
	}
}

// Stream fills samples until the tone ends.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		// Accumulate phase so frequency glides stay continuous.
		t.phase += 2 * math.Pi * freq / float64(t.sr)

		sample := math.Sin(t.phase)
		if t.wave == WaveSquare {
			sample = math.Copysign(0.6, sample)
		}
		sample *= t.volume * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		t.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (t *Tone) Err() error {
	return nil
}

// Len returns the tone length in samples.
func (t *Tone) Len() int {
	return t.total
}
