package audio

import (
	"io"
	"math"
)

// soundReader streams a pre-rendered buffer once.
type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for ch := 0; ch < ChannelCount; ch++ {
		off := i*8 + ch*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// softSat is a soft clipper keeping samples inside [-1,1].
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack, decay and release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// makeBuf allocates a stereo float32 buffer for n frames.
func makeBuf(n int) []byte { return make([]byte, n*8) }

func generate(c Cue) []byte {
	switch c {
	case CueEat:
		return genEat()
	case CueSpecial:
		return genSpecial()
	case CueLevelUp:
		return genLevelUp()
	case CueLifeLost:
		return genLifeLost()
	case CueGameOver:
		return genGameOver()
	default:
		return nil
	}
}

// genEat: short rising chirp.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := fm(t, freq, 2.0, 3.5*env) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genSpecial: two bright blips a fifth apart.
func genSpecial() []byte {
	notes := []float64{880, 1318.5}
	step := int(0.07 * SampleRate)
	n := step * len(notes)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		note := notes[i/step]
		p := float64(i%step) / float64(step)
		env := adsr(p, 0.02, 0.4, 0.3, 0.3)
		s := fm(t, note, 3.0, 2.5*env) * env * 0.35
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLevelUp: fast major arpeggio.
func genLevelUp() []byte {
	notes := []float64{440, 554.37, 659.25, 880}
	step := int(0.08 * SampleRate)
	total := len(notes)*step + int(0.2*SampleRate)
	mix := make([]float64, total)
	for k, freq := range notes {
		start := k * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			env := adsr(float64(j)/float64(dur), 0.003, 0.65, 0.04, 0.28)
			mix[start+j] += fm(t, freq, 3.5, 5.5*env) * env * 0.28
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLifeLost: falling buzz.
func genLifeLost() []byte {
	n := int(0.25 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 4)
		freq := 300 - 180*p
		s := math.Tanh(math.Sin(2*math.Pi*freq*t)*3) * env * 0.3
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []byte {
	n := int(0.75 * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
