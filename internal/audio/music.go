package audio

import "math"

// Eight-step bass and lead patterns over A minor, C, G and F.
var (
	musicRoots = []float64{110.00, 130.81, 98.00, 87.31}
	musicArp   = []float64{1, 1.5, 2, 2.5, 3, 2.5, 2, 1.5} // Ratios over the root
)

const musicStep = 0.18 // Seconds per arpeggio step

// musicReader generates an endless chiptune loop on demand.
type musicReader struct {
	frame int
}

func newMusicReader() *musicReader {
	return &musicReader{}
}

// Read fills p with whole stereo frames. It never returns io.EOF.
func (m *musicReader) Read(p []byte) (int, error) {
	frames := len(p) / 8
	stepFrames := int(musicStep * SampleRate)
	barFrames := stepFrames * len(musicArp)

	for i := 0; i < frames; i++ {
		f := m.frame + i
		t := float64(f) / SampleRate
		bar := (f / barFrames) % len(musicRoots)
		step := (f / stepFrames) % len(musicArp)
		root := musicRoots[bar]

		np := float64(f%stepFrames) / float64(stepFrames)
		env := adsr(np, 0.02, 0.4, 0.25, 0.3)
		lead := fm(t, root*2*musicArp[step], 2.0, 1.5*env) * env * 0.22
		bass := math.Sin(2*math.Pi*root*t) * 0.25

		putStereoF32(p, i, softSat(lead+bass))
	}
	m.frame += frames
	return frames * 8, nil
}
