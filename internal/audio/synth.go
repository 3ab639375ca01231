package audio

import "math"

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Kind identifies a sound cue.
type Kind int

const (
	SoundLaunch Kind = iota
	SoundImpact
	SoundLost
	SoundReady
	SoundFinished
)

// Generate renders kind as interleaved stereo float32 LE samples.
func Generate(kind Kind) []byte {
	switch kind {
	case SoundLaunch:
		return genLaunch()
	case SoundImpact:
		return genImpact()
	case SoundLost:
		return genLost()
	case SoundReady:
		return genReady()
	case SoundFinished:
		return genFinished()
	}
	return nil
}

// genLaunch: rubber-band twang sweeping up, with a short noise snap.
func genLaunch() []byte {
	n := int(0.22 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(4242)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 180 + 520*p*p
		phase += 2 * math.Pi * freq / SampleRate
		env := adsr(p, 0.02, 0.4, 0.3, 0.3)
		s := math.Sin(phase+1.8*math.Sin(phase*0.5)) * env * 0.42
		if p < 0.08 {
			s += lcg(&seed) * (1 - p/0.08) * 0.25
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genImpact: low thud with a damped body resonance.
func genImpact() []byte {
	n := int(0.18 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(9001)
	lp := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := math.Exp(-p * 7)
		freq := 95 - 40*p
		lp = lp*0.9 + lcg(&seed)*0.1
		s := math.Sin(2*math.Pi*freq*t)*env*0.6 + lp*env*0.5
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLost: falling whistle.
func genLost() []byte {
	n := int(0.45 * SampleRate)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 1200 - 900*p
		phase += 2 * math.Pi * freq / SampleRate
		env := adsr(p, 0.05, 0.2, 0.6, 0.4)
		putStereoF32(buf, i, softSat(math.Sin(phase)*env*0.3))
	}
	return buf
}

// genReady: two-note FM chime.
func genReady() []byte {
	return chime([]float64{659.25, 987.77}, 0.07, 0.2)
}

// genFinished: descending arpeggio, each note ringing over the next.
func genFinished() []byte {
	return chime([]float64{783.99, 659.25, 523.25, 392.00}, 0.11, 0.35)
}

func chime(freqs []float64, step, tail float64) []byte {
	noteLen := int(step * SampleRate)
	total := len(freqs)*noteLen + int(tail*SampleRate)
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			mix[start+j] += fm(t, freq, 2.756, 4.0*env) * env * 0.3
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		o := i*8 + c*4
		buf[o] = byte(v)
		buf[o+1] = byte(v >> 8)
		buf[o+2] = byte(v >> 16)
		buf[o+3] = byte(v >> 24)
	}
}

// softSat applies gentle tanh-like saturation.
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
// attack/decay/release are fractions of the total duration.
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

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*ChannelCount*4) }
