package dither

import "math"

const (
	vinylStages      = 16
	vinylBaseScale   = 32768.0
	vinylMinScale    = 0.0001
	vinylMinOutScale = 8.0
	vinylOddDecay    = 0.97
	vinylOddGain     = 0.475
)

// Vinyl is a noise-shaped dither modelled on the Airwindows "VinylDither"
// plug-in. A 16-stage cascade of averaged uniform draws produces high-passed
// noise, and an odd-order feedback loop shapes the flooring error.
//
// Unlike the pre-rounding ditherers, Vinyl owns its scaling: it quantizes to
// 2^15 levels (reduced by DeRez) and returns the reconstructed sample.
// Not safe for concurrent use.
type Vinyl struct {
	rng Source

	deRez    float64
	inScale  float64
	outScale float64

	nsOdd float64
	prev  float64
	ns    [vinylStages]float64
}

// NewVinyl returns a vinyl dither drawing from rng with DeRez 0.
// A nil rng selects a randomly seeded source.
func NewVinyl(rng Source) *Vinyl {
	if rng == nil {
		rng = randomSource()
	}

	v := &Vinyl{rng: rng}
	v.SetDeRez(0)

	return v
}

// SetDeRez sets the resolution reduction in [0, 1]. Zero quantizes to
// 2^15 levels; larger values coarsen the grid by (1-deRez)^6.
func (v *Vinyl) SetDeRez(deRez float64) {
	v.deRez = deRez

	scaleFactor := vinylBaseScale
	if deRez > 0 {
		scaleFactor *= math.Pow(1-deRez, 6)
	}

	if scaleFactor < vinylMinScale {
		scaleFactor = vinylMinScale
	}

	v.inScale = scaleFactor
	v.outScale = 1 / max(scaleFactor, vinylMinOutScale)
}

// DeRez returns the current resolution reduction.
func (v *Vinyl) DeRez() float64 { return v.deRez }

// Step returns the output quantization step size.
func (v *Vinyl) Step() float64 { return v.outScale }

// ProcessSample dithers, floors and rescales x.
func (v *Vinyl) ProcessSample(x float64) float64 {
	y := x * v.inScale

	sample := v.advanceNoise() + y

	if v.nsOdd > 0 {
		v.nsOdd -= vinylOddDecay
	}

	if v.nsOdd < 0 {
		v.nsOdd += vinylOddDecay
	}

	v.nsOdd -= v.nsOdd * v.nsOdd * v.nsOdd * vinylOddGain
	v.nsOdd += v.prev

	sample += v.nsOdd * vinylOddGain
	floor := math.Floor(sample)

	v.prev = floor - y

	return floor * v.outScale
}

// ProcessInPlace runs ProcessSample over buf in order.
func (v *Vinyl) ProcessInPlace(buf []float64) {
	for i, x := range buf {
		buf[i] = v.ProcessSample(x)
	}
}

// Reset clears the noise cascade and the shaping feedback.
func (v *Vinyl) Reset() {
	v.nsOdd = 0
	v.prev = 0
	v.ns = [vinylStages]float64{}
}

func (v *Vinyl) advanceNoise() float64 {
	sample := Uniform(v.rng)
	v.ns[0] += sample
	v.ns[0] *= 0.5
	sample -= v.ns[0]

	for i := 1; i < vinylStages; i++ {
		sample += Uniform(v.rng)
		v.ns[i] += sample
		v.ns[i] *= 0.5
		sample -= v.ns[i]
	}

	return sample
}
