package annealing

import "math"

// AnnealingState holds the temperature schedule and drives Metropolis
// acceptance. Temperature starts at 1.0 and decays linearly to 0 over
// MaxIterations steps.
type AnnealingState struct {
	iteration     int
	maxIterations int
	temperature   float32
	rng           UniformSource
}

// NewAnnealingState starts a fresh schedule over maxIterations outer
// steps.
func NewAnnealingState(maxIterations int, rng UniformSource) *AnnealingState {
	return &AnnealingState{
		maxIterations: maxIterations,
		temperature:   1.0,
		rng:           rng,
	}
}

// Temperature returns the current temperature.
func (a *AnnealingState) Temperature() float32 { return a.temperature }

// temperatureAt is the linear-decay schedule: max(0, 1 - progress).
func temperatureAt(progress float32) float32 {
	t := 1 - progress
	if t < 0 {
		return 0
	}
	return t
}

// probability is the Metropolis acceptance probability of an uphill move.
func probability(prevEnergy, newEnergy, temperature float32) float32 {
	return float32(math.Exp(float64(-(newEnergy - prevEnergy) / temperature)))
}

// ShouldAccept reports whether a move from prevEnergy to newEnergy should
// be accepted: always if it's downhill, otherwise with probability
// exp(-(new-prev)/T) against a uniform draw. At T=0 no uphill move is
// ever accepted (spec.md §8 P3): any move that is not strictly downhill
// is rejected without drawing a sample.
func (a *AnnealingState) ShouldAccept(prevEnergy, newEnergy float32) bool {
	if newEnergy < prevEnergy {
		return true
	}
	if a.temperature == 0 {
		return false
	}
	r := a.rng.Float32()
	return probability(prevEnergy, newEnergy, a.temperature) >= r
}

// DoStep advances the iteration counter and recomputes temperature.
func (a *AnnealingState) DoStep() {
	a.iteration++
	a.temperature = temperatureAt(float32(a.iteration) / float32(a.maxIterations))
}
