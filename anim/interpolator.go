package anim

import (
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// Interpolator maps linear progress in [0, 1] to eased progress.
type Interpolator func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 {
	return t
}

// Decelerate eases out quadratically: fast at the start, slow at the end.
func Decelerate(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// springSamples is the resolution of a precomputed spring trajectory.
const springSamples = 60

// Spring returns an interpolator following a damped spring released from 0
// toward 1. frequency is the angular frequency and damping the damping ratio
// as understood by harmonica; under-damped springs overshoot past 1 before
// coming back.
func Spring(frequency, damping float64) Interpolator {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)

	table := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		x := t * springSamples
		i := int(x)
		frac := x - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}

// ParseInterpolator resolves an interpolator by name: "linear",
// "decelerate" or "spring".
func ParseInterpolator(name string) (Interpolator, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "", "decelerate":
		return Decelerate, nil
	case "spring":
		return Spring(2*math.Pi*1.5, 0.6), nil
	default:
		return nil, fmt.Errorf("unknown interpolator %q", name)
	}
}
