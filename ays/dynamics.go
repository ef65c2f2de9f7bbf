package ays

import "math"

// deriv returns the AYS time derivatives under a management option.
// Energy demand Y/epsilon is split between fossil and renewable sources
// by the knowledge-dependent share, fossil use emits carbon, renewable
// use grows the knowledge stock, and excess carbon damages output.
func deriv(a, y, s float64, action int) (da, dy, ds float64) {
	growth := growthRate
	if action == ActionDG || action == ActionDGET {
		growth = dgGrowthRate
	}
	sigma := breakEven
	if action == ActionET || action == ActionDGET {
		sigma = etBreakEven
	}

	demand := y / energyIntensity
	fossilShare := 1 / (1 + math.Pow(s/sigma, learningExponent))
	fossil := fossilShare * demand
	renewable := (1 - fossilShare) * demand

	da = fossil/fossilEfficiency - a/carbonDecay
	dy = growth*y - climateDamage*a*y
	ds = renewable - s/knowledgeDecay
	return da, dy, ds
}

// rk4Step advances the state by h years with a classic fourth-order
// Runge-Kutta step, clamping the stocks at zero.
func rk4Step(a, y, s float64, action int, h float64) (float64, float64, float64) {
	k1a, k1y, k1s := deriv(a, y, s, action)
	k2a, k2y, k2s := deriv(a+h/2*k1a, y+h/2*k1y, s+h/2*k1s, action)
	k3a, k3y, k3s := deriv(a+h/2*k2a, y+h/2*k2y, s+h/2*k2s, action)
	k4a, k4y, k4s := deriv(a+h*k3a, y+h*k3y, s+h*k3s, action)

	a += h / 6 * (k1a + 2*k2a + 2*k3a + k4a)
	y += h / 6 * (k1y + 2*k2y + 2*k3y + k4y)
	s += h / 6 * (k1s + 2*k2s + 2*k3s + k4s)
	return math.Max(a, 0), math.Max(y, 0), math.Max(s, 0)
}
