package solver

import "math"

// Tuned coefficients of the frequency-to-logit curve. Fitted offline
// against the corpus frequency range; the fit is strongly positive for
// typical puzzle-word frequencies and strongly negative outside them.
const (
	DefaultCurveA = -19970122538.988
	DefaultCurveB = 41168735.495139
	DefaultCurveC = -10.0
)

// Curve maps a raw corpus frequency to a logit-like plausibility score
// via a fixed quadratic.
type Curve struct {
	A float64
	B float64
	C float64
}

// DefaultCurve returns the tuned production coefficients.
func DefaultCurve() Curve {
	return Curve{A: DefaultCurveA, B: DefaultCurveB, C: DefaultCurveC}
}

// Fit evaluates the quadratic at freq.
func (c Curve) Fit(freq float64) float64 {
	return c.A*freq*freq + c.B*freq + c.C
}

// Sigmoid is the standard logistic squashing function, mapping any real
// into the open interval (0, 1).
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// Likelihood converts a corpus frequency into a bounded plausibility
// weight: the fitted logit squashed into (0, 1).
func (c Curve) Likelihood(freq float64) float64 {
	return Sigmoid(c.Fit(freq))
}
