package ops

import "math"

// expForward computes e^a.
func expForward(a float64) float64 {
	return math.Exp(a)
}

// expBackward computes the gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and the output is exp(x):
//
//	grad_input = outGrad * output
func expBackward(out, outGrad float64) []float64 {
	return []float64{out * outGrad}
}
