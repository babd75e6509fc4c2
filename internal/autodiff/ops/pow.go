package ops

import "math"

// powForward computes a^k.
func powForward(a, k float64) float64 {
	return math.Pow(a, k)
}

// powBackward computes the gradient for a^k with constant k:
//
//	grad_a = outGrad * k * a^(k-1)
func powBackward(a, k, outGrad float64) []float64 {
	return []float64{k * math.Pow(a, k-1) * outGrad}
}
