package ops

import "math"

// tanhForward computes tanh(a) = (e^{2a} - 1) / (e^{2a} + 1).
//
// The textbook formula overflows to NaN for a > ~354; callers that need
// large inputs should clamp before calling.
func tanhForward(a float64) float64 {
	e := math.Exp(2 * a)
	return (e - 1) / (e + 1)
}

// tanhBackward computes the gradient for tanh.
//
// d(tanh(x))/dx = 1 - tanh²(x). Since the output t = tanh(x) is already
// computed:
//
//	grad_input = outGrad * (1 - t²)
func tanhBackward(t, outGrad float64) []float64 {
	return []float64{(1 - t*t) * outGrad}
}
