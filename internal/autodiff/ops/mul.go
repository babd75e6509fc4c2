package ops

// mulForward computes a * b.
func mulForward(a, b float64) float64 {
	return a * b
}

// mulBackward computes input gradients for multiplication.
//
//   - d(a*b)/da = b, so grad_a = outGrad * b
//   - d(a*b)/db = a, so grad_b = outGrad * a
func mulBackward(a, b, outGrad float64) []float64 {
	return []float64{b * outGrad, a * outGrad}
}
