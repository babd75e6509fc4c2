package ops

// addForward computes a + b.
func addForward(a, b float64) float64 {
	return a + b
}

// addBackward routes the output gradient unchanged to both operands:
// d(a+b)/da = 1, d(a+b)/db = 1.
func addBackward(outGrad float64) []float64 {
	return []float64{outGrad, outGrad}
}
