package ports

// RandomSource yields uniformly distributed floats in [0, 1).
type RandomSource interface {
	Float64() float64
}
