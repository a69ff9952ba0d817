package shape

// Union keeps the closer of two surfaces.
func Union(a, b float64) float64 {
	return min(a, b)
}

// Intersection keeps the region inside both solids.
func Intersection(a, b float64) float64 {
	return max(a, b)
}

// Difference subtracts solid b from solid a.
func Difference(a, b float64) float64 {
	return max(a, -b)
}
