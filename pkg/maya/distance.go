package maya

// Distance returns the signed Distance Number from day count a to b.
func Distance(a, b int) LongCount {
	return LongCountOf(b - a)
}

// DistanceBetween returns the signed Distance Number between two Long Counts.
func DistanceBetween(from, to LongCount) LongCount {
	return LongCountOf(to.MDC() - from.MDC())
}

// ApplyDistance counts dist days from base.
func ApplyDistance(base, dist int) LongCount {
	return LongCountOf(base + dist)
}

// ApplyLongCountDistance counts a Distance Number from a Long Count.
func ApplyLongCountDistance(base, dist LongCount) LongCount {
	return LongCountOf(base.MDC() + dist.MDC())
}
