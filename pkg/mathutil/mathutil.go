package mathutil

// FloorDiv returns a/b rounded toward negative infinity.
// Go's native / truncates toward zero, which is wrong for dates before an epoch.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a mod b with the sign of b, so the result for a positive
// modulus is always in [0, b).
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

// Wrap maps a into the one-based cycle [1, n]: FloorMod(a, n) with 0 shown as n.
// Example: Wrap(9, 9) == 9, Wrap(10, 9) == 1
func Wrap(a, n int) int {
	m := FloorMod(a, n)
	if m == 0 {
		return n
	}
	return m
}
