package dataset

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

/*
Entropy takes the number of positive and negative samples of a set and
returns the entropy of its labels in bits:

	H(p, n) = -(p/(p+n))·log2(p/(p+n)) - (n/(p+n))·log2(n/(p+n))

A class with no samples contributes nothing, and H(0, 0) is 0.
*/
func Entropy(p, n int) float64 {
	total := p + n
	if total == 0 || p == 0 || n == 0 {
		return 0.0
	}
	dist := []float64{float64(p) / float64(total), float64(n) / float64(total)}
	return stat.Entropy(dist) / math.Ln2
}
