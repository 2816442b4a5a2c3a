package bough

import (
	"math"
	"sort"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/feature"
)

/*
Partition represents a binary partition of a dataset according to a
threshold on a feature: GE holds the samples whose value for the feature is
greater or equal to the threshold, LT the rest.
*/
type Partition struct {
	Feature   *feature.Feature
	Threshold float64
	GE        *dataset.Dataset
	LT        *dataset.Dataset
	remainder float64
	entropy   float64
}

/*
Remainder returns the entropy of the partition's subsets weighted by their
share of the samples. The lower, the better the partition separates
classes.
*/
func (p *Partition) Remainder() float64 {
	return p.remainder
}

/*
InformationGain returns the reduction in label entropy the partition
achieves: the entropy of the partitioned dataset minus the remainder.
*/
func (p *Partition) InformationGain() float64 {
	return p.entropy - p.remainder
}

// Criterion returns the criterion satisfied by the samples in GE.
func (p *Partition) Criterion() feature.ThresholdCriterion {
	return feature.NewThresholdCriterion(p.Feature, p.Threshold)
}

/*
Thresholds takes a slice of distinct values sorted in ascending order and
returns the candidate thresholds to split them: the midpoints between every
pair of adjacent values, or the greater value of the pair when no float64
lies strictly between them. A single value is its own sole candidate, and
no values produce no candidates.
*/
func Thresholds(values []float64) []float64 {
	if len(values) == 1 {
		return []float64{values[0]}
	}
	var thresholds []float64
	for i := 1; i < len(values); i++ {
		mid := (values[i-1] + values[i]) / 2.0
		// adjacent values too close to have a midpoint between them
		if mid <= values[i-1] {
			mid = values[i]
		}
		thresholds = append(thresholds, mid)
	}
	return thresholds
}

/*
Remainder takes the number of positive and negative samples on each side
of a split and returns the entropy of both sides weighted by their share of
the samples.
*/
func Remainder(geP, geN, ltP, ltN int) float64 {
	total := float64(geP + geN + ltP + ltN)
	if total == 0 {
		return 0.0
	}
	return float64(geP+geN)/total*dataset.Entropy(geP, geN) +
		float64(ltP+ltN)/total*dataset.Entropy(ltP, ltN)
}

type labeledValue struct {
	value float64
	label bool
}

/*
BestThreshold takes a dataset and a feature and returns the candidate
threshold for the feature with the minimum remainder, along with that
remainder. Candidates are evaluated in ascending order and the first one
found wins ties. It returns false as third value if the dataset is empty.
*/
func BestThreshold(s *dataset.Dataset, f *feature.Feature) (float64, float64, bool) {
	candidates := Thresholds(s.Values(f))
	if len(candidates) == 0 {
		return 0, 0, false
	}
	lvs := make([]labeledValue, 0, s.Count())
	for i := 0; i < s.Count(); i++ {
		sample := s.Sample(i)
		lvs = append(lvs, labeledValue{sample.ValueFor(f), sample.Label()})
	}
	sort.Slice(lvs, func(i, j int) bool { return lvs[i].value < lvs[j].value })
	p, n := s.Positives(), s.Negatives()
	var ltP, ltN, i int
	bestRemainder := math.Inf(1)
	var bestThreshold float64
	for _, threshold := range candidates {
		for ; i < len(lvs) && lvs[i].value < threshold; i++ {
			if lvs[i].label {
				ltP++
			} else {
				ltN++
			}
		}
		remainder := Remainder(p-ltP, n-ltN, ltP, ltN)
		if remainder < bestRemainder {
			bestRemainder = remainder
			bestThreshold = threshold
		}
	}
	return bestThreshold, bestRemainder, true
}

/*
NewPartition takes a dataset and a slice of features and returns the
partition of the dataset on the feature and threshold with the minimum
remainder (that is, the maximum information gain) among all candidate
thresholds of all given features. Ties go to the earliest feature in the
slice. The result is nil if there are no features or the dataset is empty.
*/
func NewPartition(s *dataset.Dataset, features []*feature.Feature) *Partition {
	var best *Partition
	for _, f := range features {
		threshold, remainder, ok := BestThreshold(s, f)
		if !ok {
			continue
		}
		if best == nil || remainder < best.remainder {
			best = &Partition{Feature: f, Threshold: threshold, remainder: remainder}
		}
	}
	if best == nil {
		return nil
	}
	best.entropy = s.Entropy()
	best.GE, best.LT = s.Partition(best.Criterion())
	return best
}
