package feature

import "fmt"

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the sample satisfies the feature criterion.

Its Feature method returns the feature on which the criterion is applied.
*/
type Criterion interface {
	Feature() *Feature
	SatisfiedBy(sample Sample) bool
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the feature
passed as parameter.
*/
type Sample interface {
	ValueFor(*Feature) float64
}

/*
ThresholdCriterion represents the constraint value(feature) >= threshold.
Samples that do not satisfy it have a value strictly below the threshold.
*/
type ThresholdCriterion struct {
	feature   *Feature
	threshold float64
}

/*
NewThresholdCriterion takes a feature and a float64 threshold and returns
a ThresholdCriterion satisfied by samples whose value for the feature is
greater or equal to the threshold.
*/
func NewThresholdCriterion(f *Feature, threshold float64) ThresholdCriterion {
	return ThresholdCriterion{f, threshold}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (tc ThresholdCriterion) Feature() *Feature {
	return tc.feature
}

// Threshold returns the value that splits satisfying samples from the rest.
func (tc ThresholdCriterion) Threshold() float64 {
	return tc.threshold
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion, that is, if its value for the criterion's feature
is greater or equal to the criterion's threshold.
*/
func (tc ThresholdCriterion) SatisfiedBy(sample Sample) bool {
	return sample.ValueFor(tc.feature) >= tc.threshold
}

func (tc ThresholdCriterion) String() string {
	return fmt.Sprintf("%s >= %f", tc.feature.Name(), tc.threshold)
}

// Negation returns a description of the constraint satisfied by the samples
// that do not satisfy this criterion.
func (tc ThresholdCriterion) Negation() string {
	return fmt.Sprintf("%s < %f", tc.feature.Name(), tc.threshold)
}
