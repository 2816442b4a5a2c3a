package tree

import (
	"fmt"

	"github.com/pbanos/bough/feature"
)

/*
Node is a node of the tree: either a *Leaf or a *Split.

Nodes are built bottom-up while growing a tree and never modified
afterwards.
*/
type Node interface {
	// Classify takes a sample and returns the class the subtree under
	// the node assigns to it.
	Classify(feature.Sample) bool
	isNode()
}

/*
Leaf is a terminal node: every sample reaching it gets its classification.
*/
type Leaf struct {
	// The class assigned to samples reaching the leaf.
	Classification bool
	// The number of training samples that reached the leaf.
	Samples int
}

/*
Split is a decision node. Samples with a value for Feature greater or equal
to Threshold continue on the GE subtree, the rest on the LT subtree.
*/
type Split struct {
	Feature   *feature.Feature
	Threshold float64
	GE        Node
	LT        Node
	// The information gain the split obtained on its training samples.
	InformationGain float64
	// The number of training samples that reached the split.
	Samples int
}

// NewLeaf returns a leaf node with the given classification.
func NewLeaf(classification bool, samples int) *Leaf {
	return &Leaf{Classification: classification, Samples: samples}
}

/*
NewSplit takes a feature, a threshold and the nodes for the samples that
satisfy value >= threshold and for those that do not, and returns a split
node. It panics if either child is nil.
*/
func NewSplit(f *feature.Feature, threshold float64, ge, lt Node) *Split {
	if ge == nil || lt == nil {
		panic(fmt.Sprintf("split on %s: nil subtree", f.Name()))
	}
	return &Split{Feature: f, Threshold: threshold, GE: ge, LT: lt}
}

// Classify returns the classification of the leaf.
func (l *Leaf) Classify(feature.Sample) bool {
	return l.Classification
}

func (l *Leaf) isNode() {}

func (l *Leaf) String() string {
	return fmt.Sprintf("{ %t }", l.Classification)
}

/*
Criterion returns the criterion samples must satisfy to continue on the
GE subtree.
*/
func (s *Split) Criterion() feature.ThresholdCriterion {
	return feature.NewThresholdCriterion(s.Feature, s.Threshold)
}

/*
Next takes a sample and returns the subtree it continues on.
*/
func (s *Split) Next(sample feature.Sample) Node {
	if s.Criterion().SatisfiedBy(sample) {
		return s.GE
	}
	return s.LT
}

// Classify descends the subtree under the split with the given sample.
func (s *Split) Classify(sample feature.Sample) bool {
	return Classify(s, sample)
}

func (s *Split) isNode() {}

func (s *Split) String() string {
	return fmt.Sprintf("{ %v }", s.Criterion())
}

/*
Classify takes a node and a sample and descends from the node, following
at every split the subtree whose constraint the sample satisfies, until a
leaf is reached. It returns the classification of that leaf.
*/
func Classify(n Node, sample feature.Sample) bool {
	for {
		switch node := n.(type) {
		case *Split:
			n = node.Next(sample)
		case *Leaf:
			return node.Classification
		default:
			panic(fmt.Sprintf("classifying sample: unknown node type %T", n))
		}
	}
}
