/*
Package bough grows binary decision trees that classify samples described
by numeric features into two classes.

Trees are grown greedily: at every node the feature and threshold whose
split of the node's training samples yields the maximum information gain
are chosen, and each feature is used at most once on any path from the
root to a leaf.
*/
package bough

import (
	"fmt"

	"github.com/pbanos/bough/dataset"
	"github.com/pbanos/bough/feature"
	"github.com/pbanos/bough/tree"
	"github.com/rs/zerolog"
)

/*
Pot represents the context in which a tree is grown.
*/
type Pot struct {
	logger zerolog.Logger
}

// Option configures a Pot.
type Option func(*Pot)

/*
WithLogger returns an Option that makes the Pot log a debug event for
every node it grows with the given logger.
*/
func WithLogger(l zerolog.Logger) Option {
	return func(p *Pot) {
		p.logger = l
	}
}

// New returns a Pot configured with the given options.
func New(opts ...Option) *Pot {
	p := &Pot{logger: zerolog.Nop()}
	for _, o := range opts {
		o(p)
	}
	return p
}

/*
Grow takes a dataset and the features available to split it and returns
the root of a tree grown on them with a default Pot.
*/
func Grow(s *dataset.Dataset, features []*feature.Feature) tree.Node {
	return New().Grow(s, features)
}

/*
GrowTree takes a dataset, the names of the features available to split it
and a list of options, and returns the tree grown on them. An error is
returned if a name does not correspond to a feature of the dataset's
schema.
*/
func GrowTree(s *dataset.Dataset, names []string, opts ...Option) (*tree.Tree, error) {
	features, err := s.Schema().Lookup(names...)
	if err != nil {
		return nil, fmt.Errorf("growing tree: %w", err)
	}
	return tree.New(New(opts...).Grow(s, features), s.Schema()), nil
}

/*
Grow takes a dataset and the features available to split it and returns
the root of a tree grown on them:
  - an empty dataset produces a leaf classifying as true,
  - a dataset whose samples share a class produces a leaf with that class,
  - with no features available, a leaf with the majority class is produced,
    ties resolving to true,
  - otherwise the dataset is partitioned on the best feature and threshold,
    and both subtrees are grown without that feature.

The given features slice is not modified.
*/
func (p *Pot) Grow(s *dataset.Dataset, features []*feature.Feature) tree.Node {
	return p.grow(s, features, 0)
}

func (p *Pot) grow(s *dataset.Dataset, features []*feature.Feature, depth int) tree.Node {
	if s.Count() == 0 {
		return p.leaf(true, s, depth, "empty")
	}
	if label, ok := s.Pure(); ok {
		return p.leaf(label, s, depth, "pure")
	}
	if len(features) == 0 {
		return p.leaf(s.Majority(), s, depth, "majority")
	}
	part := NewPartition(s, features)
	remaining := make([]*feature.Feature, 0, len(features)-1)
	for _, f := range features {
		if f != part.Feature {
			remaining = append(remaining, f)
		}
	}
	p.logger.Debug().
		Int("depth", depth).
		Str("feature", part.Feature.Name()).
		Float64("threshold", part.Threshold).
		Float64("gain", part.InformationGain()).
		Int("samples", s.Count()).
		Msg("split")
	ge := p.grow(part.GE, remaining, depth+1)
	lt := p.grow(part.LT, remaining, depth+1)
	n := tree.NewSplit(part.Feature, part.Threshold, ge, lt)
	n.InformationGain = part.InformationGain()
	n.Samples = s.Count()
	return n
}

func (p *Pot) leaf(classification bool, s *dataset.Dataset, depth int, reason string) *tree.Leaf {
	p.logger.Debug().
		Int("depth", depth).
		Bool("class", classification).
		Int("samples", s.Count()).
		Str("reason", reason).
		Msg("leaf")
	return tree.NewLeaf(classification, s.Count())
}
