package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/bough/feature"
)

// Tree represents a binary decision tree. It is composed of
// its root node and the schema of the samples it classifies.
type Tree struct {
	Root   Node
	Schema *feature.Schema
}

// New takes the root Node and a schema and returns a tree
// classifying samples with that schema.
func New(root Node, schema *feature.Schema) *Tree {
	return &Tree{root, schema}
}

// Classify takes a sample and returns the class the tree assigns to it.
func (t *Tree) Classify(s feature.Sample) bool {
	return Classify(t.Root, s)
}

// Traverse takes a bottomup boolean and an error-returning
// function that takes a node and its depth (0 for the root) as
// parameters, and goes through the tree running the function
// with every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true. The GE
// subtree of a split is always traversed before its LT subtree.
// If the call to the function returns an error, the traversing
// is aborted and the error is returned. Otherwise, when the
// traversing is over, nil is returned.
func (t *Tree) Traverse(bottomup bool, f func(Node, int) error) error {
	return traverse(t.Root, 0, bottomup, f)
}

func traverse(n Node, depth int, bottomup bool, f func(Node, int) error) error {
	var err error
	if !bottomup {
		err = f(n, depth)
	}
	if err != nil {
		return err
	}
	if s, ok := n.(*Split); ok {
		for _, sn := range []Node{s.GE, s.LT} {
			err = traverse(sn, depth+1, bottomup, f)
			if err != nil {
				return err
			}
		}
	}
	if bottomup {
		err = f(n, depth)
	}
	return err
}

// Depth returns the number of splits on the longest path from the
// root to a leaf.
func (t *Tree) Depth() int {
	var max int
	t.Traverse(false, func(n Node, depth int) error {
		if depth > max {
			max = depth
		}
		return nil
	})
	return max
}

// Size returns the number of nodes in the tree.
func (t *Tree) Size() int {
	var count int
	t.Traverse(false, func(Node, int) error {
		count++
		return nil
	})
	return count
}

// Leaves returns the number of leaves in the tree.
func (t *Tree) Leaves() int {
	var count int
	t.Traverse(false, func(n Node, _ int) error {
		if _, ok := n.(*Leaf); ok {
			count++
		}
		return nil
	})
	return count
}

func (t *Tree) String() string {
	return fmt.Sprintf("[root]\n%s", subtreeString(t.Root))
}

func subtreeString(n Node) string {
	var result string
	switch n := n.(type) {
	case *Leaf:
		return fmt.Sprintf("%v (%d samples)\n \n", n, n.Samples)
	case *Split:
		result = fmt.Sprintf("{ %s } (gain %f, %d samples)\n|\n", n.Feature.Name(), n.InformationGain, n.Samples)
		c := n.Criterion()
		branches := []struct {
			label   string
			subtree Node
		}{
			{c.String(), n.GE},
			{c.Negation(), n.LT},
		}
		for i, b := range branches {
			lines := strings.Split(fmt.Sprintf("[%s]\n%s", b.label, subtreeString(b.subtree)), "\n")
			for j, line := range lines {
				if len(strings.TrimSpace(line)) == 0 {
					continue
				}
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else if i == len(branches)-1 {
					result = fmt.Sprintf("%s   %s\n", result, line)
				} else {
					result = fmt.Sprintf("%s|  %s\n", result, line)
				}
			}
		}
	}
	return result
}
