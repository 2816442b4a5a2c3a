/*
Package dot renders trees as Graphviz DOT digraphs.
*/
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/bough/tree"
)

const graphName = "G"

/*
Graph takes a tree and returns a gographviz graph with a node per tree
node and an edge from every split to each of its subtrees, or an error.
Split nodes are labelled with their criterion, leaves with their
classification, and both with the number of training samples that reached
them.
*/
func Graph(t *tree.Tree) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}
	if t.Root == nil {
		return g, nil
	}
	next := 0
	_, err := addNode(g, t.Root, &next)
	if err != nil {
		return nil, err
	}
	return g, nil
}

/*
Write takes a writer and a tree and writes the DOT rendering of the tree
on the writer.
*/
func Write(w io.Writer, t *tree.Tree) error {
	g, err := Graph(t)
	if err != nil {
		return fmt.Errorf("building tree graph: %v", err)
	}
	_, err = io.WriteString(w, g.String())
	if err != nil {
		return fmt.Errorf("writing tree graph: %v", err)
	}
	return nil
}

func addNode(g *gographviz.Graph, n tree.Node, next *int) (string, error) {
	id := fmt.Sprintf("n%d", *next)
	*next++
	switch node := n.(type) {
	case *tree.Leaf:
		return id, g.AddNode(graphName, id, map[string]string{
			"label": label(fmt.Sprintf("%t", node.Classification), node.Samples),
			"shape": "box",
		})
	case *tree.Split:
		err := g.AddNode(graphName, id, map[string]string{
			"label": label(node.Criterion().String(), node.Samples),
			"shape": "ellipse",
		})
		if err != nil {
			return "", err
		}
		for _, branch := range []struct {
			sub  tree.Node
			text string
		}{{node.GE, ">="}, {node.LT, "<"}} {
			subID, err := addNode(g, branch.sub, next)
			if err != nil {
				return "", err
			}
			err = g.AddEdge(id, subID, true, map[string]string{"label": quote(branch.text)})
			if err != nil {
				return "", err
			}
		}
		return id, nil
	}
	return "", fmt.Errorf("unknown node type %T", n)
}

func label(text string, samples int) string {
	return quote(fmt.Sprintf("%s\\n%d samples", text, samples))
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
