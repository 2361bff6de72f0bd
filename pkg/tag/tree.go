package tag

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Tree returns an indented outline of the subtree rooted at n, one line per
// node, for logs and debugging.
//
//	<html>
//	└── <body>
//	    └── <h1 id='x'>
//	        └── "hello"
func (n *Node) Tree() string {
	root := treeprint.NewWithRoot(n.String())
	addBranches(root, n)
	return root.String()
}

func addBranches(t treeprint.Tree, n *Node) {
	for _, ch := range n.children {
		switch c := ch.(type) {
		case *Node:
			if len(c.children) == 0 {
				t.AddNode(c.String())
				continue
			}
			addBranches(t.AddBranch(c.String()), c)
		case string:
			t.AddNode(fmt.Sprintf("%q", c))
		case Raw:
			t.AddNode(fmt.Sprintf("raw %q", string(c)))
		default:
			t.AddNode(fmt.Sprintf("%T", c))
		}
	}
}
