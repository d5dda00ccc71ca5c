// Package tree aggregates parsed status entries into a directory tree and
// renders it with branch-drawing connectors.
package tree

import (
	"github.com/JamesDevlin5/Gitree/internal/status"
)

// Kind discriminates the two node variants.
type Kind int

// Node kinds.
const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindFile {
		return "file"
	}
	return "dir"
}

// Node is a directory or a file in the status tree.
type Node struct {
	Kind     Kind
	Name     string
	Children []*Node     // directories only, in insertion order
	Code     status.Code // files only
	Origin   string      // files only, source of a rename or copy
}

// IsDir returns true if this node is a directory.
func (n *Node) IsDir() bool {
	return n.Kind == KindDir
}

// Category returns the display category of a file node.
func (n *Node) Category() status.Category {
	return n.Code.Category()
}

// Lookup returns the directory child called name, or nil. File children are
// never matched.
func (n *Node) Lookup(name string) *Node {
	for _, child := range n.Children {
		if child.Kind == KindDir && child.Name == name {
			return child
		}
	}
	return nil
}

// findOrCreate returns the directory child called name, appending a new one
// when none exists yet.
func (n *Node) findOrCreate(name string) *Node {
	if child := n.Lookup(name); child != nil {
		return child
	}
	child := &Node{Kind: KindDir, Name: name}
	n.Children = append(n.Children, child)
	return child
}

// Tree owns an anonymous root directory.
type Tree struct {
	root *Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{root: &Node{Kind: KindDir}}
}

// Build returns a tree holding entries in order.
func Build(entries []status.Entry) *Tree {
	t := New()
	for _, e := range entries {
		t.Insert(e)
	}
	return t
}

// Root returns the anonymous root directory.
func (t *Tree) Root() *Node {
	return t.root
}

// Insert adds e below its directories, creating missing ones. The file is
// always appended, even when a sibling has the same name.
func (t *Tree) Insert(e status.Entry) {
	parent := t.root
	for _, dir := range e.Dirs {
		parent = parent.findOrCreate(dir)
	}
	parent.Children = append(parent.Children, &Node{
		Kind:   KindFile,
		Name:   e.Filename,
		Code:   e.Code,
		Origin: e.Origin,
	})
}

// Empty reports whether the tree has no entries.
func (t *Tree) Empty() bool {
	return len(t.root.Children) == 0
}

// WalkFunc is called for every node with the names of its ancestors.
type WalkFunc func(parents []string, n *Node) error

// Walk visits every node below the root in pre-order. An error returned by
// fn stops the walk.
func (t *Tree) Walk(fn WalkFunc) error {
	return walk(nil, t.root.Children, fn)
}

func walk(parents []string, nodes []*Node, fn WalkFunc) error {
	for _, n := range nodes {
		if err := fn(parents, n); err != nil {
			return err
		}
		if n.IsDir() {
			next := append(parents[:len(parents):len(parents)], n.Name)
			if err := walk(next, n.Children, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Files returns the number of file nodes.
func (t *Tree) Files() int {
	count := 0
	_ = t.Walk(func(_ []string, n *Node) error {
		if !n.IsDir() {
			count++
		}
		return nil
	})
	return count
}

// Counts returns the number of files per status category.
func (t *Tree) Counts() map[status.Category]int {
	counts := make(map[status.Category]int)
	_ = t.Walk(func(_ []string, n *Node) error {
		if !n.IsDir() {
			counts[n.Category()]++
		}
		return nil
	})
	return counts
}
