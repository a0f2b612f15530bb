package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, button, field, or list. It has optional class and id
// for CSS matching, bounds (position and size), and optional text for labels and buttons.
// Hidden nodes are neither drawn nor hit-tested.
type Node struct {
	Type   string // "panel", "label", "button", "field", "list"
	Class  string // e.g. "button" for .button
	ID     string // e.g. "addSphere" for #addSphere
	Bounds rl.Rectangle
	Text   string
	Hidden bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// Contains reports whether p lies inside the node's bounds.
func (n *Node) Contains(p rl.Vector2) bool {
	b := n.Bounds
	return !n.Hidden && p.X >= b.X && p.X < b.X+b.Width && p.Y >= b.Y && p.Y < b.Y+b.Height
}
