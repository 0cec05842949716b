package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"planet-tour/internal/caption"
)

// Node is a single overlay element with optional class and id for CSS matching.
// Opacity and vertical offset come from Block, which animations write to; several nodes
// may share one Block (menu items share the menu's). Text falls back to Node.Text when
// the block carries none.
type Node struct {
	Class  string
	ID     string
	Text   string
	Block  *caption.Block
	Stack  int          // position in a vertical list; shifts the node down by Stack*(height+gap)
	Bounds rl.Rectangle // resolved by the engine
}

// NewNode creates a node bound to block. A nil block means always fully visible.
func NewNode(class, id string, block *caption.Block) *Node {
	return &Node{Class: class, ID: id, Block: block}
}

func (n *Node) text() string {
	if n.Block != nil && n.Block.Text != "" {
		return n.Block.Text
	}
	return n.Text
}

func (n *Node) opacity() float32 {
	if n.Block == nil {
		return 1
	}
	return n.Block.Opacity
}

func (n *Node) offsetY() float32 {
	if n.Block == nil {
		return 0
	}
	return n.Block.OffsetY
}
