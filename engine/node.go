// Package engine declares the surfaces the simulation is driven by: the
// scene/node graph, the rendering backend, the input poller and the sound
// API. The simulation core never depends on them; they consume body state
// and stay unimplemented here.
package engine

import "github.com/go-gl/mathgl/mgl64"

// Node is an element of the scene graph. Body references the index of the
// rigid body driving this node's transform, -1 when the node is not
// simulated.
type Node struct {
	Name        string
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3

	Parent   *Node
	Children []*Node

	Body int
}

// NewNode creates a detached node with an identity transform
func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
		Body:     -1,
	}
}

// AddChild attaches a child node
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}
