package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewNode(t *testing.T) {
	node := NewNode("root")

	if node.Rotation != mgl64.QuatIdent() {
		t.Errorf("rotation = %v, want identity", node.Rotation)
	}
	if node.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("scale = %v, want (1,1,1)", node.Scale)
	}
	if node.Body != -1 {
		t.Errorf("body index = %d, want -1", node.Body)
	}
}

func TestAddChild(t *testing.T) {
	root := NewNode("root")
	child := NewNode("child")

	root.AddChild(child)

	if child.Parent != root {
		t.Error("child parent not set")
	}
	if len(root.Children) != 1 || root.Children[0] != child {
		t.Errorf("children = %v, want [child]", root.Children)
	}
}
