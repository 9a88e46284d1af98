package canvas_test

import (
	"fmt"

	"github.com/matzehuels/jsoncanvas/pkg/canvas"
	"github.com/matzehuels/jsoncanvas/pkg/geometry"
)

func ExampleCanvas_AddOrGetNodeID() {
	c := canvas.New(canvas.DefaultConfig())
	a, _ := c.AddOrGetNodeID("a")
	b, _ := c.AddOrGetNodeID("b")
	fmt.Println(a.ID, a.Bounds)
	fmt.Println(b.ID, b.Bounds)
	// Output:
	// a (0,0 250x60)
	// b (260,0 250x60)
}

func ExampleCanvas_AddOrGetNode_group() {
	c := canvas.New(canvas.DefaultConfig())
	c.AddOrGetNode(canvas.NewText("note", geometry.R(20, 20, 100, 40), "hello"))
	c.AddOrGetNode(canvas.NewGroup("box", geometry.R(0, 0, 300, 200), "Box"))

	parent, _ := c.Parent("note")
	note, _ := c.Node("note")
	fmt.Println("parent:", parent.ID)
	fmt.Println("z:", note.Z)
	// Output:
	// parent: box
	// z: 1
}

func ExampleCanvas_Connect() {
	c := canvas.New(canvas.DefaultConfig())
	c.AddOrGetNode(canvas.NewText("a", geometry.R(0, 0, 100, 100), ""))
	c.AddOrGetNode(canvas.NewText("b", geometry.R(150, 0, 100, 100), ""))

	e, _ := c.Connect("a", "b", canvas.ConnectOptions{ID: "a-b"})
	fmt.Printf("%s: %s/%s -> %s/%s (%s)\n", e.ID, e.FromNode, e.FromSide, e.ToNode, e.ToSide, e.ToEnd)
	// Output:
	// a-b: a/right -> b/left (arrow)
}
