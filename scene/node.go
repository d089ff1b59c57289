// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the scene graph of a map document: a closed
// set of node kinds ([World], [Layer], [Group], [Entity], [Brush] and
// [Patch]) built on the [tree] package, together with the transformable
// content each kind carries.
package scene

import (
	"fmt"

	"cogentcore.org/linked/math32"
	"cogentcore.org/linked/tree"
)

// Node is the interface satisfied by every scene node. The set of
// implementations is closed: a type switch over *World, *Layer, *Group,
// *Entity, *Brush and *Patch is exhaustive.
type Node interface {
	tree.Node

	// Kind returns the kind of this node.
	Kind() Kind

	// LogicalBounds returns the bounds of the node in world space,
	// including all of its children. It is empty for nodes without
	// spatial content.
	LogicalBounds() math32.Box3

	// Content returns the transformable content of this node,
	// or nil for World and Layer nodes.
	Content() Content

	sceneNode()
}

// Content is the transformable payload of a linkable node, independent
// of its position in the tree. It is one of [GroupData], [EntityData],
// [BrushData] or [PatchData].
type Content interface {
	// ContentKind returns the kind of node that carries this content.
	ContentKind() Kind

	// ContentLinkID returns the link id stored in the content.
	ContentLinkID() string
}

// World is the root node of a document. Its children are layers.
type World struct {
	tree.NodeBase
}

// Layer organizes top-level content of a world.
type Layer struct {
	tree.NodeBase

	// Name is the user-visible name of the layer.
	Name string

	// PersistentID identifies the layer in a saved document; 0 means unset.
	PersistentID int
}

// Group is a transformable container of content that can be linked
// to other groups with the same link id.
type Group struct {
	tree.NodeBase
	Data GroupData

	// PersistentID identifies the group in a saved document; 0 means unset.
	PersistentID int
}

// Entity is a point entity, or a brush entity when it has brush or patch children.
type Entity struct {
	tree.NodeBase
	Data EntityData
}

// Brush is a convex solid.
type Brush struct {
	tree.NodeBase
	Data BrushData
}

// Patch is a curved surface.
type Patch struct {
	tree.NodeBase
	Data PatchData
}

// NewWorld returns a new world with a single default layer.
func NewWorld() *World {
	w := &World{}
	tree.InitNode(w)
	NewLayer("Default Layer", w)
	return w
}

// NewLayer returns a new layer with the given name, added to the
// optional parent.
func NewLayer(name string, parent ...tree.Node) *Layer {
	l := &Layer{Name: name}
	tree.InitNode(l)
	addToParent(l, parent)
	return l
}

// NewGroup returns a new group with the given content, added to the
// optional parent.
func NewGroup(data GroupData, parent ...tree.Node) *Group {
	g := &Group{Data: data}
	tree.InitNode(g)
	addToParent(g, parent)
	return g
}

// NewEntity returns a new entity with the given content, added to the
// optional parent.
func NewEntity(data EntityData, parent ...tree.Node) *Entity {
	e := &Entity{Data: data}
	tree.InitNode(e)
	addToParent(e, parent)
	return e
}

// NewBrush returns a new brush with the given content, added to the
// optional parent.
func NewBrush(data BrushData, parent ...tree.Node) *Brush {
	b := &Brush{Data: data}
	tree.InitNode(b)
	addToParent(b, parent)
	return b
}

// NewPatch returns a new patch with the given content, added to the
// optional parent.
func NewPatch(data PatchData, parent ...tree.Node) *Patch {
	p := &Patch{Data: data}
	tree.InitNode(p)
	addToParent(p, parent)
	return p
}

// NewNode returns a new parentless node of the kind carried by the
// given content. It panics on a nil or unknown content value.
func NewNode(c Content) Node {
	switch c := c.(type) {
	case GroupData:
		return NewGroup(c)
	case EntityData:
		return NewEntity(c)
	case BrushData:
		return NewBrush(c)
	case PatchData:
		return NewPatch(c)
	}
	panic(fmt.Sprintf("scene.NewNode: unexpected content %T", c))
}

func addToParent(n tree.Node, parent []tree.Node) {
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	}
}

func (w *World) Kind() Kind  { return WorldKind }
func (l *Layer) Kind() Kind  { return LayerKind }
func (g *Group) Kind() Kind  { return GroupKind }
func (e *Entity) Kind() Kind { return EntityKind }
func (b *Brush) Kind() Kind  { return BrushKind }
func (p *Patch) Kind() Kind  { return PatchKind }

func (w *World) Content() Content  { return nil }
func (l *Layer) Content() Content  { return nil }
func (g *Group) Content() Content  { return g.Data }
func (e *Entity) Content() Content { return e.Data }
func (b *Brush) Content() Content  { return b.Data }
func (p *Patch) Content() Content  { return p.Data }

func (w *World) sceneNode()  {}
func (l *Layer) sceneNode()  {}
func (g *Group) sceneNode()  {}
func (e *Entity) sceneNode() {}
func (b *Brush) sceneNode()  {}
func (p *Patch) sceneNode()  {}

func (w *World) LogicalBounds() math32.Box3 { return childrenBounds(w) }
func (l *Layer) LogicalBounds() math32.Box3 { return childrenBounds(l) }
func (g *Group) LogicalBounds() math32.Box3 { return childrenBounds(g) }

// LogicalBounds returns the union of the children for brush entities,
// and a fixed size box around the origin for point entities.
func (e *Entity) LogicalBounds() math32.Box3 {
	if e.HasChildren() {
		return childrenBounds(e)
	}
	return math32.BoxAround(e.Data.Origin(), PointEntitySize/2)
}

func (b *Brush) LogicalBounds() math32.Box3 { return b.Data.Bounds() }
func (p *Patch) LogicalBounds() math32.Box3 { return p.Data.Bounds() }

func childrenBounds(n tree.Node) math32.Box3 {
	bb := math32.B3Empty()
	for _, k := range n.AsTree().Children {
		if sn, ok := k.(Node); ok {
			bb.ExpandByBox(sn.LogicalBounds())
		}
	}
	return bb
}

// String returns a short description of the group for diagnostics.
func (g *Group) String() string {
	return fmt.Sprintf("Group %q (%s)", g.Data.Name, g.Path())
}

// LinkID returns the link id of the given node, and false
// for World and Layer nodes.
func LinkID(n Node) (string, bool) {
	c := n.Content()
	if c == nil {
		return "", false
	}
	return c.ContentLinkID(), true
}

// Children returns the children of the given node as scene nodes.
// Children that are not scene nodes are skipped.
func Children(n tree.Node) []Node {
	kids := n.AsTree().Children
	res := make([]Node, 0, len(kids))
	for _, k := range kids {
		if sn, ok := k.(Node); ok {
			res = append(res, sn)
		}
	}
	return res
}

// AsTreeNodes converts the given scene nodes to tree nodes.
func AsTreeNodes(ns []Node) []tree.Node {
	res := make([]tree.Node, len(ns))
	for i, n := range ns {
		res[i] = n
	}
	return res
}

// Parent returns the parent of the given node as a scene node, or nil.
func Parent(n Node) Node {
	p, _ := n.AsTree().Parent.(Node)
	return p
}

// Test for impl
var (
	_ Node = &World{}
	_ Node = &Layer{}
	_ Node = &Group{}
	_ Node = &Entity{}
	_ Node = &Brush{}
	_ Node = &Patch{}
)
