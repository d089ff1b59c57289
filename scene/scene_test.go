// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/linked/math32"
)

const tol = 1e-4

func TestEntityTransform(t *testing.T) {
	e := NewEntityData("e1", ClassnameKey, "light", OriginKey, "8 0 0", AngleKey, "0", AnglesKey, "10 90 0")
	m := math32.Translate3D(0, 0, 16).Mul(math32.RotateAxis3D(math32.Vec3(0, 0, 1), math32.DegToRad(90)))

	moved := e.Transform(&m, false)
	o := moved.Origin()
	assert.True(t, o.ApproxEqual(math32.Vec3(0, 8, 16), tol), "origin %v", o)
	assert.Equal(t, "0", moved.Properties.At(AngleKey))
	assert.Equal(t, "8 0 0", e.Properties.At(OriginKey), "source is unchanged")

	turned := e.Transform(&m, true)
	assert.Equal(t, "90", turned.Properties.At(AngleKey))
	assert.Equal(t, "10 180 0", turned.Properties.At(AnglesKey))
	assert.Equal(t, []string{ClassnameKey, OriginKey, AngleKey, AnglesKey}, turned.Properties.Keys)

	bad := NewEntityData("e2", OriginKey, "not a vector")
	assert.Equal(t, "not a vector", bad.Transform(&m, true).Properties.At(OriginKey))
}

func TestEntityClone(t *testing.T) {
	e := NewEntityData("e1", "a", "1")
	e.ProtectedProperties = []string{"a"}
	c := e.Clone()
	c.SetProperty("a", "2")
	c.ProtectedProperties[0] = "b"
	assert.Equal(t, "1", e.Properties.At("a"))
	assert.Equal(t, "2", c.Properties.At("a"))
	assert.True(t, e.IsProtected("a"))
	assert.Equal(t, "e1", c.LinkID)
	assert.True(t, c.RemoveProperty("a"))
	_, ok := c.Property("a")
	assert.False(t, ok)
}

func TestBrushTransform(t *testing.T) {
	world := math32.Cube(1024)
	b := NewCuboid(math32.B3(0, 0, 0, 16, 16, 16), "base", "b1")
	assert.Equal(t, math32.B3(0, 0, 0, 16, 16, 16), b.Bounds())

	m := math32.Translate3D(32, 0, 0)
	moved, err := b.Transform(world, &m, false)
	require.NoError(t, err)
	assert.Equal(t, math32.B3(32, 0, 0, 48, 16, 16), moved.Bounds())
	assert.Equal(t, b.Faces[0].UAxis, moved.Faces[0].UAxis)
	assert.Equal(t, math32.B3(0, 0, 0, 16, 16, 16), b.Bounds(), "source is unchanged")

	locked, err := b.Transform(world, &m, true)
	require.NoError(t, err)
	assert.NotEqual(t, b.Faces[2].Offset, locked.Faces[2].Offset)

	mirror := math32.Scale3D(-1, 1, 1)
	mirrored, err := b.Transform(world, &mirror, false)
	require.NoError(t, err)
	n0 := b.Faces[0].Normal()
	n1 := mirrored.Faces[0].Normal()
	assert.InDelta(t, -n0.X, n1.X, tol, "mirrored face keeps pointing outward")

	flat := math32.Scale3D(1, 1, 0)
	_, err = b.Transform(world, &flat, false)
	assert.ErrorIs(t, err, ErrDegenerateBrush)

	far := math32.Translate3D(4096, 0, 0)
	_, err = b.Transform(world, &far, false)
	assert.ErrorIs(t, err, ErrBrushOutsideWorld)
}

func TestPatchTransform(t *testing.T) {
	p := NewPatchData(3, 3, []math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(2, 0, 0),
		math32.Vec3(0, 1, 1), math32.Vec3(1, 1, 1), math32.Vec3(2, 1, 1),
		math32.Vec3(0, 2, 0), math32.Vec3(1, 2, 0), math32.Vec3(2, 2, 0),
	}, "curve", "p1")
	m := math32.Translate3D(0, 0, 10)
	q := p.Transform(&m)
	assert.Equal(t, math32.B3(0, 0, 10, 2, 2, 11), q.Bounds())
	assert.Equal(t, math32.B3(0, 0, 0, 2, 2, 1), p.Bounds())
}

func TestTreeQueries(t *testing.T) {
	w := NewWorld()
	layer := w.Child(0).(*Layer)
	outer := NewGroup(NewGroupData("outer", "l1"), layer)
	inner := NewGroup(NewGroupData("inner", "l2"), outer)
	ent := NewEntity(NewEntityData("e1", OriginKey, "0 0 0"), inner)
	brush := NewBrush(NewCuboid(math32.B3(0, 0, 0, 8, 8, 8), "base", "b1"), ent)

	assert.Equal(t, []*Group{inner, outer}, ContainingGroups(brush))
	assert.Equal(t, inner, ContainingGroup(ent))
	assert.Nil(t, ContainingGroup(outer))
	assert.Equal(t, []*Group{outer, inner}, CollectGroups(w))

	assert.Equal(t, math32.B3(0, 0, 0, 8, 8, 8), outer.LogicalBounds(), "brush entity bounds are its children")
	brush.Delete()
	assert.Equal(t, math32.B3(-8, -8, -8, 8, 8, 8), ent.LogicalBounds())
	assert.True(t, NewGroup(NewGroupData("empty", "l3")).LogicalBounds().IsEmpty())

	id, ok := LinkID(inner)
	assert.True(t, ok)
	assert.Equal(t, "l2", id)
	_, ok = LinkID(layer)
	assert.False(t, ok)
	assert.Equal(t, Node(outer), Parent(inner))
	assert.Equal(t, "Group \"inner\" (/[0]/[0]/[0])", inner.String())
}

func TestNewNode(t *testing.T) {
	assert.Equal(t, GroupKind, NewNode(NewGroupData("g", "x")).Kind())
	assert.Equal(t, EntityKind, NewNode(NewEntityData("x")).Kind())
	assert.Equal(t, BrushKind, NewNode(BrushData{}).Kind())
	assert.Equal(t, PatchKind, NewNode(PatchData{}).Kind())
	assert.Panics(t, func() { NewNode(nil) })
	assert.Equal(t, "Patch", PatchKind.String())
}
