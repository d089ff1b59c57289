// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/jinzhu/copier"

	"cogentcore.org/linked/base/errors"
	"cogentcore.org/linked/math32"
)

var (
	// ErrDegenerateBrush is returned when a transform collapses a brush face.
	ErrDegenerateBrush = errors.New("brush is degenerate")

	// ErrBrushOutsideWorld is returned when a transformed brush lies
	// entirely outside of the world bounds and can not be built.
	ErrBrushOutsideWorld = errors.New("brush lies outside of world bounds")
)

// degenerateArea is the minimal doubled area of the triangle spanned by
// the three points of a face plane.
const degenerateArea = 1e-4

// BrushFace is one bounding plane of a brush, given by three points
// in clockwise order, with its texture attributes.
type BrushFace struct {
	Points  [3]math32.Vector3
	Texture string

	// UAxis and VAxis are the texture projection axes.
	UAxis, VAxis math32.Vector3

	// Offset is the texture offset along UAxis and VAxis.
	Offset [2]float32
}

// Normal returns the unit normal of the face plane.
func (f BrushFace) Normal() math32.Vector3 {
	return f.cross().Normal()
}

func (f BrushFace) cross() math32.Vector3 {
	return f.Points[1].Sub(f.Points[0]).Cross(f.Points[2].Sub(f.Points[0]))
}

// BrushData is the content of a [Brush]: its face planes and the
// vertices of the resulting convex polyhedron.
type BrushData struct {
	Faces    []BrushFace
	Vertices []math32.Vector3

	// LinkID identifies the link set of this brush.
	LinkID string
}

func (b BrushData) ContentKind() Kind      { return BrushKind }
func (b BrushData) ContentLinkID() string { return b.LinkID }

// NewCuboid returns the content of an axis-aligned box brush spanning
// the given bounds, with all faces using the given texture.
func NewCuboid(bounds math32.Box3, texture, linkID string) BrushData {
	mn, mx := bounds.Min, bounds.Max
	v := func(x, y, z float32) math32.Vector3 { return math32.Vec3(x, y, z) }
	face := func(p0, p1, p2, u, vv math32.Vector3) BrushFace {
		return BrushFace{Points: [3]math32.Vector3{p0, p1, p2}, Texture: texture, UAxis: u, VAxis: vv}
	}
	ux, uy, uz := v(1, 0, 0), v(0, 1, 0), v(0, 0, 1)
	b := BrushData{LinkID: linkID}
	b.Faces = []BrushFace{
		face(v(mn.X, mn.Y, mn.Z), v(mn.X, mn.Y, mx.Z), v(mn.X, mx.Y, mn.Z), uy, uz.Negate()), // -x
		face(v(mx.X, mn.Y, mn.Z), v(mx.X, mx.Y, mn.Z), v(mx.X, mn.Y, mx.Z), uy, uz.Negate()), // +x
		face(v(mn.X, mn.Y, mn.Z), v(mx.X, mn.Y, mn.Z), v(mn.X, mn.Y, mx.Z), ux, uz.Negate()), // -y
		face(v(mn.X, mx.Y, mn.Z), v(mn.X, mx.Y, mx.Z), v(mx.X, mx.Y, mn.Z), ux, uz.Negate()), // +y
		face(v(mn.X, mn.Y, mn.Z), v(mn.X, mx.Y, mn.Z), v(mx.X, mn.Y, mn.Z), ux, uy.Negate()), // -z
		face(v(mn.X, mn.Y, mx.Z), v(mx.X, mn.Y, mx.Z), v(mn.X, mx.Y, mx.Z), ux, uy.Negate()), // +z
	}
	for _, x := range []float32{mn.X, mx.X} {
		for _, y := range []float32{mn.Y, mx.Y} {
			for _, z := range []float32{mn.Z, mx.Z} {
				b.Vertices = append(b.Vertices, v(x, y, z))
			}
		}
	}
	return b
}

// Bounds returns the bounds of the brush vertices.
func (b BrushData) Bounds() math32.Box3 {
	var bb math32.Box3
	bb.SetFromPoints(b.Vertices)
	return bb
}

// Clone returns a deep copy of the content that shares no storage with it.
func (b BrushData) Clone() BrushData {
	var c BrushData
	errors.Log(copier.CopyWithOption(&c, &b, copier.Option{DeepCopy: true}))
	return c
}

// Transform returns a copy of the content transformed by the given matrix.
// Mirroring transforms flip the face winding so that normals keep pointing
// outward. If lockTextures is set, the texture axes and offsets follow the
// transform. It fails with [ErrDegenerateBrush] when a face collapses or a
// vertex becomes non-finite, and with [ErrBrushOutsideWorld] when the
// result does not intersect the world bounds.
func (b BrushData) Transform(worldBounds math32.Box3, m *math32.Matrix4, lockTextures bool) (BrushData, error) {
	c := b.Clone()
	mirror := m.Determinant() < 0
	tr := m.Translation()
	for i := range c.Faces {
		f := &c.Faces[i]
		for j := range f.Points {
			f.Points[j] = f.Points[j].MulMatrix4AsPoint(m)
		}
		if mirror {
			f.Points[1], f.Points[2] = f.Points[2], f.Points[1]
		}
		if f.cross().Length() < degenerateArea || !f.Points[0].IsFinite() {
			return BrushData{}, fmt.Errorf("face %d: %w", i, ErrDegenerateBrush)
		}
		if lockTextures {
			f.UAxis = f.UAxis.MulMatrix4AsVector(m)
			f.VAxis = f.VAxis.MulMatrix4AsVector(m)
			f.Offset[0] -= tr.Dot(f.UAxis.Normal())
			f.Offset[1] -= tr.Dot(f.VAxis.Normal())
		}
	}
	for i, v := range c.Vertices {
		c.Vertices[i] = v.MulMatrix4AsPoint(m)
		if !c.Vertices[i].IsFinite() {
			return BrushData{}, fmt.Errorf("vertex %d: %w", i, ErrDegenerateBrush)
		}
	}
	if !worldBounds.IntersectsBox(c.Bounds()) {
		return BrushData{}, ErrBrushOutsideWorld
	}
	return c, nil
}
