// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/jinzhu/copier"

	"cogentcore.org/linked/base/errors"
	"cogentcore.org/linked/math32"
)

// PatchData is the content of a [Patch]: a Rows x Cols grid of control points.
type PatchData struct {
	Rows, Cols    int
	ControlPoints []math32.Vector3
	Texture       string

	// LinkID identifies the link set of this patch.
	LinkID string
}

// NewPatchData returns patch content with the given grid size and
// control points in row-major order.
func NewPatchData(rows, cols int, points []math32.Vector3, texture, linkID string) PatchData {
	return PatchData{Rows: rows, Cols: cols, ControlPoints: points, Texture: texture, LinkID: linkID}
}

func (p PatchData) ContentKind() Kind      { return PatchKind }
func (p PatchData) ContentLinkID() string { return p.LinkID }

// Bounds returns the bounds of the control points.
func (p PatchData) Bounds() math32.Box3 {
	var bb math32.Box3
	bb.SetFromPoints(p.ControlPoints)
	return bb
}

// Clone returns a deep copy of the content that shares no storage with it.
func (p PatchData) Clone() PatchData {
	var c PatchData
	errors.Log(copier.CopyWithOption(&c, &p, copier.Option{DeepCopy: true}))
	return c
}

// Transform returns a copy of the content with every control point
// transformed by the given matrix. It never fails.
func (p PatchData) Transform(m *math32.Matrix4) PatchData {
	c := p.Clone()
	for i, v := range c.ControlPoints {
		c.ControlPoints[i] = v.MulMatrix4AsPoint(m)
	}
	return c
}
