// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "cogentcore.org/linked/math32"

// GroupData is the content of a [Group].
type GroupData struct {

	// Name is the user-visible name of this group instance. It is never
	// synchronized between linked groups.
	Name string

	// LinkID identifies the link set of this group.
	LinkID string

	// Transformation places the canonical content of the group in world space.
	Transformation math32.Matrix4
}

// NewGroupData returns group content with the given name and link id
// and an identity transformation.
func NewGroupData(name, linkID string) GroupData {
	return GroupData{Name: name, LinkID: linkID, Transformation: math32.Identity4()}
}

func (g GroupData) ContentKind() Kind      { return GroupKind }
func (g GroupData) ContentLinkID() string { return g.LinkID }

// Transform returns a copy of the content with the given transform
// composed onto its transformation.
func (g GroupData) Transform(m *math32.Matrix4) GroupData {
	g.Transformation = m.Mul(g.Transformation)
	return g
}

// ResetTransformation returns a copy of the content with an
// identity transformation.
func (g GroupData) ResetTransformation() GroupData {
	g.Transformation = math32.Identity4()
	return g
}
