// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/linked/base/keylist"
	"cogentcore.org/linked/math32"
)

// Well-known entity property keys.
const (
	ClassnameKey = "classname"
	OriginKey    = "origin"
	AngleKey     = "angle"
	AnglesKey    = "angles"
)

// PointEntitySize is the edge length of the bounds of a point entity.
const PointEntitySize = 16

// EntityData is the content of an [Entity].
type EntityData struct {

	// Properties holds the ordered key-value properties of the entity.
	Properties *keylist.List[string, string]

	// ProtectedProperties are the keys of properties that are never
	// overwritten when linked content is synchronized into this entity.
	ProtectedProperties []string

	// LinkID identifies the link set of this entity.
	LinkID string
}

// NewEntityData returns entity content with the given link id and the
// given alternating key, value property pairs.
func NewEntityData(linkID string, keyValues ...string) EntityData {
	e := EntityData{Properties: keylist.New[string, string](), LinkID: linkID}
	for i := 0; i+1 < len(keyValues); i += 2 {
		e.Properties.Set(keyValues[i], keyValues[i+1])
	}
	return e
}

func (e EntityData) ContentKind() Kind      { return EntityKind }
func (e EntityData) ContentLinkID() string { return e.LinkID }

// Clone returns a deep copy of the content that shares no storage with it.
func (e EntityData) Clone() EntityData {
	c := e
	c.Properties = e.Properties.Clone()
	c.ProtectedProperties = slices.Clone(e.ProtectedProperties)
	return c
}

// Property returns the value of the given property, and whether it exists.
func (e EntityData) Property(key string) (string, bool) {
	return e.Properties.AtTry(key)
}

// SetProperty sets the given property, adding it at the end if new.
func (e *EntityData) SetProperty(key, value string) {
	if e.Properties == nil {
		e.Properties = keylist.New[string, string]()
	}
	e.Properties.Set(key, value)
}

// RemoveProperty removes the given property, returning false if it
// did not exist.
func (e *EntityData) RemoveProperty(key string) bool {
	if e.Properties == nil {
		return false
	}
	return e.Properties.DeleteByKey(key)
}

// IsProtected returns whether the given key is a protected property.
func (e EntityData) IsProtected(key string) bool {
	return slices.Contains(e.ProtectedProperties, key)
}

// Origin returns the parsed origin property, or the zero vector
// if it is missing or malformed.
func (e EntityData) Origin() math32.Vector3 {
	s, ok := e.Property(OriginKey)
	if !ok {
		return math32.Vector3{}
	}
	v, err := ParseVector3(s)
	if err != nil {
		return math32.Vector3{}
	}
	return v
}

// Transform returns a copy of the content with the given transform applied
// to its spatial properties. The origin is transformed as a point. If
// updateAngle is set, the yaw stored in the angle or angles property is
// rotated by the linear part of the transform. Transform never fails;
// properties that can not be parsed are left unchanged.
func (e EntityData) Transform(m *math32.Matrix4, updateAngle bool) EntityData {
	c := e.Clone()
	if s, ok := c.Property(OriginKey); ok {
		if o, err := ParseVector3(s); err == nil {
			c.SetProperty(OriginKey, FormatVector3(o.MulMatrix4AsPoint(m)))
		}
	}
	if !updateAngle {
		return c
	}
	if s, ok := c.Property(AngleKey); ok {
		if a, err := strconv.ParseFloat(strings.TrimSpace(s), 32); err == nil {
			c.SetProperty(AngleKey, formatFloat(rotateYaw(float32(a), m)))
		}
	}
	if s, ok := c.Property(AnglesKey); ok {
		if v, err := ParseVector3(s); err == nil { // pitch yaw roll
			v.Y = rotateYaw(v.Y, m)
			c.SetProperty(AnglesKey, FormatVector3(v))
		}
	}
	return c
}

// rotateYaw returns the yaw in degrees of the horizontal direction with the
// given yaw after transformation by the linear part of m, in [0, 360).
func rotateYaw(yaw float32, m *math32.Matrix4) float32 {
	r := math32.DegToRad(yaw)
	dir := math32.Vec3(math32.Cos(r), math32.Sin(r), 0).MulMatrix4AsVector(m)
	if dir.X == 0 && dir.Y == 0 {
		return yaw
	}
	deg := math32.Round(math32.RadToDeg(math32.Atan2(dir.Y, dir.X))*1000) / 1000
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// ParseVector3 parses a vector in the "x y z" property format.
func ParseVector3(s string) (math32.Vector3, error) {
	fs := strings.Fields(s)
	if len(fs) != 3 {
		return math32.Vector3{}, fmt.Errorf("scene.ParseVector3: expected 3 components in %q", s)
	}
	var c [3]float32
	for i, f := range fs {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return math32.Vector3{}, fmt.Errorf("scene.ParseVector3: %w", err)
		}
		c[i] = float32(v)
	}
	return math32.Vec3(c[0], c[1], c[2]), nil
}

// FormatVector3 formats a vector in the "x y z" property format.
func FormatVector3(v math32.Vector3) string {
	return formatFloat(v.X) + " " + formatFloat(v.Y) + " " + formatFloat(v.Z)
}

func formatFloat(f float32) string {
	if f == 0 { // avoid "-0"
		f = 0
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
