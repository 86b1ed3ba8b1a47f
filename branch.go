package fractree

import "math"

// Branch describes one segment of the tree awaiting drawing: a straight
// trunk starting at Origin, plus the parameters needed to derive its two
// children. BranchRatio and BranchAngle are fixed for the lifetime of a
// tree and inherited unchanged; only Origin, TrunkLength, and Incline
// vary per generation.
type Branch struct {
	// Origin is the start of the trunk segment.
	Origin Vec2
	// TrunkLength is the pixel length of the trunk segment.
	TrunkLength float64
	// BranchRatio is the factor in (0, 1) by which length shrinks at
	// each generation.
	BranchRatio float64
	// BranchAngle is the angular spread in radians between the two
	// children at a split.
	BranchAngle float64
	// Incline is the segment's rotational offset from vertical in
	// radians, accumulated across generations.
	Incline float64
}

// All methods below are pure: same branch in, same points out.

// TrunkEnd returns the endpoint of the trunk segment: a unit vector
// rotated by (incline − π/2), scaled by the trunk length, translated by
// the origin. Children sprout from this point.
func (b Branch) TrunkEnd() Vec2 {
	return b.Origin.Add(Vec2{
		X: math.Sin(b.Incline) * b.TrunkLength,
		Y: -math.Cos(b.Incline) * b.TrunkLength,
	})
}

// LeftEnd returns the endpoint of the left child's trunk.
func (b Branch) LeftEnd() Vec2 {
	a := b.BranchAngle/2 - b.Incline
	bl := b.TrunkLength * b.BranchRatio
	return b.TrunkEnd().Add(Vec2{
		X: -math.Sin(a) * bl,
		Y: -math.Cos(a) * bl,
	})
}

// RightEnd returns the endpoint of the right child's trunk.
func (b Branch) RightEnd() Vec2 {
	a := b.BranchAngle/2 + b.Incline
	bl := b.TrunkLength * b.BranchRatio
	return b.TrunkEnd().Add(Vec2{
		X: math.Sin(a) * bl,
		Y: -math.Cos(a) * bl,
	})
}

// Left returns the left child branch: it starts exactly at the parent's
// trunk endpoint, shrunk by the ratio and inclined half the spread angle
// counter-clockwise.
func (b Branch) Left() Branch {
	return Branch{
		Origin:      b.TrunkEnd(),
		TrunkLength: b.TrunkLength * b.BranchRatio,
		BranchRatio: b.BranchRatio,
		BranchAngle: b.BranchAngle,
		Incline:     b.Incline - b.BranchAngle/2,
	}
}

// Right returns the right child branch, inclined half the spread angle
// clockwise.
func (b Branch) Right() Branch {
	return Branch{
		Origin:      b.TrunkEnd(),
		TrunkLength: b.TrunkLength * b.BranchRatio,
		BranchRatio: b.BranchRatio,
		BranchAngle: b.BranchAngle,
		Incline:     b.Incline + b.BranchAngle/2,
	}
}
