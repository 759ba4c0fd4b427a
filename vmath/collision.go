package vmath

// Face identifies which side of a rectangle was struck
type Face uint8

const (
	FaceNone Face = iota
	FaceTop
	FaceBottom
	FaceLeft
	FaceRight
)

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "none"
	}
}

// Vertical reports whether the face is Top or Bottom
func (f Face) Vertical() bool {
	return f == FaceTop || f == FaceBottom
}

// AABB is an axis-aligned rectangle given by its corners
type AABB struct {
	Min, Max Vec2
}

// AABBFromCenter builds the rectangle of given size centered on center
func AABBFromCenter(center, size Vec2) AABB {
	half := V2Scale(size, 0.5)
	return AABB{
		Min: V2Sub(center, half),
		Max: V2Add(center, half),
	}
}

// Overlap returns the overlap length on each axis
// ok is false unless both lengths are strictly positive; touching edges do not overlap
func (a AABB) Overlap(b AABB) (x, y float64, ok bool) {
	x = min(a.Max.X, b.Max.X) - max(a.Min.X, b.Min.X)
	y = min(a.Max.Y, b.Max.Y) - max(a.Min.Y, b.Min.Y)
	return x, y, x > 0 && y > 0
}

// Collide tests rectangle a (center aPos, size aSize) against rectangle b and returns
// the face of a that b struck, or FaceNone without overlap.
// The axis with the smaller penetration is the struck one; equal penetration resolves
// to the vertical axis. The side is picked from the b center relative to the a center,
// with y growing upward.
func Collide(aPos, aSize, bPos, bSize Vec2) Face {
	ox, oy, ok := AABBFromCenter(aPos, aSize).Overlap(AABBFromCenter(bPos, bSize))
	if !ok {
		return FaceNone
	}

	if oy <= ox {
		if bPos.Y >= aPos.Y {
			return FaceTop
		}
		return FaceBottom
	}

	if bPos.X >= aPos.X {
		return FaceRight
	}
	return FaceLeft
}
