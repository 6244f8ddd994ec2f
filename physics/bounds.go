package physics

// Rect is an axis-aligned rectangle given by its min/max corners.
type Rect struct {
	Min, Max Vec2
}

// NewRect builds a rectangle from explicit corner coordinates.
func NewRect(minX, minY, maxX, maxY float32) Rect {
	return Rect{Min: Vec2{minX, minY}, Max: Vec2{maxX, maxY}}
}

// CenteredRect returns a rectangle of the given size centered on the origin.
func CenteredRect(width, height float32) Rect {
	return NewRect(-width/2, -height/2, width/2, height/2)
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float32) Rect {
	return NewRect(r.Min.X+d, r.Min.Y+d, r.Max.X-d, r.Max.Y-d)
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside the rectangle, edges included.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Resolve clamps the body's position into r and reflects any velocity
// component that carried it out, scaled by restitution. Axes are handled
// independently, so a corner hit reflects both components in the same tick.
// A component that is already zero (or pointing back inside) at the edge is
// clamped without reflection; the body rests there until pushed again.
func Resolve(b *Body, r Rect, restitution float32) (hitX, hitY bool) {
	if b.Pos.X < r.Min.X {
		b.Pos.X = r.Min.X
		if b.Vel.X < 0 {
			b.Vel.X = -b.Vel.X * restitution
			hitX = true
		}
	} else if b.Pos.X > r.Max.X {
		b.Pos.X = r.Max.X
		if b.Vel.X > 0 {
			b.Vel.X = -b.Vel.X * restitution
			hitX = true
		}
	}

	if b.Pos.Y < r.Min.Y {
		b.Pos.Y = r.Min.Y
		if b.Vel.Y < 0 {
			b.Vel.Y = -b.Vel.Y * restitution
			hitY = true
		}
	} else if b.Pos.Y > r.Max.Y {
		b.Pos.Y = r.Max.Y
		if b.Vel.Y > 0 {
			b.Vel.Y = -b.Vel.Y * restitution
			hitY = true
		}
	}

	return hitX, hitY
}
