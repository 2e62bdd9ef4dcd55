package model

// BoundingBox spans all live cells, corners inclusive
type BoundingBox struct {
	Min, Max Coord
}

// emptyBox is reported for an empty live set so renderers always get a drawable area
var emptyBox = BoundingBox{Min: Coord{0, 0}, Max: Coord{1, 1}}

// BBox returns the bounding box of the live set, or ((0,0),(1,1)) when it is empty
func BBox(live LiveSet) BoundingBox {
	if live.Len() == 0 {
		return emptyBox
	}

	var (
		box   BoundingBox
		first = true
	)
	for c := range live {
		if first {
			box = BoundingBox{Min: c, Max: c}
			first = false
			continue
		}
		box.Min.X = min(box.Min.X, c.X)
		box.Min.Y = min(box.Min.Y, c.Y)
		box.Max.X = max(box.Max.X, c.X)
		box.Max.Y = max(box.Max.Y, c.Y)
	}
	return box
}

// Width returns the number of columns spanned
func (b BoundingBox) Width() int {
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows spanned
func (b BoundingBox) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

// Center returns the middle cell, rounding toward Min
func (b BoundingBox) Center() Coord {
	return Coord{
		X: b.Min.X + (b.Max.X-b.Min.X)/2,
		Y: b.Min.Y + (b.Max.Y-b.Min.Y)/2,
	}
}
