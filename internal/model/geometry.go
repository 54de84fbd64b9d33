package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Point is a position in normalized map coordinates: each axis is a
// fraction of the site's floor-plan extent, so valid values sit in [0,1].
// Callers may pass temporarily out-of-range values mid-drag.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polygon is an ordered vertex list defining a closed region. The first
// point does not have to be repeated at the end; containment tests wrap
// the edge indices either way. Self-intersecting input is tolerated but
// containment results for it are undefined.
type Polygon []Point

// Polygon is persisted as a JSONB column.

func (p Polygon) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

func (p *Polygon) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported polygon column type")
	}
}

// Bounds returns the axis-aligned bounding box of the polygon. The second
// return value is false for an empty polygon.
func (p Polygon) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	if len(p) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, maxX = p[0].X, p[0].X
	minY, maxY = p[0].Y, p[0].Y
	for _, pt := range p[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return minX, minY, maxX, maxY, true
}
