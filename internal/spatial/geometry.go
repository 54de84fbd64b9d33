// Package spatial implements the geometric engine behind the zone
// dashboard: point-in-polygon membership, proximity clustering of
// unassigned devices into zones, grid arrangement of devices inside a
// zone, orientation alignment voting, and zone membership
// resynchronization. Every function is pure: it reads the snapshots it
// is given and returns update records, leaving persistence to the
// service layer.
package spatial

import (
	"zone-service/internal/model"
)

// PointInPolygon reports whether p lies inside polygon using the
// ray-casting test: an edge is crossed when exactly one endpoint sits
// strictly above p's y, so a vertex exactly level with p never double
// counts. Polygons with fewer than 3 vertices always test false.
func PointInPolygon(p model.Point, polygon model.Polygon) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if (yi > p.Y) == (yj > p.Y) {
			continue
		}
		dy := yj - yi
		if dy == 0 {
			// Unreachable when the crossing test above holds; kept as an
			// explicit division guard.
			continue
		}
		intersect := (xj-xi)*(p.Y-yi)/dy + xi
		if p.X < intersect {
			inside = !inside
		}
	}
	return inside
}

// FindZoneForDevice returns the first zone, in the given order, whose
// polygon contains the device's position. Zone overlap is allowed at the
// data level, so for a device sitting in several polygons the input
// order decides: first match wins. Returns nil for unpositioned devices
// and when no zone matches.
func FindZoneForDevice(device *model.Device, zones []model.Zone) *model.Zone {
	if device == nil || !device.Positioned() {
		return nil
	}
	p := device.Position()
	for i := range zones {
		if PointInPolygon(p, zones[i].Polygon) {
			return &zones[i]
		}
	}
	return nil
}
