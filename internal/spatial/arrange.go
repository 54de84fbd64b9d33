package spatial

import (
	"math"

	"zone-service/internal/model"
)

// DefaultArrangePadding shrinks the zone's bounding box before devices
// are laid out, in normalized map units.
const DefaultArrangePadding = 0.02

// ArrangeDevicesInZone lays the given devices out on a grid inside the
// zone polygon's bounding box, shrunk by padding on every side. Returns
// one update per input device carrying the new position and the zone's
// display name for the legacy zone label field. An empty polygon, or a
// padding large enough to leave a non-positive placement extent, yields
// an empty result rather than an error: both are normal degenerate
// inputs in a drag-driven UI.
//
// The grid uses cols = ceil(sqrt(n)) and spacing of extent/(cols+1) per
// axis, so devices start one cell in from the edge and never land
// exactly on the placement boundary, even with zero padding.
func ArrangeDevicesInZone(devices []model.Device, zone model.Zone, padding float64) []model.DeviceUpdate {
	minX, minY, maxX, maxY, ok := zone.Polygon.Bounds()
	if !ok {
		return nil
	}

	pMinX := minX + padding
	pMaxX := maxX - padding
	pMinY := minY + padding
	pMaxY := maxY - padding

	width := pMaxX - pMinX
	height := pMaxY - pMinY
	if width <= 0 || height <= 0 {
		return nil
	}

	n := len(devices)
	if n == 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	rows := int(math.Ceil(float64(n) / float64(cols)))
	spacingX := width / float64(cols+1)
	spacingY := height / float64(rows+1)

	updates := make([]model.DeviceUpdate, 0, n)
	for idx, d := range devices {
		col := idx % cols
		row := idx / cols
		x := clampRange(pMinX+spacingX*float64(col+1), pMinX, pMaxX)
		y := clampRange(pMinY+spacingY*float64(row+1), pMinY, pMaxY)
		label := zone.Name
		updates = append(updates, model.DeviceUpdate{
			DeviceID:  d.ID,
			X:         &x,
			Y:         &y,
			ZoneLabel: &label,
		})
	}
	return updates
}

func clampRange(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// AlignmentUpdates votes on a common orientation for the fixtures in the
// given set. Each fixture's orientation (0 when unset) is normalized
// into [0,360) and bucketed as horizontal ([0,45] or [315,360)) or
// vertical; the minority is flipped to the majority, with ties going to
// vertical. Every fixture gets an update to the winning orientation,
// already-aligned ones included. Non-fixtures, per the injected
// predicate, are excluded entirely.
func AlignmentUpdates(devices []model.Device, isFixture func(model.DeviceType) bool) []model.DeviceUpdate {
	var fixtures []model.Device
	horizontal := 0
	vertical := 0
	for _, d := range devices {
		if !isFixture(d.Type) {
			continue
		}
		fixtures = append(fixtures, d)
		o := 0.0
		if d.Orientation != nil {
			o = *d.Orientation
		}
		if isHorizontal(normalizeDegrees(o)) {
			horizontal++
		} else {
			vertical++
		}
	}
	if len(fixtures) == 0 {
		return nil
	}

	target := 90.0
	if horizontal > vertical {
		target = 0.0
	}

	updates := make([]model.DeviceUpdate, 0, len(fixtures))
	for _, d := range fixtures {
		t := target
		updates = append(updates, model.DeviceUpdate{
			DeviceID:    d.ID,
			Orientation: &t,
		})
	}
	return updates
}

func normalizeDegrees(o float64) float64 {
	o = math.Mod(o, 360)
	if o < 0 {
		o += 360
	}
	return o
}

func isHorizontal(o float64) bool {
	return o <= 45 || o >= 315
}
