package spatial

import (
	"fmt"
	"math"
	"sort"

	"zone-service/internal/model"
	"zone-service/internal/utils"
)

const (
	// MaxZones caps auto detection. Clusters beyond the cap are not
	// dropped; their devices are redistributed round-robin into the kept
	// clusters. A hard business rule, not a performance bound.
	MaxZones = 12

	// ClusterRadius is the canonical proximity threshold, in normalized
	// map units, for grouping devices into one cluster.
	ClusterRadius = 0.4

	// zonePadding expands a cluster's bounding box when building the
	// zone polygon, clamped to the [0,1] map extent.
	zonePadding = 0.02
)

// zonePalette colors detected zones by index, cycling.
var zonePalette = []string{
	"#ef4444", "#f97316", "#eab308", "#84cc16", "#22c55e",
	"#14b8a6", "#3b82f6", "#8b5cf6", "#d946ef", "#64748b",
}

// deviceCluster is an ephemeral grouping used within one detection pass.
type deviceCluster struct {
	devices                []model.Device
	minX, maxX, minY, maxY float64
	centerX, centerY       float64
}

func (c *deviceCluster) recomputeBounds() {
	c.minX, c.minY = math.MaxFloat64, math.MaxFloat64
	c.maxX, c.maxY = -math.MaxFloat64, -math.MaxFloat64
	for i := range c.devices {
		p := c.devices[i].Position()
		c.minX = math.Min(c.minX, p.X)
		c.maxX = math.Max(c.maxX, p.X)
		c.minY = math.Min(c.minY, p.Y)
		c.maxY = math.Max(c.maxY, p.Y)
	}
	c.centerX = (c.minX + c.maxX) / 2
	c.centerY = (c.minY + c.maxY) / 2
}

// DetectZonesFromDevices groups positioned devices into at most MaxZones
// zone drafts by spatial proximity. Clustering is seed-based and scans
// devices in input order, so output is deterministic for a fixed input
// order: same devices in, same zones out. Unpositioned devices are
// ignored; with no positioned devices the result is empty.
func DetectZonesFromDevices(devices []model.Device) []model.ZoneDraft {
	var positioned []model.Device
	for _, d := range devices {
		if d.Positioned() {
			positioned = append(positioned, d)
		}
	}
	if len(positioned) == 0 {
		return nil
	}

	clusters := clusterByProximity(positioned, ClusterRadius)

	if len(clusters) > MaxZones {
		sort.SliceStable(clusters, func(i, j int) bool {
			return len(clusters[i].devices) > len(clusters[j].devices)
		})
		kept := clusters[:MaxZones]
		idx := 0
		for _, overflow := range clusters[MaxZones:] {
			for _, d := range overflow.devices {
				kept[idx%MaxZones].devices = append(kept[idx%MaxZones].devices, d)
				idx++
			}
		}
		for i := range kept {
			kept[i].recomputeBounds()
		}
		clusters = kept
	}

	drafts := make([]model.ZoneDraft, 0, len(clusters))
	for i, c := range clusters {
		label := mostCommonLocationLabel(c.devices)
		ids := make(model.UUIDList, 0, len(c.devices))
		for _, d := range c.devices {
			ids = append(ids, d.ID)
		}
		drafts = append(drafts, model.ZoneDraft{
			Name:        fmt.Sprintf("Zone %d - %s", i+1, label),
			Color:       zonePalette[i%len(zonePalette)],
			Description: fmt.Sprintf("%d devices in %s", len(c.devices), label),
			Polygon:     paddedRectangle(c.minX, c.minY, c.maxX, c.maxY),
			DeviceIDs:   ids,
		})
	}
	return drafts
}

// clusterByProximity performs single-link, seed-based clustering: each
// unprocessed device in input order seeds a cluster and pulls in every
// remaining device within radius of the seed. Membership depends on the
// input order, which callers must preserve for reproducible results.
func clusterByProximity(devices []model.Device, radius float64) []*deviceCluster {
	var clusters []*deviceCluster
	processed := make([]bool, len(devices))

	for i := range devices {
		if processed[i] {
			continue
		}
		processed[i] = true
		c := &deviceCluster{devices: []model.Device{devices[i]}}
		seed := devices[i].Position()

		for j := i + 1; j < len(devices); j++ {
			if processed[j] {
				continue
			}
			if distance(seed, devices[j].Position()) < radius {
				c.devices = append(c.devices, devices[j])
				processed[j] = true
			}
		}

		c.recomputeBounds()
		clusters = append(clusters, c)
	}
	return clusters
}

func distance(a, b model.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// paddedRectangle builds the zone polygon for a cluster: its bounding
// box grown by zonePadding, clamped to the unit square, closed by
// repeating the first corner.
func paddedRectangle(minX, minY, maxX, maxY float64) model.Polygon {
	x0 := clamp01(minX - zonePadding)
	y0 := clamp01(minY - zonePadding)
	x1 := clamp01(maxX + zonePadding)
	y1 := clamp01(maxY + zonePadding)
	return model.Polygon{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
		{X: x0, Y: y0},
	}
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// mostCommonLocationLabel picks the most frequent location label among
// cluster members, ties broken by first encounter so the result is
// stable for a fixed device order.
func mostCommonLocationLabel(devices []model.Device) string {
	counts := make(map[string]int)
	best := ""
	bestCount := 0
	for _, d := range devices {
		label := utils.LocationLabel(d.Location)
		counts[label]++
		if counts[label] > bestCount {
			best = label
			bestCount = counts[label]
		}
	}
	return best
}
