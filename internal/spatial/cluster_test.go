package spatial

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zone-service/internal/model"
)

func TestDetectZonesFromDevicesEmpty(t *testing.T) {
	assert.Empty(t, DetectZonesFromDevices(nil))

	unpositioned := []model.Device{
		{ID: newTestID(), Type: model.DeviceTypeFixture},
		{ID: newTestID(), Type: model.DeviceTypeFixture, X: ptr(0.5)},
	}
	assert.Empty(t, DetectZonesFromDevices(unpositioned))
}

func TestDetectZonesFromDevicesSingleDevice(t *testing.T) {
	d := positionedDevice(0.5, 0.5)
	d.Location = "Sales Floor - Aisle 3"

	drafts := DetectZonesFromDevices([]model.Device{d})
	require.Len(t, drafts, 1)

	draft := drafts[0]
	assert.Equal(t, "Zone 1 - Sales Floor", draft.Name)
	assert.Equal(t, zonePalette[0], draft.Color)
	assert.Equal(t, "1 devices in Sales Floor", draft.Description)
	assert.Equal(t, model.UUIDList{d.ID}, draft.DeviceIDs)

	// Degenerate bounding box expanded by padding: a 0.04-wide square
	// centered on the device, closed by repeating the first corner.
	require.Len(t, draft.Polygon, 5)
	assert.Equal(t, draft.Polygon[0], draft.Polygon[4])
	assert.InDelta(t, 0.48, draft.Polygon[0].X, 1e-9)
	assert.InDelta(t, 0.48, draft.Polygon[0].Y, 1e-9)
	assert.InDelta(t, 0.52, draft.Polygon[2].X, 1e-9)
	assert.InDelta(t, 0.52, draft.Polygon[2].Y, 1e-9)
}

func TestDetectZonesFromDevicesPolygonClamped(t *testing.T) {
	d := positionedDevice(0, 1)
	drafts := DetectZonesFromDevices([]model.Device{d})
	require.Len(t, drafts, 1)
	for _, p := range drafts[0].Polygon {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.LessOrEqual(t, p.Y, 1.0)
	}
}

func TestDetectZonesFromDevicesGroupsByProximity(t *testing.T) {
	// Two well-separated groups, each tighter than the cluster radius.
	var devices []model.Device
	for i := 0; i < 3; i++ {
		d := positionedDevice(0.1+0.02*float64(i), 0.1)
		d.Location = "Stock Room - Bay " + fmt.Sprint(i)
		devices = append(devices, d)
	}
	far := positionedDevice(0.9, 0.9)
	far.Location = "Entrance"
	devices = append(devices, far)

	drafts := DetectZonesFromDevices(devices)
	require.Len(t, drafts, 2)
	assert.Equal(t, "Zone 1 - Stock Room", drafts[0].Name)
	assert.Equal(t, "3 devices in Stock Room", drafts[0].Description)
	assert.Equal(t, "Zone 2 - Entrance", drafts[1].Name)
	assert.Len(t, drafts[1].DeviceIDs, 1)
}

func TestDetectZonesFromDevicesCapAndRedistribution(t *testing.T) {
	// A 4x4 grid spaced wider than the cluster radius: 16 natural
	// clusters of one device each, 4 over the cap.
	var devices []model.Device
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			devices = append(devices, positionedDevice(0.41*float64(col), 0.41*float64(row)))
		}
	}

	drafts := DetectZonesFromDevices(devices)
	require.Len(t, drafts, MaxZones)

	seen := make(map[uuid.UUID]int)
	for _, draft := range drafts {
		for _, id := range draft.DeviceIDs {
			seen[id]++
		}
	}
	require.Len(t, seen, len(devices))
	for _, d := range devices {
		assert.Equal(t, 1, seen[d.ID], "device must land in exactly one zone")
	}

	// Overflow devices go round-robin into the first kept clusters.
	for i := 0; i < 4; i++ {
		assert.Len(t, drafts[i].DeviceIDs, 2)
	}
	for i := 4; i < MaxZones; i++ {
		assert.Len(t, drafts[i].DeviceIDs, 1)
	}
}

func TestDetectZonesFromDevicesDeterministic(t *testing.T) {
	var devices []model.Device
	for i := 0; i < 30; i++ {
		d := positionedDevice(float64(i%6)*0.17, float64(i/6)*0.23)
		d.Location = fmt.Sprintf("Area %d - Spot %d", i%3, i)
		devices = append(devices, d)
	}

	first := DetectZonesFromDevices(devices)
	second := DetectZonesFromDevices(devices)
	assert.Equal(t, first, second)
}

func TestDetectZonesFromDevicesPaletteCycles(t *testing.T) {
	// 13 well-separated single-device clusters exceed the palette length,
	// so the 11th zone reuses the first color.
	var devices []model.Device
	for i := 0; i < 13; i++ {
		devices = append(devices, positionedDevice(float64(i)*0.5, float64(i)*0.5))
	}

	drafts := DetectZonesFromDevices(devices)
	require.Len(t, drafts, MaxZones)
	for i, draft := range drafts {
		assert.Equal(t, zonePalette[i%len(zonePalette)], draft.Color)
	}
}

func TestMostCommonLocationLabelTieBreak(t *testing.T) {
	a := positionedDevice(0.1, 0.1)
	a.Location = "East Wing - 1"
	b := positionedDevice(0.1, 0.1)
	b.Location = "West Wing - 1"
	c := positionedDevice(0.1, 0.1)
	c.Location = "West Wing - 2"
	d := positionedDevice(0.1, 0.1)
	d.Location = "East Wing - 2"

	// Equal counts: the first label to reach the winning count stays.
	assert.Equal(t, "West Wing", mostCommonLocationLabel([]model.Device{a, b, c, d}))
	assert.Equal(t, "East Wing", mostCommonLocationLabel([]model.Device{b, a, d, c}))
}
