package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zone-service/internal/model"
)

func TestSyncZoneDevicesRecomputesMembership(t *testing.T) {
	left := model.Zone{
		ID:   newTestID(),
		Name: "left",
		Polygon: model.Polygon{
			{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 1}, {X: 0, Y: 1},
		},
	}
	right := model.Zone{
		ID:   newTestID(),
		Name: "right",
		Polygon: model.Polygon{
			{X: 0.5, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 1},
		},
	}

	inLeft := positionedDevice(0.25, 0.5)
	inRight := positionedDevice(0.75, 0.5)
	unpositioned := model.Device{ID: newTestID(), Type: model.DeviceTypeFixture}

	updates := SyncZoneDevices([]model.Device{inLeft, inRight, unpositioned}, []model.Zone{left, right})
	require.Len(t, updates, 2)

	assert.Equal(t, model.UUIDList{inLeft.ID}, updates[0].DeviceIDs)
	assert.True(t, updates[0].Changed)
	assert.Equal(t, model.UUIDList{inRight.ID}, updates[1].DeviceIDs)
	assert.True(t, updates[1].Changed)
}

func TestSyncZoneDevicesOverlapKeepsBoth(t *testing.T) {
	// Unlike first-match lookup, each zone is evaluated on its own: a
	// device under two overlapping polygons lands in both lists.
	outer := model.Zone{
		ID: newTestID(),
		Polygon: model.Polygon{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
	inner := model.Zone{
		ID: newTestID(),
		Polygon: model.Polygon{
			{X: 0.4, Y: 0.4}, {X: 0.6, Y: 0.4}, {X: 0.6, Y: 0.6}, {X: 0.4, Y: 0.6},
		},
	}
	d := positionedDevice(0.5, 0.5)

	updates := SyncZoneDevices([]model.Device{d}, []model.Zone{outer, inner})
	require.Len(t, updates, 2)
	assert.Equal(t, model.UUIDList{d.ID}, updates[0].DeviceIDs)
	assert.Equal(t, model.UUIDList{d.ID}, updates[1].DeviceIDs)
}

func TestSyncZoneDevicesIdempotent(t *testing.T) {
	zone := model.Zone{
		ID: newTestID(),
		Polygon: model.Polygon{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
	a := positionedDevice(0.2, 0.2)
	b := positionedDevice(0.8, 0.8)
	outside := positionedDevice(1.5, 1.5)
	devices := []model.Device{a, b, outside}

	first := SyncZoneDevices(devices, []model.Zone{zone})
	require.Len(t, first, 1)
	assert.True(t, first[0].Changed)
	assert.Equal(t, model.UUIDList{a.ID, b.ID}, first[0].DeviceIDs)

	// Apply and rerun with no movement: same list, nothing changed.
	zone.DeviceIDs = first[0].DeviceIDs
	second := SyncZoneDevices(devices, []model.Zone{zone})
	require.Len(t, second, 1)
	assert.Equal(t, first[0].DeviceIDs, second[0].DeviceIDs)
	assert.False(t, second[0].Changed)
}

func TestSyncZoneDevicesEmptyZoneUnchanged(t *testing.T) {
	// A zone whose cached list is already empty stays untouched when no
	// device falls inside it.
	zone := model.Zone{
		ID:        newTestID(),
		DeviceIDs: model.UUIDList{},
		Polygon: model.Polygon{
			{X: 0, Y: 0}, {X: 0.1, Y: 0}, {X: 0.1, Y: 0.1}, {X: 0, Y: 0.1},
		},
	}
	d := positionedDevice(0.9, 0.9)

	updates := SyncZoneDevices([]model.Device{d}, []model.Zone{zone})
	require.Len(t, updates, 1)
	assert.Empty(t, updates[0].DeviceIDs)
	assert.False(t, updates[0].Changed)
}
