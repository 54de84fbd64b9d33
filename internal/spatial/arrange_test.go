package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zone-service/internal/model"
)

func unitSquareZone(name string) model.Zone {
	return model.Zone{
		Name: name,
		Polygon: model.Polygon{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
}

func TestArrangeDevicesInZoneSingleDevice(t *testing.T) {
	zone := unitSquareZone("Checkout")
	d := positionedDevice(0.9, 0.9)

	updates := ArrangeDevicesInZone([]model.Device{d}, zone, 0)
	require.Len(t, updates, 1)

	require.NotNil(t, updates[0].X)
	require.NotNil(t, updates[0].Y)
	assert.InDelta(t, 0.5, *updates[0].X, 0.01)
	assert.InDelta(t, 0.5, *updates[0].Y, 0.01)
	require.NotNil(t, updates[0].ZoneLabel)
	assert.Equal(t, "Checkout", *updates[0].ZoneLabel)
	assert.Equal(t, d.ID, updates[0].DeviceID)
}

func TestArrangeDevicesInZoneFourDeviceGrid(t *testing.T) {
	zone := unitSquareZone("Sales Floor")
	devices := []model.Device{
		positionedDevice(0, 0),
		positionedDevice(0, 0),
		positionedDevice(0, 0),
		positionedDevice(0, 0),
	}

	updates := ArrangeDevicesInZone(devices, zone, 0)
	require.Len(t, updates, 4)

	want := []model.Point{
		{X: 1.0 / 3, Y: 1.0 / 3},
		{X: 2.0 / 3, Y: 1.0 / 3},
		{X: 1.0 / 3, Y: 2.0 / 3},
		{X: 2.0 / 3, Y: 2.0 / 3},
	}
	for i, u := range updates {
		require.NotNil(t, u.X)
		require.NotNil(t, u.Y)
		assert.InDelta(t, want[i].X, *u.X, 0.01, "device %d x", i)
		assert.InDelta(t, want[i].Y, *u.Y, 0.01, "device %d y", i)
	}
}

func TestArrangeDevicesInZonePaddingShrinksPlacement(t *testing.T) {
	zone := unitSquareZone("Padded")
	d := positionedDevice(0, 0)

	updates := ArrangeDevicesInZone([]model.Device{d}, zone, DefaultArrangePadding)
	require.Len(t, updates, 1)

	// Placement stays inside the padded rectangle.
	assert.GreaterOrEqual(t, *updates[0].X, DefaultArrangePadding)
	assert.LessOrEqual(t, *updates[0].X, 1-DefaultArrangePadding)
	assert.GreaterOrEqual(t, *updates[0].Y, DefaultArrangePadding)
	assert.LessOrEqual(t, *updates[0].Y, 1-DefaultArrangePadding)
}

func TestArrangeDevicesInZoneDegenerateInputs(t *testing.T) {
	d := positionedDevice(0.5, 0.5)

	t.Run("empty polygon", func(t *testing.T) {
		zone := model.Zone{Name: "Empty"}
		assert.Empty(t, ArrangeDevicesInZone([]model.Device{d}, zone, 0))
	})

	t.Run("padding exceeds half width", func(t *testing.T) {
		zone := model.Zone{
			Name: "Sliver",
			Polygon: model.Polygon{
				{X: 0, Y: 0}, {X: 0.03, Y: 0}, {X: 0.03, Y: 1}, {X: 0, Y: 1},
			},
		}
		updates := ArrangeDevicesInZone([]model.Device{d}, zone, DefaultArrangePadding)
		assert.Empty(t, updates)
	})

	t.Run("no devices", func(t *testing.T) {
		assert.Empty(t, ArrangeDevicesInZone(nil, unitSquareZone("X"), 0))
	})
}

func TestAlignmentUpdatesMajorityWins(t *testing.T) {
	horizontal1 := positionedDevice(0.1, 0.1)
	horizontal1.Orientation = ptr(10)
	horizontal2 := positionedDevice(0.2, 0.1)
	horizontal2.Orientation = ptr(350) // wraps into the horizontal band
	vertical := positionedDevice(0.3, 0.1)
	vertical.Orientation = ptr(90)

	updates := AlignmentUpdates([]model.Device{horizontal1, horizontal2, vertical}, model.IsFixtureType)
	require.Len(t, updates, 3)
	for _, u := range updates {
		require.NotNil(t, u.Orientation)
		assert.Equal(t, 0.0, *u.Orientation)
	}
}

func TestAlignmentUpdatesTieResolvesVertical(t *testing.T) {
	horizontal := positionedDevice(0.1, 0.1)
	horizontal.Orientation = ptr(30)
	vertical := positionedDevice(0.2, 0.1)
	vertical.Orientation = ptr(120)
	sensor := positionedDevice(0.3, 0.1)
	sensor.Type = model.DeviceTypeSensor
	sensor.Orientation = ptr(0)

	updates := AlignmentUpdates([]model.Device{horizontal, vertical, sensor}, model.IsFixtureType)
	require.Len(t, updates, 2, "non-fixtures are excluded from the vote and the output")
	for _, u := range updates {
		require.NotNil(t, u.Orientation)
		assert.Equal(t, 90.0, *u.Orientation)
		assert.NotEqual(t, sensor.ID, u.DeviceID)
	}
}

func TestAlignmentUpdatesDefaultsAndNormalization(t *testing.T) {
	unset := positionedDevice(0.1, 0.1) // nil orientation counts as 0, horizontal
	negative := positionedDevice(0.2, 0.1)
	negative.Orientation = ptr(-45) // normalizes to 315, horizontal

	updates := AlignmentUpdates([]model.Device{unset, negative}, model.IsFixtureType)
	require.Len(t, updates, 2)
	for _, u := range updates {
		assert.Equal(t, 0.0, *u.Orientation)
	}
}

func TestAlignmentUpdatesNoFixtures(t *testing.T) {
	sensor := positionedDevice(0.1, 0.1)
	sensor.Type = model.DeviceTypeSensor
	assert.Empty(t, AlignmentUpdates([]model.Device{sensor}, model.IsFixtureType))
}
