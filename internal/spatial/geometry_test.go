package spatial

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zone-service/internal/model"
)

func ptr(v float64) *float64 {
	return &v
}

func newTestID() uuid.UUID {
	return uuid.New()
}

func positionedDevice(x, y float64) model.Device {
	return model.Device{
		ID:   newTestID(),
		Type: model.DeviceTypeFixture,
		X:    ptr(x),
		Y:    ptr(y),
	}
}

func TestPointInPolygon(t *testing.T) {
	unitSquare := model.Polygon{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	// L-shape covering the unit square minus its top-right quadrant.
	lShape := model.Polygon{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0.5},
		{X: 0.5, Y: 0.5}, {X: 0.5, Y: 1}, {X: 0, Y: 1},
	}

	tests := []struct {
		name    string
		point   model.Point
		polygon model.Polygon
		want    bool
	}{
		{"square center", model.Point{X: 0.5, Y: 0.5}, unitSquare, true},
		{"square near corner", model.Point{X: 0.01, Y: 0.01}, unitSquare, true},
		{"square outside right", model.Point{X: 1.5, Y: 0.5}, unitSquare, false},
		{"square outside above", model.Point{X: 0.5, Y: 1.5}, unitSquare, false},
		{"square outside negative", model.Point{X: -0.2, Y: 0.5}, unitSquare, false},
		{"l-shape bottom leg", model.Point{X: 0.75, Y: 0.25}, lShape, true},
		{"l-shape left leg", model.Point{X: 0.25, Y: 0.75}, lShape, true},
		{"l-shape empty corner", model.Point{X: 0.75, Y: 0.75}, lShape, false},
		{"degenerate two points", model.Point{X: 0.5, Y: 0.5}, model.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}, false},
		{"empty polygon", model.Point{X: 0.5, Y: 0.5}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PointInPolygon(tt.point, tt.polygon))
		})
	}
}

func TestPointInPolygonOpenAndClosedForms(t *testing.T) {
	open := model.Polygon{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	closed := append(append(model.Polygon{}, open...), model.Point{X: 0, Y: 0})

	for _, p := range []model.Point{
		{X: 0.5, Y: 0.5}, {X: 0.1, Y: 0.9}, {X: 1.2, Y: 0.5}, {X: 0.5, Y: -0.1},
	} {
		assert.Equal(t, PointInPolygon(p, open), PointInPolygon(p, closed),
			"open and closed vertex lists must agree for %+v", p)
	}
}

func TestFindZoneForDevice(t *testing.T) {
	zoneA := model.Zone{
		Name: "A",
		Polygon: model.Polygon{
			{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
		},
	}
	zoneB := model.Zone{
		Name: "B",
		Polygon: model.Polygon{
			{X: 20, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 10}, {X: 20, Y: 10},
		},
	}
	zones := []model.Zone{zoneA, zoneB}

	inA := positionedDevice(5, 5)
	inB := positionedDevice(25, 5)
	inNeither := positionedDevice(15, 5)

	got := FindZoneForDevice(&inA, zones)
	require.NotNil(t, got)
	assert.Equal(t, "A", got.Name)

	got = FindZoneForDevice(&inB, zones)
	require.NotNil(t, got)
	assert.Equal(t, "B", got.Name)

	assert.Nil(t, FindZoneForDevice(&inNeither, zones))

	unpositioned := model.Device{ID: newTestID(), Y: ptr(5)}
	assert.Nil(t, FindZoneForDevice(&unpositioned, zones))
}

func TestFindZoneForDeviceFirstMatchWins(t *testing.T) {
	big := model.Zone{
		Name: "big",
		Polygon: model.Polygon{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
	small := model.Zone{
		Name: "small",
		Polygon: model.Polygon{
			{X: 0.4, Y: 0.4}, {X: 0.6, Y: 0.4}, {X: 0.6, Y: 0.6}, {X: 0.4, Y: 0.6},
		},
	}
	d := positionedDevice(0.5, 0.5)

	// Not best/smallest match: whichever zone comes first in the slice wins.
	got := FindZoneForDevice(&d, []model.Zone{big, small})
	require.NotNil(t, got)
	assert.Equal(t, "big", got.Name)

	got = FindZoneForDevice(&d, []model.Zone{small, big})
	require.NotNil(t, got)
	assert.Equal(t, "small", got.Name)
}
