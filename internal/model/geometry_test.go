package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolygonBounds(t *testing.T) {
	p := Polygon{
		{X: 0.2, Y: 0.7}, {X: 0.9, Y: 0.1}, {X: 0.5, Y: 0.5},
	}
	minX, minY, maxX, maxY, ok := p.Bounds()
	require.True(t, ok)
	assert.Equal(t, 0.2, minX)
	assert.Equal(t, 0.1, minY)
	assert.Equal(t, 0.9, maxX)
	assert.Equal(t, 0.7, maxY)

	_, _, _, _, ok = Polygon{}.Bounds()
	assert.False(t, ok)
}

func TestIsFixtureType(t *testing.T) {
	assert.True(t, IsFixtureType(DeviceTypeFixture))
	assert.True(t, IsFixtureType(DeviceTypeFixtureLinear))
	assert.True(t, IsFixtureType(DeviceTypeFixtureTrack))
	assert.False(t, IsFixtureType(DeviceTypeSensor))
	assert.False(t, IsFixtureType(DeviceTypeController))
	assert.False(t, IsFixtureType(DeviceTypeGateway))
}

func TestDevicePositioned(t *testing.T) {
	x, y := 0.3, 0.4
	d := Device{X: &x, Y: &y}
	require.True(t, d.Positioned())
	assert.Equal(t, Point{X: 0.3, Y: 0.4}, d.Position())

	assert.False(t, Device{X: &x}.Positioned())
	assert.False(t, Device{}.Positioned())
}
