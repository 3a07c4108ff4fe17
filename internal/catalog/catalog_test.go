package catalog_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/campustools/roomsense/internal/catalog"
	"github.com/campustools/roomsense/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookup(t *testing.T) {
	rooms := []*models.Room{
		{ID: "1", Name: "First"},
		{ID: "2", Name: "Second"},
	}
	c := catalog.New(rooms, nil)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "First", c.Get("1").Name)
	assert.Nil(t, c.Get("missing"))

	// Rooms keeps insertion order
	listed := c.Rooms()
	require.Len(t, listed, 2)
	assert.Equal(t, "1", listed[0].ID)
	assert.Equal(t, "2", listed[1].ID)
}

func TestLiveSignalDefaultsToEmpty(t *testing.T) {
	c := catalog.New([]*models.Room{{ID: "1"}}, nil)

	assert.Equal(t, models.SignalEmpty, c.LiveSignal("1"))
	assert.Equal(t, models.SignalEmpty, c.LiveSignal("unknown"))
}

func TestSetLiveSignalReturnsPrevious(t *testing.T) {
	c := catalog.New([]*models.Room{{ID: "1"}}, map[string]models.LiveSignal{
		"1": models.SignalOccupied,
	})

	prev := c.SetLiveSignal("1", models.SignalEmpty)
	assert.Equal(t, models.SignalOccupied, prev)
	assert.Equal(t, models.SignalEmpty, c.LiveSignal("1"))
}

func TestSeed(t *testing.T) {
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	c := catalog.Seed(day, rand.New(rand.NewSource(1)))

	// 3 buildings x 3 floors x 6 rooms
	require.Equal(t, 54, c.Len())

	first := c.Rooms()[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "Building A", first.Building)
	assert.NotEmpty(t, first.Department)
	assert.GreaterOrEqual(t, first.Capacity, 20)
	assert.Len(t, first.Equipment, 2)

	t.Run("TimetableSlotsOnSeedDay", func(t *testing.T) {
		require.Len(t, first.Timetable, 2)
		assert.True(t, first.Timetable.BusyAt(day.Add(11*time.Hour)))
		assert.True(t, first.Timetable.BusyAt(day.Add(15*time.Hour)))
		assert.False(t, first.Timetable.BusyAt(day.Add(13*time.Hour)))
	})

	t.Run("DeterministicUnderFixedSeed", func(t *testing.T) {
		other := catalog.Seed(day, rand.New(rand.NewSource(1)))
		for _, room := range c.Rooms() {
			assert.Equal(t, c.LiveSignal(room.ID), other.LiveSignal(room.ID))
		}
	})

	t.Run("SomeRoomsStartOccupied", func(t *testing.T) {
		occupied := 0
		for _, room := range c.Rooms() {
			if c.LiveSignal(room.ID) == models.SignalOccupied {
				occupied++
			}
		}
		assert.Greater(t, occupied, 0)
		assert.Less(t, occupied, c.Len())
	})
}
