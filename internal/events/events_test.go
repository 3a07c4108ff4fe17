package events_test

import (
	"testing"

	"github.com/campustools/roomsense/internal/events"
	"github.com/campustools/roomsense/internal/models"
	"github.com/stretchr/testify/assert"
)

type countingSink struct {
	available []string
	ticks     int
}

func (c *countingSink) RoomBecameAvailable(room *models.Room) {
	c.available = append(c.available, room.ID)
}

func (c *countingSink) TickCompleted() {
	c.ticks++
}

func TestMultiFansOutToEverySink(t *testing.T) {
	a := &countingSink{}
	b := &countingSink{}
	sink := events.Multi{a, b, events.Discard{}}

	sink.RoomBecameAvailable(&models.Room{ID: "7"})
	sink.TickCompleted()
	sink.TickCompleted()

	assert.Equal(t, []string{"7"}, a.available)
	assert.Equal(t, []string{"7"}, b.available)
	assert.Equal(t, 2, a.ticks)
	assert.Equal(t, 2, b.ticks)
}

func TestEmptyMultiIsANoOp(t *testing.T) {
	var sink events.Multi
	assert.NotPanics(t, func() {
		sink.RoomBecameAvailable(&models.Room{ID: "1"})
		sink.TickCompleted()
	})
}
