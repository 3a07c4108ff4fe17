package simulator_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/campustools/roomsense/internal/availability"
	"github.com/campustools/roomsense/internal/catalog"
	"github.com/campustools/roomsense/internal/config"
	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/repository/memory"
	"github.com/campustools/roomsense/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures emitted events
type recordingSink struct {
	mu        sync.Mutex
	available []string
	ticks     int
}

func (r *recordingSink) RoomBecameAvailable(room *models.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.available = append(r.available, room.ID)
}

func (r *recordingSink) TickCompleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
}

func makeRooms(n int) []*models.Room {
	rooms := make([]*models.Room, 0, n)
	for i := 0; i < n; i++ {
		rooms = append(rooms, &models.Room{ID: string(rune('a' + i)), Name: "Room"})
	}
	return rooms
}

func newSimulator(cat *catalog.Catalog, sink *recordingSink, cfg config.SimulatorConfig) *simulator.Simulator {
	resolver := availability.NewResolver(memory.NewStore(), cat)
	sim := simulator.New(cat, resolver, sink, cfg, rand.New(rand.NewSource(1)))
	sim.Now = func() time.Time { return time.Date(2025, 9, 1, 13, 0, 0, 0, time.UTC) }
	return sim
}

func TestTickNeverFlipsMoreThanSampleSize(t *testing.T) {
	rooms := makeRooms(10)
	cat := catalog.New(rooms, nil)
	sink := &recordingSink{}
	sim := newSimulator(cat, sink, config.SimulatorConfig{
		SampleSize:      3,
		FlipProbability: 1.0,
	})

	sim.Tick(context.Background())

	flipped := 0
	for _, room := range rooms {
		if cat.LiveSignal(room.ID) == models.SignalOccupied {
			flipped++
		}
	}
	assert.Equal(t, 3, flipped, "flip probability 1 flips exactly the sampled rooms")
}

func TestEventOnlyOnOccupiedToEmptyEdge(t *testing.T) {
	rooms := makeRooms(6)
	signals := make(map[string]models.LiveSignal)
	for _, room := range rooms {
		signals[room.ID] = models.SignalOccupied
	}
	cat := catalog.New(rooms, signals)
	sink := &recordingSink{}
	sim := newSimulator(cat, sink, config.SimulatorConfig{
		SampleSize:      len(rooms),
		FlipProbability: 1.0,
	})

	sim.Tick(context.Background())

	// Every room flipped occupied -> empty with nothing else busy, so
	// every flip raises an event
	assert.Len(t, sink.available, len(rooms))
	assert.Equal(t, 1, sink.ticks)

	// Flipping back (empty -> occupied) raises nothing
	sink.available = nil
	sim.Tick(context.Background())
	assert.Empty(t, sink.available)
	assert.Equal(t, 2, sink.ticks)
}

func TestNoFlipNoEvent(t *testing.T) {
	rooms := makeRooms(5)
	cat := catalog.New(rooms, map[string]models.LiveSignal{"a": models.SignalOccupied})
	sink := &recordingSink{}
	sim := newSimulator(cat, sink, config.SimulatorConfig{
		SampleSize:      5,
		FlipProbability: 0, // signals stay as they are
	})

	sim.Tick(context.Background())

	assert.Empty(t, sink.available)
	assert.Equal(t, 1, sink.ticks, "TickCompleted fires even when nothing flips")
	assert.Equal(t, models.SignalOccupied, cat.LiveSignal("a"))
}

func TestEventSuppressedWhenRoomStillBusy(t *testing.T) {
	// The room's timetable keeps it busy at the resolve instant, so the
	// occupied -> empty edge must not raise an event
	now := time.Date(2025, 9, 1, 11, 0, 0, 0, time.UTC)
	room := &models.Room{
		ID: "x",
		Timetable: models.Timetable{
			{Start: now.Add(-time.Hour), End: now.Add(time.Hour), Label: "CSE101"},
		},
	}
	cat := catalog.New([]*models.Room{room}, map[string]models.LiveSignal{"x": models.SignalOccupied})
	sink := &recordingSink{}
	sim := newSimulator(cat, sink, config.SimulatorConfig{
		SampleSize:      1,
		FlipProbability: 1.0,
	})
	sim.Now = func() time.Time { return now }

	sim.Tick(context.Background())

	assert.Equal(t, models.SignalEmpty, cat.LiveSignal("x"), "signal still flips")
	assert.Empty(t, sink.available, "no event while the schedule keeps the room busy")
	assert.Equal(t, 1, sink.ticks)
}

func TestSampleIsWithoutReplacement(t *testing.T) {
	// Sampling every room with certain flips must toggle each room
	// exactly once: all start empty, all must end occupied
	rooms := makeRooms(8)
	cat := catalog.New(rooms, nil)
	sink := &recordingSink{}
	sim := newSimulator(cat, sink, config.SimulatorConfig{
		SampleSize:      8,
		FlipProbability: 1.0,
	})

	sim.Tick(context.Background())

	for _, room := range rooms {
		assert.Equal(t, models.SignalOccupied, cat.LiveSignal(room.ID))
	}
}

func TestSampleSizeLargerThanCatalogIsClamped(t *testing.T) {
	rooms := makeRooms(2)
	cat := catalog.New(rooms, nil)
	sink := &recordingSink{}
	sim := newSimulator(cat, sink, config.SimulatorConfig{
		SampleSize:      50,
		FlipProbability: 1.0,
	})

	sim.Tick(context.Background())
	assert.Equal(t, 1, sink.ticks)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	rooms := makeRooms(3)
	cat := catalog.New(rooms, nil)
	sink := &recordingSink{}
	sim := newSimulator(cat, sink, config.SimulatorConfig{
		Interval:        time.Hour, // never fires during the test
		SampleSize:      1,
		FlipProbability: 1.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sim.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after context cancellation")
	}
}
