// Package simulator perturbs live occupancy signals on a timer, standing
// in for real sensor hardware. A production ingestion feed would replace
// the random sampling but must keep the event contract: detect the
// occupied-to-empty transition and emit RoomBecameAvailable only when the
// room also resolves as free.
package simulator

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/campustools/roomsense/internal/availability"
	"github.com/campustools/roomsense/internal/catalog"
	"github.com/campustools/roomsense/internal/config"
	"github.com/campustools/roomsense/internal/events"
	"github.com/campustools/roomsense/internal/models"
)

// Simulator is the only writer of live signals. Ticks run inline in the
// Run loop, so a tick never starts before the previous one finished.
type Simulator struct {
	// Now is the clock used when re-resolving availability after a flip;
	// injectable for tests
	Now func() time.Time

	catalog         *catalog.Catalog
	resolver        *availability.Resolver
	sink            events.Sink
	interval        time.Duration
	sampleSize      int
	flipProbability float64
	rng             *rand.Rand
}

// New creates a simulator. A nil rng is seeded from cfg.Seed, or from the
// clock when cfg.Seed is zero.
func New(cat *catalog.Catalog, resolver *availability.Resolver, sink events.Sink, cfg config.SimulatorConfig, rng *rand.Rand) *Simulator {
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	return &Simulator{
		Now:             time.Now,
		catalog:         cat,
		resolver:        resolver,
		sink:            sink,
		interval:        cfg.Interval,
		sampleSize:      cfg.SampleSize,
		flipProbability: cfg.FlipProbability,
		rng:             rng,
	}
}

// Run ticks until the context is cancelled. Cancellation stops future
// ticks; an in-flight tick always runs to completion.
func (s *Simulator) Run(ctx context.Context) error {
	t := time.NewTicker(s.interval)
	defer t.Stop()

	log.Printf("simulator: running every %s (sample %d, flip probability %.2f)", s.interval, s.sampleSize, s.flipProbability)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Tick(ctx)
		}
	}
}

// Tick samples rooms without replacement and flips each sampled room's
// signal with the configured probability. An occupied-to-empty edge that
// leaves the room free raises RoomBecameAvailable; every tick ends with
// TickCompleted.
func (s *Simulator) Tick(ctx context.Context) {
	rooms := s.catalog.Rooms()

	sample := s.sampleSize
	if sample > len(rooms) {
		sample = len(rooms)
	}

	for _, idx := range s.rng.Perm(len(rooms))[:sample] {
		room := rooms[idx]

		if s.rng.Float64() >= s.flipProbability {
			continue
		}

		prev := s.catalog.LiveSignal(room.ID)
		next := models.SignalOccupied
		if prev == models.SignalOccupied {
			next = models.SignalEmpty
		}
		s.catalog.SetLiveSignal(room.ID, next)

		if prev == models.SignalOccupied && next == models.SignalEmpty {
			if s.resolver.Resolve(ctx, room, s.Now(), true).IsFree {
				s.sink.RoomBecameAvailable(room)
			}
		}
	}

	s.sink.TickCompleted()
}
