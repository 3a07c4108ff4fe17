package cmd

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campustools/roomsense/internal/api"
	"github.com/campustools/roomsense/internal/availability"
	"github.com/campustools/roomsense/internal/booking"
	"github.com/campustools/roomsense/internal/catalog"
	"github.com/campustools/roomsense/internal/config"
	"github.com/campustools/roomsense/internal/events"
	"github.com/campustools/roomsense/internal/identity"
	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/repository"
	"github.com/campustools/roomsense/internal/repository/memory"
	"github.com/campustools/roomsense/internal/repository/postgres"
	"github.com/campustools/roomsense/internal/repository/redis"
	"github.com/campustools/roomsense/internal/simulator"
	"github.com/campustools/roomsense/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the roomsense server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

// buildStore selects the reservation store backend from configuration
func buildStore(cfg *config.Config) (repository.Store, error) {
	switch cfg.Store.Backend {
	case "memory":
		return memory.NewStore(), nil
	case "redis":
		return redis.NewStore(cfg.Redis)
	case "postgres":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return postgres.NewStore(ctx, cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// eventLogger mirrors engine events into the server log
type eventLogger struct{}

func (eventLogger) RoomBecameAvailable(room *models.Room) {
	log.Printf("Room %s just became available", room.Name)
}

func (eventLogger) TickCompleted() {}

func runServe() error {
	cfg := config.Load()

	store, err := buildStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize reservation store: %w", err)
	}
	if closer, ok := store.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("Error closing store: %v", err)
			}
		}()
	}

	// Seed the demo catalog; a fixed seed makes the starting signals
	// reproducible across restarts
	seed := cfg.Simulator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cat := catalog.Seed(time.Now(), rand.New(rand.NewSource(seed)))
	log.Printf("Seeded catalog with %d rooms", cat.Len())

	resolver := availability.NewResolver(store, cat)
	bookings := booking.NewService(store)
	idm := identity.NewManager(cfg.Auth)

	// SSE notifier receives the engine's events
	notifier := web.NewNotifier()

	mux := api.SetupRoutes(cat, resolver, store, bookings, idm)
	mux.Handle("/events", notifier)

	// Start the drift simulator unless disabled
	simCtx, stopSim := context.WithCancel(context.Background())
	defer stopSim()
	if cfg.Simulator.Enabled {
		sink := events.Multi{notifier, eventLogger{}}
		sim := simulator.New(cat, resolver, sink, cfg.Simulator, nil)
		go func() {
			if err := sim.Run(simCtx); err != nil && err != context.Canceled {
				log.Printf("Simulator stopped: %v", err)
			}
		}()
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting roomsense server on port %s", cfg.Server.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("error starting server: %w", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// Stop future simulator ticks, then close SSE connections
		stopSim()
		notifier.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("error shutting down server: %w", err)
		}

		log.Println("Server gracefully stopped")
	}

	return nil
}
