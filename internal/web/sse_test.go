package web_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campustools/roomsense/internal/events"
	"github.com/campustools/roomsense/internal/models"
	"github.com/campustools/roomsense/internal/web"
	"github.com/stretchr/testify/assert"
)

// The notifier must satisfy the engine's event sink contract
var _ events.Sink = (*web.Notifier)(nil)

func TestPublishWithoutSubscribersDoesNotPanic(t *testing.T) {
	n := web.NewNotifier()
	defer n.Shutdown()

	n.RoomBecameAvailable(&models.Room{ID: "1", Name: "Bldg A • 101"})
	n.TickCompleted()
}

func TestSubscriberReceivesEvents(t *testing.T) {
	n := web.NewNotifier()
	defer n.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events?stream="+web.StreamName, nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		n.ServeHTTP(rec, req)
		close(done)
	}()

	// Give the subscription time to register before publishing
	time.Sleep(200 * time.Millisecond)

	n.RoomBecameAvailable(&models.Room{ID: "7", Name: "Bldg B • 202"})
	n.TickCompleted()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("SSE handler did not return after context cancellation")
	}

	body := rec.Body.String()
	assert.Contains(t, body, "room-available")
	assert.Contains(t, body, "Bldg B • 202")
	assert.Contains(t, body, "tick")
}
