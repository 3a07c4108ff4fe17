// Package web pushes engine events to browsers over server-sent events,
// replacing polling-driven refresh.
package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/campustools/roomsense/internal/models"
	"github.com/r3labs/sse/v2"
)

// StreamName is the SSE stream clients subscribe to (?stream=rooms)
const StreamName = "rooms"

// availablePayload is the body of a room-available event
type availablePayload struct {
	RoomID  string `json:"room_id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Notifier publishes engine events to all connected SSE clients. It
// implements events.Sink.
type Notifier struct {
	server *sse.Server
}

// NewNotifier creates the SSE server and its stream
func NewNotifier() *Notifier {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(StreamName)

	return &Notifier{server: server}
}

// ServeHTTP hands the connection to the SSE server, which owns client
// lifecycle, heartbeats and disconnect cleanup.
func (n *Notifier) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.server.ServeHTTP(w, r)
}

// RoomBecameAvailable pushes a room-available event with the room payload
func (n *Notifier) RoomBecameAvailable(room *models.Room) {
	data, err := json.Marshal(availablePayload{
		RoomID:  room.ID,
		Name:    room.Name,
		Message: room.Name + " just became available.",
	})
	if err != nil {
		log.Printf("sse: failed to marshal room payload: %v", err)
		return
	}

	n.server.Publish(StreamName, &sse.Event{
		Event: []byte("room-available"),
		Data:  data,
	})
}

// TickCompleted pushes a tick event so live-mode views can refresh
func (n *Notifier) TickCompleted() {
	n.server.Publish(StreamName, &sse.Event{
		Event: []byte("tick"),
		Data:  []byte("{}"),
	})
}

// Shutdown closes the SSE server and disconnects all clients
func (n *Notifier) Shutdown() {
	n.server.Close()
}
