// Package hub tracks connected clients and their overlay room
// membership, and fans broadcasts out to room members. It is the only
// place that knows which connections observe which overlay.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/shihan84/cg-overlay/internal/config"
	"github.com/shihan84/cg-overlay/pkg/log"
)

// Hub maps client ids to connections and overlay ids to rooms. All maps
// are guarded by a single RWMutex; broadcast iterates a snapshot taken
// under the read lock, so membership changes during delivery never
// affect an in-flight fan-out.
type Hub struct {
	clients map[string]*Client            // clientID -> client
	rooms   map[string]map[string]*Client // overlayID -> clientID -> client
	mu      sync.RWMutex
	config  config.WebSocketConfig
}

func NewHub(cfg config.WebSocketConfig) *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]*Client),
		config:  cfg,
	}
}

// Register adds a client to the hub. The client is in no room until it
// joins an overlay.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client.ID] = client
	h.mu.Unlock()

	l := log.L()
	l.Debug().Str(log.FieldConnID, client.ID).Msg("client registered")
}

// Unregister removes a client from the hub and from every room it is
// in. The room scan is defensive: a client should be in at most one
// room, but the hub does not assume it. The send channel is closed
// under the lock, so it can never race an in-flight broadcast.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.ID]; ok {
		for overlayID, members := range h.rooms {
			delete(members, client.ID)
			if len(members) == 0 {
				delete(h.rooms, overlayID)
			}
		}
		delete(h.clients, client.ID)
		client.close()
	}
	h.mu.Unlock()

	l := log.L()
	l.Debug().Str(log.FieldConnID, client.ID).Msg("client unregistered")
}

// JoinOverlay adds a client to the room for overlayID, creating the
// room on first join. Idempotent.
func (h *Hub) JoinOverlay(client *Client, overlayID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[overlayID]; !ok {
		h.rooms[overlayID] = make(map[string]*Client)
	}
	h.rooms[overlayID][client.ID] = client

	l := log.L()
	l.Info().Str(log.FieldConnID, client.ID).Str(log.FieldOverlayID, overlayID).Msg("client joined overlay")
}

// LeaveOverlay removes a client from the room for overlayID. Removing a
// non-member is a no-op.
func (h *Hub) LeaveOverlay(client *Client, overlayID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members, ok := h.rooms[overlayID]; ok {
		delete(members, client.ID)
		if len(members) == 0 {
			delete(h.rooms, overlayID)
		}
	}

	l := log.L()
	l.Info().Str(log.FieldConnID, client.ID).Str(log.FieldOverlayID, overlayID).Msg("client left overlay")
}

// Members returns a snapshot of the current room membership for
// overlayID.
func (h *Hub) Members(overlayID string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := h.rooms[overlayID]
	out := make([]*Client, 0, len(members))
	for _, c := range members {
		out = append(out, c)
	}
	return out
}

// MemberCount returns the number of clients in the room for overlayID.
func (h *Hub) MemberCount(overlayID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[overlayID])
}

// BroadcastToOverlay marshals message once and delivers it to every
// current member of the room, including the sender if it is a member.
// Delivery is per-client and non-blocking: one slow or dead connection
// cannot stall the rest of the room, its failure is logged and
// isolated.
func (h *Hub) BroadcastToOverlay(overlayID string, message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.rooms[overlayID] {
		select {
		case client.Send <- data:
		default:
			l := log.L()
			l.Warn().
				Str(log.FieldConnID, client.ID).
				Str(log.FieldOverlayID, overlayID).
				Msg("send buffer full during broadcast, dropping message for client")
		}
	}
	return nil
}
