package service

import (
	"context"
	"sync"

	"github.com/shihan84/cg-overlay/internal/domain"
	"github.com/shihan84/cg-overlay/internal/hub"
	"github.com/shihan84/cg-overlay/internal/state"
	"github.com/shihan84/cg-overlay/pkg/log"
)

// syncService orchestrates the live overlay protocol over the state
// store and the hub. A per-overlay mutex spans each mutation and its
// broadcast, so every room member observes updates to one overlay in
// store-write order. Overlay ids are opaque: state is created lazily
// with defaults and never validated against the catalog.
type syncService struct {
	hub   *hub.Hub
	store *state.Store

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewSyncService(h *hub.Hub, store *state.Store) SyncService {
	return &syncService{
		hub:   h,
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// overlayLock returns the mutex serializing mutations for one overlay
// id. Locks are created lazily and kept for the process lifetime, like
// the state entries they guard.
func (s *syncService) overlayLock(overlayID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.locks[overlayID]
	if !ok {
		mu = &sync.Mutex{}
		s.locks[overlayID] = mu
	}
	return mu
}

// HandleJoinOverlay registers the client in the overlay room and
// replies to the joiner only with the current content and config, so a
// late joiner converges without waiting for the next mutation. A join
// is single-room-exclusive: joining a new overlay leaves the previous
// one first.
func (s *syncService) HandleJoinOverlay(ctx context.Context, c *hub.Client, overlayID string) error {
	if overlayID == "" {
		return c.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "overlayId is required"))
	}

	if prev := c.Session.CurrentOverlay(); prev != "" && prev != overlayID {
		s.hub.LeaveOverlay(c, prev)
	}

	mu := s.overlayLock(overlayID)
	mu.Lock()
	s.hub.JoinOverlay(c, overlayID)
	c.Session.JoinOverlay(overlayID)
	data := s.store.Content(overlayID)
	cfg := s.store.Config(overlayID)
	mu.Unlock()

	if err := c.SendMessage(domain.NewOverlayUpdateMessage(overlayID, data)); err != nil {
		return err
	}
	return c.SendMessage(domain.NewTemplateConfigMessage(overlayID, cfg))
}

// HandleUpdateOverlay replaces the stored content and broadcasts it to
// every current room member, including the sender. Replacement, not
// merge: controllers send full snapshots, or read-modify-write.
func (s *syncService) HandleUpdateOverlay(ctx context.Context, c *hub.Client, overlayID string, data domain.OverlayData) error {
	if overlayID == "" {
		return c.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "overlayId is required"))
	}

	mu := s.overlayLock(overlayID)
	mu.Lock()
	defer mu.Unlock()

	s.store.SetContent(overlayID, data)

	l := log.Ctx(ctx)
	l.Debug().Str(log.FieldOverlayID, overlayID).Str(log.FieldConnID, c.ID).Msg("overlay content updated")

	return s.hub.BroadcastToOverlay(overlayID, domain.NewOverlayUpdateMessage(overlayID, data))
}

// HandleToggleVisibility sets the visibility flag on the stored content
// and broadcasts the flag alone as a lighter-weight event, so renderers
// that only care about visibility skip parsing full content.
func (s *syncService) HandleToggleVisibility(ctx context.Context, c *hub.Client, overlayID string, visible bool) error {
	if overlayID == "" {
		return c.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "overlayId is required"))
	}

	mu := s.overlayLock(overlayID)
	mu.Lock()
	defer mu.Unlock()

	s.store.SetVisible(overlayID, visible)

	l := log.Ctx(ctx)
	l.Debug().Str(log.FieldOverlayID, overlayID).Bool("visible", visible).Msg("overlay visibility changed")

	return s.hub.BroadcastToOverlay(overlayID, domain.NewOverlayVisibilityMessage(overlayID, visible))
}

// HandleUpdateTemplateConfig replaces the stored config and broadcasts
// it to the room.
func (s *syncService) HandleUpdateTemplateConfig(ctx context.Context, c *hub.Client, overlayID string, cfg domain.TemplateConfig) error {
	if overlayID == "" {
		return c.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "overlayId is required"))
	}

	mu := s.overlayLock(overlayID)
	mu.Lock()
	defer mu.Unlock()

	s.store.SetConfig(overlayID, cfg)

	l := log.Ctx(ctx)
	l.Debug().Str(log.FieldOverlayID, overlayID).Msg("template config updated")

	return s.hub.BroadcastToOverlay(overlayID, domain.NewTemplateConfigMessage(overlayID, cfg))
}

// HandleGetOverlayData answers a point read to the requester only.
func (s *syncService) HandleGetOverlayData(ctx context.Context, c *hub.Client, overlayID string) error {
	if overlayID == "" {
		return c.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "overlayId is required"))
	}
	return c.SendMessage(domain.NewOverlayUpdateMessage(overlayID, s.store.Content(overlayID)))
}

// HandleGetTemplateConfig answers a point read to the requester only,
// returning the system default when nothing has been set.
func (s *syncService) HandleGetTemplateConfig(ctx context.Context, c *hub.Client, overlayID string) error {
	if overlayID == "" {
		return c.SendMessage(domain.NewErrorMessage(domain.ErrCodeBadRequest, "overlayId is required"))
	}
	return c.SendMessage(domain.NewTemplateConfigMessage(overlayID, s.store.Config(overlayID)))
}

// HandleDisconnect removes the client from whatever room it is in. No
// presence broadcast: other members are not notified.
func (s *syncService) HandleDisconnect(ctx context.Context, c *hub.Client) error {
	s.hub.Unregister(c)
	c.Session.LeaveOverlay()
	return nil
}
