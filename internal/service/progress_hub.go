package service

import (
	"sync"
	"time"

	"claims-analytics-backend/internal/database/models"
	"claims-analytics-backend/internal/logger"
	"claims-analytics-backend/internal/repository"

	"github.com/google/uuid"
)

// ProgressEvent is one progress update pushed over the stream
type ProgressEvent struct {
	FileID           uuid.UUID `json:"fileId"`
	Stage            string    `json:"stage"`
	Progress         int       `json:"progress"`
	Message          string    `json:"message,omitempty"`
	RecordsProcessed int       `json:"recordsProcessed"`
	TotalRecords     int       `json:"totalRecords"`
	Errors           int       `json:"errors"`
}

// StreamEvent is one message on a progress subscription: a per-session
// update, or a keepalive emitted once per poll cycle.
type StreamEvent struct {
	Heartbeat bool
	Update    *ProgressEvent
}

const subscriberBuffer = 16

// ProgressHub fans upload progress out to stream subscribers. One poller per
// user serves all of that user's connections; the poller starts with the
// first subscriber and stops when the last one unsubscribes.
type ProgressHub struct {
	sessionRepo    repository.UploadSessionRepositoryInterface
	pollInterval   time.Duration
	recentSessions int

	mu      sync.Mutex
	pollers map[uuid.UUID]*userPoller
}

type userPoller struct {
	subscribers map[chan StreamEvent]struct{}
	stop        chan struct{}
}

// NewProgressHub creates a new progress hub. recentSessions caps how many of
// the profile's latest sessions each poll cycle reports on.
func NewProgressHub(sessionRepo repository.UploadSessionRepositoryInterface, pollInterval time.Duration, recentSessions int) *ProgressHub {
	return &ProgressHub{
		sessionRepo:    sessionRepo,
		pollInterval:   pollInterval,
		recentSessions: recentSessions,
		pollers:        make(map[uuid.UUID]*userPoller),
	}
}

// Subscribe registers a stream for the profile's upload progress. The
// returned cancel function must be called when the connection closes; after
// cancel, the channel is closed and no more events arrive.
func (h *ProgressHub) Subscribe(profileID uuid.UUID) (<-chan StreamEvent, func()) {
	ch := make(chan StreamEvent, subscriberBuffer)

	h.mu.Lock()
	poller, ok := h.pollers[profileID]
	if !ok {
		poller = &userPoller{
			subscribers: make(map[chan StreamEvent]struct{}),
			stop:        make(chan struct{}),
		}
		h.pollers[profileID] = poller
		go h.poll(profileID, poller)
	}
	poller.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()

		if _, ok := poller.subscribers[ch]; !ok {
			return
		}
		delete(poller.subscribers, ch)
		close(ch)
		if len(poller.subscribers) == 0 {
			close(poller.stop)
			delete(h.pollers, profileID)
		}
	}

	return ch, cancel
}

// poll queries the profile's recent sessions on every tick and broadcasts
// one event per session, then a heartbeat closing the cycle. Slow subscribers
// drop events rather than stall the poller.
func (h *ProgressHub) poll(profileID uuid.UUID, poller *userPoller) {
	log := logger.New().WithField("profile", profileID)

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-poller.stop:
			return
		case <-ticker.C:
			sessions, err := h.sessionRepo.RecentForProfile(profileID, h.recentSessions)
			if err != nil {
				log.Errorf("progress poll failed: %v", err)
				continue
			}
			for i := range sessions {
				event := buildProgressEvent(&sessions[i])
				h.broadcast(poller, StreamEvent{Update: &event})
			}
			h.broadcast(poller, StreamEvent{Heartbeat: true})
		}
	}
}

func (h *ProgressHub) broadcast(poller *userPoller, event StreamEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range poller.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// buildProgressEvent maps a session row to its stream representation.
// Completed sessions report 100 regardless of counters; failed ones report 0
// with the stored error message.
func buildProgressEvent(session *models.UploadSession) ProgressEvent {
	event := ProgressEvent{
		FileID:           session.ID,
		Stage:            string(session.Status),
		RecordsProcessed: session.ProcessedRows,
		TotalRecords:     session.TotalRows,
		Errors:           session.FailedRows,
	}

	switch session.Status {
	case models.UploadStatusCompleted:
		event.Progress = 100
	case models.UploadStatusFailed:
		event.Progress = 0
		event.Message = session.ErrorMessage
		if event.Message == "" {
			event.Message = "Processing failed"
		}
	default:
		if session.TotalRows > 0 {
			event.Progress = session.ProcessedRows * 100 / session.TotalRows
		}
	}

	return event
}
