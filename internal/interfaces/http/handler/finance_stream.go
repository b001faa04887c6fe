package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domreport "github.com/studiosnap/backend/internal/domain/report"
	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/interfaces/http/middleware"
)

// SSEClient represents a connected SSE client
type SSEClient struct {
	ID       string
	UserID   string
	TenantID string
	Chan     chan SSEMessage
	Done     chan struct{}
}

// SSEMessage represents a message to be sent to SSE clients
type SSEMessage struct {
	Event string `json:"event"`
	Data  string `json:"data"`
	ID    string `json:"id,omitempty"`
}

// FinanceStreamHandler pushes recomputed finance stats to connected
// dashboards over Server-Sent Events. It subscribes to the domain event
// bus and fans events out to the clients of the matching tenant.
type FinanceStreamHandler struct {
	BaseHandler
	logger     *zap.Logger
	clients    sync.Map // map[string]*SSEClient
	ctx        context.Context
	cancel     context.CancelFunc
	heartbeat  time.Duration
	started    bool
	startMu    sync.Mutex
	maxClients int
}

// FinanceStreamOption is a functional option for configuring the handler
type FinanceStreamOption func(*FinanceStreamHandler)

// WithStreamLogger sets the logger for the handler
func WithStreamLogger(logger *zap.Logger) FinanceStreamOption {
	return func(h *FinanceStreamHandler) {
		h.logger = logger
	}
}

// WithStreamHeartbeat sets the heartbeat interval
func WithStreamHeartbeat(interval time.Duration) FinanceStreamOption {
	return func(h *FinanceStreamHandler) {
		h.heartbeat = interval
	}
}

// WithStreamMaxClients sets the maximum number of concurrent SSE clients
func WithStreamMaxClients(max int) FinanceStreamOption {
	return func(h *FinanceStreamHandler) {
		h.maxClients = max
	}
}

// NewFinanceStreamHandler creates a new SSE handler for finance stats updates
func NewFinanceStreamHandler(opts ...FinanceStreamOption) *FinanceStreamHandler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &FinanceStreamHandler{
		logger:     zap.NewNop(),
		ctx:        ctx,
		cancel:     cancel,
		heartbeat:  30 * time.Second,
		maxClients: 10000,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// EventTypes implements shared.EventHandler
func (h *FinanceStreamHandler) EventTypes() []string {
	return []string{domreport.StatsRecomputedEventType}
}

// Handle implements shared.EventHandler. Recomputed stats are serialized
// once and pushed to every client of the event's tenant.
func (h *FinanceStreamHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	recomputed, ok := event.(*domreport.StatsRecomputedEvent)
	if !ok || recomputed.Stats == nil {
		return nil
	}

	data, err := json.Marshal(recomputed.Stats)
	if err != nil {
		h.logger.Error("Failed to marshal stats for SSE", zap.Error(err))
		return err
	}

	h.broadcast(recomputed.Stats.TenantID.String(), SSEMessage{
		Event: "stats_recomputed",
		Data:  string(data),
		ID:    fmt.Sprintf("%d", time.Now().UnixNano()),
	})
	return nil
}

// Start begins the heartbeat loop
func (h *FinanceStreamHandler) Start() error {
	h.startMu.Lock()
	defer h.startMu.Unlock()

	if h.started {
		return fmt.Errorf("SSE handler already started")
	}

	go h.sendHeartbeats()

	h.started = true
	h.logger.Info("Finance stats SSE handler started")
	return nil
}

// Stop stops the SSE handler and disconnects all clients
func (h *FinanceStreamHandler) Stop() {
	h.cancel()

	h.clients.Range(func(key, value any) bool {
		if client, ok := value.(*SSEClient); ok {
			close(client.Done)
		}
		return true
	})

	h.logger.Info("Finance stats SSE handler stopped")
}

// broadcast sends a message to the connected clients of one tenant.
// An empty tenantID sends to everyone.
func (h *FinanceStreamHandler) broadcast(tenantID string, msg SSEMessage) {
	h.clients.Range(func(key, value any) bool {
		client, ok := value.(*SSEClient)
		if !ok {
			return true
		}
		if tenantID != "" && client.TenantID != tenantID {
			return true
		}

		select {
		case client.Chan <- msg:
			h.logger.Debug("Sent SSE message to client",
				zap.String("client_id", client.ID),
				zap.String("event", msg.Event))
		default:
			// Channel full, client might be slow
			h.logger.Warn("Client channel full, dropping message",
				zap.String("client_id", client.ID))
		}
		return true
	})
}

// sendHeartbeats periodically sends heartbeat messages to keep connections alive
func (h *FinanceStreamHandler) sendHeartbeats() {
	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-h.ctx.Done():
			return
		case <-ticker.C:
			h.broadcast("", SSEMessage{
				Event: "heartbeat",
				Data:  fmt.Sprintf(`{"timestamp":%d}`, time.Now().Unix()),
			})
		}
	}
}

// Stream establishes the SSE connection for the calling dashboard
func (h *FinanceStreamHandler) Stream(c *gin.Context) {
	if h.maxClients > 0 && h.GetClientCount() >= h.maxClients {
		c.JSON(503, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MAX_CONNECTIONS_REACHED",
				"message": "Maximum number of SSE connections reached",
			},
		})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	userID := middleware.GetJWTUserID(c)
	tenantID := middleware.GetJWTTenantID(c)
	if tenantID == "" {
		if resolved, err := getTenantID(c); err == nil {
			tenantID = resolved.String()
		}
	}

	// Buffer size allows messages to queue without blocking broadcast
	const sseMessageBufferSize = 100
	client := &SSEClient{
		ID:       uuid.New().String(),
		UserID:   userID,
		TenantID: tenantID,
		Chan:     make(chan SSEMessage, sseMessageBufferSize),
		Done:     make(chan struct{}),
	}

	h.clients.Store(client.ID, client)
	defer func() {
		// Close channel first to prevent sends to closed channel
		close(client.Chan)
		h.clients.Delete(client.ID)
	}()

	h.logger.Info("SSE client connected",
		zap.String("client_id", client.ID),
		zap.String("user_id", userID),
		zap.String("tenant_id", tenantID))

	h.sendEvent(c.Writer, SSEMessage{
		Event: "connected",
		Data:  fmt.Sprintf(`{"client_id":"%s","timestamp":%d}`, client.ID, time.Now().Unix()),
	})
	c.Writer.Flush()

	reqCtx := c.Request.Context()

	for {
		select {
		case <-reqCtx.Done():
			h.logger.Info("SSE client disconnected (request context done)",
				zap.String("client_id", client.ID))
			return
		case <-client.Done:
			h.logger.Info("SSE client disconnected (done signal)",
				zap.String("client_id", client.ID))
			return
		case <-h.ctx.Done():
			h.logger.Info("SSE handler stopped, disconnecting client",
				zap.String("client_id", client.ID))
			return
		case msg, ok := <-client.Chan:
			if !ok {
				return
			}
			h.sendEvent(c.Writer, msg)
			c.Writer.Flush()
		}
	}
}

// sendEvent writes an SSE event to the response writer
func (h *FinanceStreamHandler) sendEvent(w io.Writer, msg SSEMessage) {
	if msg.Event != "" {
		fmt.Fprintf(w, "event: %s\n", msg.Event)
	}
	if msg.ID != "" {
		fmt.Fprintf(w, "id: %s\n", msg.ID)
	}
	fmt.Fprintf(w, "data: %s\n\n", msg.Data)
}

// GetClientCount returns the number of connected SSE clients
func (h *FinanceStreamHandler) GetClientCount() int {
	count := 0
	h.clients.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// RegisterRoutes registers the SSE stream route
func (h *FinanceStreamHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/finance/stats/stream", h.Stream)
}
