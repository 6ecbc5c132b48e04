package realtime

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"github.com/psgtech/campus-portal-api/pkg/metrics"
	"go.uber.org/zap"
)

// Event names carried in the envelope
const (
	EventIdentify           = "identify"
	EventJoinRoom           = "joinRoom"
	EventChatMessage        = "chat message"
	EventConnectionAccepted = "connectionAccepted"
)

// Envelope is the JSON frame exchanged over the websocket
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// identifyPayload is the structured form of an identify event
type identifyPayload struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ChatPersister stores relayed chat messages
type ChatPersister interface {
	Save(ctx context.Context, msg *models.ChatMessage) error
}

// Options configures the relay
type Options struct {
	SendBuffer     int
	PersistBuffer  int
	PingInterval   time.Duration
	PersistTimeout time.Duration
	// AllowedOrigins limits websocket upgrades by Origin header. Empty or "*"
	// accepts every origin.
	AllowedOrigins []string
}

func (o Options) withDefaults() Options {
	if o.SendBuffer <= 0 {
		o.SendBuffer = 64
	}
	if o.PersistBuffer <= 0 {
		o.PersistBuffer = 256
	}
	if o.PingInterval <= 0 {
		o.PingInterval = 25 * time.Second
	}
	if o.PersistTimeout <= 0 {
		o.PersistTimeout = 5 * time.Second
	}
	return o
}

// Relay owns the websocket endpoint. It routes identify, joinRoom and chat
// events between connections and delivers server notifications to rooms.
type Relay struct {
	registry *Registry
	hub      *Hub
	chat     ChatPersister
	opts     Options
	upgrader websocket.Upgrader
}

// NewRelay creates a relay over registry and hub. chat may be nil, in which
// case messages are relayed without being stored.
func NewRelay(registry *Registry, hub *Hub, chat ChatPersister, opts Options) *Relay {
	opts = opts.withDefaults()
	r := &Relay{
		registry: registry,
		hub:      hub,
		chat:     chat,
		opts:     opts,
	}
	r.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     r.checkOrigin,
	}
	return r
}

func (r *Relay) checkOrigin(req *http.Request) bool {
	origin := req.Header.Get("Origin")
	if origin == "" || len(r.opts.AllowedOrigins) == 0 {
		return true
	}
	for _, allowed := range r.opts.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// ServeHTTP upgrades the request and runs the connection until it closes
func (r *Relay) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := r.upgrader.Upgrade(w, req, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", zap.Error(err), zap.String("remote_addr", req.RemoteAddr))
		return
	}

	c := newClient(uuid.NewString(), conn, r.opts.SendBuffer, r.opts.PersistBuffer)
	r.hub.register(c)
	metrics.RealtimeConnections.Inc()
	logger.Info("Realtime client connected", zap.String("connection_id", c.id))

	if r.chat != nil {
		go r.persistLoop(c)
	}
	go c.writePump(r.opts.PingInterval)
	c.readPump(2*r.opts.PingInterval, r.handleFrame)

	// Only the read loop queues messages, so the queue can be closed here.
	// Messages already queued are still stored.
	close(c.persist)
	r.disconnect(c)
}

func (r *Relay) disconnect(c *Client) {
	c.close()
	r.hub.LeaveAll(c)
	key, removed := r.registry.RemoveFirst(c.id)
	metrics.RealtimeConnections.Dec()

	fields := []zap.Field{zap.String("connection_id", c.id)}
	if removed {
		fields = append(fields, zap.String("identity", key))
	}
	logger.Info("Realtime client disconnected", fields...)
}

func (r *Relay) handleFrame(c *Client, data []byte) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil || env.Event == "" {
		metrics.RealtimeEvents.WithLabelValues("inbound", "invalid").Inc()
		logger.Warn("Invalid realtime frame", zap.String("connection_id", c.id), zap.ByteString("frame", truncate(data)))
		return
	}

	switch env.Event {
	case EventIdentify:
		metrics.RealtimeEvents.WithLabelValues("inbound", EventIdentify).Inc()
		r.identify(c, env.Data)
	case EventJoinRoom:
		metrics.RealtimeEvents.WithLabelValues("inbound", EventJoinRoom).Inc()
		r.joinRoom(c, env.Data)
	case EventChatMessage:
		metrics.RealtimeEvents.WithLabelValues("inbound", EventChatMessage).Inc()
		r.relayChat(c, data, env.Data)
	default:
		metrics.RealtimeEvents.WithLabelValues("inbound", "unknown").Inc()
		logger.Warn("Unknown realtime event", zap.String("connection_id", c.id), zap.String("event", env.Event))
	}
}

// identify registers the connection under a bare email (string payload) or
// under "email:role" (object payload) and joins the room of the same name.
// Anything else is logged and ignored.
func (r *Relay) identify(c *Client, data json.RawMessage) {
	key, ok := identityKey(data)
	if !ok {
		logger.Warn("Invalid identify data received",
			zap.String("connection_id", c.id),
			zap.ByteString("data", truncate(data)),
		)
		return
	}

	r.registry.Set(key, c.id)
	r.hub.Join(c, key)
	logger.Info("User identified", zap.String("identity", key), zap.String("connection_id", c.id))
}

func identityKey(data json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return "", false
	}

	switch trimmed[0] {
	case '"':
		var email string
		if err := json.Unmarshal(trimmed, &email); err != nil {
			return "", false
		}
		return email, true
	case '{':
		var p identifyPayload
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return "", false
		}
		if p.Email == "" || p.Role == "" {
			return "", false
		}
		return p.Email + ":" + p.Role, true
	default:
		return "", false
	}
}

func (r *Relay) joinRoom(c *Client, data json.RawMessage) {
	var room string
	if err := json.Unmarshal(data, &room); err != nil {
		logger.Warn("Invalid joinRoom data received",
			zap.String("connection_id", c.id),
			zap.ByteString("data", truncate(data)),
		)
		return
	}

	r.hub.Join(c, room)
	logger.Info("Socket joined room", zap.String("connection_id", c.id), zap.String("room", room))
}

// chatRoute is the part of a chat payload the relay needs for routing. The
// rest of the payload is forwarded untouched.
type chatRoute struct {
	Room string `json:"room"`
}

// relayChat forwards the original frame to the other members of the room and
// queues the message for storage. Storage runs on the connection's persist
// loop, so the next frame is read without waiting for it.
func (r *Relay) relayChat(c *Client, frame []byte, data json.RawMessage) {
	var route chatRoute
	if err := json.Unmarshal(data, &route); err != nil {
		logger.Warn("Invalid chat message received",
			zap.String("connection_id", c.id),
			zap.ByteString("data", truncate(data)),
		)
		return
	}

	delivered := r.hub.Broadcast(route.Room, frame, c.id)
	metrics.RealtimeEvents.WithLabelValues("outbound", EventChatMessage).Add(float64(delivered))
	logger.Info("Chat message relayed",
		zap.String("room", route.Room),
		zap.String("connection_id", c.id),
		zap.Int("recipients", delivered),
	)

	if r.chat == nil {
		return
	}

	var msg models.ChatMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		metrics.ChatPersistFailures.Inc()
		logger.Warn("Chat message relayed but not stored",
			zap.Error(err),
			zap.String("room", route.Room),
			zap.String("connection_id", c.id),
		)
		return
	}

	if !c.queuePersist(&msg) {
		metrics.ChatPersistFailures.Inc()
		logger.Error("Chat persist queue full, message not stored",
			zap.String("room", msg.Room),
			zap.String("sender", msg.Sender),
		)
	}
}

// persistLoop stores queued chat messages in receipt order until the
// connection's queue is closed and drained
func (r *Relay) persistLoop(c *Client) {
	for msg := range c.persist {
		r.save(msg)
	}
}

func (r *Relay) save(msg *models.ChatMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), r.opts.PersistTimeout)
	defer cancel()

	if err := r.chat.Save(ctx, msg); err != nil {
		metrics.ChatPersistFailures.Inc()
		logger.Error("Error saving chat message",
			zap.Error(err),
			zap.String("room", msg.Room),
			zap.String("sender", msg.Sender),
		)
	}
}

// NotifyConnectionAccepted sends connectionAccepted to the room named after
// the student's email. With nobody in the room the event is dropped.
func (r *Relay) NotifyConnectionAccepted(ctx context.Context, evt models.ConnectionAccepted) {
	_, registered := r.registry.Lookup(evt.StudentEmail)
	logger.Info("Connected users",
		zap.Int("count", r.registry.Len()),
		zap.Strings("identities", r.registry.Keys()),
	)
	if registered {
		logger.Info("Emitting connectionAccepted to student", zap.String("student_email", evt.StudentEmail))
	} else {
		logger.Info("Student not connected", zap.String("student_email", evt.StudentEmail))
	}

	frame, err := encodeFrame(EventConnectionAccepted, evt)
	if err != nil {
		logger.Error("Failed to encode connectionAccepted", zap.Error(err))
		return
	}

	delivered := r.hub.Broadcast(evt.StudentEmail, frame, "")
	metrics.RealtimeEvents.WithLabelValues("outbound", EventConnectionAccepted).Add(float64(delivered))
}

// Shutdown closes every live connection
func (r *Relay) Shutdown(ctx context.Context) {
	for _, c := range r.hub.Clients() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		c.close()
	}
}

func encodeFrame(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}

func truncate(b []byte) []byte {
	const limit = 256
	if len(b) > limit {
		return b[:limit]
	}
	return b
}
