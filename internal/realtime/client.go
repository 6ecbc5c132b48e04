package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"github.com/psgtech/campus-portal-api/pkg/metrics"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 * 1024
)

// Client is one live websocket connection
type Client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
	done chan struct{}

	// persist carries chat messages from the read loop to the persist loop
	persist chan *models.ChatMessage

	// rooms is guarded by the hub mutex
	rooms map[string]struct{}

	closeOnce sync.Once
}

func newClient(id string, conn *websocket.Conn, sendBuffer, persistBuffer int) *Client {
	return &Client{
		id:      id,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		persist: make(chan *models.ChatMessage, persistBuffer),
		rooms:   make(map[string]struct{}),
	}
}

// queuePersist hands msg to the persist loop without blocking. A full queue
// rejects the message.
func (c *Client) queuePersist(msg *models.ChatMessage) bool {
	select {
	case c.persist <- msg:
		return true
	default:
		return false
	}
}

// enqueue queues frame without blocking. A full buffer drops the frame.
func (c *Client) enqueue(frame []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- frame:
		return true
	default:
		metrics.RealtimeDroppedFrames.Inc()
		logger.Warn("Realtime send buffer full, dropping frame", zap.String("connection_id", c.id))
		return false
	}
}

// close stops the write pump, sends a close frame and closes the socket.
// Safe to call repeatedly.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(writeWait))
		_ = c.conn.Close()
	})
}

// readPump delivers inbound frames to handle in receipt order until the
// connection fails
func (c *Client) readPump(pongWait time.Duration, handle func(c *Client, data []byte)) {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				logger.Debug("Realtime connection read failed", zap.String("connection_id", c.id), zap.Error(err))
			}
			return
		}
		if messageType != websocket.TextMessage && messageType != websocket.BinaryMessage {
			continue
		}
		handle(c, data)
	}
}

// writePump drains the send buffer and keeps the connection alive with pings
func (c *Client) writePump(pingInterval time.Duration) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case <-c.done:
			return
		case frame := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
