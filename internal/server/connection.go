package server

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/pokercoach/showdown"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 16384

	sendBuffer = 64
)

// ErrConnectionClosed is returned when sending on a closed or stalled connection
var ErrConnectionClosed = websocket.ErrCloseSent

// Connection is one WebSocket client
type Connection struct {
	conn      *websocket.Conn
	send      chan *Message
	service   *Service
	clock     quartz.Clock
	logger    *log.Logger
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewConnection wraps an upgraded WebSocket
func NewConnection(conn *websocket.Conn, service *Service, clock quartz.Clock, logger *log.Logger) *Connection {
	ctx, cancel := context.WithCancel(context.Background())

	return &Connection{
		conn:    conn,
		send:    make(chan *Message, sendBuffer),
		service: service,
		clock:   clock,
		logger:  logger.WithPrefix("conn").With("remote", conn.RemoteAddr().String()),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins the read and write pumps
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Done is closed once the connection shuts down
func (c *Connection) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Close closes the connection
func (c *Connection) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.cancel()
		err = c.conn.Close()
	})
	return err
}

// SendMessage queues a message for the client
func (c *Connection) SendMessage(msg *Message) error {
	select {
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
	}

	select {
	case c.send <- msg:
		return nil
	case <-c.ctx.Done():
		return ErrConnectionClosed
	default:
		c.logger.Warn("Connection send buffer full, closing connection")
		_ = c.Close()
		return ErrConnectionClosed
	}
}

// readPump handles incoming messages from the client
func (c *Connection) readPump() {
	defer func() { _ = c.Close() }()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.logger.Error("WebSocket error", "error", err)
			}
			return
		}
		c.handleMessage(&msg)
	}
}

// writePump handles outgoing messages to the client
func (c *Connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(message); err != nil {
				c.logger.Error("Failed to write message", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// handleMessage dispatches a client request and replies with the same
// RequestID, assigning one when the client sent none
func (c *Connection) handleMessage(msg *Message) {
	if msg.RequestID == "" {
		msg.RequestID = uuid.NewString()
	}
	c.logger.Debug("Received message", "type", msg.Type, "requestId", msg.RequestID)

	switch msg.Type {
	case MessageTypeCoach:
		var req CoachRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			c.sendError(msg.RequestID, "invalid_message", "Failed to parse coach request: "+err.Error())
			return
		}
		resp, err := c.service.Coach(req)
		c.reply(msg.RequestID, MessageTypeCoachResult, resp, err)

	case MessageTypeShowdown:
		var in showdown.Input
		if err := json.Unmarshal(msg.Data, &in); err != nil {
			c.sendError(msg.RequestID, "invalid_message", "Failed to parse showdown request: "+err.Error())
			return
		}
		result, err := c.service.Showdown(in)
		c.reply(msg.RequestID, MessageTypeShowdownResult, result, err)

	case MessageTypeScenario:
		var req ScenarioRequest
		if len(msg.Data) > 0 && string(msg.Data) != "null" {
			if err := json.Unmarshal(msg.Data, &req); err != nil {
				c.sendError(msg.RequestID, "invalid_message", "Failed to parse scenario request: "+err.Error())
				return
			}
		}
		resp, err := c.service.Scenario(req)
		c.reply(msg.RequestID, MessageTypeScenario, resp, err)

	default:
		c.sendError(msg.RequestID, "unknown_message_type", "Unknown message type: "+msg.Type.String())
	}
}

func (c *Connection) reply(requestID string, messageType MessageType, data any, err error) {
	if err != nil {
		code := "internal_error"
		if errors.Is(err, ErrInvalidSnapshot) {
			code = "invalid_request"
		}
		c.sendError(requestID, code, err.Error())
		return
	}

	msg, err := NewMessage(messageType, data, c.clock.Now())
	if err != nil {
		c.logger.Error("Failed to encode reply", "type", messageType, "error", err)
		c.sendError(requestID, "internal_error", "failed to encode reply")
		return
	}
	msg.RequestID = requestID
	_ = c.SendMessage(msg)
}

func (c *Connection) sendError(requestID, code, message string) {
	msg, err := NewMessage(MessageTypeError, ErrorData{Code: code, Message: message}, c.clock.Now())
	if err != nil {
		c.logger.Error("Failed to create error message", "error", err)
		return
	}
	msg.RequestID = requestID
	if err := c.SendMessage(msg); err != nil {
		c.logger.Debug("Failed to send error message", "error", err)
	}
}
