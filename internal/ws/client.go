package ws

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"career-guide/internal/config"
	"career-guide/internal/pkg/randsrc"
	"career-guide/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
	sendBuffer     = 32
)

type inbound struct {
	Message string `json:"message"`
}

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	done    chan struct{}
	once    sync.Once
	email   string
	chat    usecase.ChatUsecase
	limiter *rate.Limiter
	delay   func() time.Duration
	log     zerolog.Logger
}

func NewClient(hub *Hub, conn *websocket.Conn, email string, chat usecase.ChatUsecase, cfg config.ChatConfig, rnd randsrc.Source, log zerolog.Logger) *Client {
	if rnd == nil {
		rnd = randsrc.Default()
	}
	burst := cfg.MessageBurst
	if burst <= 0 {
		burst = 1
	}
	return &Client{
		hub:     hub,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		done:    make(chan struct{}),
		email:   email,
		chat:    chat,
		limiter: rate.NewLimiter(rate.Limit(cfg.MessagesPerSecond), burst),
		delay:   thinkingDelay(cfg, rnd),
		log:     log,
	}
}

// thinkingDelay is ThinkingMin plus a uniform share of ThinkingJitter.
func thinkingDelay(cfg config.ChatConfig, rnd randsrc.Source) func() time.Duration {
	return func() time.Duration {
		d := cfg.ThinkingMin
		if cfg.ThinkingJitter > 0 {
			d += time.Duration(rnd.Float64() * float64(cfg.ThinkingJitter))
		}
		if d < 0 {
			return 0
		}
		return d
	}
}

// close is idempotent. send is never closed; the write pump exits on done.
func (c *Client) close() {
	c.once.Do(func() { close(c.done) })
}

// enqueue reports false when the client is gone or too slow to keep up.
func (c *Client) enqueue(msg []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) sendEvent(evt Event) {
	b, err := json.Marshal(evt)
	if err != nil {
		c.log.Error().Err(err).Str("type", evt.Type).Msg("marshal ws event")
		return
	}
	if !c.enqueue(b) {
		c.hub.Unregister(c)
	}
}

func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Warn().Err(err).Msg("ws read failed")
			}
			return
		}
		c.handle(raw)
	}
}

func (c *Client) handle(raw []byte) {
	msg := parseInbound(raw)

	if !c.limiter.Allow() {
		evt := newEvent(EventError)
		evt.Message = "too many messages, slow down"
		c.sendEvent(evt)
		return
	}

	reply, err := c.chat.Reply(msg)
	if err != nil {
		evt := newEvent(EventError)
		if errors.Is(err, usecase.ErrInvalidInput) {
			evt.Message = "message must be between 1 and 2000 characters"
		} else {
			evt.Message = "could not answer right now"
		}
		c.sendEvent(evt)
		return
	}

	c.sendEvent(newEvent(EventTyping))
	go c.deliver(reply, c.delay())
}

func (c *Client) deliver(reply usecase.ChatReply, after time.Duration) {
	t := time.NewTimer(after)
	defer t.Stop()

	select {
	case <-c.done:
		return
	case <-t.C:
	}

	evt := newEvent(EventChatReply)
	evt.Reply = reply.Reply
	evt.Topic = reply.Topic
	c.sendEvent(evt)
}

// parseInbound accepts {"message": "..."}, a JSON string or a bare text frame.
func parseInbound(raw []byte) string {
	var in inbound
	if err := json.Unmarshal(raw, &in); err == nil {
		return in.Message
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(string(raw))
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return

		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.hub.Unregister(c)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.hub.Unregister(c)
				return
			}
		}
	}
}
