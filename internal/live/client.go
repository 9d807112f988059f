// Package live connects the simulation to the lobby authority: a
// websocket client that consumes join/gift/hearts/phase/winner events
// and forwards winner declarations back. It never touches simulation
// state directly; everything crosses through the intake queue.
package live

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/JacksenSE/AutomatedGameTiktok/internal/sim"
)

const (
	minBackoff = time.Second
	maxBackoff = 30 * time.Second
	readLimit  = 64 * 1024
)

// nextBackoff doubles the reconnect delay up to the cap.
func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// EventSink receives parsed external events.
type EventSink interface {
	Enqueue(ev sim.Event) bool
}

// Client maintains the connection to the lobby authority.
type Client struct {
	url  string
	sink EventSink
	log  *zap.SugaredLogger

	outgoing chan []byte
}

// New creates a client for the given websocket URL.
func New(url string, sink EventSink, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		url:      url,
		sink:     sink,
		log:      logger.Sugar(),
		outgoing: make(chan []byte, 16),
	}
}

// DeclareWinner sends the winner declaration upstream. Drops the message
// if the outgoing buffer is full rather than blocking the simulation.
func (c *Client) DeclareWinner(name string) {
	msg, err := json.Marshal(map[string]string{"type": "winner", "name": name})
	if err != nil {
		return
	}
	select {
	case c.outgoing <- msg:
	default:
		c.log.Warnw("winner declaration dropped, outgoing buffer full")
	}
}

// Run connects and consumes events until ctx is cancelled, reconnecting
// on failure with doubling backoff capped at maxBackoff. A successful
// connect resets the backoff.
func (c *Client) Run(ctx context.Context) error {
	backoff := minBackoff
	for {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
		if err != nil {
			c.log.Warnw("lobby connect failed", "url", c.url, "retry_in", backoff, "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff = nextBackoff(backoff)
			continue
		}

		c.log.Infow("lobby connected", "url", c.url)
		backoff = minBackoff
		c.serve(ctx, conn)
		conn.Close()

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}
}

// serve pumps one established connection until it drops or ctx ends.
func (c *Client) serve(ctx context.Context, conn *websocket.Conn) {
	conn.SetReadLimit(readLimit)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				return
			}
			ev, err := ParseEvent(raw)
			if err != nil {
				// Malformed payloads are dropped as no-ops.
				c.log.Debugw("event ignored", "error", err)
				continue
			}
			c.sink.Enqueue(ev)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-done:
			return
		case msg := <-c.outgoing:
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		}
	}
}
