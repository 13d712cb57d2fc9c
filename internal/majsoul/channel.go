package majsoul

import (
	"context"
	"encoding/binary"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"paipuScope/internal/protocol"
)

// Wire message kinds. Requests and responses carry a 2-byte little-endian
// call index after the kind byte.
const (
	msgNotify   byte = 1
	msgRequest  byte = 2
	msgResponse byte = 3
)

// Channel is an RPC channel over a single websocket connection. Calls are
// matched to responses by index; notifications are dropped.
type Channel struct {
	conn   *websocket.Conn
	logger *zap.Logger

	mu      sync.Mutex
	nextIdx uint16
	pending map[uint16]chan []byte
	closed  bool
}

// Dial connects the channel to a gateway endpoint. The origin header
// carries the service host, which the gateway requires.
func Dial(ctx context.Context, endpoint, origin string, logger *zap.Logger) (*Channel, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, endpoint, header)
	if err != nil {
		return nil, fmt.Errorf("dial gateway: %w", err)
	}

	ch := &Channel{
		conn:    conn,
		logger:  logger,
		pending: make(map[uint16]chan []byte),
	}
	go ch.readLoop()
	return ch, nil
}

// Call sends one request envelope and waits for the matching response
// payload.
func (c *Channel) Call(ctx context.Context, method string, payload []byte) ([]byte, error) {
	body := protocol.EncodeEnvelope(protocol.Envelope{Name: method, Payload: payload})

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, fmt.Errorf("channel closed")
	}
	c.nextIdx++
	idx := c.nextIdx
	reply := make(chan []byte, 1)
	c.pending[idx] = reply

	frame := make([]byte, 3, 3+len(body))
	frame[0] = msgRequest
	binary.LittleEndian.PutUint16(frame[1:3], idx)
	frame = append(frame, body...)

	err := c.conn.WriteMessage(websocket.BinaryMessage, frame)
	c.mu.Unlock()
	if err != nil {
		c.drop(idx)
		return nil, fmt.Errorf("write %s: %w", method, err)
	}

	select {
	case <-ctx.Done():
		c.drop(idx)
		return nil, ctx.Err()
	case data, ok := <-reply:
		if !ok {
			return nil, fmt.Errorf("channel closed waiting for %s", method)
		}
		return data, nil
	}
}

func (c *Channel) readLoop() {
	for {
		kind, frame, err := c.conn.ReadMessage()
		if err != nil {
			c.closeAll()
			return
		}
		if kind != websocket.BinaryMessage || len(frame) == 0 {
			continue
		}
		switch frame[0] {
		case msgResponse:
			if len(frame) < 3 {
				continue
			}
			idx := binary.LittleEndian.Uint16(frame[1:3])
			env, err := protocol.DecodeEnvelope(frame[3:])
			if err != nil {
				c.logger.Warn("bad response envelope", zap.Error(err))
				continue
			}
			c.mu.Lock()
			reply, ok := c.pending[idx]
			delete(c.pending, idx)
			c.mu.Unlock()
			if ok {
				reply <- env.Payload
			}
		case msgNotify:
			// Server push; this client has no use for them.
		}
	}
}

func (c *Channel) drop(idx uint16) {
	c.mu.Lock()
	delete(c.pending, idx)
	c.mu.Unlock()
}

func (c *Channel) closeAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	for idx, reply := range c.pending {
		close(reply)
		delete(c.pending, idx)
	}
}

// Close tears down the websocket connection.
func (c *Channel) Close() error {
	err := c.conn.Close()
	c.closeAll()
	return err
}
