package transport

import (
	"context"
	"fmt"
	"strings"

	"github.com/cellwars/client-go/pkg/log"
	"nhooyr.io/websocket"
)

// WSTransport is a line transport over a WebSocket connection. Every
// protocol line travels as one text message, so Flush is a no-op.
type WSTransport struct {
	serverAddr string
	conn       *websocket.Conn
	// ctx is the dial context; the Transport interface carries no context,
	// so reads and writes reuse it for the lifetime of the connection.
	ctx context.Context
}

// NewWSTransport creates a WebSocket transport. Connect must be called
// before use.
func NewWSTransport(serverAddr string) *WSTransport {
	return &WSTransport{
		serverAddr: serverAddr,
	}
}

// Connect establishes the connection to the arena server.
func (t *WSTransport) Connect(ctx context.Context) error {
	log.Info("Connecting to WebSocket server at %s", t.serverAddr)
	conn, _, err := websocket.Dial(ctx, t.serverAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	t.conn = conn
	t.ctx = ctx
	return nil
}

func (t *WSTransport) ReadLine() (string, error) {
	_, message, err := t.conn.Read(t.ctx)
	if err != nil {
		if websocket.CloseStatus(err) != -1 {
			return "", &ErrConnectionClosedByServer{}
		}
		return "", fmt.Errorf("failed to read message from WebSocket connection: %v", err)
	}
	return strings.TrimRight(string(message), "\r\n"), nil
}

func (t *WSTransport) WriteLine(line string) error {
	if err := t.conn.Write(t.ctx, websocket.MessageText, []byte(line)); err != nil {
		return fmt.Errorf("failed to write message to WebSocket connection: %v", err)
	}
	return nil
}

// Flush is a no-op: WebSocket messages are not buffered by this transport.
func (t *WSTransport) Flush() error {
	return nil
}

// Close closes the WebSocket connection.
func (t *WSTransport) Close() error {
	if t.conn == nil {
		log.Warn("WebSocket connection is already closed")
		return nil
	}
	return t.conn.Close(websocket.StatusNormalClosure, "")
}
