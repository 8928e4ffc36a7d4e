package transport

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/cellwars/client-go/pkg/log"
)

// TCPTransport is a line transport over a TCP connection to an arena server.
type TCPTransport struct {
	serverAddr string
	conn       net.Conn
	reader     *bufio.Reader
	writer     *bufio.Writer
}

// NewTCPTransport creates a TCP transport. Connect must be called before use.
func NewTCPTransport(serverAddr string) *TCPTransport {
	return &TCPTransport{
		serverAddr: serverAddr,
	}
}

// Connect establishes the connection to the arena server.
func (t *TCPTransport) Connect() error {
	log.Info("Connecting to TCP server at %s", t.serverAddr)
	conn, err := net.Dial("tcp", t.serverAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %v", err)
	}
	t.conn = conn
	t.reader = bufio.NewReader(conn)
	t.writer = bufio.NewWriter(conn)
	return nil
}

func (t *TCPTransport) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line != "" {
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", &ErrConnectionClosedByServer{}
		}
		if opErr, ok := err.(*net.OpError); ok && opErr.Err.Error() == "use of closed network connection" {
			return "", &ErrConnectionClosedByClient{}
		}
		return "", fmt.Errorf("failed to read line from TCP connection: %v", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *TCPTransport) WriteLine(line string) error {
	if _, err := t.writer.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write line to TCP connection: %v", err)
	}
	return nil
}

func (t *TCPTransport) Flush() error {
	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush TCP connection: %v", err)
	}
	return nil
}

// Close closes the TCP connection.
func (t *TCPTransport) Close() error {
	if t.conn == nil {
		log.Warn("TCP connection is already closed")
		return nil
	}
	return t.conn.Close()
}
