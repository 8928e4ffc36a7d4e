// Package transport provides the line-oriented byte streams the client
// speaks the engine protocol over. The canonical transport is the process's
// stdin/stdout pair; TCP and WebSocket variants exist for arena servers
// that expose the same protocol over a socket.
package transport

// Transport is a line-oriented, bidirectional byte stream. Lines are passed
// without their trailing newline; the transport owns the framing.
// Implementations are not required to be safe for concurrent use: the
// communicator serializes all access behind its own lock.
type Transport interface {
	// ReadLine blocks until a full line is available and returns it without
	// the line terminator.
	ReadLine() (string, error)
	// WriteLine writes one line. The write may be buffered until Flush.
	WriteLine(line string) error
	// Flush forces any buffered lines out.
	Flush() error
	// Close releases the underlying stream.
	Close() error
}
