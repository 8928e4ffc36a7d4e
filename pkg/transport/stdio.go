package transport

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StdioTransport is a line transport over an arbitrary reader/writer pair,
// typically the process's stdin and stdout.
type StdioTransport struct {
	reader *bufio.Reader
	writer *bufio.Writer
	closer io.Closer
}

// NewStdioTransport creates a transport over the given reader and writer.
// If w implements io.Closer it is closed by Close.
func NewStdioTransport(r io.Reader, w io.Writer) *StdioTransport {
	t := &StdioTransport{
		reader: bufio.NewReader(r),
		writer: bufio.NewWriter(w),
	}
	if closer, ok := w.(io.Closer); ok {
		t.closer = closer
	}
	return t
}

func (t *StdioTransport) ReadLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			if line != "" {
				// The engine omitted the final newline; deliver the line.
				return strings.TrimRight(line, "\r\n"), nil
			}
			return "", &ErrConnectionClosedByServer{}
		}
		return "", fmt.Errorf("failed to read line: %v", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *StdioTransport) WriteLine(line string) error {
	if _, err := t.writer.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to write line: %v", err)
	}
	return nil
}

func (t *StdioTransport) Flush() error {
	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %v", err)
	}
	return nil
}

func (t *StdioTransport) Close() error {
	if err := t.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush: %v", err)
	}
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}
