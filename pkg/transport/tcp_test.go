package transport

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTCPTransport_ReadLine(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		conn.Write([]byte("DIE 7\nRUN_ROUND\r\n"))
	}()

	tr := NewTCPTransport(listener.Addr().String())
	require.NoError(t, tr.Connect())
	defer tr.Close()

	line, err := tr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "DIE 7", line)

	line, err = tr.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "RUN_ROUND", line)

	_, err = tr.ReadLine()
	require.Error(t, err)
	assert.IsType(t, &ErrConnectionClosedByServer{}, err)
}
