package handlers

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cory-johannsen/gt4500/internal/console"
	"github.com/cory-johannsen/gt4500/internal/frontend/telnet"
)

// runSession drives a ConsoleHandler over a net.Pipe, writing script to the
// client side and returning everything the handler wrote back. The script
// must end with an EXIT command so the session terminates cleanly.
func runSession(t *testing.T, script string) string {
	t.Helper()

	client, server := net.Pipe()
	conn := telnet.NewConn(server, 0, 0)

	handler := NewConsoleHandler(console.NopRecorder{}, NewManager(), zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() {
		done <- handler.HandleSession(context.Background(), conn)
	}()

	// Collect output concurrently so the handler never blocks on writes.
	outCh := make(chan []byte, 1)
	go func() {
		var out []byte
		buf := make([]byte, 4096)
		for {
			n, err := client.Read(buf)
			out = append(out, buf[:n]...)
			if err != nil {
				outCh <- out
				return
			}
		}
	}()

	_, err := client.Write([]byte(script))
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not finish in time")
	}
	_ = conn.Close()
	_ = client.Close()

	return string(<-outCh)
}

func TestHandleSession_FiresAndExits(t *testing.T) {
	out := runSession(t, "GT4500,1,0.0,0,0.0\r\nTORPEDO,SINGLE\r\nEXIT\r\n")

	assert.Contains(t, out, "Welcome to the console interface.")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "SUCCESS\r\n")
}

func TestHandleSession_ValidationErrorsKeepSessionAlive(t *testing.T) {
	out := runSession(t, "TORPEDO,SINGLE\r\nGT4500\r\nEXIT\r\n")

	assert.Contains(t, out, "No ship has been initialized\r\n")
	assert.Contains(t, out, "usage: GT4500,<PRI_CNT>,<PRI_FAIL_RATE>,<SEC_CNT>,<SEC_FAIL_RATE>\r\n")
}

func TestHandleSession_Help(t *testing.T) {
	out := runSession(t, "HELP\r\nEXIT\r\n")

	assert.Contains(t, out, "Available commands: [HELP, GT4500, TORPEDO, EXIT]\r\n")
}

func TestHandleSession_DeregistersSession(t *testing.T) {
	client, server := net.Pipe()
	conn := telnet.NewConn(server, 0, 0)
	sessions := NewManager()

	handler := NewConsoleHandler(console.NopRecorder{}, sessions, zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() {
		done <- handler.HandleSession(context.Background(), conn)
	}()

	go func() {
		buf := make([]byte, 4096)
		for {
			if _, err := client.Read(buf); err != nil {
				return
			}
		}
	}()

	_, err := client.Write([]byte("EXIT\r\n"))
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("session did not finish in time")
	}

	assert.Equal(t, 0, sessions.Count())
	_ = conn.Close()
	_ = client.Close()
}

func TestManagerAddRemove(t *testing.T) {
	m := NewManager()

	a := m.Add("10.0.0.1:5000")
	b := m.Add("10.0.0.2:5000")
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, m.Count())

	got, ok := m.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1:5000", got.RemoteAddr)
	assert.False(t, got.StartedAt.IsZero())

	m.Remove(a.ID)
	_, ok = m.Get(a.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Count())

	// Removing twice is a no-op
	m.Remove(a.ID)
	assert.Equal(t, 1, m.Count())
}

func TestCRLFWriterTranslatesNewlines(t *testing.T) {
	client, server := net.Pipe()
	conn := telnet.NewConn(server, 0, 0)
	w := &crlfWriter{conn: conn}

	go func() {
		n, err := w.Write([]byte("FAIL\nSUCCESS\n"))
		assert.NoError(t, err)
		assert.Equal(t, 13, n)
		_ = conn.Close()
	}()

	var out []byte
	buf := make([]byte, 64)
	for {
		n, err := client.Read(buf)
		out = append(out, buf[:n]...)
		if err != nil {
			break
		}
	}
	assert.Equal(t, "FAIL\r\nSUCCESS\r\n", string(out))
}
