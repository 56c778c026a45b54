package tcp_helpers

import (
	"net"
	"testing"
	"time"
)

// Find a free port on the local host to use for starting a server
func GetFreePort() (int, error) {
	addr, err := net.ResolveTCPAddr("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return 0, err
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForAddr blocks until addr accepts TCP connections or the timeout expires
func WaitForAddr(t *testing.T, addr string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			conn.Close()
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("%s did not open within %s: %v", addr, timeout, err)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
