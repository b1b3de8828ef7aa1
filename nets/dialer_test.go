package nets

import (
	"io"
	"net"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/jackc/modes"
)

func TestDialLocal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	received := make(chan string, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			received <- err.Error()
			return
		}
		defer conn.Close()
		content, _ := io.ReadAll(conn)
		received <- string(content)
	}()

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		// local addresses never touch the proxy
		func() ProxyAddr {
			return "socks5://127.0.0.1:1"
		},
	).Call(func(
		dialer Dialer,
	) {
		conn, err := dialer.DialContext(t.Context(), "tcp", ln.Addr().String())
		if err != nil {
			t.Fatal(err)
		}
		if _, err := conn.Write([]byte("push constant 1\n")); err != nil {
			t.Fatal(err)
		}
		conn.Close()
	})

	if got := <-received; got != "push constant 1\n" {
		t.Fatalf("got %q", got)
	}
}

func TestProxyURL(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.Scheme != "socks5" || u.Host != "127.0.0.1:1080" {
			t.Fatalf("got %v", u)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})
}
