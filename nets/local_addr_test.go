package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/jackc/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, expected := range map[string]bool{
			"127.0.0.1:10000": true,
			"[::1]:80":        true,
			"192.168.1.2":     true,
			"10.0.0.1:9000":   true,
			"8.8.8.8:53":      false,
		} {
			yes, err := isLocalAddr(addr)
			if err != nil {
				t.Fatal(err)
			}
			if yes != expected {
				t.Fatalf("%s: got %v", addr, yes)
			}
		}
	})
}
