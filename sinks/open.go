package sinks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/reusee/jackc/jackc"
	"github.com/reusee/jackc/jackconfigs"
	"github.com/reusee/jackc/logs"
	"github.com/reusee/jackc/nets"
)

var ErrNoSourcePath = errors.New("unit has no source path")

// Open returns the destination of one compiled unit. Closing it completes the write.
type Open func(ctx context.Context, unit *jackc.Unit) (io.WriteCloser, error)

// Stdout receives output for the "-" address.
type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// Open accepts these output addresses:
//
//	""                 <Unit>.vm next to the source file
//	"-"                stdout, one unit at a time
//	"tcp://host:port"  one connection per unit
//	anything else      a directory of <Unit>.vm files
func (Module) Open(
	output jackconfigs.Output,
	dialer nets.Dialer,
	stdout Stdout,
	logger logs.Logger,
) Open {
	addr := string(output)
	stdoutLock := new(sync.Mutex)

	return func(ctx context.Context, unit *jackc.Unit) (io.WriteCloser, error) {
		switch {

		case addr == "":
			if unit.Source == "" {
				return nil, fmt.Errorf("%s: %w", unit.Name, ErrNoSourcePath)
			}
			return createFile(filepath.Join(filepath.Dir(unit.Source), unit.Name+".vm"))

		case addr == "-":
			return &lockedWriter{
				lock: stdoutLock,
				w:    stdout,
			}, nil

		case strings.HasPrefix(addr, "tcp://"):
			u, err := url.Parse(addr)
			if err != nil {
				return nil, err
			}
			conn, err := dialer.DialContext(ctx, "tcp", u.Host)
			if err != nil {
				return nil, fmt.Errorf("dial %s: %w", u.Host, err)
			}
			logger.DebugContext(ctx, "streaming unit", "addr", u.Host)
			return conn, nil

		default:
			if err := os.MkdirAll(addr, 0755); err != nil {
				return nil, err
			}
			return createFile(filepath.Join(addr, unit.Name+".vm"))
		}
	}
}

func createFile(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// lockedWriter buffers a whole unit so listings never interleave.
type lockedWriter struct {
	lock *sync.Mutex
	w    io.Writer
	buf  bytes.Buffer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	return l.buf.Write(p)
}

func (l *lockedWriter) Close() error {
	l.lock.Lock()
	defer l.lock.Unlock()
	_, err := l.buf.WriteTo(l.w)
	return err
}
