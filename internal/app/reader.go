package app

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sys/unix"
)

// pollInterval bounds how long a read waits before checking for cancellation.
const pollInterval = 200 // milliseconds

// lineReader reads input one byte at a time, so bytes after the newline stay
// unread for the commands the line starts.
type lineReader struct {
	fd int
}

func newLineReader(fd int) *lineReader {
	return &lineReader{fd: fd}
}

// ReadLine returns the next line without its newline. A final line without a
// newline is returned as is; io.EOF is returned once nothing is left.
func (r *lineReader) ReadLine(ctx context.Context) (string, error) {
	var line []byte
	buf := make([]byte, 1)

	for {
		if err := r.waitReadable(ctx); err != nil {
			return "", err
		}

		n, err := unix.Read(r.fd, buf)
		if errors.Is(err, unix.EINTR) || errors.Is(err, unix.EAGAIN) {
			continue
		}
		if err != nil {
			return "", err
		}
		if n == 0 {
			if len(line) == 0 {
				return "", io.EOF
			}
			return string(line), nil
		}
		if buf[0] == '\n' {
			return string(line), nil
		}
		line = append(line, buf[0])
	}
}

func (r *lineReader) waitReadable(ctx context.Context) error {
	fds := []unix.PollFd{{Fd: int32(r.fd), Events: unix.POLLIN}} //nolint:gosec // descriptors fit in int32
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := unix.Poll(fds, pollInterval)
		if errors.Is(err, unix.EINTR) || (err == nil && n == 0) {
			continue
		}
		return err
	}
}
