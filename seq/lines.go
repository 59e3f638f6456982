package seq

import (
	"bufio"
	"io"
)

// LineSource reads newline separated text lazily. It is single-use: the
// reader is consumed as lines are pulled, and a second terminal call
// continues where the first stopped.
type LineSource struct {
	scanner *bufio.Scanner
	err     error
}

// Lines wraps r. Lines longer than bufio.MaxScanTokenSize end the
// sequence and are reported by Err.
func Lines(r io.Reader) *LineSource {
	return &LineSource{scanner: bufio.NewScanner(r)}
}

// Sequence returns the lines without their trailing newline.
func (l *LineSource) Sequence() Sequence[string] {
	return FromFunc(func() (string, bool) {
		if l.scanner.Scan() {
			return l.scanner.Text(), true
		}
		l.err = l.scanner.Err()
		return "", false
	})
}

// Err returns the first read error, if any. Check it after the terminal
// operation returns.
func (l *LineSource) Err() error {
	return l.err
}
