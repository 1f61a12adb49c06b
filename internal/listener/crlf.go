package listener

import (
	"bytes"
	"io"
)

// crlfReadWriter adapts a network terminal to the session's plain "\n"
// lines. Writes turn "\n" into "\r\n". Reads turn "\r\n", "\r\x00" and a
// lone "\r" into "\n": telnet sends the first two (RFC 854) and ssh without
// a pty sends the last.
type crlfReadWriter struct {
	rw io.ReadWriter

	// pendingCR is set when the last read ended on "\r", whose partner may
	// arrive at the start of the next read.
	pendingCR bool
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &crlfReadWriter{rw: rw}
}

func (c *crlfReadWriter) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n == 0 {
		return n, err
	}

	data := p[:n]
	if c.pendingCR && (data[0] == '\n' || data[0] == 0) {
		data = data[1:]
	}
	c.pendingCR = len(data) > 0 && data[len(data)-1] == '\r'

	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r\x00"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
	return copy(p, data), err
}

func (c *crlfReadWriter) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	_, err := c.rw.Write(converted)
	// Return the original length so callers aren't confused by the size change
	return len(p), err
}
