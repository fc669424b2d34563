package gps

import (
	"errors"
	"strings"
)

// defaultBufferLimit caps how much newline-free data the framer will hold.
// A healthy receiver emits a terminator at least every ~82 bytes; hitting
// the cap means the stream is corrupt or not NMEA at all.
const defaultBufferLimit = 4096

// ErrBufferOverflow is returned by Update when the sentence buffer grows
// past its limit without a newline. The buffer is discarded so framing can
// resynchronize on the next terminator.
var ErrBufferOverflow = errors.New("gps: sentence buffer overflow")

// framer accumulates raw receiver bytes and splits out complete,
// newline-terminated candidate sentences. A trailing partial sentence is
// kept across calls and never handed to the parser early.
type framer struct {
	buf   string
	limit int
}

// ingest appends p to the buffer and returns every complete line found,
// trimmed of surrounding whitespace. Empty lines are dropped. Invalid
// UTF-8 byte sequences are discarded rather than treated as fatal.
func (f *framer) ingest(p []byte) ([]string, error) {
	f.buf += strings.ToValidUTF8(string(p), "")

	var lines []string
	for {
		i := strings.IndexByte(f.buf, '\n')
		if i < 0 {
			break
		}
		line := strings.TrimSpace(f.buf[:i])
		f.buf = f.buf[i+1:]
		if line != "" {
			lines = append(lines, line)
		}
	}

	limit := f.limit
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	if len(f.buf) > limit {
		f.buf = ""
		return lines, ErrBufferOverflow
	}
	return lines, nil
}
