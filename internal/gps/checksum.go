package gps

import (
	"strconv"
	"strings"
)

// checksum XORs every byte of an NMEA sentence body (the text between the
// leading '$' and the '*' delimiter).
func checksum(body string) byte {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return sum
}

// checksumValid reports whether sentence carries a correct two-hex-digit
// checksum suffix. A missing '*', missing digits, or non-hex digits all
// count as validation failures, never as a fault.
func checksumValid(sentence string) bool {
	star := strings.IndexByte(sentence, '*')
	if star < 0 {
		return false
	}
	suffix := sentence[star+1:]
	if len(suffix) < 2 {
		return false
	}
	want, err := strconv.ParseUint(suffix[:2], 16, 8)
	if err != nil {
		return false
	}

	body := sentence[:star]
	if strings.HasPrefix(body, "$") {
		body = body[1:]
	}
	return checksum(body) == byte(want)
}
