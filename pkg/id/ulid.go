// Package id generates sortable identifiers for requests and outgoing mail.
package id

import (
	"crypto/rand"
	"encoding/binary"
	"strings"
	"time"
)

// Crockford's Base32 alphabet (excludes I, L, O, U).
const crockfordBase32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	ulidLen    = 26
	timeChars  = 10
	entropyLen = 10
)

// NewULID returns a 26-character ULID: 48 bits of millisecond time followed
// by 80 bits of randomness, both Crockford Base32 encoded.
// ULIDs sort lexicographically by creation time.
func NewULID() string {
	return newULIDAt(time.Now())
}

func newULIDAt(now time.Time) string {
	ms := uint64(now.UnixMilli())

	var entropy [entropyLen]byte
	if _, err := rand.Read(entropy[:]); err != nil {
		// Degraded but still unique enough for log correlation.
		binary.BigEndian.PutUint64(entropy[:8], uint64(now.UnixNano()))
	}

	var out [ulidLen]byte
	for i := timeChars - 1; i >= 0; i-- {
		out[i] = crockfordBase32[ms&0x1F]
		ms >>= 5
	}

	// 80 bits of entropy split into 16 groups of 5 bits, most significant first.
	hi := uint64(entropy[0])<<32 | uint64(binary.BigEndian.Uint32(entropy[1:5]))
	lo := uint64(binary.BigEndian.Uint32(entropy[5:9]))<<8 | uint64(entropy[9])
	for i := 0; i < 8; i++ {
		out[timeChars+7-i] = crockfordBase32[hi&0x1F]
		hi >>= 5
		out[timeChars+15-i] = crockfordBase32[lo&0x1F]
		lo >>= 5
	}

	return string(out[:])
}

// MessageID builds an RFC 5322 Message-ID ("<ulid@domain>") for the given
// mailbox. The domain part is taken from the mailbox; "localhost" is used
// when the mailbox has none.
func MessageID(mailbox string) string {
	domain := "localhost"
	if at := strings.LastIndexByte(mailbox, '@'); at >= 0 && at < len(mailbox)-1 {
		domain = strings.Trim(mailbox[at+1:], "<> ")
	}
	return "<" + NewULID() + "@" + domain + ">"
}
