package types

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// IDSource mints identifiers for new items and sections.
// Engines take an IDSource so tests can supply deterministic ids.
type IDSource func() string

// NewID returns a fresh random identifier
func NewID() string {
	return uuid.NewString()
}

// SectionID turns a raw identifier into an ad-hoc section id
func SectionID(prefix, raw string) string {
	if strings.HasPrefix(raw, prefix) {
		return raw
	}
	return prefix + raw
}

// Sequence returns an IDSource yielding prefix1, prefix2, ... in order
func Sequence(prefix string) IDSource {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return prefix + strconv.Itoa(n)
	}
}
