// Package idgen hands out record identifiers.
package idgen

import (
	"io"
	"math/rand"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator returns a fresh identifier on every call.
type Generator interface {
	NewID() string
}

// ULID generates lexically sortable ids that stay unique when many records
// are created within the same millisecond.
type ULID struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

// NewULID returns a ULID generator seeded from the wall clock.
func NewULID() *ULID {
	return &ULID{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
		now:     time.Now,
	}
}

// NewID implements Generator.
func (g *ULID) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(g.now()), g.entropy).String()
}

// Sequence generates prefix-1, prefix-2, ... and is meant for tests and
// deterministic fixtures.
type Sequence struct {
	prefix string
	next   atomic.Int64
}

// NewSequence returns a counter generator.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// NewID implements Generator.
func (s *Sequence) NewID() string {
	return s.prefix + "-" + strconv.FormatInt(s.next.Add(1), 10)
}
