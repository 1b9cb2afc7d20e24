// Package id issues run identifiers for simulations and comparisons.
//
// IDs are ULIDs drawn from one process-wide monotonic entropy source, so
// IDs issued by this process sort in issue order even within a millisecond.
package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy io.Reader = ulid.Monotonic(rand.New(rand.NewSource(seed())), 0)
)

func seed() int64 {
	var s int64
	if err := binary.Read(cryptoRand.Reader, binary.LittleEndian, &s); err != nil || s == 0 {
		s = time.Now().UnixNano()
	}
	return s
}

// New returns a fresh run ID.
func New() string {
	s, _ := NewStamped()
	return s
}

// NewStamped returns a fresh run ID together with the issue time it
// encodes, truncated to the millisecond and in UTC.
func NewStamped() (string, time.Time) {
	mu.Lock()
	defer mu.Unlock()

	v := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return v.String(), ulid.Time(v.Time()).UTC()
}
