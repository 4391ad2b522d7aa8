package shelf

import (
	"encoding/binary"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/bookshelf/bloom"
	"github.com/google/uuid"
)

const (
	idPrefix    = "BS"
	idRandomLen = 7

	// 36^7, the number of distinct random suffixes.
	idRandomSpace = 78364164096

	expectedIDs = 10000
	idFPRate    = 0.001
)

// IDGenerator issues book IDs made of a millisecond timestamp and a
// random suffix, both in base 36, e.g. "BSm3k1x0a2-4fz09qk".
type IDGenerator struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Random returns the random component. Defaults to bits of a v4 UUID.
	Random func() uint64

	seen *bloom.Filter
}

// NewIDGenerator returns an IDGenerator with default clock and randomness.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{
		Now:    time.Now,
		Random: randomUint64,
		seen:   bloom.NewFilter(expectedIDs, idFPRate),
	}
}

// Next returns a new ID. When the filter reports that a candidate may
// already exist, taken decides and a taken candidate is discarded.
func (g *IDGenerator) Next(taken func(id string) bool) string {
	for {
		id := FormatID(g.Now(), g.Random())
		if g.seen.Test(id) && taken(id) {
			continue
		}
		g.seen.Add(id)
		return id
	}
}

// Observe records an ID that was issued elsewhere, such as one loaded
// from storage.
func (g *IDGenerator) Observe(id string) {
	g.seen.Add(id)
}

// FormatID builds an ID from a timestamp and a random value.
func FormatID(t time.Time, random uint64) string {
	suffix := strconv.FormatUint(random%idRandomSpace, 36)
	if n := idRandomLen - len(suffix); n > 0 {
		suffix = strings.Repeat("0", n) + suffix
	}
	return idPrefix + strconv.FormatInt(t.UnixMilli(), 36) + "-" + suffix
}

func randomUint64() uint64 {
	u := uuid.New()
	return binary.BigEndian.Uint64(u[:8])
}
