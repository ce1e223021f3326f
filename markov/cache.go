package markov

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/katalvlaran/stochmat/matrix"
)

// Fingerprint returns a hex BLAKE3-256 digest of m's shape and the IEEE-754
// bits of every entry in row-major order. Equal fingerprints mean bitwise
// equal matrices (so 0 and -0 differ).
//
// Errors: matrix.ErrNilMatrix, or an At error from m.
func Fingerprint(m matrix.Matrix) (string, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return "", markovErrorf("Fingerprint", err)
	}
	r, c := m.Rows(), m.Cols()
	buf := make([]byte, 0, 16+8*r*c)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(r))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(c))

	if d, ok := m.(*matrix.Dense); ok {
		for _, v := range d.RawData() {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				v, err := m.At(i, j)
				if err != nil {
					return "", markovErrorf("Fingerprint", err)
				}
				buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
			}
		}
	}

	sum := blake3.Sum256(buf)

	return hex.EncodeToString(sum[:]), nil
}

// Cache shares one StochMatrix per distinct matrix content, so repeated
// analyses of the same chain reuse its memoized decomposition. The zero value
// is not usable; call NewCache. Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*StochMatrix
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*StochMatrix)}
}

// Get returns the shared StochMatrix for m's content, building it on a miss.
// Construction errors (see NewStochMatrix) are returned and nothing is cached.
func (c *Cache) Get(m matrix.Matrix) (*StochMatrix, error) {
	key, err := Fingerprint(m)
	if err != nil {
		return nil, fmt.Errorf("Cache.Get: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if sm, ok := c.entries[key]; ok {
		return sm, nil
	}
	sm, err := NewStochMatrix(m)
	if err != nil {
		return nil, fmt.Errorf("Cache.Get: %w", err)
	}
	c.entries[key] = sm

	return sm, nil
}

// Len returns the number of cached matrices.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Reset drops every cached entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
