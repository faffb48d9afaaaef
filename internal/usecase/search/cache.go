package search

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/DauDinhQuangAnh/BE-PROFILE-MEEE/internal/domain/entity"
)

// ErrMalformedVector reports a serialized vector that could not be
// parsed. The caller skips the record and continues the batch.
var ErrMalformedVector = errors.New("malformed serialized vector")

// VectorState classifies a stored vector string once, at the cache
// boundary, so downstream code never re-inspects raw strings.
type VectorState int

const (
	VectorEmbedded VectorState = iota
	VectorUnembedded
	VectorMalformed
)

// ResolvedVector is the tagged result of resolving a stored vector
// string. Values is populated only for VectorEmbedded.
type ResolvedVector struct {
	State  VectorState
	Values []float32
	Err    error
}

// VectorCache memoizes parses of serialized vector strings, keyed by the
// exact string. Entries live until Clear; parsing is a pure function of
// its input, so a redundant racing parse stores the same value.
type VectorCache struct {
	mu      sync.RWMutex
	entries map[string][]float32
}

func NewVectorCache() *VectorCache {
	return &VectorCache{entries: make(map[string][]float32)}
}

// Parse returns the numeric vector encoded by raw, memoizing successful
// parses. Failed parses are never cached. Callers must not mutate the
// returned slice.
func (c *VectorCache) Parse(raw string) ([]float32, error) {
	c.mu.RLock()
	vec, ok := c.entries[raw]
	c.mu.RUnlock()
	if ok {
		return vec, nil
	}

	vec, err := parseVector(raw)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[raw] = vec
	c.mu.Unlock()
	return vec, nil
}

// Resolve classifies a stored vector string: empty or the pending
// sentinel means the row has no usable embedding yet, anything else is
// parsed via the cache.
func (c *VectorCache) Resolve(raw string) ResolvedVector {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == entity.VectorPending {
		return ResolvedVector{State: VectorUnembedded}
	}
	vec, err := c.Parse(raw)
	if err != nil {
		return ResolvedVector{State: VectorMalformed, Err: err}
	}
	return ResolvedVector{State: VectorEmbedded, Values: vec}
}

// Clear drops all cached entries.
func (c *VectorCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string][]float32)
	c.mu.Unlock()
}

// Len reports the number of cached entries.
func (c *VectorCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// parseVector strictly parses a bracketed comma-separated float list,
// e.g. "[0.1, 0.2, 0.3]".
func parseVector(s string) ([]float32, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "[") || !strings.HasSuffix(trimmed, "]") {
		return nil, fmt.Errorf("%w: missing brackets", ErrMalformedVector)
	}
	inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if inner == "" {
		return []float32{}, nil
	}

	parts := strings.Split(inner, ",")
	vec := make([]float32, len(parts))
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %v", ErrMalformedVector, i, err)
		}
		vec[i] = float32(f)
	}
	return vec, nil
}

// FormatVector serializes a vector in the same textual encoding Parse
// accepts, so stored and parsed representations round-trip.
func FormatVector(vec []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
