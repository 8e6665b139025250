// Package codeccache keeps recently built Huffman codecs so that inputs
// with identical symbol counts share one tree and code table.
package codeccache

import (
	"encoding/binary"
	"log/slog"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"

	"github.com/chronos-tachyon/huffcode"
)

// A Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	mu     sync.Mutex
	lfu    *tinylfu.T[uint64, *huffcode.Codec]
	logger *slog.Logger
	stats  Stats
}

// Stats counts cache outcomes.
type Stats struct {
	Hits       uint64
	Misses     uint64
	Collisions uint64
	Evictions  uint64
}

// MinCapacity is the smallest capacity New accepts.  tinylfu needs a
// window slot plus a probation and a protected slot.
const MinCapacity = 3

// New returns a Cache holding at most capacity codecs.  Capacities below
// MinCapacity are raised to MinCapacity.
func New(capacity int, logger *slog.Logger) *Cache {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Cache{logger: logger}
	c.lfu = tinylfu.New[uint64, *huffcode.Codec](capacity, capacity*10, identity, tinylfu.OnEvict(c.evict))
	return c
}

// Get returns a codec for input, building one if no codec with the same
// symbol counts is cached.  The bool result reports a cache hit.
func (c *Cache) Get(input []huffcode.Symbol) (*huffcode.Codec, bool, error) {
	freqs := huffcode.CountSymbols(input)
	key := Key(freqs)

	c.mu.Lock()
	defer c.mu.Unlock()

	if codec, ok := c.lfu.Get(key); ok {
		if codec.Frequencies().Equal(freqs) {
			c.stats.Hits++
			c.logger.Debug("codecCacheHit", "key", key, "symbols", freqs.Len())
			return codec, true, nil
		}
		c.stats.Collisions++
		c.logger.Warn("codecCacheCollision", "key", key)
	}

	codec, err := huffcode.NewCodecFromTable(freqs)
	if err != nil {
		return nil, false, err
	}

	c.stats.Misses++
	c.logger.Debug("codecCacheMiss", "key", key, "symbols", freqs.Len())
	c.lfu.Add(key, codec)
	return codec, false, nil
}

// put stores codec under an explicit key.
func (c *Cache) put(key uint64, codec *huffcode.Codec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lfu.Add(key, codec)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Key returns the cache key for a frequency table: an xxhash digest of
// its (symbol, count) entries in ascending symbol order.
func Key(freqs huffcode.FrequencyTable) uint64 {
	d := xxhash.New()
	var scratch [12]byte
	for _, sym := range freqs.Symbols() {
		binary.BigEndian.PutUint32(scratch[0:4], uint32(sym))
		binary.BigEndian.PutUint64(scratch[4:12], freqs.Count(sym))
		_, _ = d.Write(scratch[:])
	}
	return d.Sum64()
}

// called with c.mu held, from within lfu.Add
func (c *Cache) evict(key uint64, codec *huffcode.Codec) {
	c.stats.Evictions++
	c.logger.Debug("codecCacheEvict", "key", key, "codec", codec.String())
}

func identity(key uint64) uint64 { return key }
