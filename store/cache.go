package store

import (
	"hash/fnv"
	"sync"
)

// numCacheShards is the shard count for CachedStore's read-through
// cache; a power of two for fast modulo via bitmask.
const numCacheShards = 16

type cacheShard struct {
	mu    sync.Mutex
	items map[string][]byte
}

// shardedCache is an unbounded, sharded read-through cache for decoded
// (decompressed) values. It trades memory for avoiding repeated zstd
// decode work on hot keys; eviction is left to invalidate/reset rather
// than an LRU policy, since the expected key count (one entry per
// distinct trie/manifest name) is small relative to a registry hive's
// name-decode traffic.
type shardedCache struct {
	shards [numCacheShards]*cacheShard
}

func newShardedCache() *shardedCache {
	sc := &shardedCache{}
	for i := range sc.shards {
		sc.shards[i] = &cacheShard{items: make(map[string][]byte)}
	}
	return sc
}

func shardFor(key []byte) int {
	h := fnv.New32a()
	h.Write(key) //nolint:errcheck // fnv hash.Write never errors
	return int(h.Sum32() & (numCacheShards - 1))
}

func (sc *shardedCache) lookup(key []byte) ([]byte, bool) {
	s := sc.shards[shardFor(key)]
	s.mu.Lock()
	v, ok := s.items[string(key)]
	s.mu.Unlock()
	return v, ok
}

func (sc *shardedCache) store(key, value []byte) {
	s := sc.shards[shardFor(key)]
	s.mu.Lock()
	s.items[string(key)] = append([]byte(nil), value...)
	s.mu.Unlock()
}

func (sc *shardedCache) invalidate(key []byte) {
	s := sc.shards[shardFor(key)]
	s.mu.Lock()
	delete(s.items, string(key))
	s.mu.Unlock()
}

func (sc *shardedCache) reset() {
	for _, s := range sc.shards {
		s.mu.Lock()
		s.items = make(map[string][]byte)
		s.mu.Unlock()
	}
}

// CachedStore wraps a Store with a sharded in-memory read cache. Writes
// go through to the underlying Store and update the cache; reads are
// served from the cache on hit.
type CachedStore struct {
	backing Store
	cache   *shardedCache
}

// NewCachedStore wraps backing with a read-through cache.
func NewCachedStore(backing Store) *CachedStore {
	return &CachedStore{backing: backing, cache: newShardedCache()}
}

func (c *CachedStore) Get(key []byte) ([]byte, error) {
	if v, ok := c.cache.lookup(key); ok {
		return append([]byte(nil), v...), nil
	}
	v, err := c.backing.Get(key)
	if err != nil {
		return nil, err
	}
	c.cache.store(key, v)
	return v, nil
}

func (c *CachedStore) Put(key, value []byte) error {
	if err := c.backing.Put(key, value); err != nil {
		return err
	}
	c.cache.store(key, value)
	return nil
}

func (c *CachedStore) Delete(key []byte) error {
	if err := c.backing.Delete(key); err != nil {
		return err
	}
	c.cache.invalidate(key)
	return nil
}

func (c *CachedStore) Close() error {
	c.cache.reset()
	return c.backing.Close()
}
