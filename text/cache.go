package text

import (
	"slices"
	"sync"

	"github.com/gogpu/minigui"
)

// defaultOutlineCacheSize is the soft limit of a Font's outline cache.
const defaultOutlineCacheSize = 1024

// glyphOutline is the cached result of collecting one glyph.
type glyphOutline struct {
	points []OutlinePoint
	bounds minigui.Rect
	// empty is set for glyphs without contours, such as space.
	empty bool
	err   error
}

// outlineCache is a thread-safe LRU cache of glyph outlines with a soft
// limit. When it grows past the limit the least recently used quarter is
// evicted.
//
// outlineCache must not be copied after creation (has mutex).
type outlineCache struct {
	mu        sync.Mutex
	entries   map[GlyphID]*outlineEntry
	softLimit int
	tick      int64 // monotonic access counter
}

type outlineEntry struct {
	value *glyphOutline
	atime int64
}

// newOutlineCache creates a cache. A softLimit of 0 means unlimited.
func newOutlineCache(softLimit int) *outlineCache {
	return &outlineCache{
		entries:   make(map[GlyphID]*outlineEntry),
		softLimit: softLimit,
	}
}

// getOrCreate returns the cached outline for gid or builds it with create.
// create runs under the lock so a glyph is collected at most once.
func (c *outlineCache) getOrCreate(gid GlyphID, create func() *glyphOutline) *glyphOutline {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[gid]; ok {
		e.atime = c.tick
		return e.value
	}

	v := create()
	c.entries[gid] = &outlineEntry{value: v, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return v
}

// len returns the number of cached outlines.
func (c *outlineCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest shrinks the cache to three quarters of its soft limit.
// Caller must hold c.mu.
func (c *outlineCache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		gid   GlyphID
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for gid, e := range c.entries {
		all = append(all, aged{gid: gid, atime: e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		return int(a.atime - b.atime)
	})
	for _, e := range all[:n] {
		delete(c.entries, e.gid)
	}
}
