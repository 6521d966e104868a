package observability

import "sync"

// Totals is a point-in-time copy of the run counters.
type Totals struct {
	CacheHits      map[string]int
	CacheMisses    map[string]int
	Uploads        int
	Patches        int
	Skipped        int
	LookupFailures int
}

// Inmem accumulates run counters in memory; main logs the totals when the
// run finishes.
type Inmem struct {
	mu     sync.Mutex
	hits   map[string]int
	misses map[string]int
	totals struct {
		uploads, patches, skipped, lookupFailures int
	}
}

func NewInmem() *Inmem {
	return &Inmem{
		hits:   make(map[string]int),
		misses: make(map[string]int),
	}
}

func (m *Inmem) IncCacheHit(tier string) {
	m.mu.Lock()
	m.hits[tier]++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss(tier string) {
	m.mu.Lock()
	m.misses[tier]++
	m.mu.Unlock()
}

func (m *Inmem) IncUpload() {
	m.mu.Lock()
	m.totals.uploads++
	m.mu.Unlock()
}

func (m *Inmem) IncPatch() {
	m.mu.Lock()
	m.totals.patches++
	m.mu.Unlock()
}

func (m *Inmem) IncSkipped() {
	m.mu.Lock()
	m.totals.skipped++
	m.mu.Unlock()
}

func (m *Inmem) IncLookupFailure() {
	m.mu.Lock()
	m.totals.lookupFailures++
	m.mu.Unlock()
}

func (m *Inmem) Totals() Totals {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := Totals{
		CacheHits:      make(map[string]int, len(m.hits)),
		CacheMisses:    make(map[string]int, len(m.misses)),
		Uploads:        m.totals.uploads,
		Patches:        m.totals.patches,
		Skipped:        m.totals.skipped,
		LookupFailures: m.totals.lookupFailures,
	}
	for k, v := range m.hits {
		t.CacheHits[k] = v
	}
	for k, v := range m.misses {
		t.CacheMisses[k] = v
	}
	return t
}
