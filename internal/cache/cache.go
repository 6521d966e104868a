package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Codec converts values at the store boundary.
type Codec[T any] struct {
	Encode func(T) ([]byte, error)
	Decode func([]byte) (T, error)
}

// Bytes is the identity codec: raw bytes in, raw bytes out.
func Bytes() Codec[[]byte] {
	return Codec[[]byte]{
		Encode: func(b []byte) ([]byte, error) { return b, nil },
		Decode: func(b []byte) ([]byte, error) { return b, nil },
	}
}

// Strings stores strings as their raw bytes.
func Strings() Codec[string] {
	return Codec[string]{
		Encode: func(s string) ([]byte, error) { return []byte(s), nil },
		Decode: func(b []byte) (string, error) { return string(b), nil },
	}
}

// Cache is a namespaced view over a shared Store. The namespace prefix is
// baked into every storage key, so caches with different prefixes can never
// collide even on the same physical store. An LRU tier in front of the store
// keeps hot keys out of the filesystem within a run.
//
// There is no TTL and no eviction of the durable tier; durability and
// idempotence across runs are the only guarantees.
type Cache[T any] struct {
	prefix string
	store  Store
	codec  Codec[T]
	lru    *lru.Cache[string, T]
}

func New[T any](prefix string, store Store, codec Codec[T], lruCap int) (*Cache[T], error) {
	l, err := lru.New[string, T](lruCap)
	if err != nil {
		return nil, err
	}
	return &Cache[T]{
		prefix: prefix,
		store:  store,
		codec:  codec,
		lru:    l,
	}, nil
}

func (c *Cache[T]) storageKey(key string) string {
	return c.prefix + ":" + key
}

// Get returns the cached value for key. An empty stored value counts as a
// miss: the upstream sources never produce empty payloads, so an empty entry
// is something to re-fetch rather than trust.
func (c *Cache[T]) Get(key string) (T, bool, error) {
	var zero T
	sk := c.storageKey(key)

	if v, ok := c.lru.Get(sk); ok {
		return v, true, nil
	}

	raw, ok, err := c.store.Get(sk)
	if err != nil {
		return zero, false, err
	}
	if !ok || len(raw) == 0 {
		return zero, false, nil
	}

	v, err := c.codec.Decode(raw)
	if err != nil {
		return zero, false, err
	}
	c.lru.Add(sk, v)
	return v, true, nil
}

func (c *Cache[T]) Set(key string, val T) error {
	raw, err := c.codec.Encode(val)
	if err != nil {
		return err
	}
	sk := c.storageKey(key)
	if err := c.store.Set(sk, raw); err != nil {
		return err
	}
	c.lru.Add(sk, val)
	return nil
}
