package template

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

var (
	cache sync.Map // map[Variant]*Template
	group singleflight.Group
)

// Get returns the shared template for v, parsing it on first use.
// Concurrent first calls for the same variant parse only once.
func Get(v Variant) (*Template, error) {
	if v == "" {
		v = Plain
	}
	if t, ok := cache.Load(v); ok {
		return t.(*Template), nil
	}

	res, err, _ := group.Do(string(v), func() (interface{}, error) {
		if t, ok := cache.Load(v); ok {
			return t.(*Template), nil
		}
		t, err := New(v)
		if err != nil {
			return nil, err
		}
		cache.Store(v, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(*Template), nil
}
