package utils

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_BasicOperations(t *testing.T) {
	registry := NewRegistry[string, int]("numbers")
	assert.Equal(t, 0, registry.Size())

	require.NoError(t, registry.Register("one", 1))
	value, exists := registry.Get("one")
	assert.True(t, exists)
	assert.Equal(t, 1, value)

	assert.True(t, registry.Has("one"))
	assert.False(t, registry.Has("two"))
	assert.Equal(t, 1, registry.Size())
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := NewRegistry[string, string]("templates")
	require.NoError(t, registry.Register("gin/main", "a"))

	err := registry.Register("gin/main", "b")
	assert.EqualError(t, err, "templates: gin/main is already registered")

	value, _ := registry.Get("gin/main")
	assert.Equal(t, "a", value)

	assert.Panics(t, func() { registry.MustRegister("gin/main", "c") })
}

func TestRegistry_KeysAndFilter(t *testing.T) {
	registry := NewRegistry[string, string]("templates")
	registry.MustRegister("koa/route", "")
	registry.MustRegister("express/index", "")
	registry.MustRegister("koa/index", "")

	assert.Equal(t, []string{"express/index", "koa/index", "koa/route"}, registry.Keys())
	assert.Equal(t, []string{"koa/index", "koa/route"}, registry.Filter(func(key, _ string) bool {
		return strings.HasPrefix(key, "koa/")
	}))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry[int, int]("concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = registry.Register(n, n*n)
			registry.Get(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, registry.Size())
}
