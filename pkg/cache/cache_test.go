package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGetDelete(t *testing.T) {
	c := New[int32, string]()

	_, ok := c.Get(1)
	assert.False(t, ok)

	c.Set(1, "one")
	got, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", got)
	assert.Equal(t, 1, c.Size())

	c.Delete(1)
	_, ok = c.Get(1)
	assert.False(t, ok)
	assert.Zero(t, c.Size())
}

func TestCacheKeys(t *testing.T) {
	c := New[string, int]()
	c.Set("a", 1)
	c.Set("b", 2)

	keys := c.Keys()
	assert.ElementsMatch(t, []string{"a", "b"}, keys)
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int, int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Set(n, n)
			c.Get(n)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Size())
}
