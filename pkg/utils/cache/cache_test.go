package cache_test

import (
	"sync"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/secmon-lab/iris/pkg/utils/cache"
)

func TestMap(t *testing.T) {
	t.Run("get returns stored value", func(t *testing.T) {
		c := cache.New[string, int]()
		_, ok := c.Get("a")
		gt.Value(t, ok).Equal(false)

		c.Set("a", 1)
		v, ok := c.Get("a")
		gt.Value(t, ok).Equal(true)
		gt.Number(t, v).Equal(1)
		gt.Number(t, c.Len()).Equal(1)
	})

	t.Run("concurrent writers on the same key are tolerated", func(t *testing.T) {
		c := cache.New[string, int]()
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				c.Set("key", n)
				_, _ = c.Get("key")
			}(i)
		}
		wg.Wait()

		_, ok := c.Get("key")
		gt.Value(t, ok).Equal(true)
		gt.Number(t, c.Len()).Equal(1)
	})
}
