package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheService_SetGetExpire(t *testing.T) {
	cs := NewCacheService()
	defer cs.Close()

	cs.Set("directory:lawyers", []string{"a"}, time.Minute)
	v, ok := cs.Get("directory:lawyers")
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, v)

	cs.Set("short", 1, -time.Second)
	_, ok = cs.Get("short")
	assert.False(t, ok)

	cs.evictExpired(time.Now())
	cs.mu.RLock()
	_, stillThere := cs.cache["short"]
	cs.mu.RUnlock()
	assert.False(t, stillThere)
}

func TestCacheService_DeleteAndClose(t *testing.T) {
	cs := NewCacheService()
	defer cs.Close()

	cs.Set("other", 3, time.Minute)
	_, ok := cs.Get("other")
	assert.True(t, ok)

	cs.Delete("other")
	_, ok = cs.Get("other")
	assert.False(t, ok)

	cs.Close()
	cs.Close()
}
