package cache

import (
	"sync"
	"testing"
	"time"

	"translateapi/internal/core"
)

func TestLRUCache_BasicSetGet(t *testing.T) {
	cache := NewCache()
	defer cache.Stop()
	cache.Set("key1", "value1", 1*time.Hour)
	value, found := cache.Get("key1")
	if !found {
		t.Error("Expected to find key1")
	}
	if value != "value1" {
		t.Errorf("Expected 'value1', got '%v'", value)
	}
}

func TestLRUCache_GetNonExistent(t *testing.T) {
	cache := NewCache()
	defer cache.Stop()
	_, found := cache.Get("nonexistent")
	if found {
		t.Error("Should not find nonexistent key")
	}
}

func TestLRUCache_Expiration(t *testing.T) {
	cache := NewCache()
	defer cache.Stop()
	cache.Set("key", "value", 100*time.Millisecond)
	_, found := cache.Get("key")
	if !found {
		t.Error("Key should be found immediately after set")
	}
	time.Sleep(150 * time.Millisecond)
	_, found = cache.Get("key")
	if found {
		t.Error("Key should be expired")
	}
}

func TestLRUCache_Eviction(t *testing.T) {
	cache := NewCache()
	defer cache.Stop()
	cache.mu.Lock()
	cache.capacity = 2
	cache.mu.Unlock()
	cache.Set("key1", "value1", 1*time.Hour)
	cache.Set("key2", "value2", 1*time.Hour)
	cache.Set("key3", "value3", 1*time.Hour)
	if _, found := cache.Get("key1"); found {
		t.Error("key1 should be evicted")
	}
	if _, found := cache.Get("key2"); !found {
		t.Error("key2 should exist")
	}
	if _, found := cache.Get("key3"); !found {
		t.Error("key3 should exist")
	}
}

func TestLRUCache_LRUOrder(t *testing.T) {
	cache := NewCache()
	defer cache.Stop()
	cache.mu.Lock()
	cache.capacity = 2
	cache.mu.Unlock()
	cache.Set("key1", "value1", 1*time.Hour)
	cache.Set("key2", "value2", 1*time.Hour)
	cache.Get("key1")
	cache.Set("key3", "value3", 1*time.Hour)
	if _, found := cache.Get("key2"); found {
		t.Error("key2 should be evicted (least recently used)")
	}
	if _, found := cache.Get("key1"); !found {
		t.Error("key1 should exist")
	}
}

func TestLRUCache_Clear(t *testing.T) {
	cache := NewCache()
	defer cache.Stop()
	cache.Set("key1", "value1", 1*time.Hour)
	cache.Clear()
	if _, found := cache.Get("key1"); found {
		t.Error("Cleared cache should be empty")
	}
}

func TestLRUCache_ConcurrentAccess(t *testing.T) {
	cache := NewCache()
	defer cache.Stop()
	const numGoroutines = 100
	const numOperations = 100
	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := string(rune('a' + (id+j)%26))
				cache.Set(key, id*numOperations+j, 1*time.Hour)
			}
		}(i)
	}
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numOperations; j++ {
				key := string(rune('a' + (id+j)%26))
				cache.Get(key)
			}
		}(i)
	}
	wg.Wait()
}

func TestGenerateTranslationCacheKey(t *testing.T) {
	enHe := core.LanguagePair{Source: "en", Target: "he"}
	heEn := core.LanguagePair{Source: "he", Target: "en"}

	key1 := GenerateTranslationCacheKey(enHe, "Hello")
	key2 := GenerateTranslationCacheKey(enHe, "Hello")
	if key1 != key2 {
		t.Error("Identical requests should produce identical keys")
	}

	if GenerateTranslationCacheKey(enHe, "Hello") == GenerateTranslationCacheKey(enHe, "World") {
		t.Error("Different texts should produce different keys")
	}
	if GenerateTranslationCacheKey(enHe, "Hello") == GenerateTranslationCacheKey(heEn, "Hello") {
		t.Error("Different pairs should produce different keys")
	}
}
