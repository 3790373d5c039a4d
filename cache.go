package beans

import (
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// instanceCache stores singleton instances by definition name.
// It is safe for concurrent use.
type instanceCache struct {
	instances *gocache.Cache

	// locks holds one *sync.Mutex per name, serializing creation
	locks sync.Map
}

// newInstanceCache creates a new instance cache whose entries never expire.
func newInstanceCache() *instanceCache {
	return &instanceCache{
		instances: gocache.New(gocache.NoExpiration, 0),
	}
}

// get retrieves an instance from the cache
func (c *instanceCache) get(name string) (any, bool) {
	return c.instances.Get(name)
}

// getOrCreate returns the cached instance for name, calling create on a miss.
// Concurrent misses for the same name wait for a single create call; misses
// for different names do not block each other. Errors are not cached, so the
// next caller retries.
func (c *instanceCache) getOrCreate(name string, create func() (any, error)) (any, bool, error) {
	if instance, ok := c.get(name); ok {
		return instance, false, nil
	}

	lock := c.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	if instance, ok := c.get(name); ok {
		return instance, false, nil
	}

	instance, err := create()
	if err != nil {
		return nil, false, err
	}

	c.instances.Set(name, instance, gocache.NoExpiration)

	return instance, true, nil
}

// lockFor returns the creation lock for name.
func (c *instanceCache) lockFor(name string) *sync.Mutex {
	lock, _ := c.locks.LoadOrStore(name, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// count returns the number of cached instances
func (c *instanceCache) count() int {
	return c.instances.ItemCount()
}
