// Package cache provides a generic, concurrency-safe LRU cache.
//
//	c := cache.NewLRUCache[string, []byte](256)
//	c.Put("site_email", data)
//	data, ok := c.Get("site_email")
//
// When the cache is full, Put evicts the least recently used entry. Get and
// Put both count as a use. Stats reports hit and miss counts for Get.
package cache
