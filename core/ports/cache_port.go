package ports

// CacheStorage is the part of the browser CacheStorage the worker touches
// while activating: listing the named caches and deleting them.
type CacheStorage interface {
	Keys() []string
	Delete(name string) bool
}
