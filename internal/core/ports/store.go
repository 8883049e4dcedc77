package ports

// CacheStore defines the cross-session key/value cache facility.
// Values are JSON-serialisable; keys are slash-separated names like "black/mtimes".
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Get decodes the value stored under key into dst.
	// It returns false, nil if no value is stored.
	Get(cacheDir, key string, dst any) (bool, error)

	// Set stores value under key, replacing any previous value.
	Set(cacheDir, key string, value any) error
}
