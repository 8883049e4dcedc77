package ports

// RecheckCache remembers the modification time at which each file last passed,
// so unchanged files can be skipped across sessions.
//
//go:generate mockgen -source=recheck_cache.go -destination=mocks/mock_recheck_cache.go -package=mocks
type RecheckCache interface {
	// Load reads the persisted entries into memory. It is called once at session start.
	Load() error

	// IsFresh reports whether path last passed at exactly mtime.
	IsFresh(path string, mtime int64) bool

	// Record stores mtime as the last passing modification time of path.
	Record(path string, mtime int64)

	// Save persists all in-memory entries, replacing the stored ones. It is called once at session end.
	Save() error
}
