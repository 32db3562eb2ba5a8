package testsupport

import (
	"testing"

	"multitube/internal/channels"
	"multitube/internal/config"
	"multitube/internal/kvstore"
)

// MustOpenKV opens the configured kvstore backend and registers cleanup.
func MustOpenKV(t testing.TB, cfg *config.Config) kvstore.Store {
	t.Helper()

	kv, err := kvstore.Open(cfg)
	if err != nil {
		t.Fatalf("kvstore.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = kv.Close()
	})
	return kv
}

// MustNewStore returns a store seeded with groups and sequential group ids
// ("group-1", "group-2", ...).
func MustNewStore(t testing.TB, groups []channels.Group, opts ...channels.Option) *channels.Store {
	t.Helper()

	opts = append([]channels.Option{channels.WithIDGenerator(SequentialIDs("group"))}, opts...)
	return channels.NewStore(groups, opts...)
}
