package kvstore_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"multitube/internal/config"
	"multitube/internal/kvstore"
	"multitube/internal/testsupport"
)

func backends(t *testing.T) map[string]func(t *testing.T) kvstore.Store {
	t.Helper()
	return map[string]func(t *testing.T) kvstore.Store{
		"memory": func(t *testing.T) kvstore.Store {
			return kvstore.NewMemory()
		},
		"file": func(t *testing.T) kvstore.Store {
			store, err := kvstore.NewFileStore(filepath.Join(t.TempDir(), "snapshots"))
			if err != nil {
				t.Fatalf("NewFileStore: %v", err)
			}
			return store
		},
		"sqlite": func(t *testing.T) kvstore.Store {
			store, err := kvstore.OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
			if err != nil {
				t.Fatalf("OpenSQLite: %v", err)
			}
			return store
		},
	}
}

func TestBackendsRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			defer store.Close()

			if _, ok, err := store.Get(ctx, "groups"); err != nil || ok {
				t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
			}
			if err := store.Set(ctx, "groups", []byte(`[{"id":"a"}]`)); err != nil {
				t.Fatalf("Set: %v", err)
			}
			if err := store.Set(ctx, "groups", []byte(`[]`)); err != nil {
				t.Fatalf("Set overwrite: %v", err)
			}
			value, ok, err := store.Get(ctx, "groups")
			if err != nil || !ok {
				t.Fatalf("Get: ok=%v err=%v", ok, err)
			}
			if string(value) != "[]" {
				t.Fatalf("expected overwritten value, got %q", value)
			}
		})
	}
}

func TestBackendsRejectInvalidKeys(t *testing.T) {
	ctx := context.Background()
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			defer store.Close()
			for _, key := range []string{"", "  ", "a/b", `a\b`, ".."} {
				if err := store.Set(ctx, key, []byte("x")); !errors.Is(err, kvstore.ErrInvalidKey) {
					t.Fatalf("Set(%q) expected ErrInvalidKey, got %v", key, err)
				}
			}
		})
	}
}

func TestBackendsFailAfterClose(t *testing.T) {
	ctx := context.Background()
	for name, open := range backends(t) {
		t.Run(name, func(t *testing.T) {
			store := open(t)
			if err := store.Close(); err != nil {
				t.Fatalf("Close: %v", err)
			}
			if err := store.Close(); err != nil {
				t.Fatalf("second Close: %v", err)
			}
			if err := store.Set(ctx, "k", []byte("v")); !errors.Is(err, kvstore.ErrClosed) {
				t.Fatalf("expected ErrClosed, got %v", err)
			}
			if _, _, err := store.Get(ctx, "k"); !errors.Is(err, kvstore.ErrClosed) {
				t.Fatalf("expected ErrClosed, got %v", err)
			}
		})
	}
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	value := []byte("abc")
	if err := store.Set(ctx, "k", value); err != nil {
		t.Fatalf("Set: %v", err)
	}
	value[0] = 'z'
	got, _, _ := store.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("expected stored copy, got %q", got)
	}
}

func TestFileStoreWritesOneFilePerKey(t *testing.T) {
	dir := t.TempDir()
	store, err := kvstore.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer store.Close()

	if err := store.Set(context.Background(), "youtube-multi-viewer-groups", []byte("[]")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "youtube-multi-viewer-groups.json"))
	if err != nil {
		t.Fatalf("read key file: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("unexpected file content %q", data)
	}
	if _, err := os.Stat(filepath.Join(dir, "youtube-multi-viewer-groups.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("expected temp file renamed away, got %v", err)
	}
}

func TestSQLiteReopenKeepsValues(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")
	store, err := kvstore.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := store.Set(ctx, "k", []byte("persisted")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := kvstore.OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	value, ok, err := reopened.Get(ctx, "k")
	if err != nil || !ok || string(value) != "persisted" {
		t.Fatalf("expected persisted value, got %q ok=%v err=%v", value, ok, err)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	cases := map[string]func(kvstore.Store) bool{
		config.BackendMemory: func(s kvstore.Store) bool { _, ok := s.(*kvstore.Memory); return ok },
		config.BackendFile:   func(s kvstore.Store) bool { _, ok := s.(*kvstore.FileStore); return ok },
		config.BackendSQLite: func(s kvstore.Store) bool { _, ok := s.(*kvstore.SQLite); return ok },
	}
	for backend, check := range cases {
		t.Run(backend, func(t *testing.T) {
			cfg := testsupport.NewConfig(t, testsupport.WithBackend(backend))
			store := testsupport.MustOpenKV(t, cfg)
			if !check(store) {
				t.Fatalf("unexpected backend type %T", store)
			}
		})
	}

	cfg := config.Default()
	cfg.Storage.Backend = "redis"
	if _, err := kvstore.Open(&cfg); err == nil {
		t.Fatal("expected error for unsupported backend")
	}
}

func TestSQLiteRejectsUnknownSchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	store, err := kvstore.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 2"); err != nil {
		t.Fatalf("update version: %v", err)
	}
	_ = db.Close()

	if _, err := kvstore.OpenSQLite(path); !errors.Is(err, kvstore.ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
