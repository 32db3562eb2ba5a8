package main

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"multitube/internal/config"
	"multitube/internal/kvstore"
	"multitube/internal/testsupport"
)

func TestCommandsFailOnSchemaMismatch(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithBackend(config.BackendSQLite))
	path := env.cfg.SQLitePath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir state dir: %v", err)
	}
	kv, err := kvstore.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump schema version: %v", err)
	}
	_ = db.Close()

	_, _, err = runCLI(t, []string{"group", "list"}, env.configPath, "")
	if err == nil {
		t.Fatal("expected storage error")
	}
	if !errors.Is(err, kvstore.ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
	requireContains(t, err.Error(), "open storage")
}
