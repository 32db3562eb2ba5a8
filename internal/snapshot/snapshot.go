package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"multitube/internal/channels"
	"multitube/internal/kvstore"
	"multitube/internal/logging"
)

// Load restores the saved group list. An absent or empty key yields the
// default groups when seedDefaults is set and an empty list otherwise. Read
// and decode failures are logged and yield an empty list.
func Load(ctx context.Context, kv kvstore.Store, key string, seedDefaults bool, logger *slog.Logger) []channels.Group {
	logger = logging.NewComponentLogger(logger, "snapshot")

	data, ok, err := kv.Get(ctx, key)
	if err != nil {
		logging.WarnWithContext(logger, "failed to read saved groups", "snapshot_read_failed",
			logging.String(logging.FieldStorageKey, key),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the storage backend and its permissions"),
			logging.String(logging.FieldImpact, "starting with no groups"))
		return []channels.Group{}
	}
	if !ok || len(strings.TrimSpace(string(data))) == 0 {
		if !seedDefaults {
			return []channels.Group{}
		}
		logger.Debug("no saved groups, using defaults", logging.String(logging.FieldStorageKey, key))
		return DefaultGroups()
	}

	groups, err := Decode(data)
	if err != nil {
		logging.WarnWithContext(logger, "failed to parse saved groups", "snapshot_decode_failed",
			logging.String(logging.FieldStorageKey, key),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "the next change overwrites the unreadable snapshot"),
			logging.String(logging.FieldImpact, "starting with no groups"))
		return []channels.Group{}
	}

	logger.Debug("loaded saved groups",
		logging.String(logging.FieldStorageKey, key),
		logging.Int("group_count", len(groups)))
	return groups
}

// Save writes groups under key. Failures are logged and reported so callers
// can choose to ignore them.
func Save(ctx context.Context, kv kvstore.Store, key string, groups []channels.Group, logger *slog.Logger) error {
	logger = logging.NewComponentLogger(logger, "snapshot")

	data, err := Encode(groups)
	if err == nil {
		err = kv.Set(ctx, key, data)
	}
	if err != nil {
		logging.WarnWithContext(logger, "failed to save groups", "snapshot_write_failed",
			logging.String(logging.FieldStorageKey, key),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check free space and permissions of the state directory"),
			logging.String(logging.FieldImpact, "recent group changes will be lost on exit"))
		return err
	}
	return nil
}

// Encode renders groups in the snapshot wire format, a JSON array of groups.
func Encode(groups []channels.Group) ([]byte, error) {
	if groups == nil {
		groups = []channels.Group{}
	}
	data, err := json.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("encode groups: %w", err)
	}
	return data, nil
}

// Decode parses the snapshot wire format. A JSON null decodes to an empty list.
func Decode(data []byte) ([]channels.Group, error) {
	var groups []channels.Group
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, fmt.Errorf("decode groups: %w", err)
	}
	if groups == nil {
		groups = []channels.Group{}
	}
	return groups, nil
}
