package snapshot

import (
	"context"
	"log/slog"

	"multitube/internal/channels"
	"multitube/internal/kvstore"
	"multitube/internal/logging"
)

// Persister saves the group list after every committed store change.
type Persister struct {
	kv     kvstore.Store
	key    string
	logger *slog.Logger
}

// NewPersister returns a listener writing to key in kv.
func NewPersister(kv kvstore.Store, key string, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Persister{kv: kv, key: key, logger: logger}
}

// StateChanged implements channels.Listener.
func (p *Persister) StateChanged(ctx context.Context, change channels.Change) {
	_ = Save(ctx, p.kv, p.key, change.After.Groups, p.logger)
}
