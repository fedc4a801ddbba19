package storage

import (
	"fmt"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/interfaces"
	"github.com/bobmcallan/pulse/internal/storage/snapshotdb"
)

// NewSnapshotStore builds the snapshot store selected by config:
// "memory" (default) or "badger" for the file-backed store.
func NewSnapshotStore(logger *common.Logger, cfg common.CacheConfig) (interfaces.SnapshotStore, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemoryStore(cfg.GetTTL()), nil
	case "badger":
		return snapshotdb.NewStore(logger, cfg.Path, cfg.GetTTL())
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
