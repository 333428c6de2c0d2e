package config

import "strings"

// validate checks that the assembled [ClientConfig] satisfies the invariants
// the client needs at startup. Returns nil if the configuration is valid, or
// a sentinel error describing the first invalid group.
func (cfg *ClientConfig) validate() error {
	if cfg.Remote.Address == "" || cfg.Remote.RequestTimeout <= 0 {
		return ErrInvalidRemoteConfigs
	}

	// Token persistence must survive restarts; an in-memory database would
	// silently force a full resync on every launch.
	if cfg.Storage.DB.Path == "" || strings.Contains(cfg.Storage.DB.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.ZoneName == "" || cfg.Sync.ZoneOwner == "" || cfg.Sync.Interval <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
