package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when no source provided a value.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultSyncInterval   = 5 * time.Minute
	DefaultZoneName       = "zonesync"
	DefaultZoneOwner      = "_current"
	DefaultDBPath         = "zonesync.db"
)

// ClientApp holds application-level settings for the sync client.
type ClientApp struct {
	// AuthToken is the bearer token for the remote record store.
	AuthToken string
}

// ClientRemote holds network settings for the remote store adapter.
type ClientRemote struct {
	// Address is the record store base URL.
	Address string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database settings.
type ClientDB struct {
	// Path is the SQLite database file path.
	Path string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds zone identity and background sync settings.
type ClientSync struct {
	// ZoneName is the custom record zone's name.
	ZoneName string
	// ZoneOwner identifies the zone owner.
	ZoneOwner string
	// Interval defines how often the background sync job runs.
	Interval time.Duration
}

// ClientConfig is the validated client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level settings.
	App ClientApp
	// Remote contains remote store endpoint settings.
	Remote ClientRemote
	// Storage contains local storage settings.
	Storage ClientStorage
	// Sync contains zone and background job settings.
	Sync ClientSync
}

// GetClientConfig builds and validates the client configuration. It loads the
// merged structured config, maps the fields relevant to the sync client,
// applies defaults for optional values, and validates the result.
func GetClientConfig(overrides Overrides) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			AuthToken: cfg.App.AuthToken,
		},
		Remote: ClientRemote{
			Address:        cfg.Remote.Address,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				Path: cfg.Storage.DB.Path,
			},
		},
		Sync: ClientSync{
			ZoneName:  cfg.Sync.ZoneName,
			ZoneOwner: cfg.Sync.ZoneOwner,
			Interval:  cfg.Sync.Interval,
		},
	}
	clientCfg.applyDefaults()

	if err = clientCfg.validate(); err != nil {
		return nil, err
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Remote.RequestTimeout == 0 {
		cfg.Remote.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = DefaultSyncInterval
	}
	if cfg.Sync.ZoneName == "" {
		cfg.Sync.ZoneName = DefaultZoneName
	}
	if cfg.Sync.ZoneOwner == "" {
		cfg.Sync.ZoneOwner = DefaultZoneOwner
	}
	if cfg.Storage.DB.Path == "" {
		cfg.Storage.DB.Path = DefaultDBPath
	}
}
