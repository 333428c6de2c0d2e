package config

import "time"

// Overrides carries configuration values collected from command-line flags.
// The CLI layer owns flag registration (cobra); config only merges the
// resulting values into the layered configuration, below environment
// variables and above the JSON file.
type Overrides struct {
	RemoteAddress  string
	RequestTimeout time.Duration
	AuthToken      string
	DBPath         string
	ZoneName       string
	ZoneOwner      string
	SyncInterval   time.Duration
	ConfigFile     string
}

func (o Overrides) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AuthToken: o.AuthToken,
		},
		Remote: Remote{
			Address:        o.RemoteAddress,
			RequestTimeout: o.RequestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Path: o.DBPath,
			},
		},
		Sync: Sync{
			ZoneName:  o.ZoneName,
			ZoneOwner: o.ZoneOwner,
			Interval:  o.SyncInterval,
		},
		JSONFilePath: o.ConfigFile,
	}
}
