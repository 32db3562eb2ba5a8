package config

const (
	defaultStateDir     = "~/.local/share/multitube"
	defaultLogDir       = "~/.local/share/multitube/logs"
	defaultStorageKey   = "youtube-multi-viewer-groups"
	defaultEmbedHost    = "www.youtube.com"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultStorageFile  = "multitube.db"
	defaultSeedDefaults = true
)

// Storage backend identifiers accepted by storage.backend.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Storage: Storage{
			Backend:      BackendSQLite,
			Key:          defaultStorageKey,
			SQLiteFile:   defaultStorageFile,
			SeedDefaults: defaultSeedDefaults,
		},
		Player: Player{
			EmbedHost: defaultEmbedHost,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
