package config

import "time"

const (
	// Configuration file paths
	ConfigPathModCatalog = "configs/mod_catalog.json"
)

// Defaults applied when a variable is unset
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultVersion          = "dev"
	DefaultServiceName      = "poe-craftsim"
	DefaultCatalogCacheSize = 4096
	DefaultSimWorkers       = 4
	DefaultSimQueueSize     = 256
	DefaultSimSeed          = 1
	DefaultSimMaxEpisodes   = 100000
	DefaultMaxBodyBytes     = 1 << 20
	DefaultShutdownTimeout  = 10 * time.Second
)
