package logger

import (
	"log/slog"
	"strings"
)

// Config controls how the engine's logs are rendered and which identity
// attributes every record carries.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or text
	ServiceName string
	Version     string
	Environment string
	// Catalog is the mod catalog file the process serves from. Tagging every
	// record with it ties simulation logs to the data that produced them.
	Catalog   string
	AddSource bool
}

// ProductionConfig logs JSON at info level without source locations
func ProductionConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: DefaultServiceName,
		Version:     ProductionVersion,
		Environment: EnvironmentProduction,
		Catalog:     DefaultCatalog,
	}
}

// DevelopmentConfig logs text at debug level with source locations
func DevelopmentConfig() Config {
	cfg := DefaultConfig()
	cfg.Level = LogLevelDebug
	cfg.AddSource = true
	return cfg
}

// DefaultConfig is used when the app has not supplied one
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
		Catalog:     DefaultCatalog,
	}
}

// LogLevel maps Level onto slog, falling back to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns the identity attributes attached to every record.
// Empty values are left out.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := make([]slog.Attr, 0, 4)
	for _, kv := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
		{AttrKeyCatalog, c.Catalog},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
