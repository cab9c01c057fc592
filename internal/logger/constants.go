package logger

// ==================== Levels & Formats ====================

const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// ==================== Service Identity ====================

const (
	DefaultServiceName = "poe-craftsim"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
	DefaultCatalog     = "configs/mod_catalog.json"
)

const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// ==================== Attribute Keys ====================

// Base attributes attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyCatalog     = "catalog"
)

// Scoped attributes
const (
	AttrKeyRequestID = "request_id"
	AttrKeyComponent = "component"
	AttrKeyAction    = "action"
	AttrKeySeed      = "seed"
)
