package modcatalog

// ==================== Configuration ====================

// CatalogSchemaPath is the embedded schema every catalog file is checked against.
const CatalogSchemaPath = "schemas/mod_catalog.schema.json"

// DefaultCacheSize is the number of distinct queries the Cached decorator keeps.
const DefaultCacheSize = 4096

// ==================== Error Messages ====================

// File operation error messages
const (
	ErrMsgReadCatalogFileFailed = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed    = "failed to parse catalog: %w"
	ErrMsgSchemaFailedFmt       = "schema validation failed for %s: %w"
)

// Validation error messages (fragments used with error wrapping)
const (
	ErrMsgNoTiersDefined   = "no tiers defined"
	ErrMsgEmptyCatalog     = "mod catalog has no tiers"
	ErrMsgInvertedRangeFmt = "tier %q has value range %d with min %v > max %v"
	ErrMsgDuplicateTierFmt = "%w: %q in attribute type %q"
)
