package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env schema version this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"CATALOG_PATH",
}

// envWarning inspects the environment and returns a warning, or "" when the
// setting is fine
type envWarning func() string

var envWarnings = []envWarning{
	func() string {
		if os.Getenv("SIM_SEED") == "" {
			return "SIM_SEED is not set - seeds for requests that omit one count up from the default base"
		}
		return ""
	},
	func() string {
		if os.Getenv("ENVIRONMENT") == "prod" && os.Getenv("LOG_FORMAT") != "json" {
			return "LOG_FORMAT should be json in prod so logs stay machine readable"
		}
		return ""
	},
	func() string {
		n, err := strconv.Atoi(os.Getenv("SIM_WORKERS"))
		if err == nil && n > 4*runtime.NumCPU() {
			return fmt.Sprintf("SIM_WORKERS=%d is far above the %d available CPUs - episodes are CPU bound", n, runtime.NumCPU())
		}
		return ""
	},
}

// ValidateEnv checks the schema version, that every required variable is
// set and that the catalog file exists
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	switch {
	case schemaVersion == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	case schemaVersion != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	path := os.Getenv("CATALOG_PATH")
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("CATALOG_PATH %q does not exist", path)
		}
		return fmt.Errorf("CATALOG_PATH %q is not readable: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("CATALOG_PATH %q is a directory, expected a catalog file", path)
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and, when it passes, reports
// non-fatal configuration smells
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, check := range envWarnings {
		if w := check(); w != "" {
			warnings = append(warnings, w)
		}
	}
	return warnings, nil
}
