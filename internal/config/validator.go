package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be set regardless of backend
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// BackendEnvVars lists the variables each store backend needs
var BackendEnvVars = map[string][]string{
	StoreBackendMemory:   nil,
	StoreBackendPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	StoreBackendSQLite:   {"SQLITE_PATH"},
	StoreBackendRedis:    {"REDIS_ADDR"},
}

// ValidateEnv checks that the schema version matches and every variable
// required by the selected STORE_BACKEND is set
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaVersionUnset, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatch, ExpectedEnvSchemaVersion, schemaVersion)
	}

	backend := strings.ToLower(os.Getenv("STORE_BACKEND"))
	if backend == "" {
		backend = StoreBackendPostgres
	}

	required := append(append([]string{}, RequiredEnvVars...), BackendEnvVars[backend]...)
	missing := lo.Filter(required, func(envVar string, _ int) bool {
		return os.Getenv(envVar) == ""
	})
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingEnvVars, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and reports non-critical issues
// such as example values left in place
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if getEnvAsBool("FORCE_WIN_FOR_TESTING", false) {
		warnings = append(warnings, "FORCE_WIN_FOR_TESTING is enabled - every reward evaluation will win")
	}

	return warnings, nil
}
