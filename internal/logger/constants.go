package logger

import "log/slog"

// Accepted LOG_LEVEL values
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// levels maps LOG_LEVEL values, including the "warning" alias, to slog levels
var levels = map[string]slog.Level{
	LogLevelDebug: slog.LevelDebug,
	LogLevelInfo:  slog.LevelInfo,
	LogLevelWarn:  slog.LevelWarn,
	"warning":     slog.LevelWarn,
	LogLevelError: slog.LevelError,
}

// Accepted LOG_FORMAT values; anything but json renders as text
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Identity stamped on records when the app config does not provide one
const (
	DefaultServiceName    = "jackpot-engine"
	DefaultVersion        = "dev"
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attribute keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
