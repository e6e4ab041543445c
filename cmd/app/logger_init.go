package main

import (
	"github.com/osse101/JackpotEngine_Go/internal/logger"
)

// initEarlyLogger installs a stdout logger so configuration failures are
// reported before the session log exists
func initEarlyLogger() {
	logger.InitLogger(logger.DefaultConfig())
}
