// Package app provides logger initialization.
package app

import (
	"os"

	"github.com/inspectwise/inspection-service/internal/logger"
)

// InitializeLogger configures the global logger from LOG_LEVEL and LOG_PRETTY.
func InitializeLogger() {
	logger.Init(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_PRETTY") == "true")
}
