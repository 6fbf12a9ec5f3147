package logger

import (
	"go.uber.org/zap"
)

// New builds a development logger for "development" and a JSON production
// logger for everything else.
func New(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
