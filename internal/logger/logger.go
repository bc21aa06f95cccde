package logger

import (
	"go.uber.org/zap"
)

// Log is the shared engine logger. Call Init before use.
var Log *zap.Logger

func Init() {
	if Log != nil {
		return
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	Log = logger
}
