package logger

import (
	"go.uber.org/zap"
)

var _logger = zap.NewNop()

// Init replaces the no-op logger. Verbose enables debug output in the
// human readable development format.
func Init(verbose bool) error {
	build := zap.NewProduction
	if verbose {
		build = zap.NewDevelopment
	}
	l, err := build()
	if err != nil {
		return err
	}
	_logger = l
	return nil
}

func Sync() {
	_ = _logger.Sync()
}

func Error(message string, field ...zap.Field) {
	_logger.Error(message, field...)
}

func Warn(message string, field ...zap.Field) {
	_logger.Warn(message, field...)
}

func Info(message string, field ...zap.Field) {
	_logger.Info(message, field...)
}

func Debug(message string, field ...zap.Field) {
	_logger.Debug(message, field...)
}
