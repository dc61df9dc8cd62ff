package log

import (
	"os"

	"go.uber.org/zap"
)

//ExitOnFatal is switched off by tests that exercise Fatal
var ExitOnFatal = true

//Init builds the process logger and installs it as zap's global one
func Init(debug bool) (func(), error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	restore := zap.ReplaceGlobals(logger)

	return func() {
		_ = logger.Sync()
		restore()
	}, nil
}

func Fatal(v ...interface{}) {
	zap.S().Error(v...)
	if ExitOnFatal {
		_ = zap.L().Sync()
		os.Exit(1)
	}
}

func WarnIfErr(description string, err error) {
	if err != nil {
		zap.L().Warn(description, zap.Error(err))
	}
}

func ErrIfErr(description string, err error) {
	if err != nil {
		zap.L().Error(description, zap.Error(err))
	}
}
