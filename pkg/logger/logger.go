package logger

import (
	"sync"

	"go.uber.org/zap"
)

type Config struct {
	Development bool `yaml:"development"`
}

var (
	mu     sync.Mutex
	global = zap.NewNop().Sugar()
)

// InitGlobalLogger replaces the global logger according to cfg. Before the
// first call every log line is dropped.
func InitGlobalLogger(cfg *Config) {
	var l *zap.Logger
	var err error

	if cfg.Development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return
	}

	mu.Lock()
	global = l.Sugar()
	mu.Unlock()
}

func Info(msg string, keysAndValues ...any) {
	global.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	global.Warnw(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	global.Errorw(msg, keysAndValues...)
}
