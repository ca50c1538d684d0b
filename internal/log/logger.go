package log

import (
	"os"
	"strings"

	"hrms/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger 建立 JSON logger：warn 以下走 stdout，warn 以上走 stderr
func NewLogger(conf *config.Configuration) (*zap.Logger, error) {
	atomic := zap.NewAtomicLevelAt(parseLevel(conf.Log.Level))

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "message"
	encCfg.LevelKey = "level"
	encCfg.TimeKey = "ts"
	encCfg.CallerKey = "caller"
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encCfg)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return atomic.Enabled(l) && l < zapcore.WarnLevel
		})),
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return atomic.Enabled(l) && l >= zapcore.WarnLevel
		})),
	)

	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(
			zap.String("service", conf.App.Name),
			zap.String("env", conf.App.Env),
		),
	)
	logger.Info("zap logger initialised", zap.Stringer("level", atomic.Level()))
	return logger, nil
}

// parseLevel 無法辨識時回退到 info
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zap.InfoLevel
	}
	return lvl
}
