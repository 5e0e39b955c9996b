package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig - Logging configuration
//   - Level is the minimum level to emit: debug, info, warn or error
//   - Format selects the encoder: console or json
//   - Filename, when set, routes output to a rotated log file instead of stderr
//   - MaxSize is the size in megabytes a log file may reach before rotation
//   - MaxDays is the number of days to retain rotated files
//   - MaxBackups is the number of rotated files to retain
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// New - Builds a zap logger from the given configuration
func New(cfg LogConfig) (logger *zap.Logger) {
	core := zapcore.NewCore(cfg.getEncoder(), cfg.getSyncer(), cfg.getLevel())
	logger = zap.New(core, zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller())

	return
}

// getLevel - Parses the configured level, falling back to info on anything unknown
func (L LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(L.Level)); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	return level
}

// getSyncer - Returns a rotated file syncer when a filename is configured, otherwise stderr
func (L LogConfig) getSyncer() zapcore.WriteSyncer {
	if L.Filename != "" {
		return zapcore.AddSync(&lumberjack.Logger{
			Filename:   L.Filename,
			MaxSize:    L.MaxSize,
			MaxAge:     L.MaxDays,
			MaxBackups: L.MaxBackups,
		})
	}

	return zapcore.Lock(os.Stderr)
}

// getEncoder - Returns the configured encoder, console unless json is asked for
func (L LogConfig) getEncoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if L.Format == "json" {
		return zapcore.NewJSONEncoder(encoderConfig)
	}

	return zapcore.NewConsoleEncoder(encoderConfig)
}
