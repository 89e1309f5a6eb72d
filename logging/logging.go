// SPDX-License-Identifier: MIT

// Package logging builds the zap logger shared by every bfsviz command.
package logging

import (
	"strings"

	"github.com/google/uuid"
	"github.com/katalvlaran/bfsviz/config"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewSession returns a fresh session id for the "session" log field.
func NewSession() string { return uuid.NewString() }

// Level maps a config level name to a zap level; unknown names mean info.
func Level(name string) zapcore.Level {
	switch strings.ToLower(name) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// New builds a logger from cfg. "console" selects zap's development
// encoder, anything else the production JSON encoder. When cfg.File is set
// output goes to a lumberjack rotating file instead of stderr. A non-empty
// session is attached to every entry.
//
// The returned close func flushes the logger and releases the file.
func New(cfg config.LogConfig, session string) (*zap.Logger, func() error, error) {
	var zapCfg zap.Config
	if strings.EqualFold(cfg.Format, "console") {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(Level(cfg.Level))

	var (
		logger *zap.Logger
		file   *lumberjack.Logger
		err    error
	)
	if cfg.File == "" {
		logger, err = zapCfg.Build()
		if err != nil {
			return nil, nil, err
		}
	} else {
		file = &lumberjack.Logger{
			Filename: cfg.File,
			MaxSize:  cfg.MaxLogSize, // megabytes
			MaxAge:   cfg.MaxLogAge,  // days
		}
		var enc zapcore.Encoder
		if zapCfg.Encoding == "console" {
			enc = zapcore.NewConsoleEncoder(zapCfg.EncoderConfig)
		} else {
			enc = zapcore.NewJSONEncoder(zapCfg.EncoderConfig)
		}
		logger = zap.New(zapcore.NewCore(enc, zapcore.AddSync(file), zapCfg.Level), zap.AddCaller())
	}
	if session != "" {
		logger = logger.With(zap.String("session", session))
	}

	closeFn := func() error {
		_ = logger.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}
