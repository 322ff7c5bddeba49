// SPDX-FileCopyrightText: 2025 Smart Shower OS contributors
//
// SPDX-License-Identifier: Apache-2.0

package internal

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func parseLogLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel // Default to info level
	}
}

func InitLogger(logLevel string, logDir string) error {
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		err := os.MkdirAll(logDir, os.ModePerm)
		if err != nil {
			return err
		}
	}
	logFile := filepath.Join(logDir, "shower-provision.log")
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.Level.SetLevel(parseLogLevel(logLevel))
	loggerConfig.OutputPaths = []string{logFile}
	loggerRoot, err := loggerConfig.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(loggerRoot)
	zap.S().Infof("Log level set to %s", logLevel)

	return nil
}

func Logger() *zap.SugaredLogger {
	return zap.S()
}
