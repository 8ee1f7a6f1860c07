/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package log provides the zap logger shared by the codec and model packages.
package log

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

// InitLogger initializes the logger with the given level and format. The format is
// either "console" (plain text, the default) or "json".
func InitLogger(level, format string) error {

	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}

	// Define a custom encoder configuration for plain text logs
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder, // INFO, ERROR, etc.
		EncodeTime:     zapcore.ISO8601TimeEncoder,  // Human-readable timestamps
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder, // Short file paths
	}

	var encoder zapcore.Encoder
	switch strings.ToLower(format) {
	case "", FormatConsole:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		return fmt.Errorf("unsupported log format '%s', must be one of: %s, %s", format, FormatConsole, FormatJSON)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(zapcore.Lock(os.Stdout)), lvl)
	SetLogger(zap.New(core, zap.AddCaller()))
	return nil
}

// SetLogger replaces the shared logger. A nil logger installs a no-op logger.
func SetLogger(l *zap.Logger) {

	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// GetLogger returns the shared logger. If InitLogger was never called, a console
// logger at the default level is installed first.
func GetLogger() *zap.Logger {

	if l := logger.Load(); l != nil {
		return l
	}
	if err := InitLogger(DefaultLevel, FormatConsole); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	return logger.Load()
}

// Sync flushes any buffered log entries.
func Sync() {

	if l := logger.Load(); l != nil {
		_ = l.Sync()
	}
}

// ParseLevel parses a level name such as "debug" or "WARN". An empty name yields the default level.
func ParseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		level = DefaultLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("error parsing log level: %w", err)
	}
	return lvl, nil
}
