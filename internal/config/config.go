// Copyright (c) 2026 WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package config is responsible for loading and parsing all environment
// variables needed for the application to run. It provides sensible defaults
// for every value; an unset or empty variable always falls back.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	FillColorKey     = "FILL_COLOR"
	BackColorKey     = "BACK_COLOR"
	OutputDirKey     = "QR_CODE_DIR"
	SizeKey          = "QR_SIZE"
	MinSizeKey       = "MIN_SIZE"
	MaxSizeKey       = "MAX_SIZE"
	RecoveryLevelKey = "RECOVERY_LEVEL"
	DisableBorderKey = "DISABLE_BORDER"

	PortKey            = "PORT"
	ReadTimeoutKey     = "READ_TIMEOUT"
	WriteTimeoutKey    = "WRITE_TIMEOUT"
	ShutdownTimeoutKey = "SHUTDOWN_TIMEOUT"
	MaxBodySizeKey     = "MAX_BODY_SIZE"
)

// Config holds application configuration loaded from environment variables.
// It is built once at startup and passed to the components that need it.
type Config struct {
	FillColor     string
	BackColor     string
	OutputDir     string
	Size          int
	MinSize       int
	MaxSize       int
	RecoveryLevel string
	DisableBorder bool

	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodySize     int64
}

// LoadConfig reads all configuration from environment variables and returns
// a Config instance. Invalid numeric or duration values log a warning and
// fall back to the default instead of failing the run.
func LoadConfig(logger *zap.Logger) *Config {
	minSize := parseInt(logger, MinSizeKey, "64", 64)
	maxSize := parseInt(logger, MaxSizeKey, "2048", 2048)

	size := parseInt(logger, SizeKey, "256", 256)
	if size < minSize || size > maxSize {
		logger.Warn(fmt.Sprintf("Invalid %s, clamping to allowed range", SizeKey),
			zap.Int("value", size),
			zap.Int("min", minSize),
			zap.Int("max", maxSize),
		)
		if size < minSize {
			size = minSize
		} else {
			size = maxSize
		}
	}

	return &Config{
		FillColor:     getEnv(FillColorKey, "red"),
		BackColor:     getEnv(BackColorKey, "white"),
		OutputDir:     getEnv(OutputDirKey, "qr_codes"),
		Size:          size,
		MinSize:       minSize,
		MaxSize:       maxSize,
		RecoveryLevel: getEnv(RecoveryLevelKey, "medium"),
		DisableBorder: parseBool(getEnv(DisableBorderKey, "false")),

		Port:            getEnv(PortKey, "8080"),
		ReadTimeout:     parseDuration(logger, ReadTimeoutKey, "5s", 5*time.Second),
		WriteTimeout:    parseDuration(logger, WriteTimeoutKey, "10s", 10*time.Second),
		ShutdownTimeout: parseDuration(logger, ShutdownTimeoutKey, "5s", 5*time.Second),
		MaxBodySize:     parseInt64(logger, MaxBodySizeKey, "524288", 524288),
	}
}

// getEnv retrieves the value of the environment variable for the given key.
// If the variable is not set or empty, it returns the provided defaultValue.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseInt fetches an environment variable by key, attempts to convert it
// into an integer, and returns it. If conversion fails, it logs a warning
// and returns the provided fallback integer.
func parseInt(logger *zap.Logger, key, defaultValue string, fallback int) int {
	v := getEnv(key, defaultValue)
	i, err := strconv.Atoi(v)
	if err != nil {
		logger.Warn(fmt.Sprintf("Invalid %s, using default", key),
			zap.String("value", v),
			zap.Int("default", fallback),
			zap.Error(err))
		return fallback
	}
	return i
}

// parseInt64 is parseInt for values that can exceed the int32 range.
func parseInt64(logger *zap.Logger, key, defaultValue string, fallback int64) int64 {
	v := getEnv(key, defaultValue)
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil || i <= 0 {
		logger.Warn(fmt.Sprintf("Invalid %s, using default", key),
			zap.String("value", v),
			zap.Int64("default", fallback))
		return fallback
	}
	return i
}

// parseDuration reads a duration string from the environment using the given
// key, parses it into a time.Duration, and returns it. If parsing fails, it
// logs a warning and returns the fallback duration.
func parseDuration(logger *zap.Logger, key, defaultValue string, fallback time.Duration) time.Duration {
	v := getEnv(key, defaultValue)
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warn(fmt.Sprintf("Invalid %s, using default", key),
			zap.String("value", v),
			zap.Duration("default", fallback),
			zap.Error(err))
		return fallback
	}
	if d <= 0 {
		return fallback
	}
	return d
}

// parseBool converts a string into a boolean.
func parseBool(value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	return v == "true" || v == "1" || v == "yes"
}
