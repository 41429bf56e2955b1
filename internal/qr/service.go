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

// Package qr provides QR code generation for validated URLs.
package qr

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/urlutil"
)

// Sentinel errors let callers distinguish bad input from encoding and write
// failures without matching on message text.
var (
	// ErrInvalidURL means the payload failed URL validation; nothing was written.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidSize means the requested pixel size is outside the configured bounds.
	ErrInvalidSize = errors.New("invalid size")
	// ErrEncode means the QR library could not encode the payload.
	ErrEncode = errors.New("QR encoding failed")
)

// Service defines the business logic for QR codes.
type Service interface {
	// Encode validates url and renders it as a PNG QR code of the given
	// pixel size.
	Encode(url string, size int) ([]byte, error)
	// SaveToFile validates url, renders it at the configured size, and
	// writes the PNG to path, overwriting any existing file.
	SaveToFile(url, path string) error
}

// service implements the Service interface.
type service struct {
	logger        *zap.Logger
	fillColor     color.RGBA
	backColor     color.RGBA
	size          int
	minSize       int
	maxSize       int
	recovery      qrcode.RecoveryLevel
	disableBorder bool
}

// NewService creates a QR service from the loaded configuration. Unparsable
// color or recovery-level values are logged and replaced by their defaults;
// a cosmetic knob never fails a run.
func NewService(logger *zap.Logger, cfg *config.Config) Service {
	return &service{
		logger:        logger,
		fillColor:     resolveColor(logger, config.FillColorKey, cfg.FillColor, DefaultFillColor),
		backColor:     resolveColor(logger, config.BackColorKey, cfg.BackColor, DefaultBackColor),
		size:          cfg.Size,
		minSize:       cfg.MinSize,
		maxSize:       cfg.MaxSize,
		recovery:      resolveRecoveryLevel(logger, cfg.RecoveryLevel),
		disableBorder: cfg.DisableBorder,
	}
}

// Encode creates a PNG QR code for the given URL and size.
func (s *service) Encode(url string, size int) ([]byte, error) {
	if !urlutil.IsValidURL(url) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}
	if size < s.minSize || size > s.maxSize {
		return nil, fmt.Errorf("%w %d: must be between %d and %d", ErrInvalidSize, size, s.minSize, s.maxSize)
	}

	code, err := qrcode.New(url, s.recovery)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	code.ForegroundColor = s.fillColor
	code.BackgroundColor = s.backColor
	code.DisableBorder = s.disableBorder

	png, err := code.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	s.logger.Debug("QR code encoded",
		zap.Int("payload_length", len(url)),
		zap.Int("size", size),
		zap.Int("output_bytes", len(png)),
	)
	return png, nil
}

// SaveToFile renders the URL at the configured size and writes it to path.
// The write truncates any existing file, so repeat generation at the same
// path is last-write-wins.
func (s *service) SaveToFile(url, path string) error {
	png, err := s.Encode(url, s.size)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("failed to save QR code to %s: %w", path, err)
	}

	s.logger.Debug("QR code saved", zap.String("path", path), zap.Int("bytes", len(png)))
	return nil
}

// resolveColor parses a configured color, falling back to def on failure.
func resolveColor(logger *zap.Logger, key, value string, def color.RGBA) color.RGBA {
	c, err := ParseColor(value)
	if err != nil {
		logger.Warn(fmt.Sprintf("Invalid %s, using default", key),
			zap.String("value", value),
			zap.Error(err))
		return def
	}
	return c
}

// resolveRecoveryLevel maps low/medium/high/highest onto the library's
// error-correction levels, defaulting to medium (15%).
func resolveRecoveryLevel(logger *zap.Logger, value string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return qrcode.Low
	case "medium", "":
		return qrcode.Medium
	case "high":
		return qrcode.High
	case "highest":
		return qrcode.Highest
	default:
		logger.Warn(fmt.Sprintf("Invalid %s, using default", config.RecoveryLevelKey),
			zap.String("value", value))
		return qrcode.Medium
	}
}
