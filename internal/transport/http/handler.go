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

// Package http provides the HTTP transport layer for the QR link generator.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/qr"
)

type Handler struct {
	svc         qr.Service
	logger      *zap.Logger
	maxBodySize int64
	minSize     int
	maxSize     int
	defaultSize int
}

func NewHandler(svc qr.Service, logger *zap.Logger, maxBodySize int64, minSize, maxSize, defaultSize int) *Handler {
	return &Handler{
		svc:         svc,
		logger:      logger,
		maxBodySize: maxBodySize,
		minSize:     minSize,
		maxSize:     maxSize,
		defaultSize: defaultSize,
	}
}

// Generate reads a URL from the request body, validates it, and responds
// with a PNG QR code. The optional size query parameter overrides the
// configured default within the allowed bounds.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error("Failed to read request body", zap.Error(err))
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return
	}

	payload := strings.TrimSpace(string(body))
	if payload == "" {
		http.Error(w, "Request body is empty", http.StatusBadRequest)
		return
	}

	size := h.defaultSize
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		parsedSize, err := strconv.Atoi(sizeStr)
		if err != nil || parsedSize < h.minSize || parsedSize > h.maxSize {
			http.Error(w, fmt.Sprintf("Invalid size parameter: must be between %d and %d", h.minSize, h.maxSize), http.StatusBadRequest)
			return
		}
		size = parsedSize
	}

	png, err := h.svc.Encode(payload, size)
	if err != nil {
		if errors.Is(err, qr.ErrInvalidURL) {
			h.logger.Warn(fmt.Sprintf("Invalid URL provided: %s", payload))
			http.Error(w, "Invalid URL provided", http.StatusBadRequest)
			return
		}
		if errors.Is(err, qr.ErrInvalidSize) {
			http.Error(w, fmt.Sprintf("Invalid size parameter: must be between %d and %d", h.minSize, h.maxSize), http.StatusBadRequest)
			return
		}
		h.logger.Error("Failed to generate QR code", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		h.logger.Error("Failed to encode health check response", zap.Error(err))
	}
}
