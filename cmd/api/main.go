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

// Package main is the entry point for the QR link generation service.
// It exposes the same QR core as the CLI over HTTP: POST a URL to /generate
// and receive a PNG image back.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/logger"
	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/qr"
	transport "github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/transport/http"
)

func main() {
	// Load .env file (optional in production)
	envLoaded := godotenv.Load() == nil

	logger.InitLogger()
	defer logger.Sync()
	log := logger.Logger

	log.Debug("Starting QR link generation service initialization")
	if envLoaded {
		log.Info(".env file loaded successfully")
	} else {
		log.Debug("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig(log)
	log.Debug("Configuration loaded",
		zap.String("port", cfg.Port),
		zap.Duration("read_timeout", cfg.ReadTimeout),
		zap.Duration("write_timeout", cfg.WriteTimeout),
		zap.Int64("max_body_size", cfg.MaxBodySize),
	)

	svc := qr.NewService(log, cfg)
	h := transport.NewHandler(svc, log, cfg.MaxBodySize, cfg.MinSize, cfg.MaxSize, cfg.Size)

	// Apply middleware to handlers
	generateHandler := transport.MethodMiddleware(http.MethodPost)(http.HandlerFunc(h.Generate))
	generateHandler = transport.RequestLoggingMiddleware(log)(generateHandler)

	healthHandler := transport.RequestLoggingMiddleware(log)(http.HandlerFunc(h.HealthCheck))

	mux := http.NewServeMux()
	mux.Handle("/generate", generateHandler)
	mux.Handle("/health", healthHandler)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           mux,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("port", cfg.Port), zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatal("Server failed to start", zap.Error(err))
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown",
			zap.Error(err),
			zap.Duration("timeout", cfg.ShutdownTimeout))
		if errors.Is(err, context.DeadlineExceeded) {
			log.Warn("Shutdown timeout exceeded, closing connections")
			srv.Close()
		}
		os.Exit(1)
	}

	log.Info("Server exited gracefully")
}
