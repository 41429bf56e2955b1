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

// Package main is the entry point for the QR link generator CLI.
// It validates a URL passed via --url and writes a QR code PNG for it into
// the configured output directory. Colors and the directory are configured
// through environment variables (FILL_COLOR, BACK_COLOR, QR_CODE_DIR).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/config"
	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/logger"
	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/qr"
	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/storage"
	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/urlutil"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	GitCommit = "unknown"
)

func main() {
	urlFlag := flag.String("url", "", "URL to encode as a QR code (required)")
	flag.Parse()

	// Load .env file (optional in production)
	envLoaded := godotenv.Load() == nil

	logger.InitLogger()
	log := logger.Logger

	log.Debug("Starting QR link generator",
		zap.String("version", Version),
		zap.String("git_commit", GitCommit),
	)
	if envLoaded {
		log.Info(".env file loaded successfully")
	} else {
		log.Debug("No .env file found, using environment variables")
	}

	if *urlFlag == "" {
		fmt.Fprintln(os.Stderr, "the --url flag is required")
		flag.Usage()
		logger.Sync()
		os.Exit(2)
	}

	cfg := config.LoadConfig(log)
	log.Debug("Configuration loaded",
		zap.String("output_dir", cfg.OutputDir),
		zap.String("fill_color", cfg.FillColor),
		zap.String("back_color", cfg.BackColor),
		zap.Int("size", cfg.Size),
	)

	code := run(*urlFlag, cfg, log)
	logger.Sync()
	os.Exit(code)
}

// run drives one generation pass and returns the process exit code.
// Directory creation failure is the one fatal condition of this tool; an
// invalid URL or a generation failure is a handled outcome that still
// completes the run normally.
func run(urlArg string, cfg *config.Config, log *zap.Logger) int {
	if err := storage.EnsureDir(cfg.OutputDir); err != nil {
		log.Error("Failed to create output directory",
			zap.String("dir", cfg.OutputDir),
			zap.Error(err))
		return 1
	}

	if !urlutil.IsValidURL(urlArg) {
		log.Warn(fmt.Sprintf("Invalid URL provided: %s", urlArg))
		return 0
	}

	svc := qr.NewService(log, cfg)
	outPath := storage.OutputPath(cfg.OutputDir)

	if err := svc.SaveToFile(urlArg, outPath); err != nil {
		log.Error("An error occurred while generating or saving the QR code",
			zap.String("path", outPath),
			zap.Error(err))
		return 0
	}

	log.Info("QR code generated and saved",
		zap.String("url", urlArg),
		zap.String("path", outPath),
	)
	return 0
}
