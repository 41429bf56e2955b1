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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wso2-open-operations/common-tools/operations/qr-link-generator/internal/config"
)

// observedLogger returns a logger whose entries can be inspected after run.
func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return zap.New(core), logs
}

func loggedMessages(logs *observer.ObservedLogs) []string {
	var msgs []string
	for _, entry := range logs.All() {
		msgs = append(msgs, entry.Message)
	}
	return msgs
}

func TestRunCreatesQRCodeInOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "qr_codes")
	t.Setenv(config.OutputDirKey, dir)
	cfg := config.LoadConfig(zap.NewNop())

	code := run("https://example.com", cfg, zap.NewNop())
	assert.Equal(t, 0, code)

	files, err := filepath.Glob(filepath.Join(dir, "*.png"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRunInvalidURLExitsZeroWithoutFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "qr_codes")
	t.Setenv(config.OutputDirKey, dir)
	cfg := config.LoadConfig(zap.NewNop())

	log, logs := observedLogger()
	code := run("notaurl", cfg, log)
	assert.Equal(t, 0, code)

	assert.Contains(t, loggedMessages(logs), "Invalid URL provided: notaurl")

	files, err := filepath.Glob(filepath.Join(dir, "*"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestRunDirectoryCreationFailureExitsNonZero(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	cfg := config.LoadConfig(zap.NewNop())
	cfg.OutputDir = filepath.Join(blocker, "qr_codes")

	log, logs := observedLogger()
	code := run("https://example.com", cfg, log)
	assert.Equal(t, 1, code)

	assert.Contains(t, loggedMessages(logs), "Failed to create output directory")
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRunGenerationFailureStillExitsZero(t *testing.T) {
	// The output directory itself is creatable, but every write into it
	// fails: run must log and complete normally.
	if os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}
	dir := filepath.Join(t.TempDir(), "qr_codes")
	cfg := config.LoadConfig(zap.NewNop())
	cfg.OutputDir = dir

	log, logs := observedLogger()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	code := run("https://example.com", cfg, log)
	assert.Equal(t, 0, code)
	assert.Contains(t, loggedMessages(logs), "An error occurred while generating or saving the QR code")
}