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

// Package storage manages the output directory and names generated files.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// EnsureDir creates dir and any missing parents. It is idempotent: an
// existing directory is not an error, and a concurrent creator winning the
// race is not either.
func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory path is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// OutputPath returns a unique PNG path inside dir. The name carries a UTC
// timestamp for humans and a short uuid suffix so two runs in the same
// second cannot collide.
func OutputPath(dir string) string {
	stamp := time.Now().UTC().Format("20060102T150405Z")
	suffix := uuid.NewString()[:8]
	return filepath.Join(dir, fmt.Sprintf("qr_%s_%s.png", stamp, suffix))
}
