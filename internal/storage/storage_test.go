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

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirCreatesNestedDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "existing")

	require.NoError(t, EnsureDir(dir))
	assert.NoError(t, EnsureDir(dir))
}

func TestEnsureDirFailsWhenFileInTheWay(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := EnsureDir(filepath.Join(blocker, "sub"))
	assert.Error(t, err)
}

func TestEnsureDirRejectsEmptyPath(t *testing.T) {
	assert.Error(t, EnsureDir(""))
}

func TestOutputPathIsUniqueAndWellFormed(t *testing.T) {
	dir := t.TempDir()

	first := OutputPath(dir)
	second := OutputPath(dir)

	assert.NotEqual(t, first, second)
	for _, p := range []string{first, second} {
		assert.Equal(t, dir, filepath.Dir(p))
		name := filepath.Base(p)
		assert.True(t, strings.HasPrefix(name, "qr_"), "name %q", name)
		assert.True(t, strings.HasSuffix(name, ".png"), "name %q", name)
	}
}
