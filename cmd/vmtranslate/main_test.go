// Copyright 2026 The vmtranslate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeVM writes src to dir/name and returns its path.
func writeVM(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunExitCodes(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		dir := t.TempDir()
		path := writeVM(t, dir, "Main.vm", "push constant 7\npush constant 8\nadd\n")
		got := run([]string{path})
		assert.Equal(t, exitOK, got)
		_, err := os.Stat(filepath.Join(dir, "Main.asm"))
		assert.NoError(t, err)
	})

	t.Run("missing argument is a usage error", func(t *testing.T) {
		got := run([]string{})
		assert.Equal(t, exitUsage, got)
	})

	t.Run("extra argument is a usage error", func(t *testing.T) {
		dir := t.TempDir()
		path := writeVM(t, dir, "Main.vm", "push constant 1\n")
		got := run([]string{path, "extra"})
		assert.Equal(t, exitUsage, got)
	})

	t.Run("conflicting boot flags is a usage error", func(t *testing.T) {
		dir := t.TempDir()
		path := writeVM(t, dir, "Main.vm", "push constant 1\n")
		got := run([]string{"--boot", "--no-boot", path})
		assert.Equal(t, exitUsage, got)
	})

	t.Run("nonexistent input is an I/O error", func(t *testing.T) {
		got := run([]string{filepath.Join(t.TempDir(), "missing.vm")})
		assert.Equal(t, exitIOErr, got)
	})

	t.Run("malformed VM source is a language error", func(t *testing.T) {
		dir := t.TempDir()
		path := writeVM(t, dir, "Main.vm", "push constant -1\n")
		got := run([]string{path})
		assert.Equal(t, exitLangErr, got)
	})
}
