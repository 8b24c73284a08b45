// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Width int
}

func TestSaveOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "a.toml")
	require.NoError(t, Save(&testStruct{Name: "bands", Width: 800}, file))

	var got testStruct
	require.NoError(t, Open(&got, file))
	assert.Equal(t, testStruct{Name: "bands", Width: 800}, got)
}

func TestOpenFilesOverride(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testStruct{Name: "a", Width: 1}, a))
	require.NoError(t, Save(&testStruct{Name: "b", Width: 2}, b))

	var got testStruct
	require.NoError(t, OpenFiles(&got, a, b))
	assert.Equal(t, "b", got.Name)
	assert.Equal(t, 2, got.Width)

	assert.Error(t, OpenFiles(&got, filepath.Join(dir, "missing.toml")))
}
