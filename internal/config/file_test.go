/*********************************************************************
 * Copyright (c) Rackops Authors 2026
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rack-management-toolkit/rackops/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rackops")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.NoError(t, err)
	assert.Empty(t, cfg)
}

func TestLoadEmptyFileIsEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	assert.NoError(t, err)
	assert.Empty(t, cfg)
}

func TestLoadNormalizesKeysRecursively(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
Rackops:
  Username: carol
  IPMI:
    Timeout: "30"
nfs_share: nfs.example.com:/srv
`))
	require.NoError(t, err)

	sec, ok := cfg["rackops"]
	require.True(t, ok, "section names are lowercased")
	require.True(t, sec.IsSection())

	assert.Equal(t, "carol", sec.Section["username"].Leaf)

	// nesting depth is arbitrary; branches stay sections, leaves stay strings
	ipmi := sec.Section["ipmi"]
	require.True(t, ipmi.IsSection())
	assert.Equal(t, "30", ipmi.Section["timeout"].Leaf)

	assert.False(t, cfg["nfs_share"].IsSection())
	assert.Equal(t, "nfs.example.com:/srv", cfg["nfs_share"].Leaf)
}

func TestLoadScalarLeavesKeepLiteralForm(t *testing.T) {
	cfg, err := Load(writeConfig(t, "wait: true\nretries: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, "true", cfg["wait"].Leaf)
	assert.Equal(t, "3", cfg["retries"].Leaf)
}

func TestLoadResolvesAnchors(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
shared: &user carol
defaults: &defaults
  username: *user
  dcim: ralph
rackops: *defaults
`))
	require.NoError(t, err)

	sec, ok := cfg["rackops"]
	require.True(t, ok)
	require.True(t, sec.IsSection())

	assert.Equal(t, "carol", sec.Section["username"].Leaf)
	assert.Equal(t, "ralph", sec.Section["dcim"].Leaf)

	v, ok := cfg.Lookup("username")
	assert.True(t, ok)
	assert.Equal(t, "carol", v)
}

func TestLoadMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"broken syntax", "username: carol\nbad"},
		{"unclosed flow", "username: [carol"},
		{"sequence value", "username:\n  - carol\n  - dave\n"},
		{"scalar document", "just a string\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.True(t, errors.Is(err, utils.ConfigParseError), "expected ConfigParseError, got %v", err)
		})
	}
}

func TestLookupFlattensSections(t *testing.T) {
	cfg := File{
		"username": {Leaf: "top"},
		"rackops": {Section: map[string]Value{
			"username": {Leaf: "sectioned"},
			"password": {Leaf: "hunter2"},
			"nested":   {Section: map[string]Value{"password": {Leaf: "deep"}}},
		}},
	}

	v, ok := cfg.Lookup("username")
	assert.True(t, ok)
	assert.Equal(t, "top", v, "top-level leaf wins over the rackops section")

	v, ok = cfg.Lookup("PASSWORD")
	assert.True(t, ok)
	assert.Equal(t, "hunter2", v, "lookups are case-insensitive")

	_, ok = cfg.Lookup("nested")
	assert.False(t, ok, "branches are not leaf values")

	_, ok = cfg.Lookup("absent")
	assert.False(t, ok)
}
