// Copyright (c) 2016-2019, Andreas T Jonsson
// All rights reserved.

package config

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 10, cfg.Bound)
	require.Equal(t, 15, cfg.Index)
	require.Equal(t, 40, cfg.LargeN)
	require.Equal(t, 45, cfg.NaiveLimit)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fibo.yaml")
	src := "bound: 5\nlarge_n: 25\nplot:\n  width: 64\n"
	require.NoError(t, ioutil.WriteFile(path, []byte(src), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Bound)
	require.Equal(t, 25, cfg.LargeN)
	require.Equal(t, 15, cfg.Index)
	require.Equal(t, uint(64), cfg.Plot.Width)
	require.Equal(t, uint(400), cfg.Plot.Height)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, src := range []string{
		"bound: -1",
		"large_n: -2",
		"naive_limit: -1",
		"bench: {from: 10, to: 5}",
		"bench: {step: 0}",
		"plot: {height: 0}",
		"plot: {bound: 47}",
		"bound: [",
	} {
		cfg := Default()
		require.Error(t, Parse([]byte(src), &cfg), src)
	}
}
