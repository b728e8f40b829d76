package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesCommandListsCatalog(t *testing.T) {
	var out bytes.Buffer
	templatesCmd.SetOut(&out)

	err := runTemplates(templatesCmd, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "professional")
	assert.Contains(t, out.String(), "modern")
	assert.Contains(t, out.String(), "CATEGORY")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)

	versionCmd.Run(versionCmd, nil)

	assert.Contains(t, out.String(), "resume_builder")
	assert.Contains(t, out.String(), version)
}

func TestRootRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["serve"])
	assert.True(t, names["generate"])
	assert.True(t, names["templates"])
	assert.True(t, names["version"])
}
