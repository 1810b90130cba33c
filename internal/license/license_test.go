package license_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Br3nda/polyloc/internal/license"
)

func TestIdentifyMIT(t *testing.T) {
	b := license.Default()
	name, ok := b.Identify([]byte("Permission is hereby granted, free of charge, to any person...\n"))
	require.True(t, ok)
	assert.Equal(t, "MIT", name)
}

func TestIdentifyApache(t *testing.T) {
	b := license.Default()
	name, ok := b.Identify([]byte("Licensed under the Apache License, Version 2.0 (the \"License\");\n"))
	require.True(t, ok)
	assert.Equal(t, "Apache-2.0", name)
}

func TestIdentifyNoMatch(t *testing.T) {
	b := license.Default()
	_, ok := b.Identify([]byte("package main\n\nfunc main() {}\n"))
	assert.False(t, ok)
}

func TestIdentifyOnlyScansHead(t *testing.T) {
	b := license.Default()
	padding := make([]byte, 5000)
	for i := range padding {
		padding[i] = 'x'
	}
	content := append(padding, []byte("Permission is hereby granted, free of charge")...)
	_, ok := b.Identify(content)
	assert.False(t, ok, "a license header past the scan window should not be found")
}
