package restaurant

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturesRoundTripThroughYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeFixtures(&buf, DefaultFixtures()))

	doc, err := DecodeFixtures(&buf)
	require.NoError(t, err)
	assert.Equal(t, FixturesVersion, doc.Version)
	assert.Len(t, doc.Orders, 6)
	assert.Len(t, doc.History, 10)
	assert.Equal(t, "ORD-7426", doc.History[3].ID)
	assert.True(t, doc.History[3].Date.Equal(mustDate("2024-11-27 12:00")))
	assert.Equal(t, 8.25, doc.Settings.Taxes.LocalSalesTax)
}

func TestDecodeFixturesRejectsUnknownFields(t *testing.T) {
	_, err := DecodeFixtures(strings.NewReader("version: \"1\"\nwidgets: []\n"))
	require.Error(t, err)
}

func TestDecodeFixturesRejectsEmptyDocument(t *testing.T) {
	_, err := DecodeFixtures(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestDecodeFixturesDefaultsVersion(t *testing.T) {
	doc, err := DecodeFixtures(strings.NewReader("menu:\n  - id: M-1\n    name: Taco\n    price: 2.5\n    category: Main\n    status: AVAILABLE\n"))
	require.NoError(t, err)
	assert.Equal(t, FixturesVersion, doc.Version)
	assert.Equal(t, "Taco", doc.Menu[0].Name)
}

func TestFixturesValidate(t *testing.T) {
	dup := DefaultFixtures()
	dup.Menu[1].ID = dup.Menu[0].ID
	assert.ErrorContains(t, dup.Validate(), "duplicates id M-001")

	missing := DefaultFixtures()
	missing.Staff[0].ID = ""
	assert.ErrorContains(t, missing.Validate(), "missing id")

	status := DefaultFixtures()
	status.Orders[0].Status = "LOST"
	assert.ErrorContains(t, status.Validate(), "unknown status")

	version := DefaultFixtures()
	version.Version = "9"
	assert.ErrorContains(t, version.Validate(), "unsupported fixtures version")
}

func TestReadFixturesSetsSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	var buf bytes.Buffer
	require.NoError(t, EncodeFixtures(&buf, DefaultFixtures()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	doc, err := ReadFixtures(path)
	require.NoError(t, err)
	assert.Equal(t, path, doc.Source)

	_, err = ReadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
