package sniff_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mardelherny-hub/app-cargas-sub007/pkg/manifest/parser/sniff"
)

func writeFile(t *testing.T, name string, content []byte) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestHead(t *testing.T) {
	path := writeFile(t, "a.txt", []byte("UNB+UNOA:2+SENDER"))

	head, err := sniff.Head(path, 3)
	require.NoError(t, err)
	assert.Equal(t, "UNB", string(head))

	head, err = sniff.Head(path, 1024)
	require.NoError(t, err)
	assert.Equal(t, "UNB+UNOA:2+SENDER", string(head))

	_, err = sniff.Head(filepath.Join(t.TempDir(), "missing"), 10)
	assert.Error(t, err)
}

func TestDecodeText(t *testing.T) {
	assert.Equal(t, "AÑO", sniff.DecodeText([]byte("\xEF\xBB\xBFAÑO")))
	// Windows-1252 encoded "AÑO".
	assert.Equal(t, "AÑO", sniff.DecodeText([]byte{'A', 0xD1, 'O'}))
	// A UTF-8 "Ñ" cut after its first byte stays UTF-8.
	assert.Equal(t, "A\xC3", sniff.DecodeText([]byte{'A', 0xC3}))
}

func TestIsText(t *testing.T) {
	path := writeFile(t, "a.csv", []byte("LINEA;BL;CONTENEDOR\nMSC;AB1;MSCU1234566\n"))
	assert.True(t, sniff.IsText(path))
	assert.False(t, sniff.IsXLSX(path))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, sniff.ContainsFold("**bl**", "**BL**"))
	assert.False(t, sniff.ContainsFold("abc", "x", "y"))
}

func TestXMLEncoding(t *testing.T) {
	assert.Equal(t, "iso-8859-1", sniff.XMLEncoding([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?><a/>`)))
	assert.Equal(t, "", sniff.XMLEncoding([]byte(`<?xml version="1.0"?><a/>`)))
	assert.Equal(t, "", sniff.XMLEncoding([]byte(`<a encoding="x"/>`)))
}
