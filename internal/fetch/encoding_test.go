package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharset(t *testing.T) {
	tests := []struct {
		contentType string
		expected    string
	}{
		{"", ""},
		{"text/plain", ""},
		{"text/plain; charset=ISO-8859-1", "ISO-8859-1"},
		{`text/plain; charset="utf-8"`, "utf-8"},
		{"text/plain;charset=windows-1252; format=flowed", "windows-1252"},
		{"text/plain; charset=utf-8; charset=latin1", "latin1"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Charset(tc.contentType), "Charset(%q)", tc.contentType)
	}
}

func TestResolveEncoding(t *testing.T) {
	assert.Equal(t, "ISO-8859-1", ResolveEncoding("", "ISO-8859-1"))
	assert.Equal(t, "ISO-8859-1", ResolveEncoding("text/plain", "ISO-8859-1"))
	assert.Equal(t, "utf-8", ResolveEncoding("text/plain; charset=utf-8", "ISO-8859-1"))
}

func TestLookupEncoding(t *testing.T) {
	for _, name := range []string{"ISO-8859-1", "latin1", "UTF-8", "utf8", "windows-1252"} {
		enc, canonical, err := LookupEncoding(name)
		require.NoError(t, err, name)
		assert.NotNil(t, enc, name)
		assert.NotEmpty(t, canonical, name)
	}

	_, _, err := LookupEncoding("no-such-charset")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte("C\xd4TE D'IVOIRE"), "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "CÔTE D'IVOIRE", got)

	got, err = Decode([]byte("CÔTE D'IVOIRE"), "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "CÔTE D'IVOIRE", got)

	_, err = Decode([]byte("C\xd4TE"), "UTF-8")
	assert.Error(t, err)

	_, err = Decode([]byte("ALBANIA"), "no-such-charset")
	assert.Error(t, err)
}
