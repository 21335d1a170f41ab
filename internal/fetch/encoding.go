package fetch

import (
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// Charset returns the charset parameter of a Content-Type header value,
// or "" if there is none.
func Charset(contentType string) string {
	if contentType == "" {
		return ""
	}
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		return params["charset"]
	}

	// Malformed header: take whatever follows the last "charset=".
	i := strings.LastIndex(contentType, "charset=")
	if i < 0 {
		return ""
	}
	v := contentType[i+len("charset="):]
	if j := strings.IndexByte(v, ';'); j >= 0 {
		v = v[:j]
	}
	return strings.Trim(strings.TrimSpace(v), `"'`)
}

// ResolveEncoding picks the charset declared by contentType, falling back
// to defaultEncoding.
func ResolveEncoding(contentType, defaultEncoding string) string {
	if cs := Charset(contentType); cs != "" {
		return cs
	}
	return defaultEncoding
}

// LookupEncoding finds the encoding registered under name, using IANA
// names first and WHATWG labels second. It also returns the canonical name.
func LookupEncoding(name string) (encoding.Encoding, string, error) {
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		canonical, err := ianaindex.IANA.Name(enc)
		if err != nil {
			canonical = name
		}
		return enc, canonical, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported encoding %q", name)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = name
	}
	return enc, canonical, nil
}

// Decode converts raw bytes in the named encoding to a UTF-8 string. Bytes
// the encoding cannot map are an error rather than a replacement character.
func Decode(raw []byte, name string) (string, error) {
	enc, canonical, err := LookupEncoding(name)
	if err != nil {
		return "", err
	}

	if strings.EqualFold(canonical, "utf-8") {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("invalid UTF-8 byte sequence")
		}
		return string(raw), nil
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	if strings.ContainsRune(string(out), utf8.RuneError) {
		return "", fmt.Errorf("byte sequence not representable in %s", canonical)
	}
	return string(out), nil
}
