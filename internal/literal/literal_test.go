package literal

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeC parses a sequence of adjacent C string literals the way a C
// compiler does: hex escapes consume every following hex digit.
func decodeC(t *testing.T, lit string) string {
	t.Helper()

	var out []byte
	i := 0
	for i < len(lit) {
		require.Equal(t, byte('"'), lit[i], "expected opening quote at %d in %s", i, lit)
		i++
		for {
			require.Less(t, i, len(lit), "unterminated literal %s", lit)
			c := lit[i]
			if c == '"' {
				i++
				break
			}
			if c != '\\' {
				out = append(out, c)
				i++
				continue
			}
			i++
			switch lit[i] {
			case '\\', '"':
				out = append(out, lit[i])
				i++
			case 't':
				out = append(out, '\t')
				i++
			case 'n':
				out = append(out, '\n')
				i++
			case 'r':
				out = append(out, '\r')
				i++
			case 'x':
				i++
				j := i
				for j < len(lit) && isHexDigit(lit[j]) {
					j++
				}
				v, err := strconv.ParseUint(lit[i:j], 16, 64)
				require.NoError(t, err)
				require.LessOrEqual(t, v, uint64(0xff), "hex escape %s overflows a byte in %s", lit[i:j], lit)
				out = append(out, byte(v))
				i = j
			default:
				t.Fatalf("unexpected escape \\%c in %s", lit[i], lit)
			}
		}
	}
	return string(out)
}

func TestEncodeC(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Afghanistan", `"Afghanistan"`},
		{"", `""`},
		{"Côte d'Ivoire", `"C\xc3\xb4te d'Ivoire"`},
		{"Curaçao", `"Cura\xc3\xa7""ao"`},
		{"Åland Islands", `"\xc3\x85land Islands"`},
		{"Réunion", `"R\xc3\xa9union"`},
		{"Saint Barthélemy", `"Saint Barth\xc3\xa9lemy"`},
		{"é1", `"\xc3\xa9""1"`},
		{"éA", `"\xc3\xa9""A"`},
		{"éé", `"\xc3\xa9\xc3\xa9"`},
		{`quote " and \ backslash`, `"quote \" and \\ backslash"`},
		{"tab\tnewline\n", `"tab\tnewline\n"`},
	}

	for _, tc := range tests {
		got := Encode(tc.in, C)
		assert.Equal(t, tc.expected, got, "Encode(%q, C)", tc.in)
	}
}

func TestEncodeGo(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Afghanistan", `"Afghanistan"`},
		{"Curaçao", `"Cura\xc3\xa7ao"`},
		{"Côte d'Ivoire", `"C\xc3\xb4te d'Ivoire"`},
	}

	for _, tc := range tests {
		got := Encode(tc.in, Go)
		assert.Equal(t, tc.expected, got, "Encode(%q, Go)", tc.in)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		"Afghanistan",
		"Côte d'Ivoire",
		"Curaçao",
		"Åland Islands",
		"São Tomé and Príncipe",
		"Türkiye",
		"日本",
		"Korea, Democratic People's Republic of",
		`back\slash "quoted"`,
		"\x01control\x7f",
		"ÿf",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, in, decodeC(t, Encode(in, C)))

			got, err := strconv.Unquote(Encode(in, Go))
			require.NoError(t, err)
			assert.Equal(t, in, got)
		})
	}
}

func TestEncodeASCIIOnly(t *testing.T) {
	for _, in := range []string{"Côte d'Ivoire", "日本", "Åland"} {
		lit := Encode(in, C)
		for i := 0; i < len(lit); i++ {
			assert.Less(t, lit[i], byte(0x80), fmt.Sprintf("non-ASCII byte in %s", lit))
		}
		assert.False(t, strings.ContainsAny(lit, "\n\t"))
	}
}
