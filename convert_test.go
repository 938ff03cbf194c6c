package jsonlineage

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestConvert_DefaultMode(t *testing.T) {
	var out bytes.Buffer
	input := "[\n  {\"a\": 1},\n  {\"b\": 2}\n]\n"
	require.NoError(t, Convert(strings.NewReader(input), &out, Options{}))
	require.Equal(t, "{\"a\": 1}\n{\"b\": 2}\n", out.String())
}

func TestConvert_MessyMode(t *testing.T) {
	var out bytes.Buffer
	input := `[{"a": 1},{"b": 2},{"c": "}"}]`
	require.NoError(t, Convert(strings.NewReader(input), &out, Options{Messy: true}))
	require.Equal(t, "{\"a\": 1}\n{\"b\": 2}\n{\"c\": \"}\"}\n", out.String())
}

func TestConvert_MalformedDocument(t *testing.T) {
	var out bytes.Buffer
	err := Convert(strings.NewReader(`{"a": 1}`), &out, Options{})
	require.Error(t, err)
	require.Zero(t, out.Len())
}

func TestConvert_PartialOutputBeforeError(t *testing.T) {
	// Elements recognized before the truncation point are already written
	// out; the error is still reported.
	var out bytes.Buffer
	input := "[\n  {\"a\": 1},\n  {\"b\": \n"
	err := Convert(strings.NewReader(input), &out, Options{Messy: true})
	require.ErrorIs(t, err, ErrTruncated)
	require.Equal(t, "{\"a\": 1}\n", out.String())
}

// roundTrip re-wraps emitted lines into an array and checks it parses to the
// same structure as the input.
func roundTrip(t *testing.T, input string, messy bool) {
	t.Helper()
	var source Source
	if messy {
		source = NewByteSplitter(strings.NewReader(input))
	} else {
		source = NewLineSplitter(strings.NewReader(input))
	}
	lines, err := runSource(t, source)
	require.NoError(t, err)

	rebuilt := "[" + strings.Join(lines, ",") + "]"
	var want, got any
	require.NoError(t, json.Unmarshal([]byte(input), &want))
	require.NoError(t, json.Unmarshal([]byte(rebuilt), &got))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-input +rebuilt):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	pretty := `[
  {
    "name": "ann",
    "tags": [
      "a",
      "b"
    ],
    "meta": {
      "empty": {},
      "list": []
    }
  },
  {
    "name": "bob",
    "age": 42
  }
]
`
	t.Run("line mode pretty", func(t *testing.T) {
		roundTrip(t, pretty, false)
	})
	t.Run("byte mode pretty", func(t *testing.T) {
		roundTrip(t, pretty, true)
	})
	t.Run("byte mode compact", func(t *testing.T) {
		roundTrip(t, `[{"a":"[tricky]","b":{"c":"\\"}},{"d":[1,2,[3]]}]`, true)
	})
}
