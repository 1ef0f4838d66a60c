package codec_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/codec"
)

func formatTable() []struct {
	name   string
	format codec.Format
} {
	return []struct {
		name   string
		format codec.Format
	}{
		{name: "json", format: codec.JSON()},
		{name: "cbor", format: codec.CBOR()},
		{name: "yaml", format: codec.YAML()},
		{name: "json_zstd", format: codec.Zstd(codec.JSON())},
		{name: "cbor_zstd", format: codec.Zstd(codec.CBOR())},
		{name: "json_lz4", format: codec.LZ4(codec.JSON())},
		{name: "cbor_lz4", format: codec.LZ4(codec.CBOR())},
	}
}

func sampleEnvelope(t *testing.T) codec.Envelope {
	t.Helper()

	payload := map[string]any{
		"label":  "experiment-7",
		"counts": []any{int64(1), int64(2), int64(3)},
		"ratio":  0.75,
		"ok":     true,
		"blob":   []byte{0x01, 0x02, 0x03},
		"when":   time.Date(2024, 5, 4, 3, 2, 1, 123456789, time.UTC),
		"took":   1500 * time.Millisecond,
		"inner":  map[string]any{"deep": nil},
	}
	v, err := codec.FromGo(payload, nil)
	require.NoError(t, err)

	started := time.Date(2024, 5, 4, 3, 0, 0, 0, time.UTC)
	return codec.NewEnvelope(v, "0.4.1", started, 121*time.Second)
}

func TestFormats_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, tt := range formatTable() {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := sampleEnvelope(t)

			var buf bytes.Buffer
			require.NoError(t, tt.format.Encode(&buf, &env))

			var got codec.Envelope
			require.NoError(t, tt.format.Decode(bytes.NewReader(buf.Bytes()), &got))
			require.NoError(t, got.Validate())

			assert.Equal(t, env, got)

			generic, err := got.Value.Interface(nil)
			require.NoError(t, err)
			want, err := env.Value.Interface(nil)
			require.NoError(t, err)
			assert.Equal(t, want, generic)
		})
	}
}

func TestFormats_Equivalence(t *testing.T) {
	t.Parallel()

	env := sampleEnvelope(t)

	decoded := make([]codec.Envelope, 0, len(formatTable()))
	for _, tt := range formatTable() {
		var buf bytes.Buffer
		require.NoError(t, tt.format.Encode(&buf, &env), tt.name)

		var got codec.Envelope
		require.NoError(t, tt.format.Decode(&buf, &got), tt.name)
		decoded = append(decoded, got)
	}

	// Every format must reproduce the same logical envelope, so a caller
	// can switch formats by renaming the location and nothing else.
	for i := 1; i < len(decoded); i++ {
		assert.Equal(t, decoded[0], decoded[i])
	}
}

func TestFormats_DecodeGarbage(t *testing.T) {
	t.Parallel()

	for _, tt := range formatTable() {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var env codec.Envelope
			err := tt.format.Decode(strings.NewReader("{ this is not an artifact"), &env)
			require.ErrorIs(t, err, codec.ErrDecode)
		})
	}
}

func TestFormats_DecodeTruncated(t *testing.T) {
	t.Parallel()

	for _, tt := range formatTable() {
		if tt.name == "yaml" {
			// A truncated YAML document can still be valid YAML.
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := sampleEnvelope(t)
			var buf bytes.Buffer
			require.NoError(t, tt.format.Encode(&buf, &env))
			truncated := buf.Bytes()[:buf.Len()/2]

			var got codec.Envelope
			err := tt.format.Decode(bytes.NewReader(truncated), &got)
			require.ErrorIs(t, err, codec.ErrDecode)
		})
	}
}

func TestFormats_DecodeEmpty(t *testing.T) {
	t.Parallel()

	for _, tt := range formatTable() {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got codec.Envelope
			err := tt.format.Decode(strings.NewReader(""), &got)
			require.ErrorIs(t, err, codec.ErrDecode)
		})
	}
}

func TestJSON_Golden(t *testing.T) {
	v, err := codec.FromGo(map[string]any{"alpha": 42, "beta": "b"}, nil)
	require.NoError(t, err)
	env := codec.NewEnvelope(v, "1.2.3", time.Date(2024, 5, 4, 3, 2, 1, 0, time.UTC), 1500*time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, codec.JSON().Encode(&buf, &env))

	g := goldie.New(t)
	g.Assert(t, "artifact_json", buf.Bytes())
}
