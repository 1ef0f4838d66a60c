package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"go.trai.ch/zerr"
)

// zstdEncoder and zstdDecoder are reused across calls to avoid repeated
// initialization overhead; both are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("codec: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("codec: zstd decoder initialization failed: " + err.Error())
	}
}

type zstdFormat struct {
	inner Format
}

// Zstd wraps a format with zstd compression. Register the result under a
// chained suffix such as ".json.zst".
func Zstd(inner Format) Format {
	return zstdFormat{inner: inner}
}

func (f zstdFormat) Encode(w io.Writer, env *Envelope) error {
	var buf bytes.Buffer
	if err := f.inner.Encode(&buf, env); err != nil {
		return err
	}
	if _, err := w.Write(zstdEncoder.EncodeAll(buf.Bytes(), nil)); err != nil {
		return zerr.Wrap(err, "failed to write compressed artifact")
	}
	return nil
}

func (f zstdFormat) Decode(r io.Reader, env *Envelope) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Join(ErrDecode, zerr.Wrap(err, "failed to read compressed artifact"))
	}
	plain, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return errors.Join(ErrDecode, zerr.Wrap(err, "failed to decompress artifact"))
	}
	return f.inner.Decode(bytes.NewReader(plain), env)
}

type lz4Format struct {
	inner Format
}

// LZ4 wraps a format with lz4 frame compression.
func LZ4(inner Format) Format {
	return lz4Format{inner: inner}
}

func (f lz4Format) Encode(w io.Writer, env *Envelope) error {
	zw := lz4.NewWriter(w)
	if err := f.inner.Encode(zw, env); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish compressed artifact")
	}
	return nil
}

func (f lz4Format) Decode(r io.Reader, env *Envelope) error {
	return f.inner.Decode(lz4.NewReader(r), env)
}
