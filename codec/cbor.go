package codec

import (
	"errors"
	"io"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/zerr"
)

// cborEnc uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, smallest integer encoding, no indefinite-length items. The same
// envelope always produces identical bytes.
var cborEnc cbor.EncMode

// cborDec accepts standard CBOR and ignores unknown fields.
var cborDec cbor.DecMode

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: cbor encoder initialization failed: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: cbor decoder initialization failed: " + err.Error())
	}
}

type cborFormat struct{}

// CBOR returns the schemaless binary format.
func CBOR() Format {
	return cborFormat{}
}

func (cborFormat) Encode(w io.Writer, env *Envelope) error {
	if err := cborEnc.NewEncoder(w).Encode(env); err != nil {
		return zerr.Wrap(err, "failed to encode artifact as cbor")
	}
	return nil
}

func (cborFormat) Decode(r io.Reader, env *Envelope) error {
	if err := cborDec.NewDecoder(r).Decode(env); err != nil {
		return errors.Join(ErrDecode, zerr.Wrap(err, "failed to decode artifact cbor"))
	}
	return nil
}
