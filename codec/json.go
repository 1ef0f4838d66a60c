package codec

import (
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/zerr"
)

type jsonFormat struct{}

// JSON returns the indented JSON format. It is the readable text format;
// note that non-finite floats have no JSON representation and fail encode.
func JSON() Format {
	return jsonFormat{}
}

func (jsonFormat) Encode(w io.Writer, env *Envelope) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return zerr.Wrap(err, "failed to encode artifact as json")
	}
	return nil
}

func (jsonFormat) Decode(r io.Reader, env *Envelope) error {
	if err := json.NewDecoder(r).Decode(env); err != nil {
		return errors.Join(ErrDecode, zerr.Wrap(err, "failed to decode artifact json"))
	}
	return nil
}
