package codec

import (
	"errors"
	"io"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type yamlFormat struct{}

// YAML returns the YAML format, handy for artifacts people read and diff.
func YAML() Format {
	return yamlFormat{}
}

func (yamlFormat) Encode(w io.Writer, env *Envelope) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(env); err != nil {
		return zerr.Wrap(err, "failed to encode artifact as yaml")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish artifact yaml")
	}
	return nil
}

func (yamlFormat) Decode(r io.Reader, env *Envelope) error {
	if err := yaml.NewDecoder(r).Decode(env); err != nil {
		return errors.Join(ErrDecode, zerr.Wrap(err, "failed to decode artifact yaml"))
	}
	return nil
}
