package loader

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

func decodeYAML(source string, data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		// An empty document decodes to nothing.
		return nil
	}

	msg := err.Error()
	var terr *yaml.TypeError
	if errors.As(err, &terr) {
		msg = strings.Join(terr.Errors, "; ")
	}
	return &ParseError{Path: source, Message: msg, Err: err}
}
