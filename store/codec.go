package store

import "gopkg.in/yaml.v3"

// Codec serializes settings documents to and from their persisted form.
type Codec interface {
	// Name identifies the codec in error messages, e.g. "YAML".
	Name() string

	// Marshal encodes a document for persistence.
	Marshal(in any) ([]byte, error)

	// Unmarshal decodes persisted bytes into out.
	Unmarshal(data []byte, out any) error
}

// YAMLCodec encodes settings documents as YAML. This is the default codec.
type YAMLCodec struct{}

// Name returns "YAML".
func (YAMLCodec) Name() string { return "YAML" }

// Marshal encodes a document as YAML.
func (YAMLCodec) Marshal(in any) ([]byte, error) {
	return yaml.Marshal(in)
}

// Unmarshal decodes YAML bytes into out.
func (YAMLCodec) Unmarshal(data []byte, out any) error {
	return yaml.Unmarshal(data, out)
}
