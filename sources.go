package godec

import (
	"bytes"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/godec/i18n"
)

// Input helpers. Decoders are format-agnostic and only see the dynamic shapes
// map[string]any, []any and scalars; these helpers produce that shape from
// serialized documents.

// JSONBytes parses b as JSON into the dynamic shapes the structural decoders
// consume. Numbers stay json.Number so integral scalars remain distinguishable
// from floats.
func JSONBytes(b []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// YAMLBytes parses b as YAML into the same dynamic shapes. yaml.v3 produces
// map[string]any for string-keyed mappings and native int/float64/bool scalars.
func YAMLBytes(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeJSON parses b as JSON and runs d on the parsed tree. A malformed
// document surfaces as an Err result, keeping a single failure channel.
func DecodeJSON[T any](d Decoder[T], b []byte) Result[T] {
	v, err := JSONBytes(b)
	if err != nil {
		return Err[T](i18n.T(CodeParseError, map[string]string{"cause": err.Error()}))
	}
	return d(v)
}

// DecodeYAML parses b as YAML and runs d on the parsed tree.
func DecodeYAML[T any](d Decoder[T], b []byte) Result[T] {
	v, err := YAMLBytes(b)
	if err != nil {
		return Err[T](i18n.T(CodeParseError, map[string]string{"cause": err.Error()}))
	}
	return d(v)
}
