package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/makeparse/internal/model"
)

// Encoder serializes analysis results in one output format.
type Encoder interface {
	Format() m.Format
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// NewEncoder returns the Encoder for format. An empty format selects JSON.
func NewEncoder(format m.Format) (Encoder, error) {
	switch format {
	case "", m.FormatJSON:
		return jsonEncoder{}, nil
	case m.FormatYAML:
		return yamlEncoder{}, nil
	case m.FormatCBOR:
		encMode, err := cbor.CanonicalEncOptions().EncMode()
		if err != nil {
			return nil, fmt.Errorf("failed to create CBOR encoder: %w", err)
		}

		return cborEncoder{encMode: encMode}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (want one of %v)", format, m.Formats())
	}
}

// jsonEncoder writes two-space indented JSON terminated by a newline.
type jsonEncoder struct{}

func (jsonEncoder) Format() m.Format { return m.FormatJSON }

func (jsonEncoder) Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("JSON encoding failed: %w", err)
	}

	return append(data, '\n'), nil
}

func (jsonEncoder) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type yamlEncoder struct{}

func (yamlEncoder) Format() m.Format { return m.FormatYAML }

func (yamlEncoder) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("YAML encoding failed: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (yamlEncoder) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// cborEncoder emits canonical CBOR so equal results encode to equal bytes.
type cborEncoder struct {
	encMode cbor.EncMode
}

func (cborEncoder) Format() m.Format { return m.FormatCBOR }

func (e cborEncoder) Encode(v any) ([]byte, error) {
	data, err := e.encMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("CBOR encoding failed: %w", err)
	}

	return data, nil
}

func (cborEncoder) Decode(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}
