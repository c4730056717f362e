package model

// Path represents a file system path.
type Path string

// Format names a serialization format for analysis results.
type Format string

const (
	// FormatJSON is pretty-printed JSON, the default.
	FormatJSON Format = "json"
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
	// FormatCBOR is canonical CBOR.
	FormatCBOR Format = "cbor"
)

// Formats lists every supported Format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCBOR}
}
