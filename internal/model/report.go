package model

// Makefile holds the analysis result for a single file found by a scan.
type Makefile struct {
	Path    Path    `json:"path" yaml:"path" cbor:"path"`
	Hash    string  `json:"hash" yaml:"hash" cbor:"hash"` // blake2b-256, hex encoded
	Targets Targets `json:"targets" yaml:"targets" cbor:"targets"`
}
