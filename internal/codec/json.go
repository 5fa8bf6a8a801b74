package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"appinfo/internal/domain"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse reads an identity from JSON. Missing or null fields become domain.Unknown.
func (c *JSONCodec) Parse(r io.Reader) (domain.AppInfo, error) {
	var rec record
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&rec); err != nil {
		return domain.UnknownAppInfo(), fmt.Errorf("failed to parse JSON: %w", err)
	}

	return rec.toAppInfo(), nil
}

// Export writes an identity as indented JSON
func (c *JSONCodec) Export(info domain.Info, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(toRecord(info)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
