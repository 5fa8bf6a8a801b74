package codec

import (
	"fmt"
	"io"

	"appinfo/internal/domain"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse reads an identity from YAML. Missing or null fields become domain.Unknown.
func (c *YAMLCodec) Parse(r io.Reader) (domain.AppInfo, error) {
	var rec record
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&rec); err != nil {
		return domain.UnknownAppInfo(), fmt.Errorf("failed to parse YAML: %w", err)
	}

	return rec.toAppInfo(), nil
}

// Export writes an identity as YAML
func (c *YAMLCodec) Export(info domain.Info, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	rec := toRecord(info)
	if err := encoder.Encode(&rec); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
