// Package codec reads and writes service identities as JSON or YAML.
package codec

import (
	"fmt"
	"io"

	"appinfo/internal/domain"
)

// Decoder reads an identity from a serialized form
type Decoder interface {
	Parse(r io.Reader) (domain.AppInfo, error)
	Format() string
}

// Encoder writes an identity in a serialized form
type Encoder interface {
	Export(info domain.Info, w io.Writer) error
	Format() string
}

// Codec both reads and writes one format
type Codec interface {
	Decoder
	Encoder
}

// record is the wire shape shared by every format
type record struct {
	AppID       string `json:"appId" yaml:"appId"`
	Environment string `json:"environment" yaml:"environment"`
	DataCenter  string `json:"dataCenter" yaml:"dataCenter"`
	InstanceID  string `json:"instanceId" yaml:"instanceId"`
}

func toRecord(info domain.Info) record {
	return record{
		AppID:       info.AppID(),
		Environment: info.Environment(),
		DataCenter:  info.DataCenter(),
		InstanceID:  info.InstanceID(),
	}
}

// toAppInfo fills absent fields with domain.Unknown
func (r record) toAppInfo() domain.AppInfo {
	return domain.NewAppInfo(r.AppID, r.Environment, r.DataCenter, r.InstanceID)
}

// ForFormat returns the codec for a format name ("json" or "yaml")
func ForFormat(format string) (Codec, error) {
	switch format {
	case "json":
		return NewJSONCodec(), nil
	case "yaml", "yml":
		return NewYAMLCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
