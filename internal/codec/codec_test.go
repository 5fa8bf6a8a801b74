package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appinfo/internal/domain"
)

func TestParseFillsMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		codec Codec
		input string
	}{
		{"json", NewJSONCodec(), `{"appId": "foo-svc", "environment": null}`},
		{"yaml", NewYAMLCodec(), "appId: foo-svc\nenvironment: ~\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tt.codec.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, domain.NewAppInfo("foo-svc", "", "", ""), info)
			assert.Equal(t, domain.Unknown, info.Environment())
			assert.Equal(t, domain.Unknown, info.InstanceID())
		})
	}
}

func TestParseEmptyObject(t *testing.T) {
	info, err := NewJSONCodec().Parse(strings.NewReader(`{}`))
	require.NoError(t, err)

	assert.Equal(t, domain.UnknownAppInfo(), info)
}

func TestParseErrors(t *testing.T) {
	_, err := NewJSONCodec().Parse(strings.NewReader(`{"appId": `))
	assert.Error(t, err)

	_, err = NewYAMLCodec().Parse(strings.NewReader("appId: [unclosed\n"))
	assert.Error(t, err)
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	info := domain.NewAppInfo("orders-svc", "local", "local", "host-42")

	require.NoError(t, NewJSONCodec().Export(info, &buf))

	assert.JSONEq(t,
		`{"appId":"orders-svc","environment":"local","dataCenter":"local","instanceId":"host-42"}`,
		buf.String())
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	info := domain.NewAppInfo("orders-svc", "", "", "")

	require.NoError(t, NewYAMLCodec().Export(info, &buf))

	assert.YAMLEq(t,
		"appId: orders-svc\nenvironment: UNKNOWN\ndataCenter: UNKNOWN\ninstanceId: UNKNOWN\n",
		buf.String())
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"json", "yaml", "yml"} {
		c, err := ForFormat(format)
		require.NoError(t, err, format)
		assert.NotNil(t, c)
	}

	c, err := ForFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Format())

	_, err = ForFormat("xml")
	assert.Error(t, err)
}
