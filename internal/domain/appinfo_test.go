package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppInfo(t *testing.T) {
	tests := []struct {
		name        string
		appID       string
		environment string
		dataCenter  string
		instanceID  string
		want        [4]string
	}{
		{
			name:        "all values pass through",
			appID:       "foo-svc",
			environment: "prod",
			dataCenter:  "us-west-2",
			instanceID:  "10.0.0.7",
			want:        [4]string{"foo-svc", "prod", "us-west-2", "10.0.0.7"},
		},
		{
			name: "all empty become unknown",
			want: [4]string{Unknown, Unknown, Unknown, Unknown},
		},
		{
			name:        "empty app id only",
			environment: "test",
			dataCenter:  "eu-central-1",
			instanceID:  "box-1",
			want:        [4]string{Unknown, "test", "eu-central-1", "box-1"},
		},
		{
			name:       "empty environment only",
			appID:      "foo-svc",
			dataCenter: "eu-central-1",
			instanceID: "box-1",
			want:       [4]string{"foo-svc", Unknown, "eu-central-1", "box-1"},
		},
		{
			name:        "optional fields left empty",
			appID:       "foo-svc",
			environment: "test",
			want:        [4]string{"foo-svc", "test", Unknown, Unknown},
		},
		{
			name:        "whitespace is kept as given",
			appID:       " foo-svc ",
			environment: "\t",
			dataCenter:  "local",
			instanceID:  Unknown,
			want:        [4]string{" foo-svc ", "\t", "local", Unknown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewAppInfo(tt.appID, tt.environment, tt.dataCenter, tt.instanceID)
			got := [4]string{info.AppID(), info.Environment(), info.DataCenter(), info.InstanceID()}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownAppInfo(t *testing.T) {
	info := UnknownAppInfo()

	assert.Equal(t, Unknown, info.AppID())
	assert.Equal(t, Unknown, info.Environment())
	assert.Equal(t, Unknown, info.DataCenter())
	assert.Equal(t, Unknown, info.InstanceID())
}

func TestAppInfoZeroValue(t *testing.T) {
	var info AppInfo

	assert.Equal(t, Unknown, info.AppID())
	assert.Equal(t, Unknown, info.Environment())
	assert.Equal(t, Unknown, info.DataCenter())
	assert.Equal(t, Unknown, info.InstanceID())
	assert.Equal(t, "UNKNOWN/UNKNOWN/UNKNOWN/UNKNOWN", info.String())
}

func TestAppInfoEquality(t *testing.T) {
	a := NewAppInfo("foo-svc", "prod", "", "")
	b := NewAppInfo("foo-svc", "prod", Unknown, Unknown)
	c := NewAppInfo("foo-svc", "test", "", "")

	assert.Equal(t, a, b)
	assert.True(t, a == b, "explicit Unknown and empty input should compare equal")
	assert.NotEqual(t, a, c)
}

func TestAppInfoString(t *testing.T) {
	info := NewAppInfo("orders-svc", Local, Local, "host-42")

	assert.Equal(t, "orders-svc/local/local/host-42", info.String())
}
