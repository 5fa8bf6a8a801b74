// Package telemetry turns a service identity into tags for logs, traces
// and metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"appinfo/internal/domain"
)

// Label and field names used for metrics and logs
const (
	KeyAppID       = "app_id"
	KeyEnvironment = "environment"
	KeyDataCenter  = "data_center"
	KeyInstanceID  = "instance_id"
)

// OpenTelemetry resource attribute keys
const (
	AttrServiceName           attribute.Key = "service.name"
	AttrDeploymentEnvironment attribute.Key = "deployment.environment"
	AttrCloudRegion           attribute.Key = "cloud.region"
	AttrServiceInstanceID     attribute.Key = "service.instance.id"
)

// Fields returns zap fields for tagging log entries, typically passed to
// (*zap.Logger).With once at startup.
func Fields(info domain.Info) []zap.Field {
	return []zap.Field{
		zap.String(KeyAppID, info.AppID()),
		zap.String(KeyEnvironment, info.Environment()),
		zap.String(KeyDataCenter, info.DataCenter()),
		zap.String(KeyInstanceID, info.InstanceID()),
	}
}

// Object wraps info so it logs as a nested object: zap.Object("app", Object(info))
func Object(info domain.Info) zapcore.ObjectMarshaler {
	return object{info}
}

type object struct {
	info domain.Info
}

func (o object) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString(KeyAppID, o.info.AppID())
	enc.AddString(KeyEnvironment, o.info.Environment())
	enc.AddString(KeyDataCenter, o.info.DataCenter())
	enc.AddString(KeyInstanceID, o.info.InstanceID())
	return nil
}

// Attributes returns OpenTelemetry resource attributes for info
func Attributes(info domain.Info) []attribute.KeyValue {
	return []attribute.KeyValue{
		AttrServiceName.String(info.AppID()),
		AttrDeploymentEnvironment.String(info.Environment()),
		AttrCloudRegion.String(info.DataCenter()),
		AttrServiceInstanceID.String(info.InstanceID()),
	}
}

// Labels returns Prometheus labels for info, suitable as ConstLabels
func Labels(info domain.Info) prometheus.Labels {
	return prometheus.Labels{
		KeyAppID:       info.AppID(),
		KeyEnvironment: info.Environment(),
		KeyDataCenter:  info.DataCenter(),
		KeyInstanceID:  info.InstanceID(),
	}
}

// NewInfoGauge registers an "app_info" gauge fixed at 1 and labelled with
// info, so every scrape carries the instance identity.
func NewInfoGauge(info domain.Info, reg prometheus.Registerer) (prometheus.Gauge, error) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "app_info",
		Help:        "Identity of the running service instance; always 1",
		ConstLabels: Labels(info),
	})
	g.Set(1)

	if err := reg.Register(g); err != nil {
		return nil, err
	}
	return g, nil
}
