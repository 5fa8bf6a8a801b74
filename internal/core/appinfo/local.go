package appinfo

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"appinfo/internal/config"
	"appinfo/internal/domain"
)

// ErrAppIDNotDetected is returned when no known property carries the app ID
var ErrAppIDNotDetected = errors.New("unable to autodetect app ID")

// Builder creates identities for processes running outside a data center
type Builder struct {
	resolver HostnameResolver
	logger   *zap.Logger
}

// Option configures a Builder
type Option func(*Builder)

// WithResolver sets the hostname resolver. Nil keeps the default.
func WithResolver(r HostnameResolver) Option {
	return func(b *Builder) {
		if r != nil {
			b.resolver = r
		}
	}
}

// WithLogger sets the logger used to report hostname failures. Nil keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a Builder that resolves hostnames with
// OSHostnameResolver and discards logs unless options say otherwise.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		resolver: OSHostnameResolver{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// LocalInstance returns an identity for appID with environment and data
// center both set to domain.Local and the instance ID set to the local
// hostname. If the hostname cannot be resolved the failure is logged and
// the instance ID is domain.Unknown.
func (b *Builder) LocalInstance(appID string) domain.AppInfo {
	instanceID, err := b.resolver.ResolveLocalHostname()
	if err != nil {
		b.logger.Warn("Unable to resolve local hostname",
			zap.String("app_id", appID),
			zap.Error(err),
		)
		instanceID = ""
	}

	return domain.NewAppInfo(appID, domain.Local, domain.Local, instanceID)
}

// DetectLocalInstance is LocalInstance with the app ID taken from
// DetectAppID. It fails with ErrAppIDNotDetected when no app ID is found;
// callers that know their app ID some other way should use LocalInstance.
func (b *Builder) DetectLocalInstance(props config.Properties) (domain.AppInfo, error) {
	appID, ok := DetectAppID(props)
	if !ok {
		return domain.UnknownAppInfo(), fmt.Errorf(
			"%w: set one of %v or call LocalInstance with the app ID",
			ErrAppIDNotDetected, AppIDKeys)
	}

	return b.LocalInstance(appID), nil
}

// MustDetectLocalInstance is like DetectLocalInstance but panics if the app
// ID cannot be detected. Use it during startup, where an unnamed service is
// a deployment error.
func (b *Builder) MustDetectLocalInstance(props config.Properties) domain.AppInfo {
	info, err := b.DetectLocalInstance(props)
	if err != nil {
		panic(err)
	}
	return info
}

var defaultBuilder = NewBuilder()

// LocalInstance builds a local identity using the OS hostname
func LocalInstance(appID string) domain.AppInfo {
	return defaultBuilder.LocalInstance(appID)
}

// DetectLocalInstance builds a local identity using the detected app ID and the OS hostname
func DetectLocalInstance(props config.Properties) (domain.AppInfo, error) {
	return defaultBuilder.DetectLocalInstance(props)
}
