// Package appinfo resolves the runtime identity of the current service
// instance. It probes well-known property keys for the app ID and
// environment, and builds "local" identities for processes that are not
// running in a data center.
package appinfo

import (
	"appinfo/internal/config"
)

// AppIDKeys are the property keys that may carry the app ID, most specific first.
// @appId and archaius.deployment.applicationId follow the Archaius
// conventions; eureka.name is the Eureka registration name.
var AppIDKeys = []string{
	"@appId",
	"archaius.deployment.applicationId",
	"eureka.name",
}

// EnvironmentKeys are the property keys that may carry the environment, most specific first.
var EnvironmentKeys = []string{
	"@environment",
	"archaius.deployment.environment",
}

// DetectAppID returns the value of the first key in AppIDKeys that is set in
// props. A false result does not mean the service has no app ID, only that
// none of the known conventions carry one.
func DetectAppID(props config.Properties) (string, bool) {
	return firstSet(props, AppIDKeys)
}

// DetectEnvironment returns the value of the first key in EnvironmentKeys
// that is set in props.
func DetectEnvironment(props config.Properties) (string, bool) {
	return firstSet(props, EnvironmentKeys)
}

// firstSet checks keys in order (most specific first)
func firstSet(props config.Properties, keys []string) (string, bool) {
	if props == nil {
		return "", false
	}
	for _, key := range keys {
		if v, ok := props.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
