package domain

// Unknown is the placeholder for any identity field that could not be determined.
const Unknown = "UNKNOWN"

// Local is the environment and data center label for instances running
// outside a data center, such as a developer machine.
const Local = "local"

// Info is the read-only view of a service instance's runtime identity.
type Info interface {
	AppID() string
	Environment() string
	DataCenter() string
	InstanceID() string
}

// AppInfo identifies a running service instance. It is immutable once
// built and every accessor returns a non-empty value.
//
// The zero value reports Unknown for all four fields, but it only compares
// equal to values from the constructors after passing through NewAppInfo.
type AppInfo struct {
	appID       string
	environment string
	dataCenter  string
	instanceID  string
}

var _ Info = AppInfo{}

// NewAppInfo builds an AppInfo from explicit values. Empty arguments are
// replaced with Unknown; anything else is stored as given.
//
// appID and environment should always be known for a real deployment, but
// passing them empty is not an error. dataCenter and instanceID may be left
// empty when the caller has no way to determine them.
func NewAppInfo(appID, environment, dataCenter, instanceID string) AppInfo {
	return AppInfo{
		appID:       orUnknown(appID),
		environment: orUnknown(environment),
		dataCenter:  orUnknown(dataCenter),
		instanceID:  orUnknown(instanceID),
	}
}

// UnknownAppInfo returns an AppInfo with every field set to Unknown.
// Decoders start from it before filling in fields.
func UnknownAppInfo() AppInfo {
	return NewAppInfo("", "", "", "")
}

// AppID returns the service name, like "foo-svc".
func (a AppInfo) AppID() string { return orUnknown(a.appID) }

// Environment returns the deployment stage, like "test" or "prod".
func (a AppInfo) Environment() string { return orUnknown(a.environment) }

// DataCenter returns the region or facility, like "us-west-2".
func (a AppInfo) DataCenter() string { return orUnknown(a.dataCenter) }

// InstanceID returns the hostname, IP or other per-process identifier.
func (a AppInfo) InstanceID() string { return orUnknown(a.instanceID) }

// String renders the identity as appId/environment/dataCenter/instanceId.
func (a AppInfo) String() string {
	return a.AppID() + "/" + a.Environment() + "/" + a.DataCenter() + "/" + a.InstanceID()
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
