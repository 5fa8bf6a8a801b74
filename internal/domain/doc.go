// Package domain defines the core types describing a running service
// instance's identity.
//
// # Core Types
//
// AppInfo is an immutable record of four fields: the app ID (service
// name), the deployment environment, the data center or region, and the
// instance ID (usually the hostname). Every field always holds a value;
// anything that could not be determined is reported as Unknown.
//
// Info is the read-only interface over those four fields. Consumers that
// only tag logs or metrics should accept Info rather than AppInfo.
//
// # Design Principles
//
// - Immutable value objects with plain field equality
// - No I/O: detection and hostname lookup live in internal/core/appinfo
// - No external dependencies
package domain
