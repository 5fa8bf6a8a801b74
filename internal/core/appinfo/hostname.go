package appinfo

import (
	"errors"
	"fmt"
	"os"
)

// ErrHostUnknown is returned when the local hostname cannot be resolved
var ErrHostUnknown = errors.New("local hostname unknown")

// HostnameResolver looks up the name of the machine the process runs on.
// Implementations wrap failures in ErrHostUnknown.
type HostnameResolver interface {
	ResolveLocalHostname() (string, error)
}

// HostnameResolverFunc adapts a plain function to HostnameResolver
type HostnameResolverFunc func() (string, error)

// ResolveLocalHostname implements HostnameResolver
func (f HostnameResolverFunc) ResolveLocalHostname() (string, error) {
	return f()
}

// OSHostnameResolver asks the kernel for the hostname. No DNS lookup is made.
type OSHostnameResolver struct{}

// ResolveLocalHostname implements HostnameResolver
func (OSHostnameResolver) ResolveLocalHostname() (string, error) {
	host, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHostUnknown, err)
	}
	if host == "" {
		return "", fmt.Errorf("%w: empty hostname", ErrHostUnknown)
	}
	return host, nil
}
