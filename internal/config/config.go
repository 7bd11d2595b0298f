// Package config resolves the operator's environment-derived settings.
// Flags in cmd/main.go may override individual values.
package config

import (
	"fmt"
	"net"
	"os"
	"time"
)

const (
	// DefaultPebbleSocket is where the workload container's pebble socket
	// is mounted into the operator container.
	DefaultPebbleSocket = "/charm/containers/amf/pebble.socket"

	// DefaultRequeueAfter is the retry cadence for not-yet-ready upstream
	// dependencies.
	DefaultRequeueAfter = 10 * time.Second
)

// OperatorConfig holds the process-level settings of the operator.
type OperatorConfig struct {
	// PebbleSocket is the path of the workload container's pebble socket.
	PebbleSocket string

	// PodIP is the workload pod's address, exported to the AMF process.
	PodIP string

	// RequeueAfter is the delay before a deferred pass is retried.
	RequeueAfter time.Duration

	// WatchNamespace scopes the manager's cache to one namespace.
	// Empty means cluster-wide.
	WatchNamespace string
}

// FromEnvironment builds the operator configuration from the environment:
// PEBBLE_SOCKET, POD_IP (downward API), REQUEUE_AFTER and WATCH_NAMESPACE.
func FromEnvironment() (*OperatorConfig, error) {
	cfg := &OperatorConfig{
		PebbleSocket: DefaultPebbleSocket,
		RequeueAfter: DefaultRequeueAfter,
	}

	if socket := os.Getenv("PEBBLE_SOCKET"); socket != "" {
		cfg.PebbleSocket = socket
	}

	if ip := os.Getenv("POD_IP"); ip != "" {
		if net.ParseIP(ip) == nil {
			return nil, fmt.Errorf("POD_IP %q is not a valid IP address", ip)
		}
		cfg.PodIP = ip
	}

	if cfg.PodIP == "" {
		if ip, err := resolvePodIP(); err == nil {
			cfg.PodIP = ip
		}
	}

	if raw := os.Getenv("REQUEUE_AFTER"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEUE_AFTER %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("REQUEUE_AFTER must be positive, got %s", d)
		}
		cfg.RequeueAfter = d
	}

	cfg.WatchNamespace = os.Getenv("WATCH_NAMESPACE")

	return cfg, nil
}

// resolvePodIP falls back to resolving the pod's own hostname when the
// downward API variable is not set.
func resolvePodIP() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", err
	}
	addrs, err := net.LookupHost(hostname)
	if err != nil {
		return "", err
	}
	for _, addr := range addrs {
		if ip := net.ParseIP(addr); ip != nil && ip.To4() != nil {
			return addr, nil
		}
	}
	return "", fmt.Errorf("no IPv4 address for hostname %q", hostname)
}
