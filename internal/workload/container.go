// Package workload gives the reconciler access to the AMF workload
// container through its pebble management socket: file transfer for the
// configuration, layer management and restarts for the process itself.
package workload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/pebble/client"
	"gopkg.in/yaml.v3"

	"github.com/sdcore-dev/amf-operator/pkg/logging"
)

// Container is the reconciler's view of the workload container. The
// production implementation talks to pebble; tests substitute a fake.
type Container interface {
	// CanConnect reports whether the container's management API answers.
	CanConnect(ctx context.Context) bool

	// Exists reports whether a path is present in the container.
	Exists(ctx context.Context, path string) (bool, error)

	// Pull reads a file from the container.
	Pull(ctx context.Context, path string) (string, error)

	// Push writes a file into the container, creating parent directories.
	Push(ctx context.Context, path, content string) error

	// PlanServices returns the currently effective service specifications.
	PlanServices(ctx context.Context) (map[string]Service, error)

	// ApplyLayer combines the given layer into the container's plan.
	ApplyLayer(ctx context.Context, label string, layer Layer) error

	// Restart restarts the named service and waits for completion.
	Restart(ctx context.Context, service string) error
}

// PebbleContainer implements Container over the pebble unix socket shared
// with the workload container.
type PebbleContainer struct {
	pebble *client.Client
	logger logging.Logger
}

var _ Container = (*PebbleContainer)(nil)

// NewPebbleContainer connects to the pebble socket at the given path.
// Construction does not require the socket to be up yet; reachability is
// probed per pass via CanConnect.
func NewPebbleContainer(socketPath string) (*PebbleContainer, error) {
	pebble, err := client.New(&client.Config{Socket: socketPath})
	if err != nil {
		return nil, fmt.Errorf("creating pebble client for %s: %w", socketPath, err)
	}
	return &PebbleContainer{
		pebble: pebble,
		logger: logging.NewLogger(logging.ComponentWorkload),
	}, nil
}

func (c *PebbleContainer) CanConnect(_ context.Context) bool {
	if _, err := c.pebble.SysInfo(); err != nil {
		c.logger.DebugEvent("Workload container not reachable", "error", err.Error())
		return false
	}
	return true
}

func (c *PebbleContainer) Exists(_ context.Context, path string) (bool, error) {
	infos, err := c.pebble.ListFiles(&client.ListFilesOptions{Path: path, Itself: true})
	if err != nil {
		// The pebble API reports a missing path as a request error, not a
		// transport failure.
		var apiErr *client.Error
		if errors.As(err, &apiErr) {
			return false, nil
		}
		return false, fmt.Errorf("listing %s: %w", path, err)
	}
	return len(infos) > 0, nil
}

func (c *PebbleContainer) Pull(_ context.Context, path string) (string, error) {
	var buf bytes.Buffer
	if err := c.pebble.Pull(&client.PullOptions{Path: path, Target: &buf}); err != nil {
		return "", fmt.Errorf("pulling %s: %w", path, err)
	}
	return buf.String(), nil
}

func (c *PebbleContainer) Push(_ context.Context, path, content string) error {
	err := c.pebble.Push(&client.PushOptions{
		Path:     path,
		Source:   strings.NewReader(content),
		MakeDirs: true,
	})
	if err != nil {
		return fmt.Errorf("pushing %s: %w", path, err)
	}
	c.logger.ConfigPushed(path, len(content))
	return nil
}

func (c *PebbleContainer) PlanServices(_ context.Context) (map[string]Service, error) {
	data, err := c.pebble.PlanBytes(&client.PlanOptions{})
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	var plan struct {
		Services map[string]Service `yaml:"services"`
	}
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return plan.Services, nil
}

func (c *PebbleContainer) ApplyLayer(_ context.Context, label string, layer Layer) error {
	data, err := yaml.Marshal(layer)
	if err != nil {
		return fmt.Errorf("marshalling layer %s: %w", label, err)
	}
	err = c.pebble.AddLayer(&client.AddLayerOptions{
		Combine:   true,
		Label:     label,
		LayerData: data,
	})
	if err != nil {
		return fmt.Errorf("adding layer %s: %w", label, err)
	}
	return nil
}

func (c *PebbleContainer) Restart(_ context.Context, service string) error {
	changeID, err := c.pebble.Restart(&client.ServiceOptions{Names: []string{service}})
	if err != nil {
		return fmt.Errorf("restarting %s: %w", service, err)
	}
	change, err := c.pebble.WaitChange(changeID, nil)
	if err != nil {
		return fmt.Errorf("waiting for restart of %s: %w", service, err)
	}
	if change.Err != "" {
		return fmt.Errorf("restart of %s failed: %s", service, change.Err)
	}
	c.logger.WorkloadRestarted(service)
	return nil
}
