// Package servicepatch declares the AMF's network ports on the workload
// Service so signaling peers and the metrics scraper can reach it. The
// Service itself belongs to the workload deployment machinery; this package
// only reconciles its port list.
package servicepatch

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sdcore-dev/amf-operator/pkg/logging"
)

// Port is one declared service port.
type Port struct {
	Name     string
	Port     int32
	Protocol corev1.Protocol
}

// Apply ensures the Service declares all given ports. Missing ports are
// appended, mismatched ones corrected; nothing is written when the Service
// already matches. A Service that does not exist yet is skipped.
func Apply(ctx context.Context, c client.Client, key types.NamespacedName, ports []Port, logger logging.Logger) error {
	service := &corev1.Service{}
	if err := c.Get(ctx, key, service); err != nil {
		if apierrors.IsNotFound(err) {
			logger.WarnEvent("Workload Service not found, skipping port declaration",
				"service", key.Name)
			return nil
		}
		return fmt.Errorf("getting service %s: %w", key.Name, err)
	}

	changed := false
	for _, desired := range ports {
		protocol := desired.Protocol
		if protocol == "" {
			protocol = corev1.ProtocolTCP
		}

		found := false
		for i := range service.Spec.Ports {
			existing := &service.Spec.Ports[i]
			if existing.Name != desired.Name {
				continue
			}
			found = true
			if existing.Port != desired.Port || existing.Protocol != protocol {
				existing.Port = desired.Port
				existing.Protocol = protocol
				changed = true
			}
			break
		}
		if !found {
			service.Spec.Ports = append(service.Spec.Ports, corev1.ServicePort{
				Name:     desired.Name,
				Port:     desired.Port,
				Protocol: protocol,
			})
			changed = true
		}
	}

	if !changed {
		return nil
	}
	if err := c.Update(ctx, service); err != nil {
		return fmt.Errorf("updating service %s ports: %w", key.Name, err)
	}
	logger.InfoEvent("Declared service ports", "service", key.Name, "ports", len(ports))
	return nil
}
