// Package errors defines the readiness error taxonomy the reconciler maps
// to unit status. None of these are fatal: each either requeues the pass or
// waits for operator action.
package errors

import "fmt"

// ReadinessKind categorises why a reconciliation pass could not proceed.
type ReadinessKind string

const (
	// KindNotReachable means the workload container's management API is down.
	KindNotReachable ReadinessKind = "not_reachable"

	// KindRelationMissing means a required integration has not been set up.
	KindRelationMissing ReadinessKind = "relation_missing"

	// KindResourceNotProvisioned means an upstream resource (a database)
	// exists as an integration but has not been provisioned yet.
	KindResourceNotProvisioned ReadinessKind = "resource_not_provisioned"

	// KindInfoNotAvailable means an upstream peer has not published its
	// connection details yet.
	KindInfoNotAvailable ReadinessKind = "info_not_available"

	// KindStorageNotAttached means the config storage mount is not present
	// in the workload container yet.
	KindStorageNotAttached ReadinessKind = "storage_not_attached"
)

// ReadinessError reports a failed precondition of the reconciliation guard
// chain together with the human-readable reason surfaced as unit status.
type ReadinessError struct {
	Kind    ReadinessKind
	Message string
}

func (e *ReadinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Retryable reports whether the condition resolves on its own and should be
// retried. A missing integration needs operator action and is not retried.
func (e *ReadinessError) Retryable() bool {
	return e.Kind != KindRelationMissing
}

// NotReachable reports an unreachable workload container.
func NotReachable(message string) *ReadinessError {
	return &ReadinessError{Kind: KindNotReachable, Message: message}
}

// RelationMissing reports a required integration that has not been created.
func RelationMissing(relation string) *ReadinessError {
	return &ReadinessError{
		Kind:    KindRelationMissing,
		Message: fmt.Sprintf("Waiting for %s relation", relation),
	}
}

// NotProvisioned reports an upstream resource that is not ready yet.
func NotProvisioned(resource string) *ReadinessError {
	return &ReadinessError{
		Kind:    KindResourceNotProvisioned,
		Message: fmt.Sprintf("Waiting for the %s to be available", resource),
	}
}

// InfoNotAvailable reports missing connection details from an upstream peer.
func InfoNotAvailable(resource string) *ReadinessError {
	return &ReadinessError{
		Kind:    KindInfoNotAvailable,
		Message: fmt.Sprintf("Waiting for %s to be available", resource),
	}
}

// StorageNotAttached reports a missing storage mount.
func StorageNotAttached() *ReadinessError {
	return &ReadinessError{
		Kind:    KindStorageNotAttached,
		Message: "Waiting for storage to be attached",
	}
}
