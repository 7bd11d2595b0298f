package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadinessErrorMessages(t *testing.T) {
	tests := []struct {
		name      string
		err       *ReadinessError
		kind      ReadinessKind
		message   string
		retryable bool
	}{
		{
			name:      "not reachable",
			err:       NotReachable("Waiting for service to start"),
			kind:      KindNotReachable,
			message:   "Waiting for service to start",
			retryable: true,
		},
		{
			name:      "relation missing",
			err:       RelationMissing("fiveg-nrf"),
			kind:      KindRelationMissing,
			message:   "Waiting for fiveg-nrf relation",
			retryable: false,
		},
		{
			name:      "not provisioned",
			err:       NotProvisioned("default database"),
			kind:      KindResourceNotProvisioned,
			message:   "Waiting for the default database to be available",
			retryable: true,
		},
		{
			name:      "info not available",
			err:       InfoNotAvailable("NRF data"),
			kind:      KindInfoNotAvailable,
			message:   "Waiting for NRF data to be available",
			retryable: true,
		},
		{
			name:      "storage not attached",
			err:       StorageNotAttached(),
			kind:      KindStorageNotAttached,
			message:   "Waiting for storage to be attached",
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.message, tt.err.Message)
			assert.Equal(t, tt.retryable, tt.err.Retryable())
			assert.Contains(t, tt.err.Error(), tt.message)
		})
	}
}
