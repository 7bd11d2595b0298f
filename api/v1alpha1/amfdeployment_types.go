/*

Copyright 2025.



Licensed under the Apache License, Version 2.0 (the "License");

you may not use this file except in compliance with the License.

You may obtain a copy of the License at



    http://www.apache.org/licenses/LICENSE-2.0



Unless required by applicable law or agreed to in writing, software

distributed under the License is distributed on an "AS IS" BASIS,

WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.

See the License for the specific language governing permissions and

limitations under the License.

*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// StatusPhase is the externally visible readiness summary of the AMF unit.
// Exactly one phase is set per reconciliation pass.
type StatusPhase string

const (
	// PhaseBlocked means an operator must act (a required integration is missing).
	PhaseBlocked StatusPhase = "Blocked"

	// PhaseWaiting means an upstream dependency is not ready yet; the pass is retried.
	PhaseWaiting StatusPhase = "Waiting"

	// PhaseMaintenance means the workload container itself is not reachable yet.
	PhaseMaintenance StatusPhase = "Maintenance"

	// PhaseActive means the workload is configured and running.
	PhaseActive StatusPhase = "Active"
)

// DatabaseClaim references the connection secret a database operator
// publishes once the requested logical database has been provisioned.
type DatabaseClaim struct {
	// +kubebuilder:validation:MinLength=1

	// SecretName is the connection secret in the deployment's namespace.
	SecretName string `json:"secretName"`

	// DatabaseName is the logical database requested from the provider.
	// +optional
	DatabaseName string `json:"databaseName,omitempty"`
}

// NRFReference points at the secret through which the NRF operator
// publishes its management URL once the NRF is up.
type NRFReference struct {
	// +kubebuilder:validation:MinLength=1

	SecretName string `json:"secretName"`
}

// AMFDeploymentSpec defines the desired state of the managed AMF workload.
type AMFDeploymentSpec struct {
	// +kubebuilder:default=amf

	// ServiceName is the pebble service managed inside the workload container.
	ServiceName string `json:"serviceName,omitempty"`

	// NRF is the service-discovery integration. Required for the
	// deployment to leave the Blocked phase.
	// +optional
	NRF *NRFReference `json:"nrf,omitempty"`

	// AMFDatabase is the function-specific database integration.
	// +optional
	AMFDatabase *DatabaseClaim `json:"amfDatabase,omitempty"`

	// DefaultDatabase is the shared core database integration.
	// +optional
	DefaultDatabase *DatabaseClaim `json:"defaultDatabase,omitempty"`

	// +kubebuilder:default=SDCORE5G

	// FullNetworkName is broadcast to subscribers as the long network name.
	FullNetworkName string `json:"fullNetworkName,omitempty"`

	// +kubebuilder:default=SDCORE

	// ShortNetworkName is broadcast to subscribers as the short network name.
	ShortNetworkName string `json:"shortNetworkName,omitempty"`
}

// +k8s:deepcopy-gen=true

// AMFDeploymentStatus defines the observed state of AMFDeployment.
type AMFDeploymentStatus struct {
	// +optional

	Phase StatusPhase `json:"phase,omitempty"`

	// Message is the human-readable reason for a non-Active phase.
	// +optional
	Message string `json:"message,omitempty"`

	// +optional

	Conditions []metav1.Condition `json:"conditions,omitempty"`

	// +optional

	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// +kubebuilder:object:root=true

// +kubebuilder:subresource:status

// +kubebuilder:resource:scope=Namespaced,shortName=amfd

// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`

// +kubebuilder:printcolumn:name="Message",type=string,JSONPath=`.status.message`

// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// AMFDeployment is the Schema for the amfdeployments API.
// It describes one AMF workload container whose configuration this
// operator reconciles against the upstream NRF and database integrations.
type AMFDeployment struct {
	metav1.TypeMeta `json:",inline"`

	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec AMFDeploymentSpec `json:"spec,omitempty"`

	Status AMFDeploymentStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// AMFDeploymentList contains a list of AMFDeployment resources.
type AMFDeploymentList struct {
	metav1.TypeMeta `json:",inline"`

	metav1.ListMeta `json:"metadata,omitempty"`

	Items []AMFDeployment `json:"items"`
}

func init() {
	SchemeBuilder.Register(&AMFDeployment{}, &AMFDeploymentList{})
}
