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

// Package controllers implements the AMFDeployment reconciler for the
// SD-Core AMF operator.

package controllers

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	crreconcile "sigs.k8s.io/controller-runtime/pkg/reconcile"

	opsv1alpha1 "github.com/sdcore-dev/amf-operator/api/v1alpha1"
	"github.com/sdcore-dev/amf-operator/internal/config"
	"github.com/sdcore-dev/amf-operator/internal/relations"
	"github.com/sdcore-dev/amf-operator/internal/render"
	"github.com/sdcore-dev/amf-operator/internal/servicepatch"
	"github.com/sdcore-dev/amf-operator/internal/workload"
	sderrors "github.com/sdcore-dev/amf-operator/pkg/errors"
	"github.com/sdcore-dev/amf-operator/pkg/logging"
	"github.com/sdcore-dev/amf-operator/pkg/monitoring"
)

const (
	// PrometheusPort is the workload's metrics scrape port.
	PrometheusPort = 9089
	// SBIPort is the service-based-interface (HTTP) port.
	SBIPort = 29518
	// NGAPPPort is the NGAP signaling port (SCTP).
	NGAPPPort = 38412
	// SCTPGRPCPort is the gRPC channel over the SCTP load-balancer stack.
	SCTPGRPCPort = 9000

	// AMFDatabaseName is the function-specific logical database.
	AMFDatabaseName = "sdcore_amf"
	// DefaultDatabaseName is the shared core logical database.
	DefaultDatabaseName = "free5gc"

	// ConfigDirPath is the storage mount for configuration inside the
	// workload container.
	ConfigDirPath = "/free5gc/config"
	// ConfigFileName is the rendered AMF configuration file.
	ConfigFileName = "amfcfg.conf"

	amfLayerLabel = "amf"
	amfCommand    = "/free5gc/amf/amf --amfcfg " + ConfigDirPath + "/" + ConfigFileName
)

// Integration names surfaced in Blocked status messages, checked in this
// fixed order.
const (
	FivegNRFRelation        = "fiveg-nrf"
	AMFDatabaseRelation     = "amf-database"
	DefaultDatabaseRelation = "default-database"
)

// ReadyCondition is the condition type maintained alongside the phase.
const ReadyCondition = "Ready"

// AMFDeploymentReconciler reconciles an AMFDeployment against the workload
// container and the upstream NRF and database integrations.

type AMFDeploymentReconciler struct {
	client.Client

	Scheme *runtime.Scheme

	Logger logging.Logger

	// Workload is the managed AMF container.
	Workload workload.Container

	// PodIP is the workload pod address exported to the AMF process.
	PodIP string

	// RequeueAfter is the retry delay for not-yet-ready dependencies.
	RequeueAfter time.Duration
}

// outcome is the unit status chosen by one reconciliation pass. Exactly one
// outcome is produced and applied per pass.
type outcome struct {
	phase   opsv1alpha1.StatusPhase
	message string
	requeue bool
}

//+kubebuilder:rbac:groups=ops.sdcore.dev,resources=amfdeployments,verbs=get;list;watch;create;update;patch;delete

//+kubebuilder:rbac:groups=ops.sdcore.dev,resources=amfdeployments/status,verbs=get;update;patch

//+kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch

//+kubebuilder:rbac:groups="",resources=services,verbs=get;list;watch;update;patch

// Reconcile drives the workload configuration towards the desired state.

// The pass is an ordered short-circuit guard chain: the first dependency

// that is not ready decides the unit status, and only a fully guarded pass

// touches the workload.

func (r *AMFDeploymentReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	start := time.Now()
	logger := r.Logger.ReconcileStart(req.Namespace, req.Name)

	amf := &opsv1alpha1.AMFDeployment{}

	if err := r.Get(ctx, req.NamespacedName, amf); err != nil {

		if apierrors.IsNotFound(err) {

			logger.DebugEvent("AMFDeployment resource not found, ignoring since object must be deleted")

			return ctrl.Result{}, nil

		}

		duration := time.Since(start).Seconds()
		logger.ReconcileError(req.Namespace, req.Name, err, duration)

		return ctrl.Result{}, err

	}

	readiness, err := r.configure(ctx, amf, logger)

	duration := time.Since(start).Seconds()

	if err != nil {
		logger.ReconcileError(req.Namespace, req.Name, err, duration)
		return ctrl.Result{}, err
	}

	result := statusFor(readiness)

	if err := r.updateStatus(ctx, amf, result, logger); err != nil {
		return ctrl.Result{}, err
	}

	monitoring.RecordReconcile(string(result.phase), duration)

	if result.phase == opsv1alpha1.PhaseActive {
		logger.ReconcileSuccess(req.Namespace, req.Name, duration)
	}

	if result.requeue {
		return ctrl.Result{RequeueAfter: r.requeueAfter()}, nil
	}

	return ctrl.Result{}, nil
}

// configure runs the guard chain and, when every guard passes, applies the

// configuration and workload layer. A non-nil ReadinessError reports which

// guard failed; a non-nil error reports an infrastructure failure that

// should be retried by the manager.

func (r *AMFDeploymentReconciler) configure(ctx context.Context, amf *opsv1alpha1.AMFDeployment, logger logging.Logger) (*sderrors.ReadinessError, error) {
	if !r.Workload.CanConnect(ctx) {
		return sderrors.NotReachable("Waiting for service to start"), nil
	}

	nrf := relations.NewNRF(r.Client, amf.Namespace, amf.Spec.NRF)
	amfDatabase := relations.NewDatabase(r.Client, amf.Namespace, amf.Spec.AMFDatabase)
	defaultDatabase := relations.NewDatabase(r.Client, amf.Namespace, amf.Spec.DefaultDatabase)

	required := []struct {
		name        string
		established func(context.Context) (bool, error)
	}{
		{FivegNRFRelation, nrf.Established},
		{AMFDatabaseRelation, amfDatabase.Established},
		{DefaultDatabaseRelation, defaultDatabase.Established},
	}
	for _, relation := range required {
		established, err := relation.established(ctx)
		if err != nil {
			return nil, err
		}
		if !established {
			return sderrors.RelationMissing(relation.name), nil
		}
	}

	provisioned, err := defaultDatabase.Provisioned(ctx)
	if err != nil {
		return nil, err
	}
	if !provisioned {
		return sderrors.NotProvisioned("default database"), nil
	}

	provisioned, err = amfDatabase.Provisioned(ctx)
	if err != nil {
		return nil, err
	}
	if !provisioned {
		return sderrors.NotProvisioned("amf database"), nil
	}

	databaseURL, ok, err := defaultDatabase.ConnectionInfo(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return sderrors.InfoNotAvailable("default database info"), nil
	}

	nrfURL, ok, err := nrf.URL(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return sderrors.InfoNotAvailable("NRF data"), nil
	}

	attached, err := r.Workload.Exists(ctx, ConfigDirPath)
	if err != nil {
		return nil, err
	}
	if !attached {
		return sderrors.StorageNotAttached(), nil
	}

	desired := render.Config{
		NgappPort:           NGAPPPort,
		SctpGrpcPort:        SCTPGRPCPort,
		SbiPort:             SBIPort,
		NrfURL:              nrfURL,
		AmfURL:              amfHostname(amf),
		DefaultDatabaseName: DefaultDatabaseName,
		AmfDatabaseName:     AMFDatabaseName,
		DatabaseURL:         databaseURL,
		FullNetworkName:     fullNetworkName(amf),
		ShortNetworkName:    shortNetworkName(amf),
	}
	content, err := desired.Render()
	if err != nil {
		return nil, fmt.Errorf("rendering config: %w", err)
	}

	matches, err := r.configContentMatches(ctx, content)
	if err != nil {
		return nil, err
	}
	if !matches {
		if err := r.Workload.Push(ctx, configFilePath(), content); err != nil {
			return nil, err
		}
		monitoring.RecordConfigPush()
	}

	if err := r.configureWorkload(ctx, amf, !matches, logger); err != nil {
		return nil, err
	}

	ports := []servicepatch.Port{
		{Name: "prometheus-exporter", Port: PrometheusPort},
		{Name: "sbi", Port: SBIPort},
		{Name: "ngapp", Port: NGAPPPort, Protocol: corev1.ProtocolSCTP},
		{Name: "sctp-grpc", Port: SCTPGRPCPort},
	}
	serviceKey := types.NamespacedName{Namespace: amf.Namespace, Name: serviceName(amf)}
	if err := servicepatch.Apply(ctx, r.Client, serviceKey, ports, logger); err != nil {
		return nil, err
	}

	return nil, nil
}

// configContentMatches compares the rendered content byte for byte against

// what is stored in the workload filesystem.

func (r *AMFDeploymentReconciler) configContentMatches(ctx context.Context, content string) (bool, error) {
	exists, err := r.Workload.Exists(ctx, configFilePath())
	if err != nil || !exists {
		return false, err
	}
	existing, err := r.Workload.Pull(ctx, configFilePath())
	if err != nil {
		return false, err
	}
	return existing == content, nil
}

// configureWorkload applies the desired layer and restarts the service.

// Without a forced restart the workload is only touched when the running

// service specification differs from the desired one.

func (r *AMFDeploymentReconciler) configureWorkload(ctx context.Context, amf *opsv1alpha1.AMFDeployment, restart bool, logger logging.Logger) error {
	layer := r.desiredLayer(amf)

	if !restart {
		running, err := r.Workload.PlanServices(ctx)
		if err != nil {
			return err
		}
		if workload.ServicesEqual(layer, running) {
			logger.DebugEvent("Workload already running desired specification")
			return nil
		}
	}

	if err := r.Workload.ApplyLayer(ctx, amfLayerLabel, layer); err != nil {
		return err
	}
	if err := r.Workload.Restart(ctx, serviceName(amf)); err != nil {
		return err
	}
	monitoring.RecordWorkloadRestart()
	return nil
}

// desiredLayer is the process specification for the managed AMF service.

func (r *AMFDeploymentReconciler) desiredLayer(amf *opsv1alpha1.AMFDeployment) workload.Layer {
	return workload.Layer{
		Summary: "amf layer",
		Services: map[string]workload.Service{
			serviceName(amf): {
				Override: "replace",
				Startup:  "enabled",
				Command:  amfCommand,
				Environment: map[string]string{
					"GOTRACEBACK":                 "crash",
					"GRPC_GO_LOG_VERBOSITY_LEVEL": "99",
					"GRPC_GO_LOG_SEVERITY_LEVEL":  "info",
					"GRPC_TRACE":                  "all",
					"GRPC_VERBOSITY":              "DEBUG",
					"POD_IP":                      r.PodIP,
					"MANAGED_BY_CONFIG_POD":       "true",
				},
			},
		},
	}
}

// statusFor maps the failed guard (or the absence of one) to the unit

// status reported for this pass. A missing integration is not requeued:

// it resolves through operator action, which retriggers via the secret

// watch. Everything else retries on a timer.

func statusFor(readiness *sderrors.ReadinessError) outcome {
	if readiness == nil {
		return outcome{phase: opsv1alpha1.PhaseActive}
	}

	switch readiness.Kind {
	case sderrors.KindNotReachable:
		return outcome{phase: opsv1alpha1.PhaseMaintenance, message: readiness.Message, requeue: true}
	case sderrors.KindRelationMissing:
		return outcome{phase: opsv1alpha1.PhaseBlocked, message: readiness.Message, requeue: false}
	default:
		return outcome{phase: opsv1alpha1.PhaseWaiting, message: readiness.Message, requeue: readiness.Retryable()}
	}
}

// updateStatus applies the pass outcome to the status subresource.

func (r *AMFDeploymentReconciler) updateStatus(ctx context.Context, amf *opsv1alpha1.AMFDeployment, result outcome, logger logging.Logger) error {
	amf.Status.Phase = result.phase
	amf.Status.Message = result.message
	amf.Status.ObservedGeneration = amf.Generation

	condition := metav1.Condition{
		Type:               ReadyCondition,
		Status:             metav1.ConditionFalse,
		Reason:             string(result.phase),
		Message:            result.message,
		ObservedGeneration: amf.Generation,
	}
	if result.phase == opsv1alpha1.PhaseActive {
		condition.Status = metav1.ConditionTrue
		condition.Message = "AMF workload is configured and running"
	}
	meta.SetStatusCondition(&amf.Status.Conditions, condition)

	if err := r.Status().Update(ctx, amf); err != nil {
		logger.ErrorEvent(err, "Failed to update AMFDeployment status",
			"phase", result.phase,
			"message", result.message)
		return err
	}

	logger.StatusSet(string(result.phase), result.message)
	return nil
}

func (r *AMFDeploymentReconciler) requeueAfter() time.Duration {
	if r.RequeueAfter > 0 {
		return r.RequeueAfter
	}
	return config.DefaultRequeueAfter
}

func serviceName(amf *opsv1alpha1.AMFDeployment) string {
	if amf.Spec.ServiceName != "" {
		return amf.Spec.ServiceName
	}
	return "amf"
}

func fullNetworkName(amf *opsv1alpha1.AMFDeployment) string {
	if amf.Spec.FullNetworkName != "" {
		return amf.Spec.FullNetworkName
	}
	return "SDCORE5G"
}

func shortNetworkName(amf *opsv1alpha1.AMFDeployment) string {
	if amf.Spec.ShortNetworkName != "" {
		return amf.Spec.ShortNetworkName
	}
	return "SDCORE"
}

// amfHostname is the workload's cluster-internal hostname, registered with

// the NRF so peers can reach the SBI.

func amfHostname(amf *opsv1alpha1.AMFDeployment) string {
	return fmt.Sprintf("%s.%s.svc.cluster.local", serviceName(amf), amf.Namespace)
}

func configFilePath() string {
	return ConfigDirPath + "/" + ConfigFileName
}

// secretReferences enqueues every AMFDeployment in the secret's namespace

// that references it, so provisioning by an upstream operator retriggers

// the guard chain without timed requeues.

func (r *AMFDeploymentReconciler) secretReferences(ctx context.Context, obj client.Object) []crreconcile.Request {
	deployments := &opsv1alpha1.AMFDeploymentList{}
	if err := r.List(ctx, deployments, client.InNamespace(obj.GetNamespace())); err != nil {
		r.Logger.ErrorEvent(err, "Failed to list AMFDeployments for secret mapping",
			"secret", obj.GetName())
		return nil
	}

	var requests []crreconcile.Request
	for i := range deployments.Items {
		if referencesSecret(&deployments.Items[i], obj.GetName()) {
			requests = append(requests, crreconcile.Request{
				NamespacedName: types.NamespacedName{
					Namespace: deployments.Items[i].Namespace,
					Name:      deployments.Items[i].Name,
				},
			})
		}
	}
	return requests
}

func referencesSecret(amf *opsv1alpha1.AMFDeployment, secretName string) bool {
	if amf.Spec.NRF != nil && amf.Spec.NRF.SecretName == secretName {
		return true
	}
	if amf.Spec.AMFDatabase != nil && amf.Spec.AMFDatabase.SecretName == secretName {
		return true
	}
	if amf.Spec.DefaultDatabase != nil && amf.Spec.DefaultDatabase.SecretName == secretName {
		return true
	}
	return false
}

// SetupWithManager sets up the controller with the Manager.

func (r *AMFDeploymentReconciler) SetupWithManager(mgr ctrl.Manager) error {
	r.Logger = logging.NewLogger(logging.ComponentController)

	if r.Workload == nil {
		return fmt.Errorf("workload container is required")
	}

	r.Logger.InfoEvent("Setting up AMFDeployment controller",
		"requeueAfter", r.requeueAfter().String())

	return ctrl.NewControllerManagedBy(mgr).
		For(&opsv1alpha1.AMFDeployment{}).
		Watches(&corev1.Secret{}, handler.EnqueueRequestsFromMapFunc(r.secretReferences)).
		Complete(r)
}
