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

package main

import (
	"flag"
	"os"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	opsv1alpha1 "github.com/sdcore-dev/amf-operator/api/v1alpha1"
	"github.com/sdcore-dev/amf-operator/controllers"
	"github.com/sdcore-dev/amf-operator/internal/config"
	"github.com/sdcore-dev/amf-operator/internal/workload"
	// +kubebuilder:scaffold:imports
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(opsv1alpha1.AddToScheme(scheme))
	// +kubebuilder:scaffold:scheme
}

func main() {
	var metricsAddr string
	var enableLeaderElection bool
	var probeAddr string

	// Workload flags — override environment variables when provided
	var pebbleSocket string
	var podIP string
	var requeueAfter time.Duration

	flag.StringVar(&metricsAddr, "metrics-bind-address", ":8080",
		"The address the metrics endpoint binds to.")
	flag.StringVar(&probeAddr, "health-probe-bind-address", ":8081",
		"The address the probe endpoint binds to.")
	flag.BoolVar(&enableLeaderElection, "leader-elect", false,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	flag.StringVar(&pebbleSocket, "pebble-socket", "",
		"Path of the workload container's pebble socket. "+
			"Overrides the PEBBLE_SOCKET environment variable.")
	flag.StringVar(&podIP, "pod-ip", "",
		"Address of the workload pod, exported to the AMF process. "+
			"Overrides the POD_IP environment variable (downward API).")
	flag.DurationVar(&requeueAfter, "requeue-after", 0,
		"Retry delay for not-yet-ready upstream dependencies. "+
			"Overrides the REQUEUE_AFTER environment variable.")

	opts := zap.Options{
		Development: true,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	cfg, err := config.FromEnvironment()
	if err != nil {
		setupLog.Error(err, "invalid operator configuration")
		os.Exit(1)
	}

	// Flags take precedence over environment
	if pebbleSocket != "" {
		cfg.PebbleSocket = pebbleSocket
	}
	if podIP != "" {
		cfg.PodIP = podIP
	}
	if requeueAfter > 0 {
		cfg.RequeueAfter = requeueAfter
	}

	container, err := workload.NewPebbleContainer(cfg.PebbleSocket)
	if err != nil {
		setupLog.Error(err, "unable to create workload container client",
			"socket", cfg.PebbleSocket)
		os.Exit(1)
	}

	options := ctrl.Options{
		Scheme: scheme,
		Metrics: metricsserver.Options{
			BindAddress: metricsAddr,
		},
		HealthProbeBindAddress: probeAddr,
		LeaderElection:         enableLeaderElection,
		LeaderElectionID:       "amf-operator.ops.sdcore.dev",
	}
	if cfg.WatchNamespace != "" {
		options.Cache = cache.Options{
			DefaultNamespaces: map[string]cache.Config{
				cfg.WatchNamespace: {},
			},
		}
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), options)
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	reconciler := &controllers.AMFDeploymentReconciler{
		Client:       mgr.GetClient(),
		Scheme:       mgr.GetScheme(),
		Workload:     container,
		PodIP:        cfg.PodIP,
		RequeueAfter: cfg.RequeueAfter,
	}
	if err = reconciler.SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "AMFDeployment")
		os.Exit(1)
	}
	// +kubebuilder:scaffold:builder

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager",
		"pebbleSocket", cfg.PebbleSocket,
		"podIP", cfg.PodIP)
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}
