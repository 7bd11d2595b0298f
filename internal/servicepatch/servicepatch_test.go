package servicepatch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/sdcore-dev/amf-operator/pkg/logging"
)

var testPorts = []Port{
	{Name: "prometheus-exporter", Port: 9089},
	{Name: "sbi", Port: 29518},
	{Name: "ngapp", Port: 38412, Protocol: corev1.ProtocolSCTP},
	{Name: "sctp-grpc", Port: 9000},
}

func newFakeClient(t *testing.T, objs ...client.Object) client.Client {
	t.Helper()
	scheme := runtime.NewScheme()
	require.NoError(t, clientgoscheme.AddToScheme(scheme))
	return fake.NewClientBuilder().WithScheme(scheme).WithObjects(objs...).Build()
}

func getService(t *testing.T, c client.Client, key types.NamespacedName) *corev1.Service {
	t.Helper()
	service := &corev1.Service{}
	require.NoError(t, c.Get(context.Background(), key, service))
	return service
}

func TestApplyAppendsMissingPorts(t *testing.T) {
	key := types.NamespacedName{Namespace: "core", Name: "amf"}
	c := newFakeClient(t, &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "amf", Namespace: "core"},
		Spec: corev1.ServiceSpec{
			Ports: []corev1.ServicePort{{Name: "placeholder", Port: 65535, Protocol: corev1.ProtocolTCP}},
		},
	})
	logger := logging.NewLogger(logging.ComponentServicePath)

	require.NoError(t, Apply(context.Background(), c, key, testPorts, logger))

	service := getService(t, c, key)
	assert.Len(t, service.Spec.Ports, 5)

	byName := map[string]corev1.ServicePort{}
	for _, p := range service.Spec.Ports {
		byName[p.Name] = p
	}
	assert.Equal(t, int32(38412), byName["ngapp"].Port)
	assert.Equal(t, corev1.ProtocolSCTP, byName["ngapp"].Protocol)
	assert.Equal(t, corev1.ProtocolTCP, byName["sbi"].Protocol)
}

func TestApplyCorrectsMismatchedPort(t *testing.T) {
	key := types.NamespacedName{Namespace: "core", Name: "amf"}
	c := newFakeClient(t, &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "amf", Namespace: "core"},
		Spec: corev1.ServiceSpec{
			Ports: []corev1.ServicePort{{Name: "sbi", Port: 80, Protocol: corev1.ProtocolTCP}},
		},
	})
	logger := logging.NewLogger(logging.ComponentServicePath)

	require.NoError(t, Apply(context.Background(), c, key, testPorts, logger))

	service := getService(t, c, key)
	byName := map[string]corev1.ServicePort{}
	for _, p := range service.Spec.Ports {
		byName[p.Name] = p
	}
	assert.Equal(t, int32(29518), byName["sbi"].Port)
}

func TestApplyIsIdempotent(t *testing.T) {
	key := types.NamespacedName{Namespace: "core", Name: "amf"}
	c := newFakeClient(t, &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{Name: "amf", Namespace: "core"},
	})
	logger := logging.NewLogger(logging.ComponentServicePath)

	require.NoError(t, Apply(context.Background(), c, key, testPorts, logger))
	first := getService(t, c, key)

	require.NoError(t, Apply(context.Background(), c, key, testPorts, logger))
	second := getService(t, c, key)

	assert.Equal(t, first.Spec.Ports, second.Spec.Ports)
	assert.Equal(t, first.ResourceVersion, second.ResourceVersion)
}

func TestApplyMissingServiceIsSkipped(t *testing.T) {
	key := types.NamespacedName{Namespace: "core", Name: "amf"}
	c := newFakeClient(t)
	logger := logging.NewLogger(logging.ComponentServicePath)

	assert.NoError(t, Apply(context.Background(), c, key, testPorts, logger))
}
