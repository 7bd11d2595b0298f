package relations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	"github.com/sdcore-dev/amf-operator/api/v1alpha1"
)

func newFakeClient(t *testing.T, objs ...client.Object) client.Client {
	t.Helper()
	scheme := runtime.NewScheme()
	require.NoError(t, clientgoscheme.AddToScheme(scheme))
	return fake.NewClientBuilder().WithScheme(scheme).WithObjects(objs...).Build()
}

func secret(name string, data map[string][]byte) *corev1.Secret {
	return &corev1.Secret{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "core"},
		Data:       data,
	}
}

func TestDatabaseNilClaimNeverEstablished(t *testing.T) {
	db := NewDatabase(newFakeClient(t), "core", nil)

	established, err := db.Established(context.Background())
	require.NoError(t, err)
	assert.False(t, established)
}

func TestDatabaseEstablishedWithoutCredentials(t *testing.T) {
	c := newFakeClient(t, secret("amf-db", nil))
	db := NewDatabase(c, "core", &v1alpha1.DatabaseClaim{SecretName: "amf-db"})

	established, err := db.Established(context.Background())
	require.NoError(t, err)
	assert.True(t, established)

	provisioned, err := db.Provisioned(context.Background())
	require.NoError(t, err)
	assert.False(t, provisioned)
}

func TestDatabaseProvisionedWithoutURIs(t *testing.T) {
	c := newFakeClient(t, secret("default-db", map[string][]byte{
		"username": []byte("amf"),
		"password": []byte("secret"),
	}))
	db := NewDatabase(c, "core", &v1alpha1.DatabaseClaim{SecretName: "default-db"})

	provisioned, err := db.Provisioned(context.Background())
	require.NoError(t, err)
	assert.True(t, provisioned)

	_, ok, err := db.ConnectionInfo(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDatabaseConnectionInfoFirstURIWins(t *testing.T) {
	c := newFakeClient(t, secret("default-db", map[string][]byte{
		"username": []byte("amf"),
		"password": []byte("secret"),
		"uris":     []byte("mongodb://mongo-0:27017,mongodb://mongo-1:27017"),
	}))
	db := NewDatabase(c, "core", &v1alpha1.DatabaseClaim{SecretName: "default-db"})

	uri, ok, err := db.ConnectionInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "mongodb://mongo-0:27017", uri)
}

func TestNRFNilReferenceNeverEstablished(t *testing.T) {
	nrf := NewNRF(newFakeClient(t), "core", nil)

	established, err := nrf.Established(context.Background())
	require.NoError(t, err)
	assert.False(t, established)
}

func TestNRFURLNotPublished(t *testing.T) {
	c := newFakeClient(t, secret("nrf-endpoint", nil))
	nrf := NewNRF(c, "core", &v1alpha1.NRFReference{SecretName: "nrf-endpoint"})

	established, err := nrf.Established(context.Background())
	require.NoError(t, err)
	assert.True(t, established)

	_, ok, err := nrf.URL(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNRFURLPublished(t *testing.T) {
	c := newFakeClient(t, secret("nrf-endpoint", map[string][]byte{
		"url": []byte("http://nrf:29510"),
	}))
	nrf := NewNRF(c, "core", &v1alpha1.NRFReference{SecretName: "nrf-endpoint"})

	url, ok, err := nrf.URL(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "http://nrf:29510", url)
}
