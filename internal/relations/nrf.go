package relations

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sdcore-dev/amf-operator/api/v1alpha1"
)

// Key under which the NRF operator publishes its management URL.
const keyURL = "url"

// DiscoveryProvider is the reconciler's view of the NRF integration.
type DiscoveryProvider interface {
	// Established reports whether the integration has been set up at all.
	Established(ctx context.Context) (bool, error)

	// URL returns the NRF endpoint once the NRF has published it.
	URL(ctx context.Context) (string, bool, error)
}

// SecretNRF is a DiscoveryProvider backed by the NRF operator's secret.
type SecretNRF struct {
	reader    client.Reader
	namespace string
	ref       *v1alpha1.NRFReference
}

var _ DiscoveryProvider = (*SecretNRF)(nil)

// NewNRF builds a provider for the given reference. A nil reference is a
// valid, never-established provider.
func NewNRF(reader client.Reader, namespace string, ref *v1alpha1.NRFReference) *SecretNRF {
	return &SecretNRF{reader: reader, namespace: namespace, ref: ref}
}

func (n *SecretNRF) secret(ctx context.Context) (*corev1.Secret, error) {
	if n.ref == nil || n.ref.SecretName == "" {
		return nil, nil
	}
	secret := &corev1.Secret{}
	key := types.NamespacedName{Namespace: n.namespace, Name: n.ref.SecretName}
	if err := n.reader.Get(ctx, key, secret); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return secret, nil
}

func (n *SecretNRF) Established(ctx context.Context) (bool, error) {
	secret, err := n.secret(ctx)
	return secret != nil, err
}

func (n *SecretNRF) URL(ctx context.Context) (string, bool, error) {
	secret, err := n.secret(ctx)
	if err != nil || secret == nil {
		return "", false, err
	}
	url := string(secret.Data[keyURL])
	if url == "" {
		return "", false, nil
	}
	return url, true, nil
}
