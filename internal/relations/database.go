// Package relations implements the requirer side of the AMF's upstream
// integrations. Each provider reads the connection secret the upstream
// operator publishes in the deployment's namespace; the reconciler only
// sees the interfaces.
package relations

import (
	"context"
	"strings"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sdcore-dev/amf-operator/api/v1alpha1"
)

// Connection secret keys written by the database operator.
const (
	keyUsername = "username"
	keyPassword = "password"
	keyURIs     = "uris"
)

// DatabaseProvider is the reconciler's view of one database integration.
type DatabaseProvider interface {
	// Established reports whether the integration has been set up at all.
	Established(ctx context.Context) (bool, error)

	// Provisioned reports whether the requested database has been created
	// and credentials issued.
	Provisioned(ctx context.Context) (bool, error)

	// ConnectionInfo returns the database URI once the provider has
	// published it.
	ConnectionInfo(ctx context.Context) (string, bool, error)
}

// SecretDatabase is a DatabaseProvider backed by a connection secret.
type SecretDatabase struct {
	reader    client.Reader
	namespace string
	claim     *v1alpha1.DatabaseClaim
}

var _ DatabaseProvider = (*SecretDatabase)(nil)

// NewDatabase builds a provider for the given claim. A nil claim is a
// valid, never-established provider.
func NewDatabase(reader client.Reader, namespace string, claim *v1alpha1.DatabaseClaim) *SecretDatabase {
	return &SecretDatabase{reader: reader, namespace: namespace, claim: claim}
}

func (d *SecretDatabase) secret(ctx context.Context) (*corev1.Secret, error) {
	if d.claim == nil || d.claim.SecretName == "" {
		return nil, nil
	}
	secret := &corev1.Secret{}
	key := types.NamespacedName{Namespace: d.namespace, Name: d.claim.SecretName}
	if err := d.reader.Get(ctx, key, secret); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return secret, nil
}

func (d *SecretDatabase) Established(ctx context.Context) (bool, error) {
	secret, err := d.secret(ctx)
	return secret != nil, err
}

func (d *SecretDatabase) Provisioned(ctx context.Context) (bool, error) {
	secret, err := d.secret(ctx)
	if err != nil || secret == nil {
		return false, err
	}
	return len(secret.Data[keyUsername]) > 0 && len(secret.Data[keyPassword]) > 0, nil
}

func (d *SecretDatabase) ConnectionInfo(ctx context.Context) (string, bool, error) {
	secret, err := d.secret(ctx)
	if err != nil || secret == nil {
		return "", false, err
	}
	uris := string(secret.Data[keyURIs])
	if uris == "" {
		return "", false, nil
	}
	// Providers may publish several URIs comma-separated; the first wins.
	return strings.SplitN(uris, ",", 2)[0], true, nil
}
