// Package v1alpha1 contains the ops.sdcore.dev v1alpha1 API group.
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion identifies this API group/version.
	GroupVersion = schema.GroupVersion{Group: "ops.sdcore.dev", Version: "v1alpha1"}

	// SchemeBuilder registers the group's types with a Scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme is called from main to register the group.
	AddToScheme = SchemeBuilder.AddToScheme
)
