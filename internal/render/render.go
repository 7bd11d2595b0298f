// Package render produces the AMF configuration file content from the
// current values of the upstream dependencies. Rendering is deterministic:
// the same Config always yields byte-identical output, which is what makes
// the reconciler's byte-for-byte change detection sound.
package render

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed templates/amfcfg.conf.tmpl
var amfcfgTemplate string

var amfcfg = template.Must(template.New("amfcfg.conf").Parse(amfcfgTemplate))

// Config is the desired AMF configuration. It has no identity of its own
// and is recomputed on every reconciliation pass.
type Config struct {
	NgappPort           int
	SctpGrpcPort        int
	SbiPort             int
	NrfURL              string
	AmfURL              string
	DefaultDatabaseName string
	AmfDatabaseName     string
	DatabaseURL         string
	FullNetworkName     string
	ShortNetworkName    string
}

// Render returns the amfcfg.conf content for this configuration.
func (c Config) Render() (string, error) {
	var buf bytes.Buffer
	if err := amfcfg.Execute(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}
