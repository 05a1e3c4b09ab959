// Package codec encodes form configurations to and from the versioned
// YAML file format consumed by formctl.
package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/charan-kumar-kamasani/authentik/internal/formconfig"
)

const currentVersion = "1.0"

type configFile struct {
	Version string                `yaml:"version"`
	Form    formconfig.FormConfig `yaml:"form"`
}

// EncodeYAML serializes cfg with the current file version.
func EncodeYAML(cfg formconfig.FormConfig) ([]byte, error) {
	return yaml.Marshal(configFile{Version: currentVersion, Form: cfg})
}

// DecodeYAML parses a versioned form-configuration file.
func DecodeYAML(b []byte) (formconfig.FormConfig, error) {
	var f configFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return formconfig.FormConfig{}, err
	}
	if f.Version != "" && f.Version != currentVersion {
		return formconfig.FormConfig{}, fmt.Errorf("unsupported file version %q", f.Version)
	}
	return f.Form, nil
}
