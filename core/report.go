// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/devblok/koru/device"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Report describes what the runtime offers and how each device rates
type Report struct {
	Layers     []device.LayerProperties     `json:"layers" yaml:"layers"`
	Extensions []device.ExtensionProperties `json:"extensions" yaml:"extensions"`
	Devices    []ScoredCandidate            `json:"devices" yaml:"devices"`
}

// BuildReport creates a bare instance and ranks every device on it.
// The instance is destroyed before returning.
func BuildReport(drv device.Driver, appName string, logger log.FieldLogger) (Report, error) {
	inspector := NewInspector(drv, logger)
	report := Report{
		Layers:     inspector.Layers(),
		Extensions: inspector.Extensions(),
	}

	inst, err := CreateInstance(drv, appName, nil, InstanceConfiguration{}, device.MessengerInfo{}, logger)
	if err != nil {
		return Report{}, err
	}
	defer inst.Destroy()

	candidates, err := EnumerateDevices(inst)
	if err != nil {
		return Report{}, err
	}
	report.Devices = Rank(candidates, DefaultScoreRules, device.GraphicsRequirement)
	return report, nil
}

// Write encodes the report as json or yaml
func (r Report) Write(w io.Writer, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown report format %q", format)
}
