// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/devblok/koru/device"
	log "github.com/sirupsen/logrus"
)

// Instance owns a native instance and every object created against it.
// Destroy releases dependents newest first, then the native instance.
type Instance struct {
	native     device.Instance
	validation bool
	extensions []string
	layers     []string

	dependents []Destroyable
}

// Native returns the driver instance
func (i *Instance) Native() device.Instance {
	return i.native
}

// ValidationEnabled reports whether the validation layer was enabled
func (i *Instance) ValidationEnabled() bool {
	return i.validation
}

// Extensions returns the enabled instance extensions
func (i *Instance) Extensions() []string {
	return i.extensions
}

// Layers returns the enabled instance layers
func (i *Instance) Layers() []string {
	return i.layers
}

func (i *Instance) own(d Destroyable) {
	i.dependents = append(i.dependents, d)
}

func (i *Instance) release(d Destroyable) {
	for idx, dep := range i.dependents {
		if dep == d {
			i.dependents = append(i.dependents[:idx], i.dependents[idx+1:]...)
			return
		}
	}
}

// Destroy destroys dependents in reverse creation order and then the instance
func (i *Instance) Destroy() {
	if i == nil || i.native == nil {
		return
	}
	for len(i.dependents) > 0 {
		last := i.dependents[len(i.dependents)-1]
		i.dependents = i.dependents[:len(i.dependents)-1]
		last.Destroy()
	}
	i.native.Destroy()
	i.native = nil
}

// CreateInstance builds the API context. Extensions required by the
// presentation collaborator are always enabled. The validation layer is
// enabled only when debug mode is requested and the runtime has it;
// otherwise diagnostics are quietly disabled.
func CreateInstance(drv device.Driver, appName string, presentation []string, cfg InstanceConfiguration, diag device.MessengerInfo, logger log.FieldLogger) (*Instance, error) {
	apiVersion, err := ParseAPIVersion(cfg.APIVersion)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInstanceCreationFailed, err)
	}

	inspector := NewInspector(drv, logger)

	extensions := append([]string{}, presentation...)
	extensions = appendUnique(extensions, cfg.Extensions...)
	layers := appendUnique(nil, cfg.Layers...)

	var useValidation bool
	if cfg.DebugMode {
		useValidation = cfg.ValidationLayer != "" && inspector.LayerSupported(cfg.ValidationLayer)

		logger.WithField("layers", layerNames(inspector.Layers())).Info("Supported layers")
		logger.WithField("extensions", extensionNames(inspector.Extensions())).Info("Supported extensions")
		logger.WithFields(log.Fields{
			"layer":   cfg.ValidationLayer,
			"enabled": useValidation,
		}).Info("Validation layer")
	}

	info := device.InstanceInfo{
		ApplicationName:    appName,
		ApplicationVersion: MakeVersion(1, 0, 0),
		EngineName:         EngineName,
		EngineVersion:      MakeVersion(1, 0, 0),
		APIVersion:         apiVersion,
	}

	if useValidation {
		extensions = appendUnique(extensions, drv.DiagnosticsExtension())
		layers = appendUnique(layers, cfg.ValidationLayer)
		chained := diag
		info.Messenger = &chained
	}
	info.Extensions = extensions
	info.Layers = layers

	native, err := drv.CreateInstance(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInstanceCreationFailed, err)
	}

	return &Instance{
		native:     native,
		validation: useValidation,
		extensions: extensions,
		layers:     layers,
	}, nil
}

func appendUnique(list []string, items ...string) []string {
Items:
	for _, item := range items {
		for _, existing := range list {
			if existing == item {
				continue Items
			}
		}
		list = append(list, item)
	}
	return list
}

func layerNames(layers []device.LayerProperties) []string {
	names := make([]string, 0, len(layers))
	for _, l := range layers {
		names = append(names, l.Name)
	}
	return names
}

func extensionNames(extensions []device.ExtensionProperties) []string {
	names := make([]string, 0, len(extensions))
	for _, e := range extensions {
		names = append(names, e.Name)
	}
	return names
}
