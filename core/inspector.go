// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"github.com/devblok/koru/device"
	log "github.com/sirupsen/logrus"
)

// NewInspector creates an Inspector over the given driver
func NewInspector(drv device.Driver, logger log.FieldLogger) Inspector {
	return Inspector{
		driver: drv,
		log:    logger,
	}
}

// Inspector queries which layers and instance extensions the runtime
// supports. An empty answer is valid and means nothing is available.
type Inspector struct {
	driver device.Driver
	log    log.FieldLogger
}

// Layers lists supported instance layers
func (i Inspector) Layers() []device.LayerProperties {
	layers, err := i.driver.Layers()
	if err != nil {
		i.log.WithError(err).Warn("Layer enumeration failed, assuming none")
		return nil
	}
	return layers
}

// Extensions lists supported instance extensions
func (i Inspector) Extensions() []device.ExtensionProperties {
	extensions, err := i.driver.Extensions()
	if err != nil {
		i.log.WithError(err).Warn("Extension enumeration failed, assuming none")
		return nil
	}
	return extensions
}

// LayerSupported reports whether a layer with exactly this name is available
func (i Inspector) LayerSupported(name string) bool {
	for _, layer := range i.Layers() {
		if layer.Name == name {
			return true
		}
	}
	return false
}
