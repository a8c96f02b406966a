// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core brings a Vulkan context up: it creates the instance,
// optionally attaches validation diagnostics, picks the most suitable
// physical device and creates a logical device on its graphics queue
// family. The native API is reached only through device.Driver.
package core

// Destroyable is implemented by everything bootstrap creates
type Destroyable interface {
	// Destroy destroys internal members
	Destroy()
}

var (
	_ Destroyable = (*Instance)(nil)
	_ Destroyable = (*Messenger)(nil)
	_ Destroyable = (*Surface)(nil)
	_ Destroyable = (*LogicalDevice)(nil)
	_ Destroyable = (*Bootstrap)(nil)
)
