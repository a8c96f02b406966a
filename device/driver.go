// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

// Driver is the entry point into a native graphics API.
type Driver interface {
	// Layers lists instance layers available in the runtime
	Layers() ([]LayerProperties, error)

	// Extensions lists instance extensions available in the runtime
	Extensions() ([]ExtensionProperties, error)

	// DiagnosticsExtension names the instance extension that
	// delivers validation messages for this driver
	DiagnosticsExtension() string

	// CreateInstance creates the API context. Called once per bootstrap.
	CreateInstance(InstanceInfo) (Instance, error)
}

// InstanceInfo describes the instance to be created
type InstanceInfo struct {
	ApplicationName    string
	ApplicationVersion uint32
	EngineName         string
	EngineVersion      uint32
	APIVersion         uint32

	Extensions []string
	Layers     []string

	// Messenger, when set, is chained into instance creation so
	// that messages emitted while creating the instance are captured.
	Messenger *MessengerInfo
}

// Instance is a created API context
type Instance interface {
	// PhysicalDevices enumerates devices visible to the instance
	PhysicalDevices() ([]PhysicalDevice, error)

	// AttachMessenger registers a diagnostics callback
	AttachMessenger(MessengerInfo) (Messenger, error)

	// AdoptSurface takes ownership of a native surface created
	// against this instance by a windowing library
	AdoptSurface(raw uintptr) (Surface, error)

	// CreateDevice creates a logical device with a single queue
	// taken from the given queue family
	CreateDevice(pd PhysicalDevice, queueFamily uint32) (LogicalDevice, error)

	// Inner returns the inner handle of the underlying API
	Inner() interface{}

	// Destroy destroys the native instance
	Destroy()
}

// PhysicalDevice is a handle to a piece of GPU hardware.
type PhysicalDevice interface {
	Properties() Properties
	Features() Features
	QueueFamilies() []QueueFamily
}

// Messenger is a registered diagnostics callback
type Messenger interface {
	Destroy()
}

// Surface is a presentation surface
type Surface interface {
	Destroy()
}

// LogicalDevice is a logical device with its queue
type LogicalDevice interface {
	QueueFamily() uint32
	Destroy()
}
