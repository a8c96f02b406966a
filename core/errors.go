// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "errors"

// Bootstrap failures. All of them are fatal and never retried.
var (
	ErrInstanceCreationFailed = errors.New("unable to create the Vulkan instance")
	ErrDiagnosticsSetupFailed = errors.New("unable to initialize debug")
	ErrSurfaceCreationFailed  = errors.New("unable to create the window surface")
	ErrNoDevicesFound         = errors.New("no Vulkan device found")
	ErrNoSuitableDevice       = errors.New("no suitable GPU device found")
	ErrDeviceCreationFailed   = errors.New("unable to create the logical device")

	ErrAlreadyInitialised = errors.New("bootstrap already initialised")
)
