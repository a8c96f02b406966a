// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package window provides the presentation windows the bootstrap renders
// into. A window owns its event loop and its own teardown.
package window

import (
	"fmt"
	"unsafe"

	"github.com/devblok/koru/core"
)

// Window is a native window able to host a Vulkan surface
type Window interface {
	core.Presenter
	core.SurfaceCreator

	// ProcAddr returns vkGetInstanceProcAddr as loaded by the window library
	ProcAddr() unsafe.Pointer

	// Poll drains pending events, false once the window should close
	Poll() bool

	// Destroy closes the window and shuts the library down
	Destroy()
}

// New creates a window with the configured backend
func New(cfg core.WindowConfiguration) (Window, error) {
	switch cfg.Backend {
	case "sdl", "":
		return NewSDL(cfg)
	case "glfw":
		return NewGLFW(cfg)
	}
	return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
}
