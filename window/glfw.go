// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"errors"
	"unsafe"

	"github.com/devblok/koru/core"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// NewGLFW initialises GLFW and opens a window without a client API,
// leaving presentation to Vulkan
func NewGLFW(cfg core.WindowConfiguration) (*GLFW, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.New("glfw.Init(): " + err.Error())
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, errors.New("glfw.VulkanSupported(): no Vulkan loader found")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(int(cfg.Width), int(cfg.Height), cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.New("glfw.CreateWindow(): " + err.Error())
	}

	return &GLFW{
		window: window,
	}, nil
}

// GLFW is a window backed by GLFW 3.3
type GLFW struct {
	window *glfw.Window
}

// RequiredExtensions implements interface
func (g *GLFW) RequiredExtensions() []string {
	return g.window.GetRequiredInstanceExtensions()
}

// CreateSurface implements interface
func (g *GLFW) CreateSurface(instance interface{}) (uintptr, error) {
	surface, err := g.window.CreateWindowSurface(instance, nil)
	if err != nil {
		return 0, errors.New("glfw.CreateWindowSurface(): " + err.Error())
	}
	return surface, nil
}

// ProcAddr implements interface
func (g *GLFW) ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

// Poll implements interface
func (g *GLFW) Poll() bool {
	glfw.PollEvents()
	if g.window.GetKey(glfw.KeyEscape) == glfw.Press {
		return false
	}
	return !g.window.ShouldClose()
}

// Destroy implements interface
func (g *GLFW) Destroy() {
	if g.window != nil {
		g.window.Destroy()
		g.window = nil
	}
	glfw.Terminate()
}
