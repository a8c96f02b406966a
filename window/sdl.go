// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package window

import (
	"errors"
	"unsafe"

	"github.com/devblok/koru/core"
	"github.com/veandco/go-sdl2/sdl"
)

// NewSDL initialises SDL video and opens a Vulkan capable window
func NewSDL(cfg core.WindowConfiguration) (*SDL, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.New("sdl.Init(): " + err.Error())
	}

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		return nil, errors.New("sdl.VulkanLoadLibrary(): " + err.Error())
	}

	window, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.VulkanUnloadLibrary()
		sdl.Quit()
		return nil, errors.New("sdl.CreateWindow(): " + err.Error())
	}

	return &SDL{
		window: window,
	}, nil
}

// SDL is a window backed by SDL2
type SDL struct {
	window *sdl.Window
}

// RequiredExtensions implements interface
func (s *SDL) RequiredExtensions() []string {
	return s.window.VulkanGetInstanceExtensions()
}

// CreateSurface implements interface
func (s *SDL) CreateSurface(instance interface{}) (uintptr, error) {
	surface, err := s.window.VulkanCreateSurface(instance)
	if err != nil {
		return 0, errors.New("sdl.VulkanCreateSurface(): " + err.Error())
	}
	return uintptr(surface), nil
}

// ProcAddr implements interface
func (s *SDL) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// Poll implements interface
func (s *SDL) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch et := event.(type) {
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		case *sdl.QuitEvent:
			return false
		}
	}
	return true
}

// Destroy implements interface
func (s *SDL) Destroy() {
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
}
