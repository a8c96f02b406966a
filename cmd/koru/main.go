// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/devblok/koru/core"
	"github.com/devblok/koru/gfx/vkr"
	"github.com/devblok/koru/window"
	log "github.com/sirupsen/logrus"
)

func init() {
	runtime.LockOSThread()
}

var (
	configPath = flag.String("config", "", "YAML configuration file")
	debug      = flag.Bool("vkdbg", false, "Load Vulkan validation layers")
	backend    = flag.String("backend", "", "Window backend: sdl or glfw")
	title      = flag.String("title", "", "Window title")
)

func main() {
	flag.Parse()

	configuration, err := core.LoadConfiguration(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *debug {
		configuration.Instance.DebugMode = true
	}
	if *backend != "" {
		configuration.Window.Backend = *backend
	}
	if *title != "" {
		configuration.Window.Title = *title
	}

	logger, err := core.NewLogger(configuration.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(run(configuration, logger))
}

func run(configuration core.Configuration, logger *log.Logger) int {
	win, err := window.New(configuration.Window)
	if err != nil {
		logger.WithError(err).Error("Window creation failed")
		return 1
	}
	defer win.Destroy()

	driver, err := vkr.New(win.ProcAddr())
	if err != nil {
		logger.WithError(err).Error("Vulkan initialisation failed")
		return 1
	}

	bootstrap := core.NewBootstrap(configuration, driver, win, logger)
	defer bootstrap.Destroy()

	if err := bootstrap.Initialise(); err != nil {
		logger.WithError(err).WithField("state", bootstrap.FailedAt().String()).Error("Vulkan bootstrap failed")
		return 1
	}

	timeService := core.NewTime(configuration.Time)
	defer timeService.Stop()

	for range timeService.EventTicker().C {
		if !win.Poll() {
			break
		}
	}
	logger.Info("Event loop exited")
	return 0
}
