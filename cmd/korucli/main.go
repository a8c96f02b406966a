// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"flag"
	"os"

	"github.com/devblok/koru/core"
	"github.com/devblok/koru/gfx/vkr"
	log "github.com/sirupsen/logrus"
)

var (
	format = flag.String("format", "json", "Output format: json or yaml")
	level  = flag.String("log", "warning", "Log level")
)

func main() {
	flag.Parse()

	logger, err := core.NewLogger(core.LogConfiguration{Level: *level})
	if err != nil {
		log.Fatal(err)
	}

	driver, err := vkr.New(nil)
	if err != nil {
		logger.Fatal(err)
	}

	report, err := core.BuildReport(driver, "Koru command line", logger)
	if err != nil {
		logger.Fatal(err)
	}

	if err := report.Write(os.Stdout, *format); err != nil {
		logger.Fatal(err)
	}
}
