/*
Sponza walkthrough: opens a window and flies a first person
camera around using the engine package
*/
package main

import (
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/anima-actors/engine"
	"github.com/spaghettifunk/anima-actors/engine/config"
	"github.com/spaghettifunk/anima-actors/engine/core"
	"github.com/spaghettifunk/anima-actors/engine/platform"
	"github.com/spaghettifunk/anima-actors/testbed"
)

func main() {
	configPath := flag.String("config", "configs/sponza.toml", "path to the TOML configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		core.LogWarn("%s not found, using the default configuration", *configPath)
		cfg, err = config.Default(), nil
	}
	if err != nil {
		core.LogFatal("%s", err)
	}
	core.SetLogLevel(cfg.LogLevel())

	sponza, err := testbed.NewSponza(cfg)
	if err != nil {
		panic(err)
	}

	p, err := platform.New(cfg.Application.EventQueueSize)
	if err != nil {
		panic(err)
	}

	engine, err := engine.New(cfg, p, sponza.Boot)
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	// camera tuning follows the config file while the demo runs
	if watcher, err := config.NewWatcher(*configPath); err != nil {
		core.LogWarn("config hot reload disabled: %s", err)
	} else {
		defer watcher.Close()
		go sponza.ForwardConfigUpdates(watcher.Updates())
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		engine.Stop()
	}()

	// run engine
	runErr := engine.Run()
	if err := engine.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		panic(runErr)
	}
}
