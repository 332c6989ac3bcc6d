/*
Lineage opens a window and draws the testbed scene with OpenGL 4.5.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/lineage/engine"
	"github.com/spaghettifunk/lineage/engine/core"
	"github.com/spaghettifunk/lineage/engine/platform/glfwplatform"
	"github.com/spaghettifunk/lineage/engine/renderer/opengl/gldriver"
	"github.com/spaghettifunk/lineage/testbed"
)

func main() {
	configPath := flag.String("config", "lineage.toml", "path of the TOML application config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so the window is always torn down.
func run(configPath string) error {
	tb, err := testbed.NewTestGame(configPath)
	if err != nil {
		return fmt.Errorf("failed to load the configuration: %w", err)
	}
	cfg := tb.ApplicationConfig

	window, err := glfwplatform.New(cfg.PlatformConfig())
	if err != nil {
		return fmt.Errorf("failed to create the window: %w", err)
	}
	defer window.Shutdown()

	driver, err := gldriver.New()
	if err != nil {
		return fmt.Errorf("failed to load OpenGL: %w", err)
	}
	if cfg.Renderer.DebugOutput {
		gldriver.EnableDebugOutput()
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer signal.Stop(sigCh)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCh:
			window.SetShouldClose(true)
		case <-done:
		}
	}()

	return engine.RunGame(tb.Game, window, driver)
}
