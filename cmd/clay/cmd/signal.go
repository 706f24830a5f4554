package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/clay/engine/core"
)

// signalContext is cancelled on SIGTERM, SIGINT or SIGQUIT.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			core.LogInfo("received %s, shutting down", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
