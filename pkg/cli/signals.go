package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler creates a context that is cancelled when an interrupt
// or termination signal is received. After the first signal the handler is
// removed, so a second signal terminates the process immediately.
func SetupSignalHandler(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		signal.Stop(sigChan)
		cancel()
	}()

	return ctx
}

// WaitForShutdown returns a channel that receives when a shutdown
// signal arrives.
func WaitForShutdown() <-chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	return sigChan
}
