package cli

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"
)

func TestSetupSignalHandler(t *testing.T) {
	ctx := SetupSignalHandler(context.Background())

	select {
	case <-ctx.Done():
		t.Error("context should not be cancelled without a signal")
	case <-time.After(10 * time.Millisecond):
	}
}

func TestSetupSignalHandler_CancelsOnSignal(t *testing.T) {
	ctx := SetupSignalHandler(context.Background())

	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("FindProcess() error = %v", err)
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		t.Skipf("cannot signal self: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Skip("signal not delivered in time; skipping on this platform")
	}
}

func TestSetupSignalHandler_ParentCancellation(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx := SetupSignalHandler(parent)

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Error("child context should be cancelled when parent is")
	}
}

func TestWaitForShutdown(t *testing.T) {
	ch := WaitForShutdown()

	select {
	case <-ch:
		t.Error("channel should not receive without a signal")
	case <-time.After(10 * time.Millisecond):
	}
}
