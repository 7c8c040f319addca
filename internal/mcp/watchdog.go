package mcp

import (
	"context"
	"os"
	"time"

	"crucible/internal/logging"
)

// watchInterval is how often the parent PID is polled. Overridable in tests.
var watchInterval = 2 * time.Second

// WatchParent monitors for parent process death in a background goroutine
// and calls cancelFn when the parent PID changes, so a disconnected host
// does not leave zombie servers behind.
//
// It must NOT read from stdin — the MCP SDK's stdio transport owns stdin
// exclusively, and stealing bytes here would corrupt the JSON-RPC stream.
//
// The goroutine exits when ctx is canceled or parent death is detected.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(watchInterval):
				if os.Getppid() != ppid {
					logging.New("mcp").Warn("parent process died, shutting down", "was_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
