//go:build !tinygo

package inktouch

import (
	"fmt"
	"time"

	sync "github.com/sasha-s/go-deadlock"
)

func init() {
	// A full e-paper refresh holds the poll loop for a few seconds
	sync.Opts.DeadlockTimeout = time.Minute
	sync.Opts.OnPotentialDeadlock = func() {
		fmt.Printf("Potential deadlock on bus lock\r\n")
	}
}

type mutex struct {
	sync.Mutex
}

type rwMutex struct {
	sync.RWMutex
}
