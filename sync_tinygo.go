//go:build tinygo

package inktouch

import (
	"sync"
)

type mutex struct {
	sync.Mutex
}

type rwMutex struct {
	sync.RWMutex
}
