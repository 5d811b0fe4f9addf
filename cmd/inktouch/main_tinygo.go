//go:build tinygo

package main

import (
	"context"
	"fmt"

	"github.com/merliot/inktouch"
)

// args holds the command line, set at build time with
// -ldflags "-X main.args=..."
var args string

func main() {
	o := defaultOptions()

	list, err := inktouch.SplitArgs(args)
	if err == nil {
		err = o.flagSet().Parse(list)
	}
	if err == nil {
		err = run(context.Background(), o)
	}
	if err != nil {
		fmt.Printf("inktouch: %s\r\n", err)
	}
	select {}
}
