//go:build !tinygo

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/merliot/inktouch"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	o := defaultOptions()
	cmd := &cobra.Command{
		Use:   "inktouch",
		Short: "Touch sketch pad on a Waveshare 2.13\" Touch e-Paper HAT",
		Long: "Marks touches on the e-paper panel. Button A clears the screen " +
			"(hold to reset the count), button B inverts it.\n\n" +
			"Extra arguments are read from INKTOUCH_ARGS.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, o)
		},
	}
	cmd.Flags().AddGoFlagSet(o.flagSet())
	return cmd
}

func main() {
	args, err := inktouch.SplitArgs(inktouch.GetEnv("INKTOUCH_ARGS", ""))
	if err != nil {
		fmt.Printf("INKTOUCH_ARGS: %s\r\n", err)
		os.Exit(1)
	}

	cmd := newRootCmd()
	cmd.SetArgs(append(args, os.Args[1:]...))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
