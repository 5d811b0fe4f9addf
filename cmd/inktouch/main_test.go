//go:build !tinygo

package main

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestRootCmdFlags(t *testing.T) {
	c := qt.New(t)

	cmd := newRootCmd()
	c.Assert(cmd.Flags().Lookup("min-interval"), qt.IsNotNil)
	c.Assert(cmd.Flags().Lookup("button-b"), qt.IsNotNil)

	c.Assert(cmd.Flags().Parse([]string{"--full-every", "7", "--trace"}), qt.IsNil)
	got, err := cmd.Flags().GetInt("full-every")
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, 7)
}
