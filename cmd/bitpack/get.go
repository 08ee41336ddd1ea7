package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/kjhall/bitpack"
)

func doGet(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("get", flag.ContinueOnError)
	flags.SetOutput(stderr)

	in := flags.String("in", "", "input path: envelope JSON")
	index := flags.Int("index", -1, "element index to read")

	if err := flags.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}
	if *in == "" {
		return usageErrorf("get requires --in")
	}

	env, err := readEnvelope(*in)
	if err != nil {
		return err
	}
	c, err := bitpack.Load(env)
	if err != nil {
		return err
	}

	v, err := c.Get(*index)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, v)
	return nil
}
