package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/kjhall/bitpack"
)

func doDecompress(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("decompress", flag.ContinueOnError)
	flags.SetOutput(stderr)

	in := flags.String("in", "", "input path: envelope JSON")
	out := flags.String("out", "", "output path: JSON array of integers")

	if err := flags.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}
	if *in == "" || *out == "" {
		return usageErrorf("decompress requires --in and --out")
	}

	env, err := readEnvelope(*in)
	if err != nil {
		return err
	}
	c, err := bitpack.Load(env)
	if err != nil {
		return err
	}

	if err := writeValues(*out, c.Decompress()); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "decompressed %d values -> %s\n", c.N(), *out)
	return nil
}
