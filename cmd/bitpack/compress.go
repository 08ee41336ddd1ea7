package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/kjhall/bitpack"
	"github.com/kjhall/bitpack/transport"
)

func doCompress(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("compress", flag.ContinueOnError)
	flags.SetOutput(stderr)

	variant := flags.String("variant", bitpack.VariantCross, "packing variant: noncross|cross|overflow|overflow-noncross|overflow-cross")
	threshold := flags.Float64("overflow-threshold", bitpack.DefaultOverflowThreshold, "rank percentile for overflow variants")
	in := flags.String("in", "", "input path: JSON array of integers")
	out := flags.String("out", "", "output path: envelope JSON")
	transportKind := flags.String("transport", "", "transport compression applied to the envelope: none|s2|lz4|zstd")

	if err := flags.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}
	if *in == "" || *out == "" {
		return usageErrorf("compress requires --in and --out")
	}

	rawValues, err := readValues(*in)
	if err != nil {
		return err
	}
	values, err := bitpack.ValidateValues(rawValues)
	if err != nil {
		return err
	}

	c, err := bitpack.NewCodec(*variant, bitpack.FactoryOptions{OverflowThreshold: *threshold})
	if err != nil {
		return err
	}
	if err := c.Compress(values); err != nil {
		return err
	}

	env, err := bitpack.Save(c)
	if err != nil {
		return err
	}
	if err := writeEnvelope(*out, env, transport.Kind(*transportKind)); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "compressed %d values as %q (k=%d) -> %s\n", env.N, env.Variant, env.K, *out)
	return nil
}
