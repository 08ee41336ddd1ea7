package main

import (
	"flag"
	"io"

	"github.com/kjhall/bitpack"
	"github.com/kjhall/bitpack/bench"
)

func doBench(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("bench", flag.ContinueOnError)
	flags.SetOutput(stderr)

	variant := flags.String("variant", bitpack.VariantCross, "packing variant to benchmark")
	threshold := flags.Float64("overflow-threshold", bitpack.DefaultOverflowThreshold, "rank percentile for overflow variants")
	seed := flags.Int64("seed", 1, "PRNG seed for generated workloads")

	if err := flags.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}

	return bench.Run(stdout, *variant, bitpack.FactoryOptions{OverflowThreshold: *threshold}, *seed)
}
