package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/kjhall/bitpack"
)

func doTransmission(args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("transmission", flag.ContinueOnError)
	flags.SetOutput(stderr)

	file := flags.String("file", "", "envelope path; sizes are derived from it instead of --uncompressed-bits/--compressed-bits")
	uncompressedBits := flags.Int64("uncompressed-bits", 0, "size of the raw data in bits")
	compressedBits := flags.Int64("compressed-bits", 0, "size of the packed data in bits")
	compressNs := flags.Int64("compress-ns", 0, "time to compress, in nanoseconds")
	decompressNs := flags.Int64("decompress-ns", 0, "time to decompress, in nanoseconds")
	bandwidthBps := flags.Float64("bandwidth-bps", 1e9, "network bandwidth in bits per second")
	latencyNs := flags.Int64("latency-ns", 0, "network latency in nanoseconds")
	sweep := flags.Bool("sweep", false, "report across the standard bandwidth ladder instead of a single scenario")

	if err := flags.Parse(args); err != nil {
		return usageErrorf("%v", err)
	}

	if *file != "" {
		env, err := readEnvelope(*file)
		if err != nil {
			return err
		}
		c, err := bitpack.Load(env)
		if err != nil {
			return err
		}
		*uncompressedBits = int64(c.N()) * 32
		*compressedBits = int64(len(env.Words))*32 + int64(len(env.Overflow))*32
	}

	if *uncompressedBits == 0 {
		return usageErrorf("transmission requires --file or --uncompressed-bits")
	}

	if *sweep {
		results := bitpack.AnalyzeScenarios(*uncompressedBits, *compressedBits, time.Duration(*compressNs), time.Duration(*decompressNs))
		for _, r := range results {
			status := "NOT BENEFICIAL"
			if r.Beneficial {
				status = "BENEFICIAL"
			}
			fmt.Fprintf(stdout, "%-28s %-15s uncompressed=%.3fms compressed=%.3fms diff=%+.3fms\n",
				r.Scenario.Name, status,
				float64(r.Metrics.TotalUncompressedTime())/float64(time.Millisecond),
				float64(r.Metrics.TotalCompressedTime())/float64(time.Millisecond),
				float64(r.Metrics.TimeSaved())/float64(time.Millisecond))
		}
		return nil
	}

	m := bitpack.TransmissionMetrics{
		UncompressedSizeBits: *uncompressedBits,
		CompressedSizeBits:   *compressedBits,
		CompressionTime:      time.Duration(*compressNs),
		DecompressionTime:    time.Duration(*decompressNs),
		BandwidthBPS:         *bandwidthBps,
		Latency:              time.Duration(*latencyNs),
	}
	fmt.Fprint(stdout, m.FormatReport())
	return nil
}
