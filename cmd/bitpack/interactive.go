package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kjhall/bitpack"
)

// doInteractive runs a guided REPL over the same operations the
// subcommands provide, for exploring a dataset without writing files in
// between each step.
func doInteractive(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fmt.Fprintln(stdout, "bitpack interactive mode. Commands: compress <variant> <values...> | get <i> | next | skipto <v> | decompress | quit")

	var current bitpack.Codec
	var cur *bitpack.Cursor
	scanner := bufio.NewScanner(stdin)

	for {
		fmt.Fprint(stdout, "> ")
		if !scanner.Scan() {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := fields[0]

		switch cmd {
		case "quit", "exit":
			return nil

		case "compress":
			if len(fields) < 3 {
				fmt.Fprintln(stderr, "usage: compress <variant> <v1> <v2> ...")
				continue
			}
			values, err := parseValues(fields[2:])
			if err != nil {
				fmt.Fprintln(stderr, err)
				continue
			}
			c, err := bitpack.NewCodec(fields[1], bitpack.FactoryOptions{})
			if err != nil {
				fmt.Fprintln(stderr, err)
				continue
			}
			if err := c.Compress(values); err != nil {
				fmt.Fprintln(stderr, err)
				continue
			}
			current = c
			cur = bitpack.NewCursor(c)
			fmt.Fprintf(stdout, "ok: n=%d k=%d variant=%s\n", c.N(), c.K(), c.Variant())

		case "next":
			if cur == nil {
				fmt.Fprintln(stderr, "no compressed data yet; run compress first")
				continue
			}
			v, pos, ok := cur.Next()
			if !ok {
				fmt.Fprintln(stderr, "end of data")
				continue
			}
			fmt.Fprintf(stdout, "%d: %d\n", pos, v)

		case "skipto":
			if cur == nil {
				fmt.Fprintln(stderr, "no compressed data yet; run compress first")
				continue
			}
			if len(fields) != 2 {
				fmt.Fprintln(stderr, "usage: skipto <value>")
				continue
			}
			req, err := parseValues(fields[1:])
			if err != nil {
				fmt.Fprintln(stderr, err)
				continue
			}
			v, pos, ok := cur.SkipTo(req[0], true)
			if !ok {
				fmt.Fprintln(stderr, "no match at or after current position")
				continue
			}
			fmt.Fprintf(stdout, "%d: %d\n", pos, v)

		case "get":
			if current == nil {
				fmt.Fprintln(stderr, "no compressed data yet; run compress first")
				continue
			}
			if len(fields) != 2 {
				fmt.Fprintln(stderr, "usage: get <index>")
				continue
			}
			idx, err := strconv.Atoi(fields[1])
			if err != nil {
				fmt.Fprintln(stderr, "index must be an integer")
				continue
			}
			v, err := current.Get(idx)
			if err != nil {
				fmt.Fprintln(stderr, err)
				continue
			}
			fmt.Fprintln(stdout, v)

		case "decompress":
			if current == nil {
				fmt.Fprintln(stderr, "no compressed data yet; run compress first")
				continue
			}
			data, _ := json.Marshal(current.Decompress())
			fmt.Fprintln(stdout, string(data))

		default:
			fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		}
	}
}

func parseValues(fields []string) ([]uint32, error) {
	raw := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", bitpack.ErrInvalidValue, f)
		}
		raw[i] = v
	}
	return bitpack.ValidateValues(raw)
}
