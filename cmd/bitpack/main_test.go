package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMain(t *testing.T, args []string) (int, string, string) {
	t.Helper()

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = append([]string{"bitpack"}, args...)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := -1

	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	doMain(stdout, stderr, func(code int) { exitCode = code })

	return exitCode, stdout.String(), stderr.String()
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	envPath := filepath.Join(dir, "env.json")
	outPath := filepath.Join(dir, "out.json")

	require.NoError(t, os.WriteFile(inPath, []byte(`[1,5,3,7,2,8,4,6,9,10]`), 0o644))

	code, _, stderr := runMain(t, []string{"compress", "--variant", "noncross", "--in", inPath, "--out", envPath})
	require.Equal(t, 0, code, stderr)

	code, _, stderr = runMain(t, []string{"decompress", "--in", envPath, "--out", outPath})
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var got []int64
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []int64{1, 5, 3, 7, 2, 8, 4, 6, 9, 10}, got)
}

func TestGetIndex(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	envPath := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`[1,5,3,7,2,8,4,6,9,10]`), 0o644))

	code, _, stderr := runMain(t, []string{"compress", "--variant", "noncross", "--in", inPath, "--out", envPath})
	require.Equal(t, 0, code, stderr)

	code, stdout, stderr := runMain(t, []string{"get", "--in", envPath, "--index", "3"})
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "7\n", stdout)
}

func TestGetOutOfRangeExitsTwo(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	envPath := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`[1,2,3]`), 0o644))

	code, _, stderr := runMain(t, []string{"compress", "--in", inPath, "--out", envPath})
	require.Equal(t, 0, code, stderr)

	code, _, _ = runMain(t, []string{"get", "--in", envPath, "--index", "99"})
	assert.Equal(t, 2, code)
}

func TestUnknownVariantExitsOne(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	envPath := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`[1,2,3]`), 0o644))

	code, _, stderr := runMain(t, []string{"compress", "--variant", "bogus", "--in", inPath, "--out", envPath})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown variant")
}

func TestMissingFlagsIsUsageError(t *testing.T) {
	code, _, stderr := runMain(t, []string{"compress"})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "usage error")
}

func TestNegativeValueExitsTwo(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	envPath := filepath.Join(dir, "env.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`[1,-2,3]`), 0o644))

	code, _, _ := runMain(t, []string{"compress", "--in", inPath, "--out", envPath})
	assert.Equal(t, 2, code)
}

func TestCompressWithTransportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	inPath := filepath.Join(dir, "in.json")
	envPath := filepath.Join(dir, "env.json")
	outPath := filepath.Join(dir, "out.json")
	require.NoError(t, os.WriteFile(inPath, []byte(`[1,5,3,7,2,8,4,6,9,10]`), 0o644))

	code, _, stderr := runMain(t, []string{"compress", "--in", inPath, "--out", envPath, "--transport", "s2"})
	require.Equal(t, 0, code, stderr)

	raw, err := os.ReadFile(envPath)
	require.NoError(t, err)
	var wrapper map[string]any
	require.NoError(t, json.Unmarshal(raw, &wrapper))
	assert.Equal(t, "s2", wrapper["transport"])

	code, _, stderr = runMain(t, []string{"decompress", "--in", envPath, "--out", outPath})
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var got []int64
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, []int64{1, 5, 3, 7, 2, 8, 4, 6, 9, 10}, got)
}

func TestHelpExitsZero(t *testing.T) {
	code, _, _ := runMain(t, []string{"-h"})
	assert.Equal(t, 0, code)
}

func TestBenchPrintsJSONLines(t *testing.T) {
	code, stdout, stderr := runMain(t, []string{"bench", "--variant", "noncross", "--seed", "2"})
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"op":"compress"`)
}

func TestTransmissionReport(t *testing.T) {
	code, stdout, stderr := runMain(t, []string{
		"transmission",
		"--uncompressed-bits", "8000000",
		"--compressed-bits", "1000000",
		"--bandwidth-bps", "1000000",
		"--latency-ns", "20000000",
	})
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Compression ratio")
}
