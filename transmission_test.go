package bitpack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransmissionMetricsBeneficial(t *testing.T) {
	m := TransmissionMetrics{
		UncompressedSizeBits: 8_000_000,
		CompressedSizeBits:   1_000_000,
		CompressionTime:      time.Millisecond,
		DecompressionTime:    time.Millisecond,
		BandwidthBPS:         1e6, // 1 Mbps
		Latency:              20 * time.Millisecond,
	}

	assert.InDelta(t, 8.0, m.CompressionRatio(), 1e-9)
	assert.True(t, m.Beneficial())
	assert.Greater(t, m.TimeSaved(), time.Duration(0))
}

func TestTransmissionMetricsNotBeneficialOnFastLink(t *testing.T) {
	// On a very fast, low-latency link, compression overhead can exceed the
	// transmission time it saves.
	m := TransmissionMetrics{
		UncompressedSizeBits: 8_000,
		CompressedSizeBits:   6_000,
		CompressionTime:      5 * time.Millisecond,
		DecompressionTime:    5 * time.Millisecond,
		BandwidthBPS:         10e9,
		Latency:              100 * time.Microsecond,
	}

	assert.False(t, m.Beneficial())
	assert.Less(t, m.TimeSaved(), time.Duration(0))
}

func TestTransmissionMetricsZeroCompressedSizeRatio(t *testing.T) {
	m := TransmissionMetrics{UncompressedSizeBits: 100, CompressedSizeBits: 0, BandwidthBPS: 1e6}
	assert.True(t, m.CompressionRatio() > 1e300) // +Inf
}

func TestFormatReportMentionsBenefit(t *testing.T) {
	m := TransmissionMetrics{
		UncompressedSizeBits: 8_000_000,
		CompressedSizeBits:   1_000_000,
		CompressionTime:      time.Millisecond,
		DecompressionTime:    time.Millisecond,
		BandwidthBPS:         1e6,
		Latency:              20 * time.Millisecond,
	}
	report := m.FormatReport()
	assert.Contains(t, report, "Compression ratio")
	assert.Contains(t, report, "saves")
}

func TestMinimumBandwidthForBenefit(t *testing.T) {
	bw, ok := MinimumBandwidthForBenefit(8_000_000, 1_000_000, time.Millisecond, time.Millisecond)
	assert.True(t, ok)
	assert.Greater(t, bw, 0.0)

	_, ok = MinimumBandwidthForBenefit(1_000_000, 1_000_000, time.Millisecond, time.Millisecond)
	assert.False(t, ok)

	bw, ok = MinimumBandwidthForBenefit(8_000_000, 1_000_000, 0, 0)
	assert.True(t, ok)
	assert.Zero(t, bw)
}

func TestAnalyzeScenariosCoversLadder(t *testing.T) {
	results := AnalyzeScenarios(8_000_000, 1_000_000, time.Millisecond, time.Millisecond)
	assert.Len(t, results, len(StandardScenarios))
	for _, r := range results {
		assert.Equal(t, r.Metrics.Beneficial(), r.Beneficial)
	}
}
