package bitpack

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// TransmissionMetrics models whether packing pays for itself over the wire:
// it weighs the time saved moving fewer bits against the time spent running
// Compress and Decompress.
type TransmissionMetrics struct {
	UncompressedSizeBits int64
	CompressedSizeBits   int64
	CompressionTime      time.Duration
	DecompressionTime    time.Duration
	BandwidthBPS         float64 // bits per second
	Latency              time.Duration
}

// CompressionRatio is UncompressedSizeBits / CompressedSizeBits, or +Inf if
// the compressed size is zero.
func (m TransmissionMetrics) CompressionRatio() float64 {
	if m.CompressedSizeBits == 0 {
		return math.Inf(1)
	}
	return float64(m.UncompressedSizeBits) / float64(m.CompressedSizeBits)
}

func (m TransmissionMetrics) uncompressedTransmissionTime() time.Duration {
	return time.Duration(float64(m.UncompressedSizeBits) / m.BandwidthBPS * float64(time.Second))
}

func (m TransmissionMetrics) compressedTransmissionTime() time.Duration {
	return time.Duration(float64(m.CompressedSizeBits) / m.BandwidthBPS * float64(time.Second))
}

// TotalUncompressedTime is latency + raw transmission time.
func (m TransmissionMetrics) TotalUncompressedTime() time.Duration {
	return m.Latency + m.uncompressedTransmissionTime()
}

// TotalCompressedTime is latency + compress + transmit + decompress.
func (m TransmissionMetrics) TotalCompressedTime() time.Duration {
	return m.Latency + m.CompressionTime + m.compressedTransmissionTime() + m.DecompressionTime
}

// TimeSaved is the reduction in total time from using compression; negative
// means compression is slower overall.
func (m TransmissionMetrics) TimeSaved() time.Duration {
	return m.TotalUncompressedTime() - m.TotalCompressedTime()
}

// Beneficial reports whether compression reduces total transmission time.
func (m TransmissionMetrics) Beneficial() bool {
	return m.TimeSaved() > 0
}

// FormatReport renders a human-readable summary, mirroring the layout of the
// original transmission analysis report.
func (m TransmissionMetrics) FormatReport() string {
	var b strings.Builder
	fmt.Fprintln(&b, "Transmission Analysis Report")
	fmt.Fprintln(&b, strings.Repeat("=", 50))
	fmt.Fprintf(&b, "Uncompressed size: %d bits (%d bytes)\n", m.UncompressedSizeBits, m.UncompressedSizeBits/8)
	fmt.Fprintf(&b, "Compressed size: %d bits (%d bytes)\n", m.CompressedSizeBits, m.CompressedSizeBits/8)
	fmt.Fprintf(&b, "Compression ratio: %.2fx\n", m.CompressionRatio())
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Timing breakdown:")
	fmt.Fprintf(&b, "  Network latency: %.3f ms\n", float64(m.Latency)/float64(time.Millisecond))
	fmt.Fprintf(&b, "  Compression time: %.3f ms\n", float64(m.CompressionTime)/float64(time.Millisecond))
	fmt.Fprintf(&b, "  Decompression time: %.3f ms\n", float64(m.DecompressionTime)/float64(time.Millisecond))
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Uncompressed transmission: %.3f ms\n", float64(m.uncompressedTransmissionTime())/float64(time.Millisecond))
	fmt.Fprintf(&b, "Compressed transmission: %.3f ms\n", float64(m.compressedTransmissionTime())/float64(time.Millisecond))
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Total time (uncompressed): %.3f ms\n", float64(m.TotalUncompressedTime())/float64(time.Millisecond))
	fmt.Fprintf(&b, "Total time (compressed): %.3f ms\n", float64(m.TotalCompressedTime())/float64(time.Millisecond))
	fmt.Fprintln(&b)

	saved := m.TimeSaved()
	total := m.TotalUncompressedTime()
	if m.Beneficial() {
		pct := float64(saved) / float64(total) * 100
		fmt.Fprintf(&b, "compression saves %.3f ms (%.1f%% faster)\n", float64(saved)/float64(time.Millisecond), pct)
	} else {
		pct := float64(-saved) / float64(total) * 100
		fmt.Fprintf(&b, "compression adds %.3f ms overhead (%.1f%% slower)\n", float64(-saved)/float64(time.Millisecond), pct)
	}
	return b.String()
}

// MinimumBandwidthForBenefit returns the bandwidth (bits per second) below
// which compression starts paying for itself, ignoring latency. It returns
// (0, false) if compression never reduces size, and (0, true) if there is no
// processing overhead (compression is beneficial at any bandwidth).
func MinimumBandwidthForBenefit(uncompressedBits, compressedBits int64, compressionTime, decompressionTime time.Duration) (float64, bool) {
	sizeSaved := uncompressedBits - compressedBits
	if sizeSaved <= 0 {
		return 0, false
	}
	overhead := compressionTime + decompressionTime
	if overhead <= 0 {
		return 0, true
	}
	return float64(sizeSaved) / overhead.Seconds(), true
}

// BandwidthScenario names one rung of the bandwidth/latency ladder used by
// AnalyzeScenarios.
type BandwidthScenario struct {
	Name         string
	BandwidthBPS float64
	Latency      time.Duration
}

// StandardScenarios is the bandwidth ladder swept by AnalyzeScenarios, from
// a fast low-latency LAN down to a dial-up modem.
var StandardScenarios = []BandwidthScenario{
	{"10 Gbps LAN (low latency)", 10e9, 100 * time.Microsecond},
	{"1 Gbps LAN", 1e9, 500 * time.Microsecond},
	{"100 Mbps", 100e6, time.Millisecond},
	{"10 Mbps", 10e6, 5 * time.Millisecond},
	{"1 Mbps", 1e6, 20 * time.Millisecond},
	{"56 Kbps modem", 56e3, 100 * time.Millisecond},
}

// ScenarioResult is one row of AnalyzeScenarios' sweep.
type ScenarioResult struct {
	Scenario   BandwidthScenario
	Metrics    TransmissionMetrics
	Beneficial bool
}

// AnalyzeScenarios sweeps StandardScenarios for a fixed uncompressed/
// compressed size and processing cost, reporting whether compression pays
// off on each rung of the bandwidth ladder.
func AnalyzeScenarios(uncompressedBits, compressedBits int64, compressionTime, decompressionTime time.Duration) []ScenarioResult {
	results := make([]ScenarioResult, len(StandardScenarios))
	for i, s := range StandardScenarios {
		m := TransmissionMetrics{
			UncompressedSizeBits: uncompressedBits,
			CompressedSizeBits:   compressedBits,
			CompressionTime:      compressionTime,
			DecompressionTime:    decompressionTime,
			BandwidthBPS:         s.BandwidthBPS,
			Latency:              s.Latency,
		}
		results[i] = ScenarioResult{Scenario: s, Metrics: m, Beneficial: m.Beneficial()}
	}
	return results
}
