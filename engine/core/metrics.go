package core

import "fmt"

const AVG_COUNT uint8 = 30

/**
 * @brief Rolling statistics over timed samples. Each sample is the duration
 * of one batch of operations; the average covers the last AVG_COUNT samples.
 */
type Metrics struct {
	Name          string
	sampleCounter uint8
	samples       [AVG_COUNT]float64
	filled        uint8
	MSavg         float64
	Operations    int64
	TotalMS       float64
}

func NewMetrics(name string) *Metrics {
	return &Metrics{Name: name}
}

// Update records a sample that took elapsed seconds to run ops operations.
func (m *Metrics) Update(elapsed float64, ops int64) {
	ms := elapsed * 1000.0
	m.samples[m.sampleCounter] = ms
	m.sampleCounter = (m.sampleCounter + 1) % AVG_COUNT
	if m.filled < AVG_COUNT {
		m.filled++
	}

	sum := 0.0
	for i := uint8(0); i < m.filled; i++ {
		sum += m.samples[i]
	}
	m.MSavg = sum / float64(m.filled)

	m.Operations += ops
	m.TotalMS += ms
}

// SampleTime returns the rolling average sample duration in milliseconds.
func (m *Metrics) SampleTime() float64 {
	return m.MSavg
}

// OpsPerSecond returns the throughput over every recorded sample.
func (m *Metrics) OpsPerSecond() float64 {
	if m.TotalMS == 0 {
		return 0
	}
	return float64(m.Operations) / (m.TotalMS / 1000.0)
}

// NsPerOp returns the mean cost of one operation in nanoseconds.
func (m *Metrics) NsPerOp() float64 {
	if m.Operations == 0 {
		return 0
	}
	return m.TotalMS * 1e6 / float64(m.Operations)
}

func (m *Metrics) String() string {
	return fmt.Sprintf("%s: %.2f ns/op, %.0f ops/s, avg sample %.3f ms", m.Name, m.NsPerOp(), m.OpsPerSecond(), m.MSavg)
}
