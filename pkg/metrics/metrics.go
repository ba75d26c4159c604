// Package metrics exposes prometheus counters for corpus acquisition.
//
// Metrics are registered on a caller-supplied registry: nothing is registered globally.
package metrics

import (
	"github.com/docker/go-units"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// KB stands for kilo bytes (1000 bytes)
	KB = units.KB

	// MB stands for mega bytes (1000 kilo bytes)
	MB = units.MB

	// GB stands for giga bytes (1000 mega bytes)
	GB = units.GB

	namespace = "corpusy"
)

// Outcomes of an acquisition
const (
	OutcomeLocal       = "local"
	OutcomeExtracted   = "extracted"
	OutcomeUnavailable = "unavailable"
	OutcomeMismatch    = "mismatch"
	OutcomeFailed      = "failed"
)

// Acquisition collects counters about contents acquisition
type Acquisition struct {
	Acquisitions *prometheus.CounterVec
	Forwards     prometheus.Counter
	Bytes        prometheus.Counter
}

// NewAcquisition builds acquisition metrics and registers them on reg, when not nil
func NewAcquisition(reg prometheus.Registerer) (*Acquisition, error) {
	m := &Acquisition{
		Acquisitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acquire_total",
			Help:      "Number of contents acquisitions, by outcome.",
		}, []string{"outcome"}),
		Forwards: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "forward_total",
			Help:      "Number of archive forward attempts.",
		}),
		Bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acquired_bytes_total",
			Help:      "Number of archive bytes staged for extraction.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Acquisitions, m.Forwards, m.Bytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Outcome counts an acquisition outcome. A nil receiver counts nothing.
func (m *Acquisition) Outcome(outcome string) {
	if m == nil {
		return
	}
	m.Acquisitions.WithLabelValues(outcome).Inc()
}

// Forwarded counts a forward attempt
func (m *Acquisition) Forwarded() {
	if m == nil {
		return
	}
	m.Forwards.Inc()
}

// Staged counts archive bytes
func (m *Acquisition) Staged(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.Bytes.Add(float64(n))
}
