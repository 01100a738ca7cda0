// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>
package ffi

import "github.com/prometheus/client_golang/prometheus"

type tableMetrics struct {
	registry *prometheus.Registry

	// handles created and not yet disposed. A value that keeps growing is a
	// host that forgets to dispose.
	live *prometheus.GaugeVec

	created *prometheus.CounterVec

	violations *prometheus.CounterVec
}

func newTableMetrics() *tableMetrics {
	m := &tableMetrics{
		registry: prometheus.NewRegistry(),
		live: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "cryptobase",
			Subsystem: "ffi",
			Name:      "handles_live",
			Help:      "Number of hash handles created and not yet disposed",
		}, []string{"algorithm"}),
		created: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cryptobase",
			Subsystem: "ffi",
			Name:      "handles_created_total",
			Help:      "Total number of hash handles created",
		}, []string{"algorithm"}),
		violations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cryptobase",
			Subsystem: "ffi",
			Name:      "contract_violations_total",
			Help:      "Calls rejected at the boundary, by algorithm and status",
		}, []string{"algorithm", "status"}),
	}
	m.registry.MustRegister(m.live, m.created, m.violations)
	return m
}
