// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	mutationOutcomes       *prometheus.CounterVec
	pendingOperations      prometheus.Gauge
	realtimeEvents         *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not defined")
	}

	h, err := m.responseTime.GetMetricWith(m.withService(tags))
	if err != nil {
		return err
	}
	h.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not defined")
	}

	g, err := m.dependencyAvailability.GetMetricWith(m.withService(tags))
	if err != nil {
		return err
	}
	g.Set(value)

	return nil
}

func (m *Monitor) IncMutationOutcome(tags map[string]string) error {
	c, err := m.mutationOutcomes.GetMetricWith(m.withService(tags))
	if err != nil {
		return err
	}
	c.Inc()

	return nil
}

func (m *Monitor) SetPendingOperations(value float64) error {
	m.pendingOperations.Set(value)
	return nil
}

func (m *Monitor) IncRealtimeEvent(tags map[string]string) error {
	c, err := m.realtimeEvents.GetMetricWith(m.withService(tags))
	if err != nil {
		return err
	}
	c.Inc()

	return nil
}

func (m *Monitor) withService(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}
	return labels
}

func (m *Monitor) registerHistograms() {
	m.responseTime = register(m.logger, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	))
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = register(m.logger, prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	))

	m.pendingOperations = register(m.logger, prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name:        "team_pending_operations",
			Help:        "team mutations applied optimistically and not yet settled",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
	))
}

func (m *Monitor) registerCounters() {
	m.mutationOutcomes = register(m.logger, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_mutations_total",
			Help: "team mutations by kind and outcome",
		},
		[]string{"kind", "outcome", "service"},
	))

	m.realtimeEvents = register(m.logger, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "team_realtime_events_total",
			Help: "member events pushed by the remote authority",
		},
		[]string{"type", "outcome", "service"},
	))
}

// register returns the already registered collector when the same metric was registered before
func register[T prometheus.Collector](logger logging.LoggerInterface, c T) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing
		}
	}

	logger.Errorf("failed to register metric: %v", err)
	return c
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
