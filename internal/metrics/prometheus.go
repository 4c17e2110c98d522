// Package metrics records interaction pipeline metrics in Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements interaction.Recorder.
type PrometheusRecorder struct {
	selectionChanges  prometheus.Counter
	triggersTotal     prometheus.Counter
	triggersIgnored   *prometheus.CounterVec
	targetPanics      *prometheus.CounterVec
	cooldownRemaining prometheus.Gauge
}

// NewPrometheusRecorder registers the interaction metrics with reg.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	factory := promauto.With(reg)
	return &PrometheusRecorder{
		selectionChanges: factory.NewCounter(prometheus.CounterOpts{
			Name: "interaction_selection_changes_total",
			Help: "Number of times the selected target changed, including to none",
		}),
		triggersTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "interaction_triggers_total",
			Help: "Number of interactions delivered to a target",
		}),
		triggersIgnored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interaction_triggers_ignored_total",
				Help: "Ticks on which a raised trigger could not fire, by reason",
			},
			[]string{"reason"},
		),
		targetPanics: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interaction_target_panics_total",
				Help: "Recovered panics from target methods",
			},
			[]string{"method"},
		),
		cooldownRemaining: factory.NewGauge(prometheus.GaugeOpts{
			Name: "interaction_cooldown_remaining_seconds",
			Help: "Time left before the next interaction may fire",
		}),
	}
}

func (p *PrometheusRecorder) SelectionChanged() {
	p.selectionChanges.Inc()
}

func (p *PrometheusRecorder) Triggered() {
	p.triggersTotal.Inc()
}

func (p *PrometheusRecorder) TriggerIgnored(reason string) {
	p.triggersIgnored.WithLabelValues(reason).Inc()
}

func (p *PrometheusRecorder) TargetPanicked(method string) {
	p.targetPanics.WithLabelValues(method).Inc()
}

func (p *PrometheusRecorder) CooldownRemaining(seconds float32) {
	p.cooldownRemaining.Set(float64(seconds))
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
