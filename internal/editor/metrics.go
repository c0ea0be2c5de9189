package editor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts save attempts by mode (create, update) and result
// (success, failure, auth_required, in_progress, invalid).
type Metrics struct {
	saves *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		saves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resume_saves_total",
				Help: "Total number of resume save attempts.",
			},
			[]string{"mode", "result"},
		),
	}
	if err := reg.Register(m.saves); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observeSave(mode, result string) {
	if m == nil {
		return
	}
	m.saves.WithLabelValues(mode, result).Inc()
}
