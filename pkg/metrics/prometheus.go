package metrics

import (
	"math"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/decker502/cryptowolf/pkg/game"
)

// Purchase results.
const (
	ResultOK     = "ok"
	ResultFailed = "failed"
)

// Manager records session events as Prometheus metrics.
// It implements game.Listener and must be called from the session's goroutine;
// the underlying collectors are safe to scrape concurrently.
type Manager struct {
	namespace    string
	subsystem    string
	scoreBuckets []float64
	constLabels  map[string]string
	registry     prometheus.Registerer

	gamesStarted prometheus.Counter
	gamesOver    prometheus.Counter
	finalScore   prometheus.Histogram

	catches       *prometheus.CounterVec
	misses        *prometheus.CounterVec
	bonusesExpiry *prometheus.CounterVec
	purchases     *prometheus.CounterVec

	lives   prometheus.Gauge
	balance prometheus.Gauge
	combo   prometheus.Gauge
	score   prometheus.Gauge
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:    "cryptowolf",
		subsystem:    "session",
		scoreBuckets: []float64{5, 10, 25, 50, 100, 250, 500},
		constLabels:  map[string]string{},
		registry:     prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	factory := promauto.With(m.registry)

	m.gamesStarted = factory.NewCounter(m.counterOpts("games_started_total", "Number of games started"))
	m.gamesOver = factory.NewCounter(m.counterOpts("games_over_total", "Number of games that ended"))
	m.finalScore = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "final_score",
		Help:        "Floored score at game over",
		ConstLabels: m.constLabels,
		Buckets:     m.scoreBuckets,
	})

	m.catches = factory.NewCounterVec(m.counterOpts("catches_total", "Entities caught, by kind"), []string{"kind"})
	m.misses = factory.NewCounterVec(m.counterOpts("misses_total", "Entities missed, by kind"), []string{"kind"})
	m.bonusesExpiry = factory.NewCounterVec(m.counterOpts("bonuses_expired_total", "Timed bonuses that ran out, by kind"), []string{"kind"})
	m.purchases = factory.NewCounterVec(m.counterOpts("purchases_total", "Shop purchases, by item and result"), []string{"item", "result"})

	m.lives = factory.NewGauge(m.gaugeOpts("lives", "Current lives"))
	m.balance = factory.NewGauge(m.gaugeOpts("balance_tokens", "Current token balance"))
	m.combo = factory.NewGauge(m.gaugeOpts("combo", "Current combo count"))
	m.score = factory.NewGauge(m.gaugeOpts("score", "Current score"))
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

// OnEvent implements game.Listener.
func (m *Manager) OnEvent(e game.Event) {
	switch e.Type {
	case game.EventGameStarted:
		m.gamesStarted.Inc()
	case game.EventCaught:
		m.catches.WithLabelValues(e.Kind.String()).Inc()
	case game.EventMissed:
		m.misses.WithLabelValues(e.Kind.String()).Inc()
	case game.EventBonusExpired:
		m.bonusesExpiry.WithLabelValues(e.Kind.String()).Inc()
	case game.EventPurchased:
		m.purchases.WithLabelValues(string(e.Item), ResultOK).Inc()
	case game.EventPurchaseFailed:
		m.purchases.WithLabelValues(string(e.Item), ResultFailed).Inc()
	case game.EventGameOver:
		m.gamesOver.Inc()
		m.finalScore.Observe(math.Floor(e.Score))
	}

	m.lives.Set(float64(e.Lives))
	m.balance.Set(float64(e.Balance))
	m.combo.Set(float64(e.Combo))
	m.score.Set(e.Score)
}
