package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	WagersPlayed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loto_wagers_total",
			Help: "Total wagers by outcome",
		},
		[]string{"outcome"},
	)

	CoinsWagered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loto_coins_wagered_total",
			Help: "Total coins staked on settled wagers",
		},
	)

	BalanceUpdates = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "loto_balance_updates_total",
			Help: "Total user balance writes",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(WagersPlayed)
		prometheus.MustRegister(CoinsWagered)
		prometheus.MustRegister(BalanceUpdates)
	})
}
