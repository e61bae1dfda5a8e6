package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solraise_users_registered_total",
		Help: "Number of users registered",
	})

	DonationsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solraise_donations_recorded_total",
		Help: "Number of direct donations recorded",
	})

	PoolDonationsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solraise_pool_donations_recorded_total",
		Help: "Number of pool donations recorded",
	})

	TipsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solraise_tips_recorded_total",
		Help: "Number of tips recorded",
	})

	RewardPointsIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "solraise_reward_points_issued_total",
		Help: "Reward points issued across all transfer types",
	})
)
