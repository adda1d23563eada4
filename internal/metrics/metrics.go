// Package metrics exposes prometheus instrumentation for the cycling API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LoginAttempts counts login outcomes, labelled success or failure.
var LoginAttempts = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cycling_api_login_attempts_total",
		Help: "Number of login attempts by result.",
	},
	[]string{"result"},
)

// RegistrationsCreated counts accounts created, labelled by role.
var RegistrationsCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "cycling_api_registrations_total",
		Help: "Number of accounts created by role.",
	},
	[]string{"role"},
)
