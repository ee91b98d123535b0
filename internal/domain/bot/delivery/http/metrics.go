package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Intake result labels
const (
	resultOK        = "ok"
	resultInvalid   = "invalid"
	resultMalformed = "malformed"
	resultRejected  = "rejected"
)

var webhookUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "polka_webhook_updates_total",
	Help: "Inbound webhook updates by intake result.",
}, []string{"result"})
