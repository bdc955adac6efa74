package service

import (
	"time"

	"github.com/chainsafe/jackpot-middleware/internal/metrics"
	"github.com/chainsafe/jackpot-middleware/pkg/game"
)

// track records the outcome of a flow. It is deferred with a pointer to the
// flow's named error result.
func (c *Controller) track(flow string, start time.Time, err *error) {
	metrics.FlowDuration.WithLabelValues(flow).Observe(c.now().Sub(start).Seconds())

	if err == nil || *err == nil {
		metrics.FlowsTotal.WithLabelValues(flow, "success").Inc()
		return
	}
	metrics.FlowsTotal.WithLabelValues(flow, "failure").Inc()
	metrics.ErrorsTotal.WithLabelValues("flow_"+flow, game.ErrorKind(*err)).Inc()
}
