package completion

import (
	"github.com/sirupsen/logrus"

	scoring "github.com/bulatminnakhmetov/tsunagu-backend/internal/completion"
)

// Trace identifies one computation in logs and responses
type Trace struct {
	ID     string
	UserID int
	Source string
}

// Observer is notified about every computed result
type Observer interface {
	Observe(trace Trace, snapshot *scoring.ProfileSnapshot, result scoring.Result)
}

// LogObserver writes results to a logrus logger at debug level
type LogObserver struct {
	log logrus.FieldLogger
}

// NewLogObserver creates an observer. A nil logger means the standard one.
func NewLogObserver(log logrus.FieldLogger) *LogObserver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogObserver{log: log}
}

func (o *LogObserver) Observe(trace Trace, snapshot *scoring.ProfileSnapshot, result scoring.Result) {
	o.log.WithFields(logrus.Fields{
		"trace_id":   trace.ID,
		"user_id":    trace.UserID,
		"source":     trace.Source,
		"cohort":     result.Cohort,
		"completed":  result.CompletedCount,
		"total":      result.TotalCount,
		"percentage": result.Percentage,
		"has_image":  result.HasImage,
		"images":     len(snapshot.Images),
		"missing":    result.Missing,
	}).Debug("profile completion computed")
}

// traceObserver adapts a service Observer to the scorer's observer for one call
type traceObserver struct {
	trace    Trace
	observer Observer
}

func (o traceObserver) ObserveCompletion(snapshot *scoring.ProfileSnapshot, result scoring.Result) {
	o.observer.Observe(o.trace, snapshot, result)
}
