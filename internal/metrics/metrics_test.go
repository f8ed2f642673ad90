package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveStepAction(t *testing.T) {
	before := testutil.ToFloat64(StepActionsTotal.WithLabelValues("PASSWORD", "next", "advanced"))

	ObserveStepAction("PASSWORD", "next", "advanced")

	after := testutil.ToFloat64(StepActionsTotal.WithLabelValues("PASSWORD", "next", "advanced"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestObserveRemoteValidation(t *testing.T) {
	before := testutil.ToFloat64(RemoteValidationsTotal.WithLabelValues("PORTAINER", "fail"))

	ObserveRemoteValidation("PORTAINER", "fail", 0.25)

	after := testutil.ToFloat64(RemoteValidationsTotal.WithLabelValues("PORTAINER", "fail"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestObserveCommit(t *testing.T) {
	before := testutil.ToFloat64(CommitsTotal.WithLabelValues("created"))

	ObserveCommit("created")

	after := testutil.ToFloat64(CommitsTotal.WithLabelValues("created"))
	if after != before+1 {
		t.Errorf("counter = %v, want %v", after, before+1)
	}
}

func TestSessionLifecycle(t *testing.T) {
	before := testutil.ToFloat64(SessionsActive)

	SessionStarted()
	if got := testutil.ToFloat64(SessionsActive); got != before+1 {
		t.Errorf("active = %v, want %v", got, before+1)
	}

	completedBefore := testutil.ToFloat64(SessionsTotal.WithLabelValues("completed"))
	SessionFinished("completed")
	if got := testutil.ToFloat64(SessionsTotal.WithLabelValues("completed")); got != completedBefore+1 {
		t.Errorf("completed total = %v, want %v", got, completedBefore+1)
	}

	SessionRemoved()
	if got := testutil.ToFloat64(SessionsActive); got != before {
		t.Errorf("active = %v, want %v", got, before)
	}
}
