package structs

import (
	"strings"
)

type Status string

const (
	// transient states
	ASSIGNED    Status = "assigned"
	ENROUTE     Status = "enroute"
	ARRIVED     Status = "arrived"
	JOB_STARTED Status = "job_started"

	// end states
	JOB_COMPLETED Status = "job_completed"
	CANCELLED     Status = "cancelled"
)

// TransitionPolicy decides whether the transition table is enforced.
type TransitionPolicy string

const (
	// PolicyStrict only permits transitions listed in the transition table.
	PolicyStrict TransitionPolicy = "strict"

	// PolicyPermissive permits any known status from any other (dispatcher override).
	PolicyPermissive TransitionPolicy = "permissive"
)

// transitions maps a status to the statuses it may move to under PolicyStrict.
// Moving to the same status is always permitted & isn't listed here.
var transitions = map[Status][]Status{
	ASSIGNED:    {ENROUTE, CANCELLED},
	ENROUTE:     {ARRIVED, CANCELLED},
	ARRIVED:     {JOB_STARTED, CANCELLED},
	JOB_STARTED: {JOB_COMPLETED, CANCELLED},
}

// AllStatuses returns every known status in lifecycle order.
func AllStatuses() []Status {
	return []Status{ASSIGNED, ENROUTE, ARRIVED, JOB_STARTED, JOB_COMPLETED, CANCELLED}
}

func IsFinalStatus(status Status) bool {
	switch status {
	case JOB_COMPLETED, CANCELLED:
		return true
	default:
		return false
	}
}

// IsTrackable returns if a technician's location should be reported while a job
// is in the given status.
func IsTrackable(status Status) bool {
	switch status {
	case ENROUTE, ARRIVED, JOB_STARTED:
		return true
	default:
		return false
	}
}

// CanTransition returns if a job may move from -> to under the given policy.
func CanTransition(policy TransitionPolicy, from, to Status) bool {
	if ToStatus(string(to)) == "" {
		return false
	}
	if from == to {
		return true
	}
	if policy == PolicyPermissive {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ToStatus(s string) Status {
	switch strings.ToLower(s) {
	case "assigned":
		return ASSIGNED
	case "enroute":
		return ENROUTE
	case "arrived":
		return ARRIVED
	case "job_started":
		return JOB_STARTED
	case "job_completed":
		return JOB_COMPLETED
	case "cancelled":
		return CANCELLED
	default:
		return ""
	}
}

func ToTransitionPolicy(s string) TransitionPolicy {
	switch strings.ToLower(s) {
	case "strict":
		return PolicyStrict
	case "permissive":
		return PolicyPermissive
	default:
		return ""
	}
}
