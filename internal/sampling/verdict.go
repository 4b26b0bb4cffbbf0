package sampling

import "fmt"

// Outcome is the lot disposition.
type Outcome string

const (
	Accept Outcome = "ACCEPT"
	Reject Outcome = "REJECT"
)

// Verdict is the result of judging an observed defect count against a plan.
type Verdict struct {
	Outcome          Outcome `json:"outcome"`
	ObservedDefects  int     `json:"observed_defects"`
	AcceptanceNumber int     `json:"acceptance_number"`
	RejectionNumber  int     `json:"rejection_number"`
}

// Judge accepts the lot when observedDefects does not exceed the
// acceptance number. Callers must not pass a negative count.
func Judge(plan Plan, observedDefects int) Verdict {
	v := Verdict{
		Outcome:          Reject,
		ObservedDefects:  observedDefects,
		AcceptanceNumber: plan.AcceptanceNumber,
		RejectionNumber:  plan.RejectionNumber,
	}
	if observedDefects <= plan.AcceptanceNumber {
		v.Outcome = Accept
	}
	return v
}

// Accepted reports whether the lot was accepted.
func (v Verdict) Accepted() bool {
	return v.Outcome == Accept
}

// Summary renders the verdict line shown on the report.
func (v Verdict) Summary() string {
	if v.Accepted() {
		return fmt.Sprintf("ACCEPT Lot (Found %d defects, Acceptance limit: %d)", v.ObservedDefects, v.AcceptanceNumber)
	}
	return fmt.Sprintf("REJECT Lot (Found %d defects, Rejection limit: %d)", v.ObservedDefects, v.RejectionNumber)
}
