package sampling

import "fmt"

// Plan is a resolved single-sampling plan.
type Plan struct {
	CodeLetter       CodeLetter   `json:"code_letter"`
	SampleSize       int          `json:"sample_size"`
	AcceptanceNumber int          `json:"acceptance_number"`
	RejectionNumber  int          `json:"rejection_number"`
	QualityLevel     QualityLevel `json:"quality_level"`
}

// CoversLot reports whether the sample is at least as large as the lot,
// in which case every unit must be inspected.
func (p Plan) CoversLot(lotSize int) bool {
	return p.SampleSize >= lotSize
}

// Resolve returns the plan for a lot size at the given quality level.
// The lot size is checked before the quality level.
func Resolve(lotSize int, level QualityLevel) (Plan, error) {
	letter, err := CodeLetterFor(lotSize)
	if err != nil {
		return Plan{}, err
	}
	if !level.Valid() {
		return Plan{}, fmt.Errorf("%w: quality level %q", ErrInvalidInput, string(level))
	}

	entry, ok := planTable[letter]
	if !ok {
		return Plan{}, fmt.Errorf("%w: code letter %s", ErrNoPlanForInputs, letter)
	}
	l, ok := entry.limits[level]
	if !ok {
		return Plan{}, fmt.Errorf("%w: code letter %s at %s", ErrNoPlanForInputs, letter, level)
	}

	return Plan{
		CodeLetter:       letter,
		SampleSize:       entry.sampleSize,
		AcceptanceNumber: l.Accept,
		RejectionNumber:  l.Reject,
		QualityLevel:     level,
	}, nil
}
