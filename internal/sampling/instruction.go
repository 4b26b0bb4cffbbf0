package sampling

import (
	"fmt"
	"math"
)

// Instruction tells the inspector how to physically draw the sample.
type Instruction struct {
	FullInspection          bool `json:"full_inspection"`
	ContainersToOpen        int  `json:"containers_to_open"`
	UnitsPerOpenedContainer int  `json:"units_per_opened_container"`
	// FinalContainerRemainder is non-zero when the last opened container
	// contributes fewer units than the others.
	FinalContainerRemainder int `json:"final_container_remainder"`
	// FinalContainerUnits is what the last opened container contributes.
	FinalContainerUnits int `json:"final_container_units"`
	TotalUnits          int `json:"total_units"`
	TotalContainers     int `json:"total_containers"`
	// ExceedsContainers is set when the plan asks for more containers than
	// the lot has. The counts are left as computed.
	ExceedsContainers bool `json:"exceeds_containers"`
}

// Derive converts a plan into container-opening instructions using the
// half-container rule: take half of each opened container, so the sample
// is spread over at least two containers.
func Derive(plan Plan, numContainers, unitsPerContainer int) (Instruction, error) {
	if numContainers <= 0 || unitsPerContainer <= 0 {
		return Instruction{}, fmt.Errorf("%w: containers=%d units per container=%d",
			ErrInvalidInput, numContainers, unitsPerContainer)
	}
	if numContainers > math.MaxInt/unitsPerContainer {
		return Instruction{}, fmt.Errorf("%w: lot size overflows", ErrInvalidInput)
	}
	lotSize := numContainers * unitsPerContainer

	if plan.SampleSize >= lotSize {
		return Instruction{
			FullInspection:          true,
			ContainersToOpen:        numContainers,
			UnitsPerOpenedContainer: unitsPerContainer,
			FinalContainerUnits:     unitsPerContainer,
			TotalUnits:              lotSize,
			TotalContainers:         numContainers,
		}, nil
	}

	half := unitsPerContainer / 2
	if half == 0 {
		return Instruction{}, fmt.Errorf("%w: %d unit(s) per container", ErrContainerTooSmall, unitsPerContainer)
	}

	full := plan.SampleSize / half
	remainder := plan.SampleSize % half
	toOpen := full
	finalUnits := half
	if remainder > 0 {
		toOpen++
		finalUnits = remainder
	}

	return Instruction{
		ContainersToOpen:        toOpen,
		UnitsPerOpenedContainer: half,
		FinalContainerRemainder: remainder,
		FinalContainerUnits:     finalUnits,
		TotalUnits:              plan.SampleSize,
		TotalContainers:         numContainers,
		ExceedsContainers:       toOpen > numContainers,
	}, nil
}

// Steps renders the instruction as the lines read out to the inspector.
func (in Instruction) Steps() []string {
	if in.FullInspection {
		return []string{
			fmt.Sprintf("Open all %d box(es) and inspect every piece.", in.TotalContainers),
			fmt.Sprintf("(Total pieces inspected: %d)", in.TotalUnits),
		}
	}
	steps := []string{
		fmt.Sprintf("Randomly select and open %d box(es) out of %d total.", in.ContainersToOpen, in.TotalContainers),
	}
	// A single partial box holds the whole sample.
	if in.ContainersToOpen == 1 && in.FinalContainerRemainder > 0 {
		steps = append(steps, fmt.Sprintf("From the opened box, inspect %d piece(s).", in.FinalContainerRemainder))
		return append(steps, fmt.Sprintf("(Total pieces inspected: %d)", in.TotalUnits))
	}
	steps = append(steps, fmt.Sprintf("From each opened box, inspect %d piece(s).", in.UnitsPerOpenedContainer))
	if in.FinalContainerRemainder > 0 {
		steps = append(steps, fmt.Sprintf("From the final box, inspect only %d piece(s) to reach exactly %d samples.",
			in.FinalContainerRemainder, in.TotalUnits))
	}
	return append(steps, fmt.Sprintf("(Total pieces inspected: %d)", in.TotalUnits))
}
