package booking

import "gatherspace/models"

// nextStep advances by one, clamped at the final step. Advancing past the
// final step is a no-op; leaving it requires an explicit submit.
func nextStep(current int) int {
	if current < models.StepCount {
		return current + 1
	}
	return current
}

// prevStep retreats by one, clamped at the first step.
func prevStep(current int) int {
	if current > 1 {
		return current - 1
	}
	return current
}
