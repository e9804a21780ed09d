package repair

import (
	"fmt"

	"github.com/you-humble/techrepair/internal/model"
)

// Any status may follow any other. Completing stamps completion_date every
// time; leaving completed keeps the stamp.
func applyStatus(r *model.Repair, status model.RepairStatus, ts string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", model.ErrValidation, status)
	}

	r.Status = status
	if status == model.StatusCompleted {
		stamp := ts
		r.CompletionDate = &stamp
	}

	return nil
}

func validate(r model.Repair) error {
	if r.Phone == "" && r.Email == "" {
		return fmt.Errorf("%w: phone or email is required", model.ErrValidation)
	}
	if !r.Urgency.Valid() {
		return fmt.Errorf("%w: unknown urgency %q", model.ErrValidation, r.Urgency)
	}
	if !r.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", model.ErrValidation, r.Status)
	}
	return nil
}

// validateUpdate only checks what the patch touched, so older records stay editable.
func validateUpdate(r model.Repair, patch model.RepairPatch) error {
	if (patch.Phone != nil || patch.Email != nil) && r.Phone == "" && r.Email == "" {
		return fmt.Errorf("%w: phone or email is required", model.ErrValidation)
	}
	if patch.Urgency != nil && !r.Urgency.Valid() {
		return fmt.Errorf("%w: unknown urgency %q", model.ErrValidation, r.Urgency)
	}
	return nil
}
