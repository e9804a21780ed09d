package model

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPayload = errors.New("invalid payload")  // 400
	ErrValidation     = errors.New("validation error") // 400
	ErrNotFound       = errors.New("not found")        // 404
	ErrConflict       = errors.New("conflict")         // 409
)

var (
	ErrRepairNotFound        = fmt.Errorf("repair %w", ErrNotFound)
	ErrCustomerNotFound      = fmt.Errorf("customer %w", ErrNotFound)
	ErrInventoryItemNotFound = fmt.Errorf("inventory item %w", ErrNotFound)
	ErrAppointmentNotFound   = fmt.Errorf("appointment %w", ErrNotFound)
)
