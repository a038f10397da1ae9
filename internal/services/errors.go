package services

import "errors"

var (
	// Auth
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")

	// Validation
	ErrInvalidMonth       = errors.New("month must be in YYYY-MM format")
	ErrInvalidDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidEnergyLevel = errors.New("energy level must be between 1 and 10")
	ErrTooManyTopGoals    = errors.New("top3 cannot contain more than 3 entries")
	ErrTitleRequired      = errors.New("title is required")
	ErrTextRequired       = errors.New("text is required")

	// Lookup / ownership
	ErrGoalNotFound  = errors.New("monthly goal not found")
	ErrHabitNotFound = errors.New("habit not found")
	ErrTodoNotFound  = errors.New("todo not found")
	ErrNoteNotFound  = errors.New("note not found")
	ErrNotOwner      = errors.New("you do not own this record")
)

// IsValidationError reports whether err is one of the input validation
// sentinels, which handlers map to 400.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidEnergyLevel) ||
		errors.Is(err, ErrTooManyTopGoals) ||
		errors.Is(err, ErrTitleRequired) ||
		errors.Is(err, ErrTextRequired)
}
