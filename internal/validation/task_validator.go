package validation

import (
	"taskboard/internal/domain"
)

// Username and email length limits for task attribution fields.
const (
	MaxUsernameLength = 100
	MaxEmailLength    = 255
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateForCreation validates the three fields of a task creation request.
// Every failing field is reported, not just the first.
func (tv *TaskValidator) ValidateForCreation(username, email, taskText string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(username) {
		validationError.AddRequiredError("username", LocationBody, "Username is required")
	} else if !tv.validator.IsWithinMaxLength(username, MaxUsernameLength) {
		validationError.AddInvalidLengthError("username", LocationBody, username, "Username too long")
	}

	if !tv.validator.IsValidEmail(email) {
		validationError.AddInvalidFormatError("email", LocationBody, email, "Valid email is required")
	} else if !tv.validator.IsWithinMaxLength(email, MaxEmailLength) {
		validationError.AddInvalidLengthError("email", LocationBody, email, "Email too long")
	}

	if !tv.validator.IsNonEmptyString(taskText) {
		validationError.AddRequiredError("task_text", LocationBody, "Task text is required")
	}

	return validationError.OrNil()
}

// ValidateForUpdate validates an update patch. Field presence is optional;
// a present task_text must be non-empty. The no-fields-at-all case is
// rejected separately so the caller can answer with its dedicated message.
func (tv *TaskValidator) ValidateForUpdate(patch domain.TaskPatch) error {
	validationError := NewValidationError()

	if patch.TaskText != nil && !tv.validator.IsNonEmptyString(*patch.TaskText) {
		validationError.AddRequiredError("task_text", LocationBody, "Task text cannot be empty")
	}

	return validationError.OrNil()
}
