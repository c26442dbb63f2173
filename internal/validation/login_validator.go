package validation

// LoginValidator validates login requests
type LoginValidator struct {
	validator *Validator
}

// NewLoginValidator creates a new login validator
func NewLoginValidator() *LoginValidator {
	return &LoginValidator{
		validator: NewValidator(),
	}
}

// Validate checks that both credentials are present. Whether they match a
// stored account is decided later; this only guards the request shape.
func (lv *LoginValidator) Validate(username, password string) error {
	validationError := NewValidationError()

	if !lv.validator.IsNonEmptyString(username) {
		validationError.AddRequiredError("username", LocationBody, "Username is required")
	}

	if !lv.validator.IsNonEmptyString(password) {
		validationError.AddRequiredError("password", LocationBody, "Password is required")
	}

	return validationError.OrNil()
}
