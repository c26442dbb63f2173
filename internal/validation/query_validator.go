package validation

import (
	"strconv"

	"taskboard/internal/domain"
)

// RawListQuery carries the untouched query string parameters of a list
// request. Empty strings mean the parameter was absent.
type RawListQuery struct {
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}

// ListQueryValidator validates and defaults task listing parameters
type ListQueryValidator struct {
	validator *Validator
}

// NewListQueryValidator creates a new list query validator
func NewListQueryValidator() *ListQueryValidator {
	return &ListQueryValidator{
		validator: NewValidator(),
	}
}

// Validate checks every parameter against its domain and returns either a
// fully-defaulted ListQuery or a ValidationError naming each offending
// parameter. There is no partial result on failure.
func (lv *ListQueryValidator) Validate(raw RawListQuery) (domain.ListQuery, error) {
	validationError := NewValidationError()
	query := domain.NewListQuery()

	if raw.Page != "" {
		page, err := strconv.Atoi(raw.Page)
		if err != nil || page < 1 {
			validationError.AddInvalidValueError("page", LocationQuery, raw.Page, "Page must be a positive integer")
		} else {
			query.Page = page
		}
	}

	if raw.Limit != "" {
		limit, err := strconv.Atoi(raw.Limit)
		if err != nil || limit < 1 || limit > domain.MaxLimit {
			validationError.AddInvalidRangeError("limit", LocationQuery, raw.Limit, "Limit must be between 1 and 100")
		} else {
			query.Limit = limit
		}
	}

	if raw.SortBy != "" {
		if !lv.validator.IsOneOf(raw.SortBy,
			domain.SortByUsername, domain.SortByEmail, domain.SortByIsCompleted, domain.SortByCreatedAt) {
			validationError.AddInvalidValueError("sortBy", LocationQuery, raw.SortBy, "Invalid sort field")
		} else {
			query.SortBy = raw.SortBy
		}
	}

	if raw.SortOrder != "" {
		if !lv.validator.IsOneOf(raw.SortOrder, domain.SortAsc, domain.SortDesc) {
			validationError.AddInvalidValueError("sortOrder", LocationQuery, raw.SortOrder, "Sort order must be asc or desc")
		} else {
			query.SortOrder = raw.SortOrder
		}
	}

	if validationError.HasErrors() {
		return domain.ListQuery{}, validationError
	}

	return query, nil
}
