package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/domain"
)

func TestListQueryValidator(t *testing.T) {
	lv := NewListQueryValidator()

	t.Run("empty query yields the defaults", func(t *testing.T) {
		query, err := lv.Validate(RawListQuery{})
		assert.NoError(t, err)
		assert.Equal(t, domain.DefaultPage, query.Page)
		assert.Equal(t, domain.DefaultLimit, query.Limit)
		assert.Equal(t, domain.SortByCreatedAt, query.SortBy)
		assert.Equal(t, domain.SortDesc, query.SortOrder)
	})

	t.Run("explicit parameters override the defaults", func(t *testing.T) {
		query, err := lv.Validate(RawListQuery{
			Page:      "4",
			Limit:     "25",
			SortBy:    "username",
			SortOrder: "asc",
		})
		assert.NoError(t, err)
		assert.Equal(t, 4, query.Page)
		assert.Equal(t, 25, query.Limit)
		assert.Equal(t, domain.SortByUsername, query.SortBy)
		assert.Equal(t, domain.SortAsc, query.SortOrder)
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		tests := []struct {
			name    string
			raw     RawListQuery
			field   string
			message string
		}{
			{"zero page", RawListQuery{Page: "0"}, "page", "Page must be a positive integer"},
			{"negative page", RawListQuery{Page: "-2"}, "page", "Page must be a positive integer"},
			{"non numeric page", RawListQuery{Page: "abc"}, "page", "Page must be a positive integer"},
			{"zero limit", RawListQuery{Limit: "0"}, "limit", "Limit must be between 1 and 100"},
			{"limit over the cap", RawListQuery{Limit: "101"}, "limit", "Limit must be between 1 and 100"},
			{"non numeric limit", RawListQuery{Limit: "lots"}, "limit", "Limit must be between 1 and 100"},
			{"unknown sort column", RawListQuery{SortBy: "id"}, "sortBy", "Invalid sort field"},
			{"unknown sort order", RawListQuery{SortOrder: "sideways"}, "sortOrder", "Sort order must be asc or desc"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := lv.Validate(tt.raw)
				ve := requireValidationError(t, err)
				assertFieldMessage(t, ve, tt.field, tt.message)
				assert.Equal(t, LocationQuery, ve.Errors[0].Location)
			})
		}
	})

	t.Run("limit at the cap passes", func(t *testing.T) {
		query, err := lv.Validate(RawListQuery{Limit: "100"})
		assert.NoError(t, err)
		assert.Equal(t, domain.MaxLimit, query.Limit)
	})

	t.Run("every bad parameter is reported at once", func(t *testing.T) {
		_, err := lv.Validate(RawListQuery{
			Page:      "zero",
			Limit:     "0",
			SortBy:    "nope",
			SortOrder: "maybe",
		})
		ve := requireValidationError(t, err)
		assert.Len(t, ve.Errors, 4)
	})
}

func TestLoginValidator(t *testing.T) {
	lv := NewLoginValidator()

	t.Run("both fields present passes", func(t *testing.T) {
		assert.NoError(t, lv.Validate("admin", "123"))
	})

	t.Run("missing username", func(t *testing.T) {
		ve := requireValidationError(t, lv.Validate("", "123"))
		assertFieldMessage(t, ve, "username", "Username is required")
	})

	t.Run("missing password", func(t *testing.T) {
		ve := requireValidationError(t, lv.Validate("admin", ""))
		assertFieldMessage(t, ve, "password", "Password is required")
	})

	t.Run("both missing reports both", func(t *testing.T) {
		ve := requireValidationError(t, lv.Validate("", ""))
		assert.Len(t, ve.Errors, 2)
	})
}
