package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYMDDate(t *testing.T) {
	v := NewValidator().GetValidate()

	type query struct {
		Date string `validate:"omitempty,ymd_date"`
	}

	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{"empty is allowed", "", true},
		{"valid date", "20260815", true},
		{"leap day", "20240229", true},
		{"dashed format", "2026-08-15", false},
		{"too short", "2026815", false},
		{"month out of range", "20261301", false},
		{"day out of range", "20260832", false},
		{"not a number", "2026081x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(query{Date: tt.date})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestCategoryList(t *testing.T) {
	v := NewValidator().GetValidate()

	type query struct {
		Cats string `validate:"required,category_list"`
	}

	tests := []struct {
		name  string
		cats  string
		valid bool
	}{
		{"single id", "7", true},
		{"multiple ids", "7,12,34", true},
		{"whitespace tolerated", "7, 12", true},
		{"trailing comma tolerated", "7,12,", true},
		{"empty rejected", "", false},
		{"only commas rejected", ",,", false},
		{"letters rejected", "7,abc", false},
		{"negative rejected", "-7", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(query{Cats: tt.cats})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
