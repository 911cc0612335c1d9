package application

import (
	"errors"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "translation",
			value:     "hello",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "translation",
			value:     "",
			wantErr:   true,
			wantMsg:   "translation: translation is required",
		},
		{
			name:      "whitespace only",
			fieldName: "source",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "source: source path is required",
		},
		{
			name:      "unknown field keeps its name",
			fieldName: "other",
			value:     "",
			wantErr:   true,
			wantMsg:   "other: other is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Fatalf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
				if err.Error() != tt.wantMsg {
					t.Errorf("expected %q, got %q", tt.wantMsg, err.Error())
				}
			}
		})
	}
}
