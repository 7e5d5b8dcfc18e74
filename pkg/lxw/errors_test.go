package lxw

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestStrerror(t *testing.T) {
	tests := []struct {
		code Error
		want string
	}{
		{NoError, "No error."},
		{ErrNullParameterIgnored, "NULL function parameter ignored."},
		{ErrSheetnameAlreadyUsed, "Worksheet name is already in use."},
		{Error(99), "Unknown error number."},
	}
	for _, tt := range tests {
		if got := Strerror(tt.code); got != tt.want {
			t.Errorf("Strerror(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Error
	}{
		{"nil", nil, NoError},
		{"passthrough", ErrFeatureNotSupported, ErrFeatureNotSupported},
		{"wrapped code", fmt.Errorf("close: %w", ErrSheetnameLengthExceeded), ErrSheetnameLengthExceeded},
		{"permission", os.ErrPermission, ErrCreatingXlsxFile},
		{"not exist", fmt.Errorf("save: %w", os.ErrNotExist), ErrCreatingXlsxFile},
		{"sheet name", errors.New("the sheet name length exceeds the limit"), ErrInvalidSheetnameCharacter},
		{"coordinates", errors.New("invalid cell coordinates [0, 1]"), ErrWorksheetIndexOutOfRange},
		{"image", errors.New("unsupported image extension"), ErrImageDimensions},
		{"other", errors.New("something else"), ErrParameterValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
