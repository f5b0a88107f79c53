package directory

import (
	"errors"
	"testing"
	"time"
)

func validForm() FormData {
	return FormData{
		FullName:    "Meera Nair",
		Gender:      GenderFemale,
		DateOfBirth: time.Date(1991, time.April, 2, 0, 0, 0, 0, time.UTC),
		State:       "Kerala",
		Active:      true,
	}
}

func TestValidateFormData_Valid(t *testing.T) {
	t.Parallel()

	if err := ValidateFormData(validForm()); err != nil {
		t.Fatalf("expected valid form, got %v", err)
	}
}

func TestValidateFormData_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*FormData)
		wantErr error
	}{
		{"blank full name", func(f *FormData) { f.FullName = "   " }, ErrFullNameRequired},
		{"unknown gender", func(f *FormData) { f.Gender = "unknown" }, ErrInvalidGender},
		{"zero date of birth", func(f *FormData) { f.DateOfBirth = time.Time{} }, ErrInvalidDateOfBirth},
		{"state outside admissible set", func(f *FormData) { f.State = "Atlantis" }, ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := validForm()
			tt.mutate(&form)
			if err := ValidateFormData(form); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAdmissibleStates(t *testing.T) {
	t.Parallel()

	for _, state := range []string{"Maharashtra", "Delhi", "Jammu and Kashmir"} {
		if !IsAdmissibleState(state) {
			t.Fatalf("expected %s to be admissible", state)
		}
	}
	if IsAdmissibleState("maharashtra") {
		t.Fatal("admissible check must be exact, not case-insensitive")
	}
}
