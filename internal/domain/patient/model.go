package patient

import (
	"fmt"
	"net/mail"
)

// Patient is a flat demo record. It deliberately carries none of the
// structure a real clinical record would.
type Patient struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Age        *int     `json:"age"`
	Conditions []string `json:"conditions"`
}

// CreateInput carries the fields a caller supplies when creating a patient.
type CreateInput struct {
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	Email      string   `json:"email"`
	Age        *int     `json:"age"`
	Conditions []string `json:"conditions"`
}

// Validate enforces the structural constraints of the input boundary.
func (in *CreateInput) Validate() error {
	if in.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if in.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if err := validateEmail(in.Email); err != nil {
		return err
	}
	if in.Age != nil && *in.Age < 0 {
		return fmt.Errorf("age must be >= 0")
	}
	return nil
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	FirstName  *string   `json:"first_name"`
	LastName   *string   `json:"last_name"`
	Email      *string   `json:"email"`
	Age        *int      `json:"age"`
	Conditions *[]string `json:"conditions"`
}

func (in *UpdateInput) Validate() error {
	if in.FirstName != nil && *in.FirstName == "" {
		return fmt.Errorf("first_name must not be empty")
	}
	if in.LastName != nil && *in.LastName == "" {
		return fmt.Errorf("last_name must not be empty")
	}
	if in.Email != nil {
		if err := validateEmail(*in.Email); err != nil {
			return err
		}
	}
	if in.Age != nil && *in.Age < 0 {
		return fmt.Errorf("age must be >= 0")
	}
	return nil
}

func validateEmail(s string) error {
	if s == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("email %q is not a valid address", s)
	}
	return nil
}
