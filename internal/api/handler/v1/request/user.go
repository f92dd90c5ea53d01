package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var errParentEmailRequired = errors.New("parent email required for under-18 users")

type CreateUserRequest struct {
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Email       string `json:"email,omitempty"`
	ParentEmail string `json:"parent_email,omitempty"`
}

func (req *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Age, validation.Min(0), validation.Max(120)),
		validation.Field(&req.Email, is.Email),
		validation.Field(&req.ParentEmail, is.Email),
	)
	if err != nil {
		return err
	}

	if req.Age < 18 && req.ParentEmail == "" {
		return errParentEmailRequired
	}

	return nil
}
