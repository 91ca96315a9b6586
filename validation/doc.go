// Package validation validates request structs with go-playground/validator
// struct tags and reports failures as 400 AppErrors.
//
//	type transcribeForm struct {
//	    Language string `json:"language" validate:"required,min=2,max=16"`
//	}
//	if err := validation.Validate(form); err != nil {
//	    return err // *errors.AppError, INVALID_INPUT
//	}
package validation
