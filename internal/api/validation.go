package api

import "realty-api/internal/validation"

func validateStruct(payload any) error {
	return validation.Struct(payload)
}
