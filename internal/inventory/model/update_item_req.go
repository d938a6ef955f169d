package model

import "strings"

type UpdateItemReq struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Quantity    *int64  `json:"quantity" validate:"omitempty,gte=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=active archived"`
}

func (r *UpdateItemReq) Validate() error {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}
	if r.Status != nil {
		lowered := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &lowered
	}

	if r.Name == nil && r.Description == nil && r.Quantity == nil && r.Status == nil {
		return &ErrorDetail{Code: "bad_request", Message: "No fields to update"}
	}

	// omitempty skips a dereferenced empty string, so reject it here
	if r.Name != nil && *r.Name == "" {
		return &ErrorDetail{Code: "bad_request", Message: "Name must not be empty"}
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
