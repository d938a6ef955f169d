package model

import "strings"

type CreateItemReq struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=500"`
	Quantity    int64  `json:"quantity" validate:"gte=0"`
	Status      string `json:"status" validate:"omitempty,oneof=active archived"`
}

func (r *CreateItemReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
