package model

import "strings"

type ListItemsReq struct {
	Status string `query:"status" validate:"omitempty,oneof=active archived"`
	Prefix string `query:"prefix" validate:"omitempty,max=100"`
	Limit  int64  `query:"limit" validate:"gte=0"`
	Offset int64  `query:"offset" validate:"gte=0"`
}

func (r *ListItemsReq) Validate() error {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	r.Prefix = strings.TrimSpace(r.Prefix)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}

	if r.Limit == 0 {
		r.Limit = DefaultListLimit
	}
	if r.Limit > MaxListLimit {
		r.Limit = MaxListLimit
	}
	return nil
}

func (r *ListItemsReq) Filter() ItemFilter {
	return ItemFilter{
		Status:     r.Status,
		NamePrefix: r.Prefix,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
}
