package model

import "time"

// Internal Representation for Repo
type Item struct {
	ID          string `json:"id,omitempty" bson:"_id,omitempty" db:"id"`
	Name        string `json:"name" bson:"name" db:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty" db:"description"`
	Quantity    int64  `json:"quantity" bson:"quantity" db:"quantity"`
	Status      string `json:"status" bson:"status" db:"status"`

	// Audit Fields
	CreatedAt time.Time  `json:"created_at" bson:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" bson:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy string     `json:"created_by,omitempty" bson:"created_by,omitempty" db:"created_by"`
	UpdatedBy string     `json:"updated_by,omitempty" bson:"updated_by,omitempty" db:"updated_by"`
	DeletedBy string     `json:"deleted_by,omitempty" bson:"deleted_by,omitempty" db:"deleted_by"`
}

type ItemFilter struct {
	Status     string
	NamePrefix string
	Limit      int64
	Offset     int64
}

// ItemUpdate carries the mutable fields of an item. Nil pointers are
// left untouched by the repository.
type ItemUpdate struct {
	Name        *string
	Description *string
	Quantity    *int64
	Status      *string
	UpdatedBy   string
}
