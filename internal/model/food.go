package model

// Food represents a dish in the admin catalogue.
type Food struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Price       float64 `json:"price" db:"price"`
	Available   bool    `json:"available" db:"available"`
	Image       string  `json:"image" db:"image"`
}

// FoodDraft is what a user fills in before the server assigns an id and availability.
type FoodDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
}

// CreateFoodRequest is the payload sent to POST /foods.
type CreateFoodRequest struct {
	FoodDraft
	Available bool `json:"available"`
}

// NewCreateFoodRequest wraps a draft with availability switched on.
func NewCreateFoodRequest(draft FoodDraft) CreateFoodRequest {
	return CreateFoodRequest{FoodDraft: draft, Available: true}
}

// FoodPatch carries the fields an edit form changed. Nil fields are left untouched.
type FoodPatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Available   *bool    `json:"available,omitempty"`
	Image       *string  `json:"image,omitempty"`
}

// Apply returns a copy of base with every set field of the patch written over it.
// The id of base is always preserved.
func (p FoodPatch) Apply(base Food) Food {
	merged := base
	if p.Name != nil {
		merged.Name = *p.Name
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Price != nil {
		merged.Price = *p.Price
	}
	if p.Available != nil {
		merged.Available = *p.Available
	}
	if p.Image != nil {
		merged.Image = *p.Image
	}
	return merged
}

// IsEmpty reports whether the patch changes nothing.
func (p FoodPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Price == nil && p.Available == nil && p.Image == nil
}
