package models

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}
