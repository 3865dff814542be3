package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=200"`
	Representative    string `json:"representative" validate:"omitempty,max=200"`
	Phone             string `json:"phone"`
	Email             string `json:"email" validate:"omitempty,email"`
	Address           string `json:"address"`
	LegalName         string `json:"legal_name" validate:"omitempty,max=200"`
	ManagementEnabled bool   `json:"management_enabled"`
	ProductsEnabled   bool   `json:"products_enabled"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=1,max=200"`
	Representative    *string `json:"representative" validate:"omitempty,max=200"`
	Phone             *string `json:"phone"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Address           *string `json:"address"`
	LegalName         *string `json:"legal_name" validate:"omitempty,max=200"`
	ManagementEnabled *bool   `json:"management_enabled"`
	ProductsEnabled   *bool   `json:"products_enabled"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Representative    string    `json:"representative"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	Address           string    `json:"address"`
	LegalName         string    `json:"legal_name"`
	ManagementEnabled bool      `json:"management_enabled"`
	ProductsEnabled   bool      `json:"products_enabled"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// SelectCompanyRequest selección de empresa de trabajo de la sesión (master/admin).
type SelectCompanyRequest struct {
	CompanyID string `json:"company_id" validate:"required,uuid"`
}

// SelectedCompanyResponse empresa seleccionada en la sesión; vacío = todas.
type SelectedCompanyResponse struct {
	CompanyID string           `json:"company_id"`
	Company   *CompanyResponse `json:"company,omitempty"`
}
