package dto

type CompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
}
