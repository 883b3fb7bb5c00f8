package dto

type CompanyInput struct {
	Name    string
	Contact string
}
