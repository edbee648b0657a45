package dto

import (
	"hotelier/internal/domains/staff/model"
	"hotelier/shared"
)

type CreateStaffRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Position    string `json:"position"     validate:"required,max=100"`
	Department  string `json:"department"   validate:"required,max=100"`
	ContactInfo string `json:"contact_info" validate:"omitempty,max=100"`
	Image       string `json:"image"        validate:"omitempty,url"`
}

func (c *CreateStaffRequest) ToModel() model.Staff {
	return model.Staff{
		Name:        c.Name,
		Position:    c.Position,
		Department:  c.Department,
		ContactInfo: c.ContactInfo,
		Image:       c.Image,
	}
}

// UpdateStaffRequest carries a full replacement record.
type UpdateStaffRequest struct {
	Name        string `json:"name"         validate:"required,max=100"`
	Position    string `json:"position"     validate:"required,max=100"`
	Department  string `json:"department"   validate:"required,max=100"`
	ContactInfo string `json:"contact_info" validate:"omitempty,max=100"`
	Image       string `json:"image"        validate:"omitempty,url"`
}

func (u *UpdateStaffRequest) ToModel(id int) model.Staff {
	return model.Staff{
		ID:          id,
		Name:        u.Name,
		Position:    u.Position,
		Department:  u.Department,
		ContactInfo: u.ContactInfo,
		Image:       u.Image,
	}
}

// StaffFilter narrows list reads; zero values mean "no constraint".
type StaffFilter struct {
	Department string
	Search     string
}

type StaffResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Department  string `json:"department"`
	ContactInfo string `json:"contact_info"`
	Image       string `json:"image"`
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.Name = model.Name
	r.Position = model.Position
	r.Department = model.Department
	r.ContactInfo = model.ContactInfo
	r.Image = model.Image
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
