package model

const (
	EntityName = "staff"

	FieldID         = "id"
	FieldName       = "name"
	FieldDepartment = "department"
)

type Staff struct {
	ID          int
	Name        string
	Position    string
	Department  string
	ContactInfo string
	Image       string
}

func (s Staff) Identity() int {
	return s.ID
}

func (s Staff) WithIdentity(id int) Staff {
	s.ID = id

	return s
}

func (s Staff) Clone() Staff {
	return s
}
