package model

// PersonalDetailType names a kind of personal detail, e.g. "Date of Birth".
type PersonalDetailType struct {
	ID     string `json:"_id" bson:"_id"`
	Detail string `json:"detail" bson:"detail"`
}

func (p *PersonalDetailType) GetID() string   { return p.ID }
func (p *PersonalDetailType) SetID(id string) { p.ID = id }

// PersonalDetailTypeCreate is the create request body.
type PersonalDetailTypeCreate struct {
	ID     string  `json:"_id"`
	Detail *string `json:"detail" validate:"required"`
}

func (d PersonalDetailTypeCreate) Record() *PersonalDetailType {
	return &PersonalDetailType{ID: d.ID, Detail: value(d.Detail)}
}

// PersonalDetailTypeUpdate is the partial form of PersonalDetailType.
type PersonalDetailTypeUpdate struct {
	Detail *string `json:"detail"`
}

func (u PersonalDetailTypeUpdate) Fields() map[string]any {
	m := map[string]any{}
	setString(m, "detail", u.Detail)
	return m
}
