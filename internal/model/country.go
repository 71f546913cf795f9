package model

// Country is a place where a credential is relevant (UK, Hong Kong, ...).
type Country struct {
	ID   string `json:"_id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

func (c *Country) GetID() string   { return c.ID }
func (c *Country) SetID(id string) { c.ID = id }

// CountryCreate is the create request body. Required keys must be present but
// may hold empty strings.
type CountryCreate struct {
	ID   string  `json:"_id"`
	Name *string `json:"name" validate:"required"`
}

func (d CountryCreate) Record() *Country {
	return &Country{ID: d.ID, Name: value(d.Name)}
}

// CountryUpdate is the partial form of Country.
type CountryUpdate struct {
	Name *string `json:"name"`
}

func (u CountryUpdate) Fields() map[string]any {
	m := map[string]any{}
	setString(m, "name", u.Name)
	return m
}
