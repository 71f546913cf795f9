package model

// Area groups credentials by purpose: personal, banking, job hunting, ...
type Area struct {
	ID          string `json:"_id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

func (a *Area) GetID() string   { return a.ID }
func (a *Area) SetID(id string) { a.ID = id }

// AreaCreate is the create request body.
type AreaCreate struct {
	ID          string  `json:"_id"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (d AreaCreate) Record() *Area {
	return &Area{ID: d.ID, Name: value(d.Name), Description: value(d.Description)}
}

// AreaUpdate is the partial form of Area.
type AreaUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (u AreaUpdate) Fields() map[string]any {
	m := map[string]any{}
	setString(m, "name", u.Name)
	setString(m, "description", u.Description)
	return m
}
