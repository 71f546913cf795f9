package model

// Mailbox is an email address the owner controls.
type Mailbox struct {
	ID          string `json:"_id" bson:"_id"`
	Address     string `json:"address" bson:"address"`
	Description string `json:"description" bson:"description"`
}

func (m *Mailbox) GetID() string   { return m.ID }
func (m *Mailbox) SetID(id string) { m.ID = id }

// MailboxCreate is the create request body.
type MailboxCreate struct {
	ID          string  `json:"_id"`
	Address     *string `json:"address" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

func (d MailboxCreate) Record() *Mailbox {
	return &Mailbox{ID: d.ID, Address: value(d.Address), Description: value(d.Description)}
}

// MailboxUpdate is the partial form of Mailbox.
type MailboxUpdate struct {
	Address     *string `json:"address"`
	Description *string `json:"description"`
}

func (u MailboxUpdate) Fields() map[string]any {
	m := map[string]any{}
	setString(m, "address", u.Address)
	setString(m, "description", u.Description)
	return m
}
