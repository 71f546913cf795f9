package model

// Credential is a single login.
//
// Country and Area hold the id or name of a Country/Area record; the reference is
// not checked. A non-empty LoginOverride names an email address whose credential
// can be used to log in to this site instead.
type Credential struct {
	ID                string            `json:"_id" bson:"_id"`
	Username          string            `json:"username" bson:"username"`
	Email             string            `json:"email" bson:"email"`
	Password          string            `json:"password" bson:"password"`
	Country           string            `json:"country" bson:"country"`
	Area              string            `json:"area" bson:"area"`
	LoginOverride     string            `json:"login_override" bson:"login_override"`
	PersonalDetails   map[string]string `json:"personal_details" bson:"personal_details"`
	SecurityQuestions map[string]string `json:"security_questions" bson:"security_questions"`
}

func (c *Credential) GetID() string   { return c.ID }
func (c *Credential) SetID(id string) { c.ID = id }

// CredentialCreate is the create request body. login_override may be omitted.
type CredentialCreate struct {
	ID                string             `json:"_id"`
	Username          *string            `json:"username" validate:"required"`
	Email             *string            `json:"email" validate:"required"`
	Password          *string            `json:"password" validate:"required"`
	Country           *string            `json:"country" validate:"required"`
	Area              *string            `json:"area" validate:"required"`
	LoginOverride     *string            `json:"login_override"`
	PersonalDetails   *map[string]string `json:"personal_details" validate:"required"`
	SecurityQuestions *map[string]string `json:"security_questions" validate:"required"`
}

func (d CredentialCreate) Record() *Credential {
	return &Credential{
		ID:                d.ID,
		Username:          value(d.Username),
		Email:             value(d.Email),
		Password:          value(d.Password),
		Country:           value(d.Country),
		Area:              value(d.Area),
		LoginOverride:     value(d.LoginOverride),
		PersonalDetails:   mapValue(d.PersonalDetails),
		SecurityQuestions: mapValue(d.SecurityQuestions),
	}
}

// CredentialUpdate is the partial form of Credential.
type CredentialUpdate struct {
	Username          *string            `json:"username"`
	Email             *string            `json:"email"`
	Password          *string            `json:"password"`
	Country           *string            `json:"country"`
	Area              *string            `json:"area"`
	LoginOverride     *string            `json:"login_override"`
	PersonalDetails   *map[string]string `json:"personal_details"`
	SecurityQuestions *map[string]string `json:"security_questions"`
}

func (u CredentialUpdate) Fields() map[string]any {
	m := map[string]any{}
	setString(m, "username", u.Username)
	setString(m, "email", u.Email)
	setString(m, "password", u.Password)
	setString(m, "country", u.Country)
	setString(m, "area", u.Area)
	setString(m, "login_override", u.LoginOverride)
	setMap(m, "personal_details", u.PersonalDetails)
	setMap(m, "security_questions", u.SecurityQuestions)
	return m
}
