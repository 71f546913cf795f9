// Package model contains the stored record shapes with their create and
// partial-update request variants. A record serves as response body and stored
// document, so every field carries matching json and bson keys.
package model

// IDField is the primary-key field name used both on the wire and in the store.
const IDField = "_id"

// Collection names, one per entity.
const (
	CollectionCredentials         = "creds"
	CollectionMailboxes           = "mailboxes"
	CollectionAreas               = "areas"
	CollectionPersonalDetailTypes = "personal_detail_type"
	CollectionCountries           = "countries"
	CollectionJobHuntCredentials  = "job_hunt_creds"
)

// Record is implemented by pointers to every stored entity.
type Record interface {
	GetID() string
	SetID(id string)
}

// Draft is implemented by every create request body. Record builds the record
// to store; absent optional keys become zero values and empty collections.
type Draft[T any] interface {
	Record() *T
}

// Patch is implemented by every update variant. Fields returns only the fields
// that were supplied, keyed by their stored name.
type Patch interface {
	Fields() map[string]any
}

// setString records v under key when the field was supplied.
func setString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

// setMap records v under key when the field was supplied. A supplied empty
// object is kept so the stored value is overwritten with an empty mapping.
func setMap(m map[string]any, key string, v *map[string]string) {
	if v != nil {
		if *v == nil {
			m[key] = map[string]string{}
			return
		}
		m[key] = *v
	}
}

func value(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// mapValue never returns nil so stored documents hold {} rather than null.
func mapValue(v *map[string]string) map[string]string {
	if v == nil || *v == nil {
		return map[string]string{}
	}
	return *v
}
