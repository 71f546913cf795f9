package service

import (
	"strings"

	"credvault/internal/model"
	"credvault/internal/repository"
)

// Lookup turns a caller-supplied key into a store filter. A resource tries its
// lookups in order and stops at the first match.
type Lookup struct {
	// Label names the key in not-found messages, e.g. "ID" or "name".
	Label string
	Match func(key string) repository.Filter
}

// ByID matches the primary key.
func ByID() Lookup {
	return ByField("ID", model.IDField)
}

// ByField matches a stored field by exact value.
func ByField(label, field string) Lookup {
	return Lookup{
		Label: label,
		Match: func(key string) repository.Filter {
			return repository.Filter{Field: field, Value: key}
		},
	}
}

func lookupLabel(lookups []Lookup) string {
	labels := make([]string, 0, len(lookups))
	for _, l := range lookups {
		labels = append(labels, l.Label)
	}
	return strings.Join(labels, "/")
}
