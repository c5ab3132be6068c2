package encoding

import "fmt"

// IdValue is one (id, value) contribution to a sparse or dense feature vector.
type IdValue struct {
	ID    int64   `json:"id"`
	Value float64 `json:"value"`
}

func (iv IdValue) String() string {
	return fmt.Sprintf("IdValue(%d, %g)", iv.ID, iv.Value)
}

// NTV is a name/term/value feature entry.
//
// Value is nil for text-only features; such entries contribute
// DefaultNTVValue when encoded.
type NTV struct {
	Name  string   `json:"name"`
	Term  string   `json:"term"`
	Value *float64 `json:"value,omitempty"`
}

// NewNTV returns an entry with an explicit value.
func NewNTV(name, term string, value float64) NTV {
	return NTV{Name: name, Term: term, Value: &value}
}

// NewTextNTV returns an entry without a numeric value.
func NewTextNTV(name, term string) NTV {
	return NTV{Name: name, Term: term}
}

// Token returns the composite vocabulary key of the entry.
func (e NTV) Token() string {
	return NTVToken(e.Name, e.Term)
}

// NTVToken returns the composite vocabulary key "name,term".
func NTVToken(name, term string) string {
	return name + "," + term
}
