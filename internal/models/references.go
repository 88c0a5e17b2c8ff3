package models

// ReferencesModel carries the dimension values that give response rows their
// context, so clients can resolve filters without extra requests.
type ReferencesModel struct {
	Regions    []string `json:"regions"`
	Countries  []string `json:"countries"`
	Crops      []string `json:"crops"`
	Indicators []string `json:"indicators"`
}

// NewEmptyReferences creates a new empty References model with initialized empty slices
func NewEmptyReferences() ReferencesModel {
	return ReferencesModel{
		Regions:    []string{},
		Countries:  []string{},
		Crops:      []string{},
		Indicators: []string{},
	}
}
