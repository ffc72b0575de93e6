package models

// PriestPoojaMapping links a priest to a pooja they can perform, with
// optional per-mode prices.
type PriestPoojaMapping struct {
	ID                    string   `bson:"id" json:"id"`
	PriestID              string   `bson:"priest_id" json:"priest_id"`
	PoojaID               string   `bson:"pooja_id" json:"pooja_id"`
	PriceOverrideVirtual  *float64 `bson:"price_override_virtual,omitempty" json:"price_override_virtual,omitempty"`
	PriceOverrideInPerson *float64 `bson:"price_override_in_person,omitempty" json:"price_override_in_person,omitempty"`
	PriceOverrideTemple   *float64 `bson:"price_override_temple,omitempty" json:"price_override_temple,omitempty"`
	IsActive              bool     `bson:"is_active" json:"is_active"`
	IsDeleted             bool     `bson:"is_deleted" json:"is_deleted"`
}

// PriceFor returns the override for the given service mode, if any.
func (m *PriestPoojaMapping) PriceFor(mode ServiceMode) *float64 {
	switch mode {
	case ServiceModeVirtual:
		return m.PriceOverrideVirtual
	case ServiceModeInPerson:
		return m.PriceOverrideInPerson
	case ServiceModeTemple:
		return m.PriceOverrideTemple
	}
	return nil
}
