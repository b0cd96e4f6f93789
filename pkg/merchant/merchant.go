package merchant

// Profile describes a merchant account known to the dashboard.
// DisabledSections lists section IDs that are off by default for this
// merchant type; it only seeds the very first permission matrix and is
// never consulted again once overrides are persisted.
type Profile struct {
	ID               string   `yaml:"id" json:"id"`
	DisplayName      string   `yaml:"display_name" json:"display_name"`
	Owner            string   `yaml:"owner,omitempty" json:"owner,omitempty"`
	Plan             string   `yaml:"plan,omitempty" json:"plan,omitempty"`
	Tier             string   `yaml:"tier,omitempty" json:"tier,omitempty"`
	DisabledSections []string `yaml:"disabled_sections,omitempty" json:"disabled_sections,omitempty"`
}

// Disabled reports whether the section is off by default for this profile.
func (p Profile) Disabled(sectionID string) bool {
	for _, id := range p.DisabledSections {
		if id == sectionID {
			return true
		}
	}
	return false
}
