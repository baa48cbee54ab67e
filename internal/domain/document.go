package domain

import "encoding/json"

// Layout values for Design.Layout.
const (
	LayoutCompact     = "compact"
	LayoutComfortable = "comfortable"
)

// Defaults applied to a freshly created document.
const (
	DefaultTitle            = "Untitled Resume"
	DefaultTemplateID       = "modern"
	DefaultAccentColor      = "#2563EB"
	DefaultFont             = "Inter"
	DefaultSidebarTextColor = "#ffffff"
	DefaultMainTextColor    = "#1e293b"
)

// ResumeDocument is the editable resume. Its JSON form is the wire shape
// exchanged with the persistence API.
type ResumeDocument struct {
	Title           string               `json:"title"`
	TemplateID      string               `json:"templateId"`
	Design          Design               `json:"design"`
	PersonalDetails PersonalDetails      `json:"personalDetails"`
	Summary         Summary              `json:"summary"`
	Experience      []ExperienceEntry    `json:"experience"`
	Education       []EducationEntry     `json:"education"`
	Skills          []SkillCategory      `json:"skills"`
	Projects        []ProjectEntry       `json:"projects"`
	Certifications  []CertificationEntry `json:"certifications"`
}

type Design struct {
	AccentColor      string `json:"accentColor"`
	Font             string `json:"font"`
	Layout           string `json:"layout"`
	SidebarTextColor string `json:"sidebarTextColor,omitempty"`
	MainTextColor    string `json:"mainTextColor,omitempty"`
}

type PersonalDetails struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	PhotoURL string `json:"photoUrl"`
}

type Summary struct {
	Content       string `json:"content"`
	IsAIGenerated bool   `json:"isAiGenerated"`
}

// ExperienceEntry is one job. When IsCurrent is set EndDate is stale and
// must be read through End.
type ExperienceEntry struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsCurrent   bool   `json:"isCurrent"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// End returns the entry's end as a tagged value.
func (e ExperienceEntry) End() EndDate {
	if e.IsCurrent {
		return Ongoing()
	}
	return Fixed(e.EndDate)
}

type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// SkillCategory keeps items in insertion order; duplicates are allowed.
type SkillCategory struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Items   []string `json:"items"`
	Enabled bool     `json:"enabled"`
}

type ProjectEntry struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Link         string   `json:"link"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Enabled      bool     `json:"enabled"`
}

type CertificationEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Issuer  string `json:"issuer"`
	Date    string `json:"date"`
	Link    string `json:"link"`
	Enabled bool   `json:"enabled"`
}

// NewDocument returns an empty document with editor defaults.
func NewDocument() ResumeDocument {
	return ResumeDocument{
		Title:      DefaultTitle,
		TemplateID: DefaultTemplateID,
		Design: Design{
			AccentColor:      DefaultAccentColor,
			Font:             DefaultFont,
			Layout:           LayoutComfortable,
			SidebarTextColor: DefaultSidebarTextColor,
			MainTextColor:    DefaultMainTextColor,
		},
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []SkillCategory{},
		Projects:       []ProjectEntry{},
		Certifications: []CertificationEntry{},
	}
}

// Clone returns a deep copy of the document.
func (d ResumeDocument) Clone() ResumeDocument {
	out := d
	out.Experience = append([]ExperienceEntry{}, d.Experience...)
	out.Education = append([]EducationEntry{}, d.Education...)
	out.Certifications = append([]CertificationEntry{}, d.Certifications...)
	out.Skills = make([]SkillCategory, len(d.Skills))
	for i, s := range d.Skills {
		s.Items = append([]string{}, s.Items...)
		out.Skills[i] = s
	}
	out.Projects = make([]ProjectEntry, len(d.Projects))
	for i, p := range d.Projects {
		p.Technologies = append([]string{}, p.Technologies...)
		out.Projects[i] = p
	}
	return out
}

// DisplayName is the name used for exported files.
func (d ResumeDocument) DisplayName() string {
	return d.PersonalDetails.FullName
}

// Entries decoded without an "enabled" key are enabled, matching entries
// created through the editor.

func (e *ExperienceEntry) UnmarshalJSON(b []byte) error {
	type plain ExperienceEntry
	v := plain{Enabled: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = ExperienceEntry(v)
	return nil
}

func (e *EducationEntry) UnmarshalJSON(b []byte) error {
	type plain EducationEntry
	v := plain{Enabled: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = EducationEntry(v)
	return nil
}

func (e *SkillCategory) UnmarshalJSON(b []byte) error {
	type plain SkillCategory
	v := plain{Enabled: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = SkillCategory(v)
	return nil
}

func (e *ProjectEntry) UnmarshalJSON(b []byte) error {
	type plain ProjectEntry
	v := plain{Enabled: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = ProjectEntry(v)
	return nil
}

func (e *CertificationEntry) UnmarshalJSON(b []byte) error {
	type plain CertificationEntry
	v := plain{Enabled: true}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*e = CertificationEntry(v)
	return nil
}
