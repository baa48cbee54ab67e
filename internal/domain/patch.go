package domain

import (
	"encoding/json"
	"fmt"
)

// Patch is a top-level partial document. Every non-nil field replaces the
// corresponding document field as a whole; nested values are never merged.
type Patch struct {
	Title           *string               `json:"title,omitempty"`
	TemplateID      *string               `json:"templateId,omitempty"`
	Design          *Design               `json:"design,omitempty"`
	PersonalDetails *PersonalDetails      `json:"personalDetails,omitempty"`
	Summary         *Summary              `json:"summary,omitempty"`
	Experience      *[]ExperienceEntry    `json:"experience,omitempty"`
	Education       *[]EducationEntry     `json:"education,omitempty"`
	Skills          *[]SkillCategory      `json:"skills,omitempty"`
	Projects        *[]ProjectEntry       `json:"projects,omitempty"`
	Certifications  *[]CertificationEntry `json:"certifications,omitempty"`
}

// Empty reports whether the patch carries no field.
func (p Patch) Empty() bool {
	return p.Title == nil && p.TemplateID == nil && p.Design == nil &&
		p.PersonalDetails == nil && p.Summary == nil && p.Experience == nil &&
		p.Education == nil && p.Skills == nil && p.Projects == nil && p.Certifications == nil
}

// Apply returns d with the patch fields replaced.
func (p Patch) Apply(d ResumeDocument) ResumeDocument {
	out := d.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.TemplateID != nil {
		out.TemplateID = *p.TemplateID
	}
	if p.Design != nil {
		out.Design = *p.Design
	}
	if p.PersonalDetails != nil {
		out.PersonalDetails = *p.PersonalDetails
	}
	if p.Summary != nil {
		out.Summary = *p.Summary
	}
	if p.Experience != nil {
		out.Experience = append([]ExperienceEntry{}, *p.Experience...)
	}
	if p.Education != nil {
		out.Education = append([]EducationEntry{}, *p.Education...)
	}
	if p.Skills != nil {
		out.Skills = append([]SkillCategory{}, *p.Skills...)
	}
	if p.Projects != nil {
		out.Projects = append([]ProjectEntry{}, *p.Projects...)
	}
	if p.Certifications != nil {
		out.Certifications = append([]CertificationEntry{}, *p.Certifications...)
	}
	return out.Clone()
}

// SetField replaces one JSON-named field of v with value. The "id" field is
// immutable. Unknown names return ErrUnknownField.
func SetField[T any](v *T, field string, value any) error {
	if field == "id" {
		return fmt.Errorf("%w: id is immutable", ErrUnknownField)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return err
	}
	if _, ok := fields[field]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	enc, err := json.Marshal(value)
	if err != nil {
		return err
	}
	fields[field] = enc
	merged, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	var next T
	if err := json.Unmarshal(merged, &next); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
	}
	*v = next
	return nil
}
