package validation

import (
	"fmt"
	"unicode/utf8"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"resume-builder/internal/domain"
)

// Limit names used by the editor.
const (
	LimitFullName              = "fullName"
	LimitJobTitle              = "jobTitle"
	LimitLocation              = "location"
	LimitEmail                 = "email"
	LimitPhone                 = "phone"
	LimitSummary               = "summary"
	LimitExperienceRole        = "experienceRole"
	LimitExperienceCompany     = "experienceCompany"
	LimitExperienceDescription = "experienceDescription"
	LimitEducationDegree       = "educationDegree"
	LimitEducationInstitution  = "educationInstitution"
	LimitSkillCategory         = "skillCategory"
	LimitSkillItem             = "skillItem"
	LimitProjectTitle          = "projectTitle"
	LimitProjectDescription    = "projectDescription"
)

// CharacterLimits is the maximum rune count per editor field.
var CharacterLimits = map[string]int{
	LimitFullName:              50,
	LimitJobTitle:              60,
	LimitLocation:              100,
	LimitEmail:                 254,
	LimitPhone:                 20,
	LimitSummary:               600,
	LimitExperienceRole:        80,
	LimitExperienceCompany:     80,
	LimitExperienceDescription: 800,
	LimitEducationDegree:       100,
	LimitEducationInstitution:  100,
	LimitSkillCategory:         30,
	LimitSkillItem:             30,
	LimitProjectTitle:          80,
	LimitProjectDescription:    400,
}

// Clamp truncates value to the limit for name, mirroring an input that
// ignores keystrokes past the limit. Unknown names are returned unchanged.
func Clamp(name, value string) string {
	limit, ok := CharacterLimits[name]
	if !ok || utf8.RuneCountInString(value) <= limit {
		return value
	}
	return string([]rune(value)[:limit])
}

// LimitFor maps a section field to its limit name, or "" when unlimited.
func LimitFor(section, field string) string {
	switch section + "." + field {
	case "personalDetails.fullName":
		return LimitFullName
	case "personalDetails.jobTitle":
		return LimitJobTitle
	case "personalDetails.location":
		return LimitLocation
	case "personalDetails.email":
		return LimitEmail
	case "personalDetails.phone":
		return LimitPhone
	case "summary.content":
		return LimitSummary
	case "experience.role":
		return LimitExperienceRole
	case "experience.company":
		return LimitExperienceCompany
	case "experience.description":
		return LimitExperienceDescription
	case "education.degree":
		return LimitEducationDegree
	case "education.institution":
		return LimitEducationInstitution
	case "skills.name":
		return LimitSkillCategory
	case "projects.title":
		return LimitProjectTitle
	case "projects.description":
		return LimitProjectDescription
	}
	return ""
}

// CheckLimits reports every field of doc that exceeds its character limit.
// It returns nil or an ozzo validation.Errors keyed by field path.
func CheckLimits(doc domain.ResumeDocument) error {
	errs := ozzo.Errors{}
	check := func(key, limit, value string) {
		if err := ozzo.Validate(value, ozzo.RuneLength(0, CharacterLimits[limit])); err != nil {
			errs[key] = err
		}
	}

	pd := doc.PersonalDetails
	check("personalDetails.fullName", LimitFullName, pd.FullName)
	check("personalDetails.jobTitle", LimitJobTitle, pd.JobTitle)
	check("personalDetails.location", LimitLocation, pd.Location)
	check("personalDetails.email", LimitEmail, pd.Email)
	check("personalDetails.phone", LimitPhone, pd.Phone)
	check("summary.content", LimitSummary, doc.Summary.Content)

	for i, e := range doc.Experience {
		check(fmt.Sprintf("experience[%d].role", i), LimitExperienceRole, e.Role)
		check(fmt.Sprintf("experience[%d].company", i), LimitExperienceCompany, e.Company)
		check(fmt.Sprintf("experience[%d].description", i), LimitExperienceDescription, e.Description)
	}
	for i, e := range doc.Education {
		check(fmt.Sprintf("education[%d].degree", i), LimitEducationDegree, e.Degree)
		check(fmt.Sprintf("education[%d].institution", i), LimitEducationInstitution, e.Institution)
	}
	for i, s := range doc.Skills {
		check(fmt.Sprintf("skills[%d].name", i), LimitSkillCategory, s.Name)
		for j, item := range s.Items {
			check(fmt.Sprintf("skills[%d].items[%d]", i, j), LimitSkillItem, item)
		}
	}
	for i, p := range doc.Projects {
		check(fmt.Sprintf("projects[%d].title", i), LimitProjectTitle, p.Title)
		check(fmt.Sprintf("projects[%d].description", i), LimitProjectDescription, p.Description)
	}
	return errs.Filter()
}
