package editor

import (
	"encoding/json"
	"fmt"

	"resume-builder/internal/domain"
	"resume-builder/internal/validation"
)

// Action names accepted in a Command.
const (
	ActionSetFields            = "setFields"
	ActionUpdatePersonalDetail = "updatePersonalDetail"
	ActionReorderSection       = "reorderSection"

	ActionAddExperience    = "addExperience"
	ActionUpdateExperience = "updateExperience"
	ActionRemoveExperience = "removeExperience"

	ActionAddEducation    = "addEducation"
	ActionUpdateEducation = "updateEducation"
	ActionRemoveEducation = "removeEducation"

	ActionAddSkill    = "addSkill"
	ActionUpdateSkill = "updateSkill"
	ActionRemoveSkill = "removeSkill"

	ActionAddProject    = "addProject"
	ActionUpdateProject = "updateProject"
	ActionRemoveProject = "removeProject"

	ActionAddCertification    = "addCertification"
	ActionUpdateCertification = "updateCertification"
	ActionRemoveCertification = "removeCertification"
)

// Command is the wire form of one store action.
type Command struct {
	Action  string          `json:"action"`
	ID      string          `json:"id,omitempty"`
	Field   string          `json:"field,omitempty"`
	Value   json.RawMessage `json:"value,omitempty"`
	Section string          `json:"section,omitempty"`
	Order   []string        `json:"order,omitempty"`
}

// Outcome reports what one command produced. CreatedID is set for add
// actions.
type Outcome struct {
	Action    string `json:"action"`
	CreatedID string `json:"createdId,omitempty"`
}

// Apply runs cmds in order and stops at the first failing command. Actions
// already applied stay applied; callers that need all-or-nothing should
// apply to a store they discard on error.
func (s *Store) Apply(cmds []Command) ([]Outcome, error) {
	out := make([]Outcome, 0, len(cmds))
	for i, c := range cmds {
		o, err := s.apply(c)
		if err != nil {
			return out, fmt.Errorf("command %d (%s): %w", i, c.Action, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func (s *Store) apply(c Command) (Outcome, error) {
	o := Outcome{Action: c.Action}
	switch c.Action {
	case ActionSetFields:
		var p domain.Patch
		if err := json.Unmarshal(c.Value, &p); err != nil {
			return o, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		s.SetFields(p)
	case ActionUpdatePersonalDetail:
		var v string
		if err := json.Unmarshal(c.Value, &v); err != nil {
			return o, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		return o, s.UpdatePersonalDetail(c.Field, clampValue("personalDetails", c.Field, v).(string))
	case ActionReorderSection:
		return o, s.ReorderSection(c.Section, c.Order)

	case ActionAddExperience:
		o.CreatedID = s.AddExperience()
	case ActionAddEducation:
		o.CreatedID = s.AddEducation()
	case ActionAddSkill:
		o.CreatedID = s.AddSkill()
	case ActionAddProject:
		o.CreatedID = s.AddProject()
	case ActionAddCertification:
		o.CreatedID = s.AddCertification()

	case ActionUpdateExperience, ActionUpdateEducation, ActionUpdateSkill, ActionUpdateProject, ActionUpdateCertification:
		var v any
		if err := json.Unmarshal(c.Value, &v); err != nil {
			return o, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		switch c.Action {
		case ActionUpdateExperience:
			return o, s.UpdateExperience(c.ID, c.Field, clampValue(SectionExperience, c.Field, v))
		case ActionUpdateEducation:
			return o, s.UpdateEducation(c.ID, c.Field, clampValue(SectionEducation, c.Field, v))
		case ActionUpdateSkill:
			return o, s.UpdateSkill(c.ID, c.Field, clampValue(SectionSkills, c.Field, v))
		case ActionUpdateProject:
			return o, s.UpdateProject(c.ID, c.Field, clampValue(SectionProjects, c.Field, v))
		default:
			return o, s.UpdateCertification(c.ID, c.Field, v)
		}

	case ActionRemoveExperience:
		s.RemoveExperience(c.ID)
	case ActionRemoveEducation:
		s.RemoveEducation(c.ID)
	case ActionRemoveSkill:
		s.RemoveSkill(c.ID)
	case ActionRemoveProject:
		s.RemoveProject(c.ID)
	case ActionRemoveCertification:
		s.RemoveCertification(c.ID)
	default:
		return o, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidInput, c.Action)
	}
	return o, nil
}

// clampValue truncates string values at the field's character limit. Skill
// item lists are clamped item by item.
func clampValue(section, field string, v any) any {
	switch val := v.(type) {
	case string:
		if limit := validation.LimitFor(section, field); limit != "" {
			return validation.Clamp(limit, val)
		}
	case []any:
		if section == SectionSkills && field == "items" {
			items := make([]any, len(val))
			for i, it := range val {
				if str, ok := it.(string); ok {
					it = validation.Clamp(validation.LimitSkillItem, str)
				}
				items[i] = it
			}
			return items
		}
	}
	return v
}
