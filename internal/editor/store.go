// Package editor holds the single mutable resume document of an edit
// session and the fixed set of actions that change it.
package editor

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"resume-builder/internal/domain"
)

// Section keys accepted by ReorderSection.
const (
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// Store owns one document. Every action takes the lock for its whole
// duration so readers never observe a half-applied change.
type Store struct {
	mu    sync.Mutex
	doc   domain.ResumeDocument
	used  map[string]struct{}
	newID func() string
}

// NewStore hydrates a store from doc. Entry ids already present in doc are
// reserved so freshly generated ids never collide with them.
func NewStore(doc domain.ResumeDocument) *Store {
	s := &Store{doc: doc.Clone(), used: map[string]struct{}{}, newID: uuid.NewString}
	s.reserve()
	return s
}

// reserve marks every entry id of the current document as used.
func (s *Store) reserve() {
	for _, e := range s.doc.Experience {
		s.used[e.ID] = struct{}{}
	}
	for _, e := range s.doc.Education {
		s.used[e.ID] = struct{}{}
	}
	for _, e := range s.doc.Skills {
		s.used[e.ID] = struct{}{}
	}
	for _, e := range s.doc.Projects {
		s.used[e.ID] = struct{}{}
	}
	for _, e := range s.doc.Certifications {
		s.used[e.ID] = struct{}{}
	}
}

// Document returns a deep copy of the current document.
func (s *Store) Document() domain.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// SetFields replaces every top-level field carried by p. Entry ids brought
// in by p are reserved like those present at hydration.
func (s *Store) SetFields(p domain.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = p.Apply(s.doc)
	s.reserve()
}

// UpdatePersonalDetail sets one personal details field. The value is stored
// as given; validation is left to the caller.
func (s *Store) UpdatePersonalDetail(field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	pd := s.doc.PersonalDetails
	if err := domain.SetField(&pd, field, value); err != nil {
		return err
	}
	s.doc.PersonalDetails = pd
	return nil
}

// id returns an identifier never handed out before by this store.
func (s *Store) id() string {
	for {
		id := s.newID()
		if _, taken := s.used[id]; !taken {
			s.used[id] = struct{}{}
			return id
		}
	}
}

func (s *Store) AddExperience() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.doc.Experience = append(s.doc.Experience, domain.ExperienceEntry{ID: id, Enabled: true})
	return id
}

func (s *Store) AddEducation() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.doc.Education = append(s.doc.Education, domain.EducationEntry{ID: id, Enabled: true})
	return id
}

func (s *Store) AddSkill() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.doc.Skills = append(s.doc.Skills, domain.SkillCategory{ID: id, Items: []string{}, Enabled: true})
	return id
}

func (s *Store) AddProject() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.doc.Projects = append(s.doc.Projects, domain.ProjectEntry{ID: id, Technologies: []string{}, Enabled: true})
	return id
}

func (s *Store) AddCertification() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	s.doc.Certifications = append(s.doc.Certifications, domain.CertificationEntry{ID: id, Enabled: true})
	return id
}

// Update* replace exactly one field of the entry with the given id. A
// missing id leaves the document unchanged and is not an error; an unknown
// field or a value of the wrong type is.

func (s *Store) UpdateExperience(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateEntry(s.doc.Experience, id, func(e domain.ExperienceEntry) string { return e.ID }, field, value)
}

func (s *Store) UpdateEducation(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateEntry(s.doc.Education, id, func(e domain.EducationEntry) string { return e.ID }, field, value)
}

func (s *Store) UpdateSkill(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateEntry(s.doc.Skills, id, func(e domain.SkillCategory) string { return e.ID }, field, value)
}

func (s *Store) UpdateProject(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateEntry(s.doc.Projects, id, func(e domain.ProjectEntry) string { return e.ID }, field, value)
}

func (s *Store) UpdateCertification(id, field string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return updateEntry(s.doc.Certifications, id, func(e domain.CertificationEntry) string { return e.ID }, field, value)
}

func (s *Store) RemoveExperience(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Experience = removeEntry(s.doc.Experience, id, func(e domain.ExperienceEntry) string { return e.ID })
}

func (s *Store) RemoveEducation(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Education = removeEntry(s.doc.Education, id, func(e domain.EducationEntry) string { return e.ID })
}

func (s *Store) RemoveSkill(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Skills = removeEntry(s.doc.Skills, id, func(e domain.SkillCategory) string { return e.ID })
}

func (s *Store) RemoveProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Projects = removeEntry(s.doc.Projects, id, func(e domain.ProjectEntry) string { return e.ID })
}

func (s *Store) RemoveCertification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Certifications = removeEntry(s.doc.Certifications, id, func(e domain.CertificationEntry) string { return e.ID })
}

// ReorderSection rearranges a collection into the order of ids. ids must be
// a permutation of the section's current ids; otherwise the document is left
// unchanged and ErrInvalidPermutation is returned.
func (s *Store) ReorderSection(section string, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	switch section {
	case SectionExperience:
		s.doc.Experience, err = reorder(s.doc.Experience, ids, func(e domain.ExperienceEntry) string { return e.ID })
	case SectionEducation:
		s.doc.Education, err = reorder(s.doc.Education, ids, func(e domain.EducationEntry) string { return e.ID })
	case SectionSkills:
		s.doc.Skills, err = reorder(s.doc.Skills, ids, func(e domain.SkillCategory) string { return e.ID })
	case SectionProjects:
		s.doc.Projects, err = reorder(s.doc.Projects, ids, func(e domain.ProjectEntry) string { return e.ID })
	case SectionCertifications:
		s.doc.Certifications, err = reorder(s.doc.Certifications, ids, func(e domain.CertificationEntry) string { return e.ID })
	default:
		return fmt.Errorf("%w: section %q", domain.ErrUnknownField, section)
	}
	return err
}

func updateEntry[T any](items []T, id string, idOf func(T) string, field string, value any) error {
	for i := range items {
		if idOf(items[i]) != id {
			continue
		}
		next := items[i]
		if err := domain.SetField(&next, field, value); err != nil {
			return err
		}
		items[i] = next
		return nil
	}
	return nil
}

func removeEntry[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if idOf(it) != id {
			out = append(out, it)
		}
	}
	return out
}

// reorder returns items unchanged alongside an error when ids is not a
// permutation of the current ids.
func reorder[T any](items []T, ids []string, idOf func(T) string) ([]T, error) {
	if len(ids) != len(items) {
		return items, fmt.Errorf("%w: got %d ids for %d entries", domain.ErrInvalidPermutation, len(ids), len(items))
	}
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[idOf(it)] = it
	}
	out := make([]T, 0, len(items))
	for _, id := range ids {
		it, ok := byID[id]
		if !ok {
			return items, fmt.Errorf("%w: unknown or repeated id %q", domain.ErrInvalidPermutation, id)
		}
		delete(byID, id)
		out = append(out, it)
	}
	return out, nil
}
