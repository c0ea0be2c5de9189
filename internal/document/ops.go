// Package document holds the pure operations on a resume document:
// field and list mutations, the completeness score and schema validation.
// Nothing in this package performs I/O.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"resumebuilder/internal/model"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownField    = errors.New("unknown personal info field")
	ErrBlankSkill      = errors.New("skill must not be blank")
)

// Section names a list field of a resume document.
type Section string

const (
	SectionExperience   Section = "experience"
	SectionEducation    Section = "education"
	SectionSkills       Section = "skills"
	SectionProjects     Section = "projects"
	SectionCertificates Section = "certificates"
	SectionAchievements Section = "achievements"
	SectionLinks        Section = "links"
)

// Sections lists every list field in render order.
var Sections = []Section{
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertificates,
	SectionAchievements,
	SectionLinks,
}

// ParseSection validates a section name.
func ParseSection(s string) (Section, error) {
	for _, sec := range Sections {
		if string(sec) == s {
			return sec, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
}

// Append returns a new slice with item added at the end.
func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// Update returns a new slice with the element at i replaced.
func Update[T any](items []T, i int, item T) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(items))
	}
	out := append([]T{}, items...)
	out[i] = item
	return out, nil
}

// Remove returns a new slice without the element at i. The order of the
// remaining elements is preserved.
func Remove[T any](items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(items))
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), nil
}

// ReplacePersonalInfo returns a copy of d with the whole header replaced.
func ReplacePersonalInfo(d model.ResumeDocument, info model.PersonalInfo) model.ResumeDocument {
	out := d.Clone()
	out.PersonalInfo = info
	return out
}

// SetPersonalField returns a copy of d with a single header field replaced.
// Field names follow the wire format (name, email, phone, address, title, summary).
func SetPersonalField(d model.ResumeDocument, field, value string) (model.ResumeDocument, error) {
	out := d.Clone()
	p := &out.PersonalInfo
	switch field {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "phone":
		p.Phone = value
	case "address":
		p.Address = value
	case "title":
		p.Title = value
	case "summary":
		p.Summary = value
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}

// AppendItem decodes raw into the record type of section and appends it.
// An empty raw payload appends a blank record.
func AppendItem(d model.ResumeDocument, section Section, raw json.RawMessage) (model.ResumeDocument, error) {
	out := d.Clone()
	var err error
	switch section {
	case SectionExperience:
		out.Experience, err = appendRaw(out.Experience, raw)
	case SectionEducation:
		out.Education, err = appendRaw(out.Education, raw)
	case SectionSkills:
		var skill string
		if skill, err = decodeSkill(raw); err == nil {
			out.Skills = Append(out.Skills, skill)
		}
	case SectionProjects:
		out.Projects, err = appendRaw(out.Projects, raw)
	case SectionCertificates:
		out.Certificates, err = appendRaw(out.Certificates, raw)
	case SectionAchievements:
		out.Achievements, err = appendRaw(out.Achievements, raw)
	case SectionLinks:
		out.Links, err = appendRaw(out.Links, raw)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if err != nil {
		return d, err
	}
	return out, nil
}

// UpdateItem decodes raw into the record type of section and replaces index i.
func UpdateItem(d model.ResumeDocument, section Section, i int, raw json.RawMessage) (model.ResumeDocument, error) {
	out := d.Clone()
	var err error
	switch section {
	case SectionExperience:
		out.Experience, err = updateRaw(out.Experience, i, raw)
	case SectionEducation:
		out.Education, err = updateRaw(out.Education, i, raw)
	case SectionSkills:
		var skill string
		if skill, err = decodeSkill(raw); err == nil {
			out.Skills, err = Update(out.Skills, i, skill)
		}
	case SectionProjects:
		out.Projects, err = updateRaw(out.Projects, i, raw)
	case SectionCertificates:
		out.Certificates, err = updateRaw(out.Certificates, i, raw)
	case SectionAchievements:
		out.Achievements, err = updateRaw(out.Achievements, i, raw)
	case SectionLinks:
		out.Links, err = updateRaw(out.Links, i, raw)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if err != nil {
		return d, err
	}
	return out, nil
}

// RemoveItem drops index i from section.
func RemoveItem(d model.ResumeDocument, section Section, i int) (model.ResumeDocument, error) {
	out := d.Clone()
	var err error
	switch section {
	case SectionExperience:
		out.Experience, err = Remove(out.Experience, i)
	case SectionEducation:
		out.Education, err = Remove(out.Education, i)
	case SectionSkills:
		out.Skills, err = Remove(out.Skills, i)
	case SectionProjects:
		out.Projects, err = Remove(out.Projects, i)
	case SectionCertificates:
		out.Certificates, err = Remove(out.Certificates, i)
	case SectionAchievements:
		out.Achievements, err = Remove(out.Achievements, i)
	case SectionLinks:
		out.Links, err = Remove(out.Links, i)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
	if err != nil {
		return d, err
	}
	return out, nil
}

func decodeItem[T any](raw json.RawMessage) (T, error) {
	var item T
	if len(raw) == 0 {
		return item, nil
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, fmt.Errorf("decode %T: %w", item, err)
	}
	return item, nil
}

// decodeSkill trims the skill and rejects blank input. Skills already stored
// blank stay as they are; only new edits are checked.
func decodeSkill(raw json.RawMessage) (string, error) {
	skill, err := decodeItem[string](raw)
	if err != nil {
		return "", err
	}
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return "", ErrBlankSkill
	}
	return skill, nil
}

func appendRaw[T any](items []T, raw json.RawMessage) ([]T, error) {
	item, err := decodeItem[T](raw)
	if err != nil {
		return nil, err
	}
	return Append(items, item), nil
}

func updateRaw[T any](items []T, i int, raw json.RawMessage) ([]T, error) {
	item, err := decodeItem[T](raw)
	if err != nil {
		return nil, err
	}
	return Update(items, i, item)
}
