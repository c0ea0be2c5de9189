package document

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumebuilder/internal/model"
)

func TestGenericListOps(t *testing.T) {
	items := []string{"a", "b", "c"}

	appended := Append(items, "d")
	assert.Equal(t, []string{"a", "b", "c", "d"}, appended)
	assert.Equal(t, []string{"a", "b", "c"}, items)

	updated, err := Update(items, 1, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "B", "c"}, updated)
	assert.Equal(t, "b", items[1])

	removed, err := Remove(items, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, removed)
	assert.Equal(t, []string{"a", "b", "c"}, items)

	_, err = Update(items, 3, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = Remove(items, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSetPersonalField(t *testing.T) {
	d := model.NewDraft(nil)

	tests := []struct {
		field string
		get   func(p model.PersonalInfo) string
	}{
		{"name", func(p model.PersonalInfo) string { return p.Name }},
		{"email", func(p model.PersonalInfo) string { return p.Email }},
		{"phone", func(p model.PersonalInfo) string { return p.Phone }},
		{"address", func(p model.PersonalInfo) string { return p.Address }},
		{"title", func(p model.PersonalInfo) string { return p.Title }},
		{"summary", func(p model.PersonalInfo) string { return p.Summary }},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			out, err := SetPersonalField(d, tt.field, "value")
			require.NoError(t, err)
			assert.Equal(t, "value", tt.get(out.PersonalInfo))
			assert.Empty(t, tt.get(d.PersonalInfo))
		})
	}

	_, err := SetPersonalField(d, "age", "42")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestSectionItemOps(t *testing.T) {
	d := model.NewDraft(nil)

	d, err := AppendItem(d, SectionExperience, json.RawMessage(`{"title":"First","company":"A"}`))
	require.NoError(t, err)
	d, err = AppendItem(d, SectionExperience, json.RawMessage(`{"title":"Second","company":"B"}`))
	require.NoError(t, err)
	d, err = AppendItem(d, SectionExperience, nil)
	require.NoError(t, err)
	require.Len(t, d.Experience, 3)
	assert.Equal(t, model.Experience{}, d.Experience[2])

	d, err = UpdateItem(d, SectionExperience, 2, json.RawMessage(`{"title":"Third"}`))
	require.NoError(t, err)
	assert.Equal(t, "Third", d.Experience[2].Title)

	d, err = RemoveItem(d, SectionExperience, 0)
	require.NoError(t, err)
	require.Len(t, d.Experience, 2)
	assert.Equal(t, "Second", d.Experience[0].Title)
	assert.Equal(t, "Third", d.Experience[1].Title)

	d, err = AppendItem(d, SectionSkills, json.RawMessage(`"go"`))
	require.NoError(t, err)
	d, err = AppendItem(d, SectionSkills, json.RawMessage(`"go"`))
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "go"}, d.Skills)

	d, err = AppendItem(d, SectionLinks, json.RawMessage(`{"platform":"GitHub","url":"https://github.com/ada"}`))
	require.NoError(t, err)
	assert.Equal(t, "GitHub", d.Links[0].Platform)

	d, err = AppendItem(d, SectionCertificates, json.RawMessage(`{"name":"CKA","credentialLink":"https://x"}`))
	require.NoError(t, err)
	assert.Equal(t, "https://x", d.Certificates[0].CredentialLink)
}

func TestSectionItemOps_Errors(t *testing.T) {
	d := model.NewDraft(nil)

	_, err := AppendItem(d, Section("hobbies"), nil)
	assert.ErrorIs(t, err, ErrUnknownSection)

	_, err = UpdateItem(d, SectionEducation, 0, json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = RemoveItem(d, SectionProjects, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	out, err := AppendItem(d, SectionSkills, json.RawMessage(`{"not":"a string"}`))
	assert.Error(t, err)
	assert.Empty(t, out.Skills)
}

func TestParseSection(t *testing.T) {
	for _, s := range Sections {
		got, err := ParseSection(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseSection("personal_info")
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestValidate(t *testing.T) {
	d := model.NewDraft(&model.User{FullName: "Ada", Email: "ada@example.com"})
	d.VersionName = "Resume 1"
	assert.NoError(t, Validate(d))

	var bare model.ResumeDocument
	assert.NoError(t, Validate(bare))

	d.Skills = []string{"go", ""}
	assert.NoError(t, Validate(d))

	d.VersionName = strings.Repeat("x", 201)
	err := Validate(d)
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestSkillItemOps(t *testing.T) {
	d := model.NewDraft(nil)

	d, err := AppendItem(d, SectionSkills, json.RawMessage(`"  go "`))
	require.NoError(t, err)
	assert.Equal(t, []string{"go"}, d.Skills)

	for _, raw := range []string{`""`, `"   "`, ""} {
		out, err := AppendItem(d, SectionSkills, json.RawMessage(raw))
		assert.ErrorIs(t, err, ErrBlankSkill, raw)
		assert.Equal(t, []string{"go"}, out.Skills, raw)
	}

	_, err = UpdateItem(d, SectionSkills, 0, json.RawMessage(`" \t"`))
	assert.ErrorIs(t, err, ErrBlankSkill)

	d, err = UpdateItem(d, SectionSkills, 0, json.RawMessage(`" rust"`))
	require.NoError(t, err)
	assert.Equal(t, []string{"rust"}, d.Skills)

	// A document synced with a blank skill still validates.
	d.Skills = append(d.Skills, "")
	assert.NoError(t, Validate(d))
}
