package editor

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skills(ids ...string) []types.Skill {
	out := make([]types.Skill, len(ids))
	for i, id := range ids {
		out[i] = types.Skill{ID: id, Name: "skill-" + id}
	}
	return out
}

func skillIDs(items []types.Skill) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.ID
	}
	return out
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.NotEqual(t, a, b)
	_, err := uuid.Parse(a)
	assert.NoError(t, err)
}

func TestBlankConstructors(t *testing.T) {
	assert.Equal(t, []string{""}, NewExperience().Bullets)
	assert.Equal(t, []string{""}, NewEducation().Bullets)
	assert.Equal(t, []string{""}, NewProject().Bullets)
	assert.Equal(t, []string{""}, NewVolunteering().Bullets)
	assert.NotEmpty(t, NewCertification().ID)
	assert.NotNil(t, NewCustomSection("Hobbies").Items)
	assert.Equal(t, "Go", NewSkill("Go").Name)
}

func TestAppend_DoesNotAliasInput(t *testing.T) {
	base := make([]types.Skill, 1, 4)
	base[0] = types.Skill{ID: "a"}

	first := Append(base, types.Skill{ID: "b"})
	second := Append(base, types.Skill{ID: "c"})

	assert.Equal(t, []string{"a", "b"}, skillIDs(first))
	assert.Equal(t, []string{"a", "c"}, skillIDs(second))
	assert.Len(t, base, 1)
}

func TestUpdate(t *testing.T) {
	items := skills("a", "b")

	got := Update(items, "b", func(s types.Skill) types.Skill {
		s.Name = "Go"
		return s
	})
	assert.Equal(t, "Go", got[1].Name)
	assert.Equal(t, "skill-b", items[1].Name)

	unchanged := Update(items, "zzz", func(s types.Skill) types.Skill {
		s.Name = "never"
		return s
	})
	assert.Equal(t, items, unchanged)
}

func TestRemove(t *testing.T) {
	items := skills("a", "b", "c")
	assert.Equal(t, []string{"a", "c"}, skillIDs(Remove(items, "b")))
	assert.Equal(t, []string{"a", "b", "c"}, skillIDs(Remove(items, "zzz")))
	assert.Equal(t, []string{"a", "b", "c"}, skillIDs(items))
}

func TestMove(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		delta int
		want  []string
	}{
		{name: "down one", id: "a", delta: 1, want: []string{"b", "a", "c", "d"}},
		{name: "up one", id: "c", delta: -1, want: []string{"a", "c", "b", "d"}},
		{name: "to end", id: "b", delta: 2, want: []string{"a", "c", "d", "b"}},
		{name: "clamped past end", id: "a", delta: 10, want: []string{"b", "c", "d", "a"}},
		{name: "clamped past start", id: "d", delta: -10, want: []string{"d", "a", "b", "c"}},
		{name: "zero delta", id: "b", delta: 0, want: []string{"a", "b", "c", "d"}},
		{name: "unknown id", id: "x", delta: 1, want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := skills("a", "b", "c", "d")
			got := Move(items, tt.id, tt.delta)
			assert.Equal(t, tt.want, skillIDs(got))
			assert.Equal(t, []string{"a", "b", "c", "d"}, skillIDs(items))
		})
	}
}

func TestBullets(t *testing.T) {
	exp := types.Experience{ID: "e", Bullets: []string{"one", "two"}}

	added := AddBullet(exp)
	assert.Equal(t, []string{"one", "two", ""}, added.Bullets)

	set := SetBullet(exp, 1, "TWO")
	assert.Equal(t, []string{"one", "TWO"}, set.Bullets)
	assert.Equal(t, []string{"one", "two"}, exp.Bullets)

	assert.Equal(t, []string{"one", "two"}, SetBullet(exp, 5, "x").Bullets)
	assert.Equal(t, []string{"one", "two"}, SetBullet(exp, -1, "x").Bullets)

	removed := RemoveBullet(exp, 0)
	assert.Equal(t, []string{"two"}, removed.Bullets)
	assert.Equal(t, []string{"one", "two"}, exp.Bullets)

	assert.Equal(t, []string{"two"}, RemoveBullet(removed, 0).Bullets, "last bullet is kept")
	assert.Equal(t, []string{"one", "two"}, RemoveBullet(exp, 9).Bullets)
}

func TestMoveSection(t *testing.T) {
	registry := types.DefaultSections()

	got := MoveSection(registry, "skills", -2)

	order := make([]string, len(got))
	for i, s := range got {
		order[i] = s.ID
		assert.Equal(t, i, s.Order)
	}
	assert.Equal(t, []string{
		"personalInfo", "summary", "skills", "experience", "education", "projects",
		"certifications", "languages", "achievements", "volunteering", "publications", "references",
	}, order)
	assert.Equal(t, types.DefaultSections(), registry)
}

func TestMoveSection_RenumbersSparseOrders(t *testing.T) {
	registry := []types.Section{
		{ID: "b", Order: 20},
		{ID: "a", Order: 10},
		{ID: "c", Order: 30},
	}

	got := MoveSection(registry, "missing", 1)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, 0, got[0].Order)
	assert.Equal(t, "c", got[2].ID)
	assert.Equal(t, 2, got[2].Order)
}

func TestMoveSection_ThenReduce(t *testing.T) {
	doc := types.DefaultDocument()
	next := store.Reduce(doc, store.ReplaceSections{Sections: MoveSection(doc.Sections, "languages", -100)})

	s, ok := types.FindSection(next.Sections, "languages")
	require.True(t, ok)
	assert.Equal(t, 0, s.Order)
}
