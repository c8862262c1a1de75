package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/sections"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_DefaultDocument(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "show")
	assert.Contains(t, out, "CV DOCUMENT")
	assert.Contains(t, out, "John Anderson")

	assert.Equal(t, types.DefaultDocument(), stateOf(t, dir))

	// Reading never writes a snapshot.
	_, err := os.Stat(filepath.Join(dir, types.StorageKey+".json"))
	assert.True(t, os.IsNotExist(err))
}

func TestShow_Collection(t *testing.T) {
	out := mustRun(t, t.TempDir(), "show", "languages")
	assert.Contains(t, out, "LANGUAGES")
	assert.Contains(t, out, "• 1  English (Native)")
	assert.Contains(t, out, "• 2  Spanish")

	_, err := runCLI(t, t.TempDir(), "", "show", "hobbies")
	assert.ErrorIs(t, err, editor.ErrUnknownCollection)
}

func TestPersonal_PersistsAcrossInvocations(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "personal", "--full-name", "Jane Doe", "--github", "")

	doc := stateOf(t, dir)
	assert.Equal(t, "Jane Doe", doc.PersonalInfo.FullName)
	assert.Equal(t, "", doc.PersonalInfo.GitHub)
	assert.Equal(t, "john.anderson@email.com", doc.PersonalInfo.Email)

	_, err := os.Stat(filepath.Join(dir, types.StorageKey+".json"))
	assert.NoError(t, err)
}

func TestPersonal_RequiresAFlag(t *testing.T) {
	_, err := runCLI(t, t.TempDir(), "", "personal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestSummary(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "summary", "Builds reliable systems.")
	assert.Equal(t, "Builds reliable systems.", stateOf(t, dir).Summary.Content)

	_, err := runCLI(t, dir, "from stdin", "summary", "-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", stateOf(t, dir).Summary.Content)

	file := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file"), 0644))
	mustRun(t, dir, "summary", "--file", file)
	assert.Equal(t, "from file", stateOf(t, dir).Summary.Content)

	_, err = runCLI(t, dir, "", "summary")
	assert.Error(t, err)
}

func TestStyle(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "style", "--template", "two-column", "--accent", "#10b981")
	assert.Contains(t, out, "two-column")

	styles := stateOf(t, dir).Styles
	assert.Equal(t, types.TemplateTwoColumn, styles.Template)
	assert.Equal(t, "#10b981", styles.AccentColor)
	assert.Equal(t, types.FontInter, styles.FontFamily)

	_, err := runCLI(t, dir, "", "style", "--template", "fancy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid style")

	_, err = runCLI(t, dir, "", "style")
	assert.Error(t, err)

	assert.Equal(t, types.TemplateTwoColumn, stateOf(t, dir).Styles.Template)
}

func TestToggleAndMoveSection(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "toggle", "achievements")
	assert.Contains(t, out, "SECTIONS")

	achievements, ok := types.FindSection(stateOf(t, dir).Sections, "achievements")
	require.True(t, ok)
	assert.True(t, achievements.Enabled)

	mustRun(t, dir, "move-section", "skills", "up")
	var order []string
	for _, s := range sections.Ordered(stateOf(t, dir).Sections) {
		order = append(order, s.ID)
	}
	assert.Equal(t, []string{"summary", "experience", "skills", "education", "projects", "certifications", "languages", "achievements"}, order)

	mustRun(t, dir, "move-section", "skills", "--", "-5")
	assert.Equal(t, "skills", sections.Sorted(stateOf(t, dir).Sections)[0].ID)

	_, err := runCLI(t, dir, "", "toggle", "hobbies")
	assert.Error(t, err)
	_, err = runCLI(t, dir, "", "move-section", "skills", "sideways")
	assert.Error(t, err)
}

func TestCollectionCommands(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "add", "skills", `{"id":"go","name":"Go","category":"Languages"}`)
	assert.Contains(t, out, "Added skills entry go")

	skills := stateOf(t, dir).Skills
	require.Len(t, skills, 9)
	assert.Equal(t, types.Skill{ID: "go", Name: "Go", Category: "Languages"}, skills[8])

	_, err := runCLI(t, dir, "", "add", "skills", `{"id":"go","name":"Go again"}`)
	assert.ErrorIs(t, err, editor.ErrDuplicateID)

	out = mustRun(t, dir, "move", "skills", "go", "--", "-8")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "skills order: go, 1, 2"))

	mustRun(t, dir, "remove", "skills", "go")
	assert.Len(t, stateOf(t, dir).Skills, 8)

	_, err = runCLI(t, dir, "", "remove", "skills", "go")
	assert.ErrorIs(t, err, editor.ErrEntityNotFound)

	out = mustRun(t, dir, "add", "experience")
	require.Contains(t, out, "Added experience entry ")
	experience := stateOf(t, dir).Experience
	require.Len(t, experience, 3)
	assert.NotEmpty(t, experience[2].ID)
	assert.Equal(t, []string{""}, experience[2].Bullets)
}

func TestBulletCommand(t *testing.T) {
	dir := t.TempDir()

	mustRun(t, dir, "bullet", "experience", "1", "set", "0", "Rewrote the billing pipeline")
	mustRun(t, dir, "bullet", "experience", "1", "add")

	bullets := stateOf(t, dir).Experience[0].Bullets
	require.Len(t, bullets, 5)
	assert.Equal(t, "Rewrote the billing pipeline", bullets[0])
	assert.Equal(t, "", bullets[4])

	mustRun(t, dir, "bullet", "experience", "1", "remove", "4")
	assert.Len(t, stateOf(t, dir).Experience[0].Bullets, 4)

	_, err := runCLI(t, dir, "", "bullet", "skills", "1", "add")
	assert.ErrorIs(t, err, editor.ErrUnknownCollection)

	_, err = runCLI(t, dir, "", "bullet", "experience", "1", "shuffle")
	assert.Error(t, err)
}

func TestDispatch(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "dispatch", `{"type":"UPDATE_SUMMARY","payload":"Dispatched summary"}`)
	assert.Contains(t, out, "Applied UPDATE_SUMMARY")
	assert.Equal(t, "Dispatched summary", stateOf(t, dir).Summary.Content)

	out = mustRun(t, dir, "dispatch", `{"type":"SOMETHING_NEW","payload":{}}`)
	assert.Contains(t, out, "Ignored unknown action SOMETHING_NEW")
	assert.Equal(t, "Dispatched summary", stateOf(t, dir).Summary.Content)

	_, err := runCLI(t, dir, `{"type":"UPDATE_SKILLS","payload":[]}`, "dispatch", "-")
	require.NoError(t, err)
	assert.Empty(t, stateOf(t, dir).Skills)

	_, err = runCLI(t, dir, "", "dispatch", `{"payload":1}`)
	assert.Error(t, err)
}

func TestImportAndReset(t *testing.T) {
	dir := t.TempDir()

	doc := types.DefaultDocument()
	doc.PersonalInfo.FullName = "Imported Person"
	doc.Skills = []types.Skill{{ID: "a", Name: "Go"}}
	data, err := json.Marshal(doc)
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(file, data, 0644))

	out := mustRun(t, dir, "import", file)
	assert.Contains(t, out, "Imported Person")
	assert.Equal(t, doc, stateOf(t, dir))

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"personalInfo": 3}`), 0644))
	_, err = runCLI(t, dir, "", "import", bad)
	assert.Error(t, err)
	assert.Equal(t, "Imported Person", stateOf(t, dir).PersonalInfo.FullName)

	out = mustRun(t, dir, "reset", "--yes")
	assert.Contains(t, out, "CV reset")
	assert.Equal(t, types.DefaultDocument(), stateOf(t, dir))
}

func TestRender(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "render")
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))

	rendered, err := rendering.ParseSections(strings.NewReader(out))
	require.NoError(t, err)
	require.NotEmpty(t, rendered)
	assert.Equal(t, types.SectionSummary, rendered[0].Type)

	file := filepath.Join(t.TempDir(), "preview.html")
	out = mustRun(t, dir, "render", "--template", "corporate", "--out", file)
	assert.Contains(t, out, "RENDERED PAGE")
	assert.Contains(t, out, "Template: corporate")

	html, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(html), `data-template="corporate"`)

	// --template only affects the output, never the stored style.
	assert.Equal(t, types.TemplateMinimal, stateOf(t, dir).Styles.Template)
}

func TestRender_AllTemplates(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "previews")

	out := mustRun(t, t.TempDir(), "render", "--all", "--out-dir", outDir)
	for _, name := range types.TemplateNames {
		path := filepath.Join(outDir, string(name)+".html")
		assert.Contains(t, out, path)

		html, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(html), `data-template="`+string(name)+`"`)
	}

	_, err := runCLI(t, t.TempDir(), "", "render", "--all", "--template", "minimal")
	assert.Error(t, err)
}

type stubRasterizer struct{}

func (stubRasterizer) Capture(context.Context, string, string, int) ([]byte, error) {
	return []byte("\x89PNG stub"), nil
}

func (stubRasterizer) Compose(_ context.Context, png []byte, _ export.PaperSize) ([]byte, error) {
	return append([]byte("%PDF-stub "), png...), nil
}

func TestExport(t *testing.T) {
	original := newRasterizer
	newRasterizer = func(*app) export.Rasterizer { return stubRasterizer{} }
	t.Cleanup(func() { newRasterizer = original })

	dir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	mustRun(t, dir, "personal", "--full-name", "Mary Jane  Watson")
	out := mustRun(t, dir, "export", "--out-dir", outDir, "--image")

	assert.Contains(t, out, "PDF exported successfully!")
	assert.Contains(t, out, "Your CV has been downloaded.")

	pdf, err := os.ReadFile(filepath.Join(outDir, "Mary_Jane_Watson_CV.pdf"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-stub"))

	_, err = os.Stat(filepath.Join(outDir, "Mary_Jane_Watson_CV.png"))
	assert.NoError(t, err)

	_, err = runCLI(t, dir, "", "export", "--paper", "A3")
	assert.Error(t, err)
}

func TestParseDelta(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{arg: "up", want: -1},
		{arg: "down", want: 1},
		{arg: "3", want: 3},
		{arg: "-2", want: -2},
		{arg: "left", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseDelta(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBulletEdit(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		rest    []string
		want    editor.BulletEdit
		wantErr bool
	}{
		{name: "add", op: "add", want: editor.BulletEdit{Op: editor.BulletAdd}},
		{name: "set", op: "set", rest: []string{"2", "text"}, want: editor.BulletEdit{Op: editor.BulletSet, Index: 2, Text: "text"}},
		{name: "remove", op: "remove", rest: []string{"1"}, want: editor.BulletEdit{Op: editor.BulletRemove, Index: 1}},
		{name: "add with index", op: "add", rest: []string{"1"}, wantErr: true},
		{name: "set without text", op: "set", rest: []string{"1"}, wantErr: true},
		{name: "remove without index", op: "remove", wantErr: true},
		{name: "bad index", op: "remove", rest: []string{"x"}, wantErr: true},
		{name: "unknown op", op: "swap", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBulletEdit(tt.op, tt.rest)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServe_StopsWhenContextCancelled(t *testing.T) {
	original := newRasterizer
	newRasterizer = func(*app) export.Rasterizer { return stubRasterizer{} }
	t.Cleanup(func() { newRasterizer = original })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := runCLIContext(t, ctx, t.TempDir(), "", "serve", "--addr", "127.0.0.1:0")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Preview: http://127.0.0.1:0/")
}
