package catalog

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/HendryAvila/facilistyles/internal/quiz"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- Helpers ---

// embeddedFS copies the embedded files into a MapFS so tests can break them.
func embeddedFS(t *testing.T) fstest.MapFS {
	t.Helper()
	out := fstest.MapFS{}
	for _, name := range []string{typesFile, axesFile, hintsFile, compatibilityFile} {
		data, err := embedded.ReadFile("data/" + name)
		require.NoError(t, err)
		out["data/"+name] = &fstest.MapFile{Data: data}
	}
	return out
}

// --- Load ---

func TestLoad_Embedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	assert.Len(t, c.Types(), 16)
	assert.Len(t, c.Families(), 4)
	assert.Len(t, c.Checklist(), 3)
}

func TestLoad_TotalOverAllProfiles(t *testing.T) {
	c := MustLoad()
	seen := map[string]bool{}
	for _, p := range quiz.AllProfiles() {
		ft, ok := c.TypeFor(p)
		require.True(t, ok, "no type for %s", p.Key())
		assert.Equal(t, p, ft.Profile)
		assert.False(t, seen[ft.ID], "type %s reached twice", ft.ID)
		seen[ft.ID] = true
	}
	for _, a := range quiz.AxisOrder {
		pa, pb, _ := quiz.Poles(a)
		for _, tend := range []quiz.Tendency{pa, pb} {
			ac, ok := c.AxisContent(a, tend)
			require.True(t, ok, "no content for %s/%s", a, tend)
			assert.GreaterOrEqual(t, len(ac.Strengths), quadrantKeywords)
			_, ok = c.Hint(a, tend)
			assert.True(t, ok, "no hint for %s/%s", a, tend)
		}
	}
}

func TestLoad_KnownTypeMapping(t *testing.T) {
	c := MustLoad()
	tests := []struct {
		key string
		id  string
	}{
		{"trigger-observe-goal-design", "conductor"},
		{"trigger-insight-relation-improvise", "moodmaker"},
		{"watch-observe-goal-improvise", "recorder"},
		{"watch-insight-relation-improvise", "resonator"},
	}
	for _, tt := range tests {
		var found *quiz.FacilitatorType
		for _, ft := range c.Types() {
			if ft.Profile.Key() == tt.key {
				found = ft
			}
		}
		require.NotNil(t, found, tt.key)
		assert.Equal(t, tt.id, found.ID)
	}
}

func TestLoad_DiagnoseEndToEnd(t *testing.T) {
	c := MustLoad()
	store := quiz.NewAnswerStore()
	for _, q := range quiz.Questions() {
		require.NoError(t, store.Record(q.ID, quiz.ScaleMin))
	}
	res, err := quiz.Diagnose(store, c)
	require.NoError(t, err)
	assert.Equal(t, "conductor", res.Type.ID)
	assert.Equal(t, "Trigger", res.Reading(quiz.AxisIntervention).Content.Label)
}

// --- Broken content ---

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "unknown field",
			file:    typesFile,
			mutate:  func(s string) string { return strings.Replace(s, "tagline:", "motto:", 1) },
			wantErr: "field motto not found",
		},
		{
			name:    "missing type",
			file:    typesFile,
			mutate:  func(s string) string { return strings.Replace(s, "engagement: improvise}", "engagement: design}", 1) },
			wantErr: "share profile",
		},
		{
			name:    "wrong axis tendency",
			file:    axesFile,
			mutate:  func(s string) string { return strings.Replace(s, "tendency: watch", "tendency: goal", 1) },
			wantErr: "does not belong to axis",
		},
		{
			name:    "dangling compatibility",
			file:    compatibilityFile,
			mutate:  func(s string) string { return strings.Replace(s, "type: listener", "type: ghost", 1) },
			wantErr: "unknown type \"ghost\"",
		},
		{
			name:    "empty file",
			file:    hintsFile,
			mutate:  func(string) string { return "" },
			wantErr: "empty document",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := embeddedFS(t)
			f := fsys["data/"+tt.file]
			f.Data = []byte(tt.mutate(string(f.Data)))
			_, err := LoadFS(fsys, "data")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFS_MissingHintIsContentGap(t *testing.T) {
	fsys := embeddedFS(t)
	f := fsys["data/"+hintsFile]
	// Drop the last hint (engagement/improvise).
	s := string(f.Data)
	idx := strings.LastIndex(s, "  - axis: engagement")
	f.Data = []byte(s[:idx])
	_, err := LoadFS(fsys, "data")
	require.Error(t, err)
	assert.True(t, errors.Is(err, quiz.ErrContentGap), "err = %v", err)
	assert.Contains(t, err.Error(), "engagement/improvise")
}

func TestLoadFS_MissingFile(t *testing.T) {
	fsys := embeddedFS(t)
	delete(fsys, "data/"+axesFile)
	_, err := LoadFS(fsys, "data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading axes.yaml")
}

// --- Browsing ---

func TestGroup(t *testing.T) {
	c := MustLoad()
	for _, f := range c.Families() {
		types := c.Group(f)
		assert.Len(t, types, 4, "family %s", f.ID)
		for _, ft := range types {
			got, ok := c.FamilyOf(ft)
			require.True(t, ok)
			assert.Equal(t, f.ID, got.ID)
		}
	}
	drivers := c.Group(c.Families()[0])
	ids := make([]string, len(drivers))
	for i, ft := range drivers {
		ids[i] = ft.ID
	}
	if diff := cmp.Diff([]string{"conductor", "engine", "navigator", "pioneer"}, ids); diff != "" {
		t.Errorf("drivers mismatch (-want +got):\n%s", diff)
	}
}

func TestCompatibility(t *testing.T) {
	c := MustLoad()
	for _, ft := range c.Types() {
		comp, ok := c.Compatibility(ft.ID)
		require.True(t, ok, "no compatibility for %s", ft.ID)
		assert.NotEmpty(t, comp.Good)
		assert.NotEmpty(t, comp.Difficult)
	}
	comp, _ := c.Compatibility("conductor")
	assert.Equal(t, "listener", comp.Good[0].TypeID)
	_, ok := c.Compatibility("nobody")
	assert.False(t, ok)
}

func TestQuadrants(t *testing.T) {
	c := MustLoad()
	p := quiz.Profile{
		Intervention: quiz.TendencyWatch,
		Perception:   quiz.TendencyObserve,
		Judgment:     quiz.TendencyRelation,
		Engagement:   quiz.TendencyDesign,
	}
	qs := c.Quadrants(p)
	require.Len(t, qs, 4)
	want := Quadrant{
		Axis:     quiz.AxisIntervention,
		AxisName: "Intervention style",
		Label:    "Watcher",
		Keywords: []string{"Gives ownership", "Comfortable with silence", "Precise interventions", "Sees the whole"},
	}
	if diff := cmp.Diff(want, qs[0]); diff != "" {
		t.Errorf("quadrant mismatch (-want +got):\n%s", diff)
	}
	for i, q := range qs {
		assert.Equal(t, quiz.AxisOrder[i], q.Axis)
		assert.Len(t, q.Keywords, quadrantKeywords)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := MustLoad()
	c.Checklist()[0] = "changed"
	assert.NotEqual(t, "changed", c.Checklist()[0])
	types := c.Types()
	types[0] = nil
	assert.NotNil(t, c.Types()[0])
}
