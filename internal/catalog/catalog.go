// Package catalog holds the static FacilitatorStyles content: the sixteen
// type profiles, per-axis write-ups, cofacilitation hints and the
// compatibility table. Content is authored as YAML, embedded in the binary
// and validated for totality when loaded.
package catalog

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/HendryAvila/facilistyles/internal/quiz"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// Content files, relative to the catalog directory.
const (
	typesFile         = "types.yaml"
	axesFile          = "axes.yaml"
	hintsFile         = "hints.yaml"
	compatibilityFile = "compatibility.yaml"
)

// AxisInfo is the display name and one-line description of an axis.
type AxisInfo struct {
	Axis        quiz.Axis `json:"axis" yaml:"axis"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
}

// Family groups the four types sharing an intervention and judgment tendency.
type Family struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Description  string        `json:"description" yaml:"description"`
	Intervention quiz.Tendency `json:"intervention" yaml:"intervention"`
	Judgment     quiz.Tendency `json:"judgment" yaml:"judgment"`
}

// Pairing is one entry of a type's compatibility list.
type Pairing struct {
	TypeID string `json:"type" yaml:"type"`
	Hint   string `json:"hint" yaml:"hint"`
}

// Compatibility lists the types a facilitator pairs well with and the ones
// that need care.
type Compatibility struct {
	Good      []Pairing `json:"good" yaml:"good"`
	Difficult []Pairing `json:"difficult" yaml:"difficult"`
}

// Quadrant is the per-axis strength summary shown around the type name.
type Quadrant struct {
	Axis     quiz.Axis `json:"axis"`
	AxisName string    `json:"axis_name"`
	Label    string    `json:"label"`
	Keywords []string  `json:"keywords"`
}

// quadrantKeywords is how many strength titles a quadrant shows.
const quadrantKeywords = 4

// --- File shapes ---

type typesDoc struct {
	Families []Family               `yaml:"families"`
	Types    []quiz.FacilitatorType `yaml:"types"`
}

type axesDoc struct {
	Axes     []AxisInfo         `yaml:"axes"`
	Contents []quiz.AxisContent `yaml:"contents"`
}

type hintsDoc struct {
	Checklist []string                  `yaml:"checklist"`
	Hints     []quiz.CofacilitationHint `yaml:"hints"`
}

type compatibilityDoc struct {
	Compatibility map[string]Compatibility `yaml:"compatibility"`
}

type contentKey struct {
	axis     quiz.Axis
	tendency quiz.Tendency
}

// Catalog is the loaded, validated content. It is read-only after Load and
// safe for concurrent use.
type Catalog struct {
	families  []Family
	types     []*quiz.FacilitatorType
	byID      map[string]*quiz.FacilitatorType
	byProfile map[string]*quiz.FacilitatorType
	axes      map[quiz.Axis]AxisInfo
	contents  map[contentKey]*quiz.AxisContent
	hints     map[contentKey]*quiz.CofacilitationHint
	checklist []string
	compat    map[string]Compatibility
}

var _ quiz.Resolver = (*Catalog)(nil)

// Load reads and validates the embedded content.
func Load() (*Catalog, error) {
	return LoadFS(embedded, "data")
}

// LoadFS reads the content files from dir in fsys and validates them.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	var (
		td typesDoc
		ad axesDoc
		hd hintsDoc
		cd compatibilityDoc
	)
	files := []struct {
		name string
		out  any
	}{
		{typesFile, &td},
		{axesFile, &ad},
		{hintsFile, &hd},
		{compatibilityFile, &cd},
	}
	for _, f := range files {
		data, err := fs.ReadFile(fsys, path.Join(dir, f.name))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.name, err)
		}
		if err := decodeStrict(data, f.out); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", f.name, err)
		}
	}

	c, err := build(td, ad, hd, cd)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustLoad is Load for callers that treat broken embedded content as a
// programming error.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// decodeStrict decodes a single YAML document, rejecting unknown fields.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty document")
		}
		return err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errors.New("multiple YAML documents are not supported")
	}
	return nil
}

// build indexes the decoded documents. Duplicate keys are rejected here;
// completeness is checked by Validate.
func build(td typesDoc, ad axesDoc, hd hintsDoc, cd compatibilityDoc) (*Catalog, error) {
	c := &Catalog{
		families:  td.Families,
		byID:      make(map[string]*quiz.FacilitatorType, len(td.Types)),
		byProfile: make(map[string]*quiz.FacilitatorType, len(td.Types)),
		axes:      make(map[quiz.Axis]AxisInfo, len(ad.Axes)),
		contents:  make(map[contentKey]*quiz.AxisContent, len(ad.Contents)),
		hints:     make(map[contentKey]*quiz.CofacilitationHint, len(hd.Hints)),
		checklist: hd.Checklist,
		compat:    cd.Compatibility,
	}

	for i := range td.Types {
		t := &td.Types[i]
		if err := t.Profile.Validate(); err != nil {
			return nil, fmt.Errorf("type %q: %w", t.ID, err)
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate type id %q", t.ID)
		}
		key := t.Profile.Key()
		if other, dup := c.byProfile[key]; dup {
			return nil, fmt.Errorf("types %q and %q share profile %s", other.ID, t.ID, key)
		}
		c.types = append(c.types, t)
		c.byID[t.ID] = t
		c.byProfile[key] = t
	}

	for _, a := range ad.Axes {
		if err := quiz.ValidateAxis(a.Axis); err != nil {
			return nil, err
		}
		c.axes[a.Axis] = a
	}

	for i := range ad.Contents {
		ac := &ad.Contents[i]
		k, err := keyFor(ac.Axis, ac.Tendency)
		if err != nil {
			return nil, fmt.Errorf("axis content: %w", err)
		}
		if _, dup := c.contents[k]; dup {
			return nil, fmt.Errorf("duplicate axis content %s/%s", ac.Axis, ac.Tendency)
		}
		c.contents[k] = ac
	}

	for i := range hd.Hints {
		h := &hd.Hints[i]
		k, err := keyFor(h.Axis, h.Tendency)
		if err != nil {
			return nil, fmt.Errorf("cofacilitation hint: %w", err)
		}
		if _, dup := c.hints[k]; dup {
			return nil, fmt.Errorf("duplicate cofacilitation hint %s/%s", h.Axis, h.Tendency)
		}
		c.hints[k] = h
	}

	return c, nil
}

// keyFor checks that t is a tendency of axis a.
func keyFor(a quiz.Axis, t quiz.Tendency) (contentKey, error) {
	pa, pb, err := quiz.Poles(a)
	if err != nil {
		return contentKey{}, err
	}
	if t != pa && t != pb {
		return contentKey{}, fmt.Errorf("tendency %q does not belong to axis %s", t, a)
	}
	return contentKey{a, t}, nil
}

// Validate checks that the catalog covers the whole classification domain:
// a type for each of the 16 profiles, content and a hint for each of the 8
// tendencies, a name for each axis, and compatibility entries that only
// reference known types.
func (c *Catalog) Validate() error {
	var errs []error
	for _, p := range quiz.AllProfiles() {
		if _, ok := c.byProfile[p.Key()]; !ok {
			errs = append(errs, fmt.Errorf("%w: no type for %s", quiz.ErrContentGap, p.Key()))
		}
	}
	for _, a := range quiz.AxisOrder {
		if _, ok := c.axes[a]; !ok {
			errs = append(errs, fmt.Errorf("%w: no axis info for %s", quiz.ErrContentGap, a))
		}
		pa, pb, _ := quiz.Poles(a)
		for _, t := range []quiz.Tendency{pa, pb} {
			if _, ok := c.contents[contentKey{a, t}]; !ok {
				errs = append(errs, fmt.Errorf("%w: no axis content for %s/%s", quiz.ErrContentGap, a, t))
			}
			if _, ok := c.hints[contentKey{a, t}]; !ok {
				errs = append(errs, fmt.Errorf("%w: no cofacilitation hint for %s/%s", quiz.ErrContentGap, a, t))
			}
		}
	}
	for _, t := range c.types {
		if t.Name == "" || t.Tagline == "" {
			errs = append(errs, fmt.Errorf("type %q: name and tagline are required", t.ID))
		}
	}
	for id, comp := range c.compat {
		if _, ok := c.byID[id]; !ok {
			errs = append(errs, fmt.Errorf("compatibility for unknown type %q", id))
		}
		for _, p := range append(append([]Pairing{}, comp.Good...), comp.Difficult...) {
			if _, ok := c.byID[p.TypeID]; !ok {
				errs = append(errs, fmt.Errorf("compatibility of %q references unknown type %q", id, p.TypeID))
			}
			if p.TypeID == id {
				errs = append(errs, fmt.Errorf("compatibility of %q references itself", id))
			}
		}
	}
	for _, f := range c.families {
		if _, err := keyFor(quiz.AxisIntervention, f.Intervention); err != nil {
			errs = append(errs, fmt.Errorf("family %q: %w", f.ID, err))
		}
		if _, err := keyFor(quiz.AxisJudgment, f.Judgment); err != nil {
			errs = append(errs, fmt.Errorf("family %q: %w", f.ID, err))
		}
	}
	return errors.Join(errs...)
}

// --- quiz.Resolver ---

// TypeFor returns the type identified by a tendency profile.
func (c *Catalog) TypeFor(p quiz.Profile) (*quiz.FacilitatorType, bool) {
	t, ok := c.byProfile[p.Key()]
	return t, ok
}

// TypeByID returns a type by its id.
func (c *Catalog) TypeByID(id string) (*quiz.FacilitatorType, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// AxisContent returns the write-up for one tendency.
func (c *Catalog) AxisContent(a quiz.Axis, t quiz.Tendency) (*quiz.AxisContent, bool) {
	ac, ok := c.contents[contentKey{a, t}]
	return ac, ok
}

// Hint returns the cofacilitation hint for one tendency.
func (c *Catalog) Hint(a quiz.Axis, t quiz.Tendency) (*quiz.CofacilitationHint, bool) {
	h, ok := c.hints[contentKey{a, t}]
	return h, ok
}

// --- Browsing ---

// Types returns all types in file order.
func (c *Catalog) Types() []*quiz.FacilitatorType {
	out := make([]*quiz.FacilitatorType, len(c.types))
	copy(out, c.types)
	return out
}

// Families returns the four type families in display order.
func (c *Catalog) Families() []Family {
	out := make([]Family, len(c.families))
	copy(out, c.families)
	return out
}

// FamilyOf returns the family a type belongs to.
func (c *Catalog) FamilyOf(t *quiz.FacilitatorType) (Family, bool) {
	for _, f := range c.families {
		if f.Intervention == t.Profile.Intervention && f.Judgment == t.Profile.Judgment {
			return f, true
		}
	}
	return Family{}, false
}

// Group returns the types of a family in file order.
func (c *Catalog) Group(f Family) []*quiz.FacilitatorType {
	var out []*quiz.FacilitatorType
	for _, t := range c.types {
		if t.Profile.Intervention == f.Intervention && t.Profile.Judgment == f.Judgment {
			out = append(out, t)
		}
	}
	return out
}

// Axis returns the display info of an axis.
func (c *Catalog) Axis(a quiz.Axis) (AxisInfo, bool) {
	info, ok := c.axes[a]
	return info, ok
}

// Checklist returns the shared cofacilitation checklist.
func (c *Catalog) Checklist() []string {
	out := make([]string, len(c.checklist))
	copy(out, c.checklist)
	return out
}

// Compatibility returns the pairing table for a type.
func (c *Catalog) Compatibility(id string) (Compatibility, bool) {
	comp, ok := c.compat[id]
	return comp, ok
}

// Quadrants returns, for each axis in order, the first strength titles of
// the tendency the profile holds.
func (c *Catalog) Quadrants(p quiz.Profile) []Quadrant {
	out := make([]Quadrant, 0, len(quiz.AxisOrder))
	for _, a := range quiz.AxisOrder {
		q := Quadrant{Axis: a}
		if info, ok := c.axes[a]; ok {
			q.AxisName = info.Name
		}
		if ac, ok := c.contents[contentKey{a, p.Get(a)}]; ok {
			q.Label = ac.Label
			for i, s := range ac.Strengths {
				if i == quadrantKeywords {
					break
				}
				q.Keywords = append(q.Keywords, s.Title)
			}
		}
		out = append(out, q)
	}
	return out
}
