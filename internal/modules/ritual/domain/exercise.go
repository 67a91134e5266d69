package domain

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryOntology        Category = "ontology"
	CategoryPsychology      Category = "psychology"
	CategoryNeuropsychology Category = "neuropsychology"
	CategoryPhenomenology   Category = "phenomenology"
	CategoryCosmology       Category = "cosmology"
)

// Rotation is the fixed order categories advance through day to day.
var Rotation = []Category{
	CategoryOntology,
	CategoryPsychology,
	CategoryNeuropsychology,
	CategoryPhenomenology,
	CategoryCosmology,
}

func (c Category) Validate() error {
	if rotationIndex(c) < 0 {
		return fmt.Errorf("unsupported category %q", string(c))
	}
	return nil
}

func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

func rotationIndex(c Category) int {
	for i, candidate := range Rotation {
		if candidate == c {
			return i
		}
	}
	return -1
}

type Exercise struct {
	ID            string
	Category      Category
	Title         string
	Steps         []string
	CheckInPrompt string
}

func (e Exercise) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return fmt.Errorf("exercise id is required")
	}
	if err := e.Category.Validate(); err != nil {
		return fmt.Errorf("exercise %s: %w", e.ID, err)
	}
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("exercise %s: title is required", e.ID)
	}
	if len(e.Steps) == 0 {
		return fmt.Errorf("exercise %s: at least one step is required", e.ID)
	}
	for i, step := range e.Steps {
		if strings.TrimSpace(step) == "" {
			return fmt.Errorf("exercise %s: step %d is empty", e.ID, i+1)
		}
	}
	if strings.TrimSpace(e.CheckInPrompt) == "" {
		return fmt.Errorf("exercise %s: check-in prompt is required", e.ID)
	}
	return nil
}

// Catalog is the immutable exercise set the selector draws from.
type Catalog struct {
	exercises []Exercise
	byID      map[string]int
}

// NewCatalog validates exercises and indexes them. Every rotation category
// must have at least one exercise and ids must be unique.
func NewCatalog(exercises []Exercise) (Catalog, error) {
	c := Catalog{exercises: make([]Exercise, 0, len(exercises)), byID: map[string]int{}}
	counts := map[Category]int{}
	for _, ex := range exercises {
		if err := ex.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := c.byID[ex.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate exercise id %q", ex.ID)
		}
		ex = ex.clone()
		c.byID[ex.ID] = len(c.exercises)
		c.exercises = append(c.exercises, ex)
		counts[ex.Category]++
	}
	for _, cat := range Rotation {
		if counts[cat] == 0 {
			return Catalog{}, fmt.Errorf("category %s has no exercises", cat)
		}
	}
	return c, nil
}

func (c Catalog) ByID(id string) (Exercise, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Exercise{}, false
	}
	return c.exercises[idx].clone(), true
}

// InCategory returns exercises of cat in catalog order.
func (c Catalog) InCategory(cat Category) []Exercise {
	out := []Exercise{}
	for _, ex := range c.exercises {
		if ex.Category == cat {
			out = append(out, ex.clone())
		}
	}
	return out
}

func (c Catalog) All() []Exercise {
	out := make([]Exercise, 0, len(c.exercises))
	for _, ex := range c.exercises {
		out = append(out, ex.clone())
	}
	return out
}

func (e Exercise) clone() Exercise {
	e.Steps = append([]string(nil), e.Steps...)
	return e
}
