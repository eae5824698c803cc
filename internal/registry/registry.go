package registry

import (
	"sort"

	"github.com/bloomafter40/platform/internal/entity"
)

// Outcome of resolving a (moduleID, componentID) pair.
type Outcome int

const (
	// Found: the pair maps to a known exercise.
	Found Outcome = iota
	// ModuleComingSoon: the module id is outside the published program.
	ModuleComingSoon
	// ComponentNotFound: the module exists but the component id does not.
	ComponentNotFound
)

// Phase is one step of an exercise's client-driven state machine. Transitions
// are user actions; RequiredFields names the payload keys that must be filled
// before the client may advance past this phase.
type Phase struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	RequiredFields []string `json:"required_fields,omitempty"`
}

// Exercise is a fully resolved interactive coaching exercise: its descriptor
// plus the ordered phases the client walks through.
type Exercise struct {
	Descriptor entity.ComponentDescriptor `json:"descriptor"`
	Phases     []Phase                    `json:"phases"`
}

// Registry maps moduleID -> componentID -> exercise. Both levels are plain
// map lookups, so existence checks are explicit rather than implicit in
// fallthrough order, and resolution is deterministic for any pair.
type Registry struct {
	modules map[string]map[string]*Exercise
}

// New builds the program registry from the static catalogue. Weeks five and
// six share one catalogue (the integration phase spans both weeks), but each
// gets its own table so descriptors carry the module id they were resolved
// under.
func New() *Registry {
	return &Registry{modules: map[string]map[string]*Exercise{
		"week1": buildWeek("week1", week1Catalog),
		"week2": buildWeek("week2", week2Catalog),
		"week3": buildWeek("week3", week3Catalog),
		"week4": buildWeek("week4", week4Catalog),
		"week5": buildWeek("week5", week5Catalog),
		"week6": buildWeek("week6", week5Catalog),
	}}
}

func buildWeek(moduleID string, catalog []Exercise) map[string]*Exercise {
	table := make(map[string]*Exercise, len(catalog))
	for i := range catalog {
		ex := catalog[i]
		ex.Descriptor.ModuleID = moduleID
		table[ex.Descriptor.ID] = &ex
	}
	return table
}

// Resolve looks up a (moduleID, componentID) pair. The exercise is non-nil
// only when the outcome is Found.
func (r *Registry) Resolve(moduleID, componentID string) (*Exercise, Outcome) {
	components, ok := r.modules[moduleID]
	if !ok {
		return nil, ModuleComingSoon
	}

	ex, ok := components[componentID]
	if !ok {
		return nil, ComponentNotFound
	}

	return ex, Found
}

// ListModule returns the module's descriptors sorted by component id, or
// false for an unpublished module.
func (r *Registry) ListModule(moduleID string) ([]entity.ComponentDescriptor, bool) {
	components, ok := r.modules[moduleID]
	if !ok {
		return nil, false
	}

	descriptors := make([]entity.ComponentDescriptor, 0, len(components))
	for _, ex := range components {
		descriptors = append(descriptors, ex.Descriptor)
	}
	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].ID < descriptors[j].ID
	})

	return descriptors, true
}

// Modules returns the published module ids in program order.
func (r *Registry) Modules() []string {
	return []string{"week1", "week2", "week3", "week4", "week5", "week6"}
}
