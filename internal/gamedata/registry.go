package gamedata

import "errors"

// TemplateRegistry holds the ordered enemy templates and maps a dungeon
// level onto a difficulty tier.
type TemplateRegistry struct {
	templates []EnemyTemplate
}

// NewTemplateRegistry creates a registry from templates ordered by
// ascending difficulty. The slice is copied.
func NewTemplateRegistry(templates []EnemyTemplate) *TemplateRegistry {
	owned := make([]EnemyTemplate, len(templates))
	copy(owned, templates)
	return &TemplateRegistry{templates: owned}
}

// LoadTemplateRegistry loads and creates a registry from the embedded enemies.json.
func LoadTemplateRegistry() (*TemplateRegistry, error) {
	templates, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewTemplateRegistry(templates), nil
}

// MustLoadTemplateRegistry loads a registry, panicking on error.
func MustLoadTemplateRegistry() *TemplateRegistry {
	registry, err := LoadTemplateRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// TierForLevel returns the template index used on the given dungeon level:
// one tier every two levels, capped at the hardest template.
func TierForLevel(level, count int) int {
	if count <= 0 {
		return -1
	}
	tier := (level - 1) / 2
	if tier < 0 {
		tier = 0
	}
	return min(tier, count-1)
}

// ForLevel returns the template for the given dungeon level, or nil if the
// registry is empty.
func (r *TemplateRegistry) ForLevel(level int) *EnemyTemplate {
	tier := TierForLevel(level, len(r.templates))
	if tier < 0 {
		return nil
	}
	t := r.templates[tier]
	return &t
}

// GetByID returns a copy of the template with the given ID, or nil if not found.
func (r *TemplateRegistry) GetByID(id string) *EnemyTemplate {
	for i := range r.templates {
		if r.templates[i].ID == id {
			t := r.templates[i]
			return &t
		}
	}
	return nil
}

// All returns a copy of all templates in difficulty order.
func (r *TemplateRegistry) All() []EnemyTemplate {
	out := make([]EnemyTemplate, len(r.templates))
	copy(out, r.templates)
	return out
}

// Count returns the number of templates in the registry.
func (r *TemplateRegistry) Count() int {
	return len(r.templates)
}
