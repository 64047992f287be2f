package calculator

import (
	"fmt"
	"sync"
)

// Configured returns a Map with every built-in calculator registered.
func Configured() *Map {
	m := NewMap()
	for _, d := range []Definition{
		savingsDefinition,
		roiDefinition,
		panelSizeDefinition,
		batteryDefinition,
		carbonDefinition,
	} {
		m.Set(d)
	}
	return m
}

// Map holds calculator definitions by ID in registration order.
type Map struct {
	mu          sync.Mutex
	order       []string
	definitions map[string]Definition
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{
		definitions: make(map[string]Definition),
	}
}

// Definition returns the calculator registered under id.
func (m *Map) Definition(id string) (Definition, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d, ok := m.definitions[id]; ok {
		return d, nil
	}
	return Definition{}, fmt.Errorf("%w: %s", ErrUnknownCalculator, id)
}

// Set registers d, replacing any definition with the same ID.
func (m *Map) Set(d Definition) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.definitions[d.ID]; !ok {
		m.order = append(m.order, d.ID)
	}
	m.definitions[d.ID] = d
}

// List returns every definition in registration order.
func (m *Map) List() []Definition {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := make([]Definition, 0, len(m.order))
	for _, id := range m.order {
		list = append(list, m.definitions[id])
	}
	return list
}

// Evaluate runs the calculator registered under id.
func (m *Map) Evaluate(id string, values Values) (Evaluation, error) {
	d, err := m.Definition(id)
	if err != nil {
		return Evaluation{}, err
	}
	return d.Evaluate(values)
}
