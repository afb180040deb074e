// Package model defines the structural class model consumed by the
// diagram engine.
//
// A [Class] records one discovered class: its name, attributes, rendered
// method signatures, and parent class names. Classes are collected in a
// [ClassSet], an insertion-ordered map keyed by class name. Iteration
// order matters: the layout engine places classes in discovery order, so
// the set must never reorder entries.
//
// Inheritance is tracked twice, deliberately: each Class carries its
// Parents, and the analyzer additionally emits a flat [Relationship]
// list. The engine partitions classes by Parents and draws edges from
// the relationship list. Relationships may reference names that are not
// in the set; such edges are dropped at render time.
package model

// RelKindInheritance is the only relationship kind currently modeled.
const RelKindInheritance = "inheritance"

// Class is the structural record for one discovered class.
//
// Attributes and Methods preserve discovery order; attribute duplicates
// are kept as-is. Parents is an insertion-ordered set (no duplicates).
// Once handed to the diagram engine a Class must not be mutated.
type Class struct {
	Name       string   `json:"name"`
	Attributes []string `json:"attributes,omitempty"`
	Methods    []string `json:"methods,omitempty"`
	Parents    []string `json:"parents,omitempty"`
}

// NewClass creates an empty class with the given name.
func NewClass(name string) *Class {
	return &Class{Name: name}
}

// AddAttribute appends an attribute name. Duplicates are preserved.
func (c *Class) AddAttribute(name string) {
	c.Attributes = append(c.Attributes, name)
}

// AddMethod appends a rendered method signature, e.g. "Fetch(item)".
func (c *Class) AddMethod(signature string) {
	c.Methods = append(c.Methods, signature)
}

// AddParent appends a parent class name unless already present.
func (c *Class) AddParent(name string) {
	for _, p := range c.Parents {
		if p == name {
			return
		}
	}
	c.Parents = append(c.Parents, name)
}

// HasParents reports whether the class inherits from anything.
func (c *Class) HasParents() bool { return len(c.Parents) > 0 }

// Relationship is a directed edge between two classes.
// Parent and Child are class names; either may be absent from the
// ClassSet (e.g. a parent defined in an unanalyzed file), in which case
// renderers skip the edge.
type Relationship struct {
	Parent string `json:"parent"`
	Child  string `json:"child"`
	Kind   string `json:"kind"`
}

// ClassSet is an insertion-ordered collection of classes keyed by name.
//
// Registering a class under an existing name replaces the earlier entry
// (last write wins) while keeping its original position in the order.
// No warning is raised; callers that care should check Get first.
type ClassSet struct {
	names  []string
	byName map[string]*Class
}

// NewClassSet creates an empty class set.
func NewClassSet() *ClassSet {
	return &ClassSet{byName: make(map[string]*Class)}
}

// Add registers a class. An existing entry with the same name is
// silently replaced.
func (s *ClassSet) Add(c *Class) {
	if _, exists := s.byName[c.Name]; !exists {
		s.names = append(s.names, c.Name)
	}
	s.byName[c.Name] = c
}

// Get returns the class registered under name.
func (s *ClassSet) Get(name string) (*Class, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Len returns the number of classes.
func (s *ClassSet) Len() int { return len(s.names) }

// Names returns the class names in insertion order.
// The returned slice is a copy and safe to modify.
func (s *ClassSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Classes returns the classes in insertion order.
func (s *ClassSet) Classes() []*Class {
	out := make([]*Class, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.byName[name])
	}
	return out
}

// Model bundles a class set with its relationships, forming the complete
// input contract of the diagram engine.
type Model struct {
	Classes       *ClassSet
	Relationships []Relationship
}

// IsEmpty reports whether the model contains no classes.
// Callers must check this before assembling a diagram: an empty model is
// "nothing to draw", not an error.
func (m *Model) IsEmpty() bool {
	return m.Classes == nil || m.Classes.Len() == 0
}
