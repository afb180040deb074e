package diagram

import (
	"reflect"
	"testing"

	"github.com/codia/codia/pkg/model"
)

func animalModel() *model.Model {
	s := model.NewClassSet()

	animal := model.NewClass("Animal")
	animal.AddAttribute("name")
	animal.AddAttribute("age")
	animal.AddMethod("make_sound()")
	animal.AddMethod("get_name()")
	s.Add(animal)

	dog := model.NewClass("Dog")
	dog.AddParent("Animal")
	dog.AddMethod("fetch(item)")
	s.Add(dog)

	cat := model.NewClass("Cat")
	cat.AddParent("Animal")
	s.Add(cat)

	return &model.Model{
		Classes: s,
		Relationships: []model.Relationship{
			{Parent: "Animal", Child: "Dog", Kind: model.RelKindInheritance},
			{Parent: "Animal", Child: "Cat", Kind: model.RelKindInheritance},
		},
	}
}

func TestAssembleScene(t *testing.T) {
	m := animalModel()
	scene := Assemble(m.Classes, m.Relationships)

	if scene.Title != "Class Diagram" {
		t.Errorf("title = %q", scene.Title)
	}

	want := Bounds{MinX: -1, MinY: -1, MaxX: 5, MaxY: 13}
	if scene.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", scene.Bounds, want)
	}

	if len(scene.Boxes) != 3 {
		t.Errorf("got %d boxes, want 3", len(scene.Boxes))
	}
	// Two dividers per box plus one segment per edge.
	if len(scene.Lines) != 3*2+2 {
		t.Errorf("got %d lines, want 8", len(scene.Lines))
	}
	if len(scene.Markers) != 2 {
		t.Errorf("got %d markers, want 2", len(scene.Markers))
	}
}

func TestAssembleDropsDanglingRelationships(t *testing.T) {
	m := animalModel()
	m.Relationships = append(m.Relationships,
		model.Relationship{Parent: "Ghost", Child: "Dog", Kind: model.RelKindInheritance},
		model.Relationship{Parent: "Animal", Child: "Missing", Kind: model.RelKindInheritance},
	)

	scene := Assemble(m.Classes, m.Relationships)

	if len(scene.Markers) != 2 {
		t.Errorf("dangling relationships rendered: %d markers, want 2", len(scene.Markers))
	}

	// Box placement of the remaining classes is unaffected.
	clean := Assemble(animalModel().Classes, animalModel().Relationships)
	if !reflect.DeepEqual(scene.Boxes, clean.Boxes) {
		t.Error("dangling relationship changed box placement")
	}
}

func TestAssembleIgnoresUnknownKinds(t *testing.T) {
	m := animalModel()
	m.Relationships = []model.Relationship{
		{Parent: "Animal", Child: "Dog", Kind: "association"},
	}

	scene := Assemble(m.Classes, m.Relationships)
	if len(scene.Markers) != 0 {
		t.Errorf("non-inheritance relationship drew %d markers", len(scene.Markers))
	}
}

func TestAssembleIdempotent(t *testing.T) {
	m := animalModel()
	a := Assemble(m.Classes, m.Relationships)
	b := Assemble(m.Classes, m.Relationships)

	if !reflect.DeepEqual(a, b) {
		t.Error("two assemblies of the same model differ")
	}
}

func TestAssembleSingleEmptyClass(t *testing.T) {
	s := model.NewClassSet()
	s.Add(model.NewClass("Marker"))

	scene := Assemble(s, nil)

	if len(scene.Boxes) != 1 {
		t.Fatalf("got %d boxes, want 1", len(scene.Boxes))
	}
	if h := scene.Boxes[0].H; h != 1.0 {
		t.Errorf("empty class box height = %v, want 1.0", h)
	}
	// Both compartment dividers are still drawn.
	if len(scene.Lines) != 2 {
		t.Errorf("got %d dividers, want 2", len(scene.Lines))
	}
}
