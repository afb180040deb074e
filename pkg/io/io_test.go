package io

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/codia/codia/pkg/errors"
	"github.com/codia/codia/pkg/model"
)

func sampleModel() *model.Model {
	s := model.NewClassSet()

	animal := model.NewClass("Animal")
	animal.AddAttribute("name")
	animal.AddAttribute("name") // duplicates are part of the contract
	animal.AddMethod("make_sound()")
	s.Add(animal)

	dog := model.NewClass("Dog")
	dog.AddParent("Animal")
	s.Add(dog)

	return &model.Model{
		Classes: s,
		Relationships: []model.Relationship{
			{Parent: "Animal", Child: "Dog", Kind: model.RelKindInheritance},
			{Parent: "Ghost", Child: "Dog", Kind: model.RelKindInheritance},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	m := sampleModel()

	var buf bytes.Buffer
	if err := WriteJSON(m, &buf); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if !reflect.DeepEqual(got.Classes.Names(), m.Classes.Names()) {
		t.Errorf("class order = %v, want %v", got.Classes.Names(), m.Classes.Names())
	}
	gotAnimal, _ := got.Classes.Get("Animal")
	wantAnimal, _ := m.Classes.Get("Animal")
	if !reflect.DeepEqual(gotAnimal, wantAnimal) {
		t.Errorf("Animal = %+v, want %+v", gotAnimal, wantAnimal)
	}
	// Dangling relationship survives the round-trip.
	if !reflect.DeepEqual(got.Relationships, m.Relationships) {
		t.Errorf("relationships = %v, want %v", got.Relationships, m.Relationships)
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")

	if err := ExportJSON(sampleModel(), path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	m, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if m.Classes.Len() != 2 {
		t.Errorf("imported %d classes, want 2", m.Classes.Len())
	}
}

func TestReadJSONRejectsEmptyName(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"classes": [{"name": ""}]}`))
	if !errors.Is(err, errors.ErrCodeInvalidModel) {
		t.Errorf("error = %v, want INVALID_MODEL", err)
	}
}

func TestReadJSONDuplicateNameLastWins(t *testing.T) {
	m, err := ReadJSON(strings.NewReader(`{"classes": [
		{"name": "Foo", "attributes": ["old"]},
		{"name": "Foo", "attributes": ["new"]}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	c, _ := m.Classes.Get("Foo")
	if !reflect.DeepEqual(c.Attributes, []string{"new"}) {
		t.Errorf("attributes = %v, want [new]", c.Attributes)
	}
}

func TestReadJSONMalformed(t *testing.T) {
	_, err := ReadJSON(strings.NewReader(`{"classes": [`))
	if !errors.Is(err, errors.ErrCodeInvalidModel) {
		t.Errorf("error = %v, want INVALID_MODEL", err)
	}
}

func TestImportJSONMissingFile(t *testing.T) {
	_, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
