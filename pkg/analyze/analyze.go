// Package analyze extracts the structural class model from Go source.
//
// Each struct type becomes a class: its named fields are the attributes,
// methods declared on the type (value or pointer receiver) become
// rendered signatures with the receiver excluded, and embedded struct
// fields are recorded as parents plus an inheritance relationship.
// Embedding is the closest Go analog of an is-a edge, which is all the
// diagram engine models.
//
// The analyzer is tolerant by design: a file with no type declarations
// yields an empty model, and relationships may reference types defined
// in files that were never analyzed. Only unparsable source is an error.
package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/codia/codia/pkg/errors"
	"github.com/codia/codia/pkg/model"
)

// File analyzes a single Go source file.
func File(path string) (*model.Model, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return parse(path, src)
}

// Source analyzes Go source given as a string, e.g. pasted code.
func Source(src string) (*model.Model, error) {
	return parse("src.go", []byte(src))
}

// Dir analyzes every .go file directly under dir (tests excluded),
// merging the results into one model. Files are visited in lexical
// order so discovery order is reproducible.
func Dir(dir string) (*model.Model, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", dir)
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)

	w := newWalker()
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		if err := w.walkSource(path, src); err != nil {
			return nil, err
		}
	}
	return w.model(), nil
}

func parse(filename string, src []byte) (*model.Model, error) {
	w := newWalker()
	if err := w.walkSource(filename, src); err != nil {
		return nil, err
	}
	return w.model(), nil
}

// walker accumulates classes and relationships across files. Method
// declarations are collected and attached only after every file has
// been walked, so a method is never lost to a type declared later in
// the walk (the usual Go layout splits methods and types across files).
type walker struct {
	classes       *model.ClassSet
	relationships []model.Relationship
	methods       []*ast.FuncDecl
}

func newWalker() *walker {
	return &walker{classes: model.NewClassSet()}
}

func (w *walker) model() *model.Model {
	for _, d := range w.methods {
		w.walkMethod(d)
	}
	w.methods = nil
	return &model.Model{Classes: w.classes, Relationships: w.relationships}
}

func (w *walker) walkSource(filename string, src []byte) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSource, err, "parse %s", filename)
	}

	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				if st, ok := ts.Type.(*ast.StructType); ok {
					w.walkStruct(ts.Name.Name, st)
				}
			}
		case *ast.FuncDecl:
			if d.Recv != nil && len(d.Recv.List) == 1 {
				w.methods = append(w.methods, d)
			}
		}
	}
	return nil
}

// walkStruct registers a class for a struct type. Named fields become
// attributes; embedded fields become parents and inheritance edges.
// A re-declared name replaces the earlier definition's attributes and
// parents (last write wins); edges recorded for the discarded
// definition go dangling and are dropped by the renderer. Methods are
// unaffected because they attach after the walk.
func (w *walker) walkStruct(name string, st *ast.StructType) {
	c := model.NewClass(name)
	w.classes.Add(c)

	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			// Embedded field: inheritance edge toward the embedded type.
			parent := typeName(field.Type)
			if parent == "" {
				continue
			}
			c.AddParent(parent)
			w.relationships = append(w.relationships, model.Relationship{
				Parent: parent,
				Child:  name,
				Kind:   model.RelKindInheritance,
			})
			continue
		}
		for _, fieldName := range field.Names {
			c.AddAttribute(fieldName.Name)
		}
	}
}

// walkMethod appends a rendered signature to the receiver's class.
// Runs after all type declarations, so source order and file order
// never decide whether a method lands on its type. A receiver whose
// type lives in an unanalyzed file still gets a class entry.
func (w *walker) walkMethod(d *ast.FuncDecl) {
	recv := typeName(d.Recv.List[0].Type)
	if recv == "" {
		return
	}
	c := w.ensure(recv)
	c.AddMethod(signature(d))
}

// ensure returns the class registered under name, creating it on first
// mention. Discovery order is the first mention, matching how the set
// orders layout placement.
func (w *walker) ensure(name string) *model.Class {
	if c, ok := w.classes.Get(name); ok {
		return c
	}
	c := model.NewClass(name)
	w.classes.Add(c)
	return c
}

// signature renders "name(p1, p2)" with the receiver excluded. Unnamed
// parameters fall back to their type.
func signature(d *ast.FuncDecl) string {
	var params []string
	if d.Type.Params != nil {
		for _, field := range d.Type.Params.List {
			if len(field.Names) == 0 {
				params = append(params, typeName(field.Type))
				continue
			}
			for _, p := range field.Names {
				params = append(params, p.Name)
			}
		}
	}
	return fmt.Sprintf("%s(%s)", d.Name.Name, strings.Join(params, ", "))
}

// typeName resolves an expression to a bare type name, unwrapping
// pointers, generics, and package qualifiers.
func typeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return typeName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.IndexExpr:
		return typeName(t.X)
	case *ast.IndexListExpr:
		return typeName(t.X)
	}
	return ""
}
