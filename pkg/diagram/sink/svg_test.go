package sink

import (
	"strconv"
	"strings"
	"testing"

	"github.com/codia/codia/pkg/diagram"
	"github.com/codia/codia/pkg/model"
)

func testScene() *diagram.Scene {
	s := model.NewClassSet()

	animal := model.NewClass("Animal")
	animal.AddAttribute("name")
	animal.AddMethod("make_sound()")
	s.Add(animal)

	dog := model.NewClass("Dog")
	dog.AddParent("Animal")
	s.Add(dog)

	return diagram.Assemble(s, []model.Relationship{
		{Parent: "Animal", Child: "Dog", Kind: model.RelKindInheritance},
	})
}

func TestRenderSVGStructure(t *testing.T) {
	svg := string(RenderSVG(testScene()))

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`id="box-Animal"`,
		`id="box-Dog"`,
		`>- name<`,
		`>+ make_sound()<`,
		`<polygon`,
		`>Class Diagram<`,
		`</svg>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

func TestRenderSVGViewBoxFromBounds(t *testing.T) {
	// 2 classes: cols=1, rows=2, grid 4x8, bounds [-1,5]x[-1,9].
	svg := string(RenderSVG(testScene()))
	if !strings.Contains(svg, `viewBox="0 0 360.0 600.0"`) {
		t.Errorf("viewBox not derived from scene bounds at default scale:\n%s",
			svg[:strings.IndexByte(svg, '\n')])
	}
}

func TestRenderSVGScale(t *testing.T) {
	svg := string(RenderSVG(testScene(), WithScale(10)))
	if !strings.Contains(svg, `viewBox="0 0 60.0 100.0"`) {
		t.Errorf("WithScale not applied:\n%s", svg[:strings.IndexByte(svg, '\n')])
	}
}

func TestRenderSVGWithoutTitle(t *testing.T) {
	svg := string(RenderSVG(testScene(), WithoutTitle()))
	if strings.Contains(svg, "Class Diagram") {
		t.Error("title rendered despite WithoutTitle")
	}
}

func TestRenderSVGYAxisFlip(t *testing.T) {
	// Animal is parentless so it gets the top grid cell; its box must
	// appear with a smaller pixel y than Dog's.
	svg := string(RenderSVG(testScene()))

	yOf := func(id string) float64 {
		i := strings.Index(svg, `id="box-`+id+`"`)
		if i < 0 {
			t.Fatalf("box %s not found", id)
		}
		rest := svg[i:]
		j := strings.Index(rest, `y="`)
		raw := rest[j+3 : j+3+strings.IndexByte(rest[j+3:], '"')]
		y, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			t.Fatalf("parse y %q: %v", raw, err)
		}
		return y
	}

	animalY, dogY := yOf("Animal"), yOf("Dog")
	if animalY >= dogY {
		t.Errorf("Animal y=%v not above Dog y=%v after flip", animalY, dogY)
	}
}
