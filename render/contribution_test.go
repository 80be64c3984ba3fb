// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/gogpu/ggraph"
	"github.com/gogpu/ggraph/graphic"
	"github.com/gogpu/ggraph/surface"
)

type probe struct {
	name  string
	phase Phase
	order int
	log   *[]string
}

func (p probe) Name() string { return p.name }
func (p probe) Phase() Phase { return p.phase }
func (p probe) Order() int   { return p.order }

func (p probe) DrawShape(sh *Shape) {
	fills := sh.Surface.(*surface.Recorder).Count("Fill")
	*p.log = append(*p.log, p.name+":"+strconv.Itoa(fills))
}

func TestContributionOrder(t *testing.T) {
	var log []string
	p := NewProvider()
	err := p.Register(graphic.TypeCircle,
		probe{"low", BeforeFillStroke, 1, &log},
		probe{"after", AfterFillStroke, 0, &log},
		probe{"high-a", BeforeFillStroke, 5, &log},
		probe{"high-b", BeforeFillStroke, 5, &log},
	)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	svc := NewService(WithProvider(p))
	c := graphic.NewCircle(ggraph.Attrs{"radius": 10, "fill": "#ff0000"})
	drawOne(t, svc, c)

	want := []string{"high-a:0", "high-b:0", "low:0", "after:1"}
	if !slices.Equal(log, want) {
		t.Errorf("contribution log = %v, want %v", log, want)
	}
}

func TestProviderSealed(t *testing.T) {
	p := NewProvider()
	if err := p.Register(graphic.TypeRect, Background{}); err != nil {
		t.Fatalf("Register() before read error = %v", err)
	}
	if got := len(p.Contributions(graphic.TypeRect)); got != 1 {
		t.Fatalf("len(Contributions) = %d, want 1", got)
	}
	if err := p.Register(graphic.TypeRect, Border{}); !errors.Is(err, ErrProviderSealed) {
		t.Errorf("Register() after read error = %v, want ErrProviderSealed", err)
	}
	if got := len(p.Contributions(graphic.TypeRect)); got != 1 {
		t.Errorf("len(Contributions) after sealed register = %d, want 1", got)
	}
}

func TestDefaultProvider(t *testing.T) {
	p := DefaultProvider()
	for _, typ := range []graphic.Type{graphic.TypeCircle, graphic.TypeRect, graphic.TypeText} {
		var names []string
		for _, c := range p.Contributions(typ) {
			names = append(names, c.Name())
		}
		if want := []string{"background", "texture", "border"}; !slices.Equal(names, want) {
			t.Errorf("Contributions(%s) = %v, want %v", typ, names, want)
		}
	}
	if got := p.Contributions(graphic.TypeGlyph); len(got) != 0 {
		t.Errorf("glyph contributions = %d, want 0", len(got))
	}
}

func TestPhaseString(t *testing.T) {
	if got := BeforeFillStroke.String(); got != "beforeFillStroke" {
		t.Errorf("BeforeFillStroke.String() = %q", got)
	}
	if got := AfterFillStroke.String(); got != "afterFillStroke" {
		t.Errorf("AfterFillStroke.String() = %q", got)
	}
}

func TestBackgroundContribution(t *testing.T) {
	n := graphic.NewRect(ggraph.Attrs{"width": 10, "height": 10, "background": "#00ff00"})
	rec := surface.NewRecorder(100, 100)
	NewRectRenderer(DefaultProvider()).DrawShape(n, rec, 0, 0, nil, Params{}, nil, nil)

	if got := rec.Count("Fill"); got != 1 {
		t.Fatalf("Fill count = %d, want 1", got)
	}
	if got := rec.FillStyle().Color; got.G != 0xff || got.R != 0 {
		t.Errorf("fill color = %v, want green", got)
	}
}

func TestBorderContribution(t *testing.T) {
	c := graphic.NewCircle(ggraph.Attrs{
		"radius": 10, "fill": "#ff0000",
		"outerBorder": map[string]any{"distance": 2, "stroke": "#0000ff", "lineWidth": 1},
		"innerBorder": ggraph.Attrs{"distance": 3},
	})
	rec := drawOne(t, NewService(), c)

	var radii []float64
	for _, call := range rec.Calls() {
		if call.Name == "Arc" {
			radii = append(radii, call.Args[2])
		}
	}
	if want := []float64{10, 12, 7}; !slices.Equal(radii, want) {
		t.Errorf("arc radii = %v, want %v", radii, want)
	}
	if got := rec.Count("Stroke"); got != 2 {
		t.Errorf("Stroke count = %d, want 2", got)
	}
}

func TestTextureContribution(t *testing.T) {
	r := graphic.NewRect(ggraph.Attrs{
		"width": 40, "height": 20, "fill": "#ff0000",
		"texture": "rect", "textureSize": 10, "texturePadding": 2,
	})
	rec := drawOne(t, NewService(), r)

	// One Rect for the shape and one per 10x10 cell.
	if got := rec.Count("Rect"); got != 1+8 {
		t.Errorf("Rect count = %d, want 9", got)
	}
	if got := rec.Count("Fill"); got != 2 {
		t.Errorf("Fill count = %d, want 2", got)
	}
}

func TestContributionsSkipPicking(t *testing.T) {
	r := NewRectRenderer(DefaultProvider())
	rec := surface.NewRecorder(100, 100)
	n := graphic.NewRect(ggraph.Attrs{
		"width": 10, "height": 10, "background": "#00ff00", "texture": "circle",
		"outerBorder": ggraph.Attrs{"distance": 2},
	})
	hit := false
	r.DrawShape(n, rec, 0, 0, nil, Params{}, func(s surface.Context, _ graphic.Resolver) bool {
		hit = s.IsPointInPath(5, 5)
		return hit
	}, nil)

	if !hit {
		t.Error("fill interceptor did not hit the background-filled rect")
	}
	if got := rec.Count("Fill") + rec.Count("Stroke"); got != 0 {
		t.Errorf("paint calls during pick = %d, want 0", got)
	}
}
