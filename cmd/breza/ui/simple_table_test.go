package ui

import (
	"strings"
	"testing"
)

func TestSimpleTableView(t *testing.T) {
	tbl := NewSimpleTable("Breza Catalog", []string{"ID", "Name", "Price"})
	tbl.AddRow("1", "Acid Tee", "$59.99")
	tbl.AddRow("2", "Hoodie", "$89.99")

	out := tbl.View(DefaultStyles())

	for _, want := range []string{"Breza Catalog", "ID", "Name", "Price", "Acid Tee", "$89.99"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestSimpleTableEmpty(t *testing.T) {
	tbl := NewSimpleTable("Empty", []string{"A", "B"})
	if out := tbl.View(DefaultStyles()); out != "" {
		t.Errorf("empty table should render nothing, got %q", out)
	}
}

func TestSimpleTableNoTitle(t *testing.T) {
	tbl := NewSimpleTable("", []string{"A"})
	tbl.AddRow("x")
	out := tbl.View(DefaultStyles())
	if !strings.Contains(out, "x") {
		t.Errorf("row missing from untitled table:\n%s", out)
	}
}

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").IsDark {
		t.Error("dark theme must be dark")
	}
	if ThemeByName("light").IsDark {
		t.Error("light theme must not be dark")
	}
	// Unrecognized names fall through to detection, never panic.
	_ = ThemeByName("solarized")
	_ = ThemeByName("auto")
}

func TestDetectThemeColorFGBG(t *testing.T) {
	t.Setenv("BREZA_LIGHT_MODE", "")

	t.Setenv("COLORFGBG", "0;15")
	if DetectTheme().IsDark {
		t.Error("COLORFGBG 0;15 should detect light")
	}

	t.Setenv("COLORFGBG", "15;0")
	if !DetectTheme().IsDark {
		t.Error("COLORFGBG 15;0 should detect dark")
	}

	t.Setenv("COLORFGBG", "garbage")
	_ = DetectTheme()
}

func TestRenderDivider(t *testing.T) {
	s := DefaultStyles()
	if out := s.RenderDivider(0); out == "" {
		t.Error("divider must render something even at zero width")
	}
	if out := s.RenderDivider(10); !strings.Contains(out, "─") {
		t.Errorf("divider missing rule character: %q", out)
	}
}

func TestLogoNonEmpty(t *testing.T) {
	if Logo(DefaultStyles()) == "" {
		t.Error("logo must not be empty")
	}
}
