package styles

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func stripANSI(s string) string {
	re := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return re.ReplaceAllString(s, "")
}

var testSpec = GradientSpec{
	From: lipgloss.Color("#ff0000"),
	To:   lipgloss.Color("#0000ff"),
}

func TestRenderPreservesText(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"single char", "A"},
		{"plain word", "Avocado"},
		{"unicode", "crème brûlée"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(testSpec.Render(tt.text))
			if got != tt.text {
				t.Errorf("Render(%q) stripped = %q, want original text", tt.text, got)
			}
		})
	}
}

func TestRenderBoldPreservesText(t *testing.T) {
	got := stripANSI(testSpec.RenderBold("Tomato"))
	if got != "Tomato" {
		t.Errorf("RenderBold stripped = %q, want %q", got, "Tomato")
	}
}

func TestStops(t *testing.T) {
	stops := testSpec.Stops(5)
	if len(stops) != 5 {
		t.Fatalf("Stops(5) returned %d colors", len(stops))
	}
	for i, c := range stops {
		if !strings.HasPrefix(string(c), "#") || len(string(c)) != 7 {
			t.Errorf("stop %d = %q, want hex color", i, c)
		}
	}
	if stops[0] != lipgloss.Color("#ff0000") {
		t.Errorf("first stop = %q, want the From color", stops[0])
	}
	if stops[4] != lipgloss.Color("#0000ff") {
		t.Errorf("last stop = %q, want the To color", stops[4])
	}
}

func TestAtEndpoints(t *testing.T) {
	if got := testSpec.At(0); got != lipgloss.Color("#ff0000") {
		t.Errorf("At(0) = %q, want From color", got)
	}
	if got := testSpec.At(1); got != lipgloss.Color("#0000ff") {
		t.Errorf("At(1) = %q, want To color", got)
	}
	// Out-of-range inputs clamp instead of extrapolating.
	if got := testSpec.At(-2); got != testSpec.At(0) {
		t.Errorf("At(-2) = %q, want At(0)", got)
	}
	if got := testSpec.At(3); got != testSpec.At(1) {
		t.Errorf("At(3) = %q, want At(1)", got)
	}
}

func TestForVariant(t *testing.T) {
	if For(VariantDark).Variant != VariantDark {
		t.Error("For(dark) returned wrong variant")
	}
	if For(VariantLight).Variant != VariantLight {
		t.Error("For(light) returned wrong variant")
	}
	if For("bogus").Variant != VariantDark {
		t.Error("unknown variant should fall back to dark")
	}
	if VariantDark.Other() != VariantLight || VariantLight.Other() != VariantDark {
		t.Error("Other() did not flip the variant")
	}
}
