package visibility

import "testing"

func TestKindFromEvent(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		ok   bool
	}{
		{"show", Show, true},
		{"SHOW", Show, true},
		{"Hide", Hide, true},
		{"showpart", ShowPart, true},
		{"ShowPart", ShowPart, true},
		{"hidepart", HidePart, true},
		{"click", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		kind, ok := KindFromEvent(c.name)
		if ok != c.ok || (ok && kind != c.kind) {
			t.Errorf("KindFromEvent(%q) = (%v, %v), want (%v, %v)", c.name, kind, ok, c.kind, c.ok)
		}
	}
}

func TestKindModeMapping(t *testing.T) {
	// Full containment is the boundary of interest for show/hidepart;
	// any-overlap for hide/showpart.
	if Show.mode() != ModeTotal || HidePart.mode() != ModeTotal {
		t.Error("show and hidepart must use the total evaluator")
	}
	if Hide.mode() != ModePartial || ShowPart.mode() != ModePartial {
		t.Error("hide and showpart must use the partial evaluator")
	}
}

func TestKindEdgeMapping(t *testing.T) {
	if !Show.firesOn() || !ShowPart.firesOn() {
		t.Error("show and showpart fire on the becoming-visible edge")
	}
	if Hide.firesOn() || HidePart.firesOn() {
		t.Error("hide and hidepart fire on the becoming-hidden edge")
	}
}

func TestKindNames(t *testing.T) {
	want := map[Kind]string{Show: "show", Hide: "hide", ShowPart: "showpart", HidePart: "hidepart"}
	for kind, name := range want {
		if kind.String() != name {
			t.Errorf("%d.String() = %q, want %q", kind, kind.String(), name)
		}
	}
}
