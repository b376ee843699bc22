package policy

import "testing"

func TestLoadBuiltins(t *testing.T) {
	for _, name := range []string{"default", "strict"} {
		p, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if p.Name != name {
			t.Errorf("Load(%q).Name = %q", name, p.Name)
		}
		if p.MinLength <= 0 {
			t.Errorf("%s: MinLength = %d, want > 0", name, p.MinLength)
		}
		if len(p.Denylist) == 0 {
			t.Errorf("%s: empty denylist", name)
		}
		if len(p.WeakPatterns) == 0 {
			t.Errorf("%s: empty weak patterns", name)
		}
		if len(p.Ladder.StrongBars) == 0 {
			t.Errorf("%s: ladder has no strong bars", name)
		}
	}
}

func TestLoadUnknown(t *testing.T) {
	if _, err := Load("nope"); err == nil {
		t.Error("Load(\"nope\") succeeded, want error")
	}
}

func TestAvailable(t *testing.T) {
	names := Available()
	seen := map[string]bool{}
	for _, n := range names {
		seen[n] = true
	}
	if !seen["default"] || !seen["strict"] {
		t.Errorf("Available() = %v, want default and strict", names)
	}
}

func TestDefaultThresholds(t *testing.T) {
	p, err := Load("default")
	if err != nil {
		t.Fatal(err)
	}
	if p.MinLength != 6 {
		t.Errorf("MinLength = %d, want 6", p.MinLength)
	}
	if p.StrongOverride.MinLength != 12 || p.StrongOverride.MinDigits != 2 {
		t.Errorf("unexpected strong override bar: %+v", p.StrongOverride)
	}
	if p.CollapseMedium {
		t.Error("default policy should keep the 4-label scheme")
	}
	if p.DenylistLabel != "very_weak" {
		t.Errorf("DenylistLabel = %q, want very_weak", p.DenylistLabel)
	}
}

func TestStrictCollapsesMedium(t *testing.T) {
	p, err := Load("strict")
	if err != nil {
		t.Fatal(err)
	}
	if !p.CollapseMedium {
		t.Error("strict policy should collapse medium into weak")
	}
	if p.StrongOverride.MinLower != 3 {
		t.Errorf("strict override MinLower = %d, want 3", p.StrongOverride.MinLower)
	}
}
