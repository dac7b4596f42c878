package ui

import "testing"

func TestByNameCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Vampire", "vampire", "VAMPIRE"} {
		theme, ok := ByName(name)
		if !ok {
			t.Errorf("ByName(%q) not found", name)
			continue
		}
		if theme.Name != "Vampire" {
			t.Errorf("ByName(%q).Name = %q", name, theme.Name)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, ok := ByName("Solarized"); ok {
		t.Error("ByName(\"Solarized\") = true, want false")
	}
}

func TestDefaultTheme(t *testing.T) {
	if got := Default().Name; got != "Dark Mode" {
		t.Errorf("Default().Name = %q", got)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 7 {
		t.Fatalf("len = %d, want 7", len(names))
	}
	if names[0] != "Modern Blue" {
		t.Errorf("names[0] = %q", names[0])
	}
	for _, name := range names {
		if _, ok := ByName(name); !ok {
			t.Errorf("Names() lists %q but ByName misses it", name)
		}
	}
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"vampir", "Vampire"},
		{"dark", "Dark Mode"},
		{"Drak Mode", "Dark Mode"},
		{"purple", "Purple Pro"},
		{"qqqqqqqq", ""},
	}
	for _, tt := range tests {
		if got := Suggest(tt.in); got != tt.want {
			t.Errorf("Suggest(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
