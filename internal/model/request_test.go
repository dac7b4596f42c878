package model

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"only blanks", "\n   \n\t\n", nil},
		{"single", "TODO", []string{"TODO"}},
		{"trims and drops blanks", "  foo  \n\nbar\n   \nbaz\n", []string{"foo", "bar", "baz"}},
		{"keeps order", "c\na\nb", []string{"c", "a", "b"}},
		{"keeps inner spaces", "hello world\n two  words ", []string{"hello world", "two  words"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
