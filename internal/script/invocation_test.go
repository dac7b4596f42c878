package script

import (
	"reflect"
	"testing"

	"github.com/filefy/wordsearch-tui/internal/model"
)

func TestPosixInvocationArgs(t *testing.T) {
	tests := []struct {
		name string
		req  model.SearchRequest
		want []string
	}{
		{
			"defaults",
			model.SearchRequest{},
			[]string{"File-FY.sh"},
		},
		{
			"path only",
			model.SearchRequest{SearchPath: "/tmp/src"},
			[]string{"File-FY.sh", "-p", "/tmp/src"},
		},
		{
			"blank path omitted",
			model.SearchRequest{SearchPath: "   "},
			[]string{"File-FY.sh"},
		},
		{
			"all flags",
			model.SearchRequest{SearchPath: ".", CaseSensitive: true, Verbose: true},
			[]string{"File-FY.sh", "-p", ".", "-c", "-v"},
		},
	}

	inv := PosixInvocation{}
	if inv.Command() != "bash" {
		t.Fatalf("Command() = %q, want bash", inv.Command())
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inv.Args(tt.req)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Args() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowsInvocationArgs(t *testing.T) {
	inv := WindowsInvocation{}
	if inv.Command() != "powershell" {
		t.Fatalf("Command() = %q, want powershell", inv.Command())
	}

	req := model.SearchRequest{SearchPath: `C:\src`, CaseSensitive: true, Verbose: true}
	want := []string{
		"-ExecutionPolicy", "Bypass", "-File", "File-FY.ps1",
		"-SearchPath", `C:\src`, "-CaseSensitive", "-Verbose",
	}
	if got := inv.Args(req); !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}

	bare := inv.Args(model.SearchRequest{})
	wantBare := []string{"-ExecutionPolicy", "Bypass", "-File", "File-FY.ps1"}
	if !reflect.DeepEqual(bare, wantBare) {
		t.Errorf("Args() = %v, want %v", bare, wantBare)
	}
}

func TestForGOOS(t *testing.T) {
	if _, ok := ForGOOS("windows").(WindowsInvocation); !ok {
		t.Error("ForGOOS(windows) should pick the PowerShell script")
	}
	if _, ok := ForGOOS("linux").(PosixInvocation); !ok {
		t.Error("ForGOOS(linux) should pick the bash script")
	}
	if _, ok := ForGOOS("darwin").(PosixInvocation); !ok {
		t.Error("ForGOOS(darwin) should pick the bash script")
	}
}
