package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"
)

func TestWithModuleInfo(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.4",
		Main:      debug.Module{Path: "github.com/kamal-hamza/gallery", Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2024-05-01T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	got := buildInfo{}.withModuleInfo(info)
	want := buildInfo{
		Version:   "v1.2.0",
		Commit:    "0123456789abcdef0123",
		BuildTime: "2024-05-01T10:00:00Z",
		GoVersion: "go1.25.4",
		Modified:  true,
	}
	if got != want {
		t.Errorf("withModuleInfo = %+v, want %+v", got, want)
	}
}

func TestWithModuleInfo_LinkerValuesWin(t *testing.T) {
	info := &debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "fromvcs"}},
	}

	got := buildInfo{Version: "v9.9.9", Commit: "stamped"}.withModuleInfo(info)
	if got.Version != "v9.9.9" || got.Commit != "stamped" {
		t.Errorf("expected ldflags values to be kept, got %+v", got)
	}

	devel := buildInfo{}.withModuleInfo(info)
	if devel.Version != "" {
		t.Errorf("(devel) should not be used as a version, got %q", devel.Version)
	}
}

func TestPrintBuild(t *testing.T) {
	b := buildInfo{Version: "v1.0.0", Commit: "0123456789abcdef", GoVersion: "go1.25.4", Modified: true}

	var short bytes.Buffer
	printBuild(&short, b, true)
	if short.String() != "v1.0.0\n" {
		t.Errorf("short output = %q", short.String())
	}

	var full bytes.Buffer
	printBuild(&full, b, false)
	out := full.String()
	for _, want := range []string{"gallery v1.0.0", "0123456789ab (dirty)", "go1.25.4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "Built") {
		t.Error("empty build time should be omitted")
	}
}

func TestCurrentBuild_DefaultsToDev(t *testing.T) {
	b := currentBuild()
	if b.Version == "" {
		t.Error("expected a version")
	}
	if b.GoVersion == "" {
		t.Error("expected a Go version")
	}
}
