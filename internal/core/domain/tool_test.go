// internal/core/domain/tool_test.go
package domain

import (
	"testing"

	"webchain/internal/testutil"
)

func TestParseToolState(t *testing.T) {
	tests := []struct {
		input string
		want  ToolState
		ok    bool
	}{
		{"latest", StateLatest, true},
		{"outdated", StateOutdated, true},
		{"Not Installed", StateNotInstalled, true},
		{" not supported ", StateNotSupported, true},
		{"broken", ToolState("broken"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseToolState(tt.input)
			testutil.AssertEqual(t, got, tt.want, "state")
			testutil.AssertEqual(t, ok, tt.ok, "valid")
		})
	}
}

func TestVersion(t *testing.T) {
	absent := NewVersion("")
	present := NewVersion("2.10.0")

	testutil.AssertFalse(t, absent.Valid, "empty token is absent")
	testutil.AssertEqual(t, absent.String(), "-", "absent renders as dash")
	testutil.AssertTrue(t, present.Valid, "token is present")
	testutil.AssertEqual(t, present.String(), "2.10.0", "present value")
}

func TestAction_String(t *testing.T) {
	update := Action{Tool: "subfinder", Kind: ActionUpdate, Current: NewVersion("2.9.0"), Latest: NewVersion("2.10.0")}
	install := Action{Tool: "katana", Kind: ActionInstall}

	testutil.AssertEqual(t, update.String(), "subfinder (update 2.9.0 -> 2.10.0)", "update")
	testutil.AssertEqual(t, install.String(), "katana (install)", "install")
}

func TestPlan_Empty(t *testing.T) {
	testutil.AssertTrue(t, Plan{Missing: []string{"naabu"}}.Empty(), "missing tools are not actions")
	testutil.AssertFalse(t, Plan{Actions: []Action{{Tool: "dnsx", Kind: ActionInstall}}}.Empty(), "plan with actions")
}
