package toolcheck

import (
	"reflect"
	"testing"

	"webchain/internal/core/domain"
	"webchain/internal/testutil"
)

func TestReconcile_ListingScenario(t *testing.T) {
	plan := Reconcile(Parse(testutil.FixturePdtmListing), domain.RequiredTools)

	testutil.AssertEqual(t, len(plan.Actions), 1, "exactly one action")
	testutil.AssertEqual(t, len(plan.Missing), 0, "nothing missing")

	a := plan.Actions[0]
	testutil.AssertEqual(t, a.Tool, "subfinder", "tool")
	testutil.AssertEqual(t, a.Kind, domain.ActionUpdate, "kind")
	testutil.AssertEqual(t, a.Current.Value, "2.9.0", "current")
	testutil.AssertEqual(t, a.Latest.Value, "2.10.0", "latest")
}

func TestReconcile_States(t *testing.T) {
	statuses := map[string]domain.ToolStatus{
		"subfinder": {Name: "subfinder", State: domain.StateLatest},
		"dnsx":      {Name: "dnsx", State: domain.StateNotInstalled},
		"naabu":     {Name: "naabu", State: domain.StateNotSupported},
		"katana":    {Name: "katana", State: domain.StateOutdated, Current: domain.NewVersion("1.0.0"), Latest: domain.NewVersion("1.2.2")},
	}

	plan := Reconcile(statuses, domain.RequiredTools)

	want := []domain.Action{
		{Tool: "dnsx", Kind: domain.ActionInstall},
		{Tool: "katana", Kind: domain.ActionUpdate, Current: domain.NewVersion("1.0.0"), Latest: domain.NewVersion("1.2.2")},
	}
	testutil.AssertEqual(t, plan.Actions, want, "actions in required order")
	testutil.AssertEqual(t, plan.Missing, []string{"httpx"}, "httpx absent from listing")
}

func TestReconcile_Deterministic(t *testing.T) {
	statuses := Parse(testutil.FixturePdtmListing)
	delete(statuses, "katana")
	statuses["httpx"] = domain.ToolStatus{Name: "httpx", State: domain.StateNotInstalled}

	first := Reconcile(statuses, domain.RequiredTools)
	for i := 0; i < 20; i++ {
		if got := Reconcile(statuses, domain.RequiredTools); !reflect.DeepEqual(got, first) {
			t.Fatalf("iteration %d: plan changed: %+v vs %+v", i, got, first)
		}
	}
}

func TestReconcile_CustomRequired(t *testing.T) {
	plan := Reconcile(map[string]domain.ToolStatus{}, []string{"nuclei"})
	testutil.AssertEqual(t, plan.Missing, []string{"nuclei"}, "custom required list")
	testutil.AssertTrue(t, plan.Empty(), "no actions")
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"install pdtm tool", InstallCommand("httpx"), []string{"pdtm", "-i", "httpx"}},
		{"update pdtm tool", UpdateCommand("katana"), []string{"pdtm", "-u", "katana"}},
		{"install port scanner", InstallCommand("naabu"), []string{"sudo", "apt", "install", "naabu", "-y"}},
		{"update port scanner", UpdateCommand("naabu"), []string{"naabu", "-up"}},
		{"action install", CommandFor(domain.Action{Tool: "dnsx", Kind: domain.ActionInstall}), []string{"pdtm", "-i", "dnsx"}},
		{"action update", CommandFor(domain.Action{Tool: "subfinder", Kind: domain.ActionUpdate}), []string{"pdtm", "-u", "subfinder"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.got, tt.want, "argv")
		})
	}
}
