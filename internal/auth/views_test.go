package auth

import (
	"testing"

	"mandi-backend/internal/models"
)

func TestViewsForCEO(t *testing.T) {
	want := []View{
		ViewDirectInbound, ViewAuction, ViewAvailableStock, ViewOutPending,
		ViewGardenLedger, ViewOutbound, ViewVehicles, ViewEmployees, ViewReports,
	}

	got := ViewsFor(models.RoleCEO)
	if len(got) != 9 {
		t.Fatalf("ceo views: got %d entries, want 9", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ceo views[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestViewsForVallamChennai(t *testing.T) {
	want := []View{ViewDirectInbound, ViewAuction, ViewAvailableStock, ViewOutPending}

	got := ViewsFor(models.RoleVallamChennai)
	if len(got) != len(want) {
		t.Fatalf("vallam_chennai views: got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vallam_chennai views[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestViewsForKerala(t *testing.T) {
	want := []View{ViewGardenLedger, ViewOutbound, ViewVehicles}

	got := ViewsFor(models.RoleKerala)
	if len(got) != len(want) {
		t.Fatalf("kerala views: got %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("kerala views[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestViewsForUnknownRoleIsEmpty(t *testing.T) {
	for _, role := range []models.UserRole{"", "admin", "CEO", "vallam"} {
		if got := ViewsFor(role); len(got) != 0 {
			t.Errorf("ViewsFor(%q) = %v, want empty", role, got)
		}
	}
}
