package auth

import "mandi-backend/internal/models"

// View names one ledger screen the frontend can open.
type View string

const (
	ViewDirectInbound  View = "direct_inbound"
	ViewAuction        View = "auction"
	ViewAvailableStock View = "available_stock"
	ViewOutPending     View = "out_pending"
	ViewGardenLedger   View = "garden_ledger"
	ViewOutbound       View = "outbound"
	ViewVehicles       View = "vehicles"
	ViewEmployees      View = "employees"
	ViewReports        View = "reports"
)

// ViewsFor maps a role to the ordered list of ledger views it may open.
// The returned list is the single source of truth for access checks
// (RequireView). An unknown role gets an empty list, not an error.
func ViewsFor(role models.UserRole) []View {
	switch role {
	case models.RoleVallamChennai:
		return []View{ViewDirectInbound, ViewAuction, ViewAvailableStock, ViewOutPending}
	case models.RoleKerala:
		return []View{ViewGardenLedger, ViewOutbound, ViewVehicles}
	case models.RoleCEO:
		return []View{
			ViewDirectInbound, ViewAuction, ViewAvailableStock, ViewOutPending,
			ViewGardenLedger, ViewOutbound, ViewVehicles, ViewEmployees, ViewReports,
		}
	default:
		return []View{}
	}
}
