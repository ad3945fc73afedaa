package dto

type DashboardStatsResponse struct {
	TotalDonors      int64               `json:"total_donors"`
	TotalRequests    int64               `json:"total_requests"`
	PendingRequests  int64               `json:"pending_requests"`
	OpenEmergencies  int64               `json:"open_emergencies"`
	LowStockCount    int64               `json:"low_stock_count"`
	InventorySummary []InventoryResponse `json:"inventory_summary"`
}
