package domain

// DashboardStats is the aggregate snapshot shown on the firm's dashboard.
type DashboardStats struct {
	TotalLeads       int     `db:"total_leads" json:"total_leads"`
	OpenLeads        int     `db:"open_leads" json:"open_leads"`
	TotalClients     int     `db:"total_clients" json:"total_clients"`
	ActiveProjects   int     `db:"active_projects" json:"active_projects"`
	DraftInvoices    int     `db:"draft_invoices" json:"draft_invoices"`
	UnpaidInvoices   int     `db:"unpaid_invoices" json:"unpaid_invoices"`
	OutstandingValue float64 `db:"outstanding_value" json:"outstanding_value"`
	BilledThisMonth  float64 `db:"billed_this_month" json:"billed_this_month"`
	IRNsGenerated    int     `db:"irns_generated" json:"irns_generated"`
	IRNsCancelled    int     `db:"irns_cancelled" json:"irns_cancelled"`
}
