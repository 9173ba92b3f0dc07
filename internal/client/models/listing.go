package models

// Resource names a paginated listing endpoint.
type Resource string

const (
	ResourceInventory   Resource = "inventory"
	ResourceMovements   Resource = "movements"
	ResourcePurchases   Resource = "purchases"
	ResourceSuppliers   Resource = "suppliers"
	ResourceClients     Resource = "clients"
	ResourceReports     Resource = "reports"
	ResourceAlerts      Resource = "alerts"
	ResourceProjections Resource = "projections"
)

type Movement struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Product     string  `json:"product"`
	ProductCode string  `json:"productCode"`
	Type        string  `json:"type"`
	Qty         int     `json:"qty"`
	BalancePrev int     `json:"balancePrev"`
	BalanceNew  int     `json:"balanceNew"`
	User        string  `json:"user"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	UnitCost    float64 `json:"unitCost,omitempty"`
}

type PurchaseOrder struct {
	ID           int64   `json:"id"`
	Code         string  `json:"code"`
	Date         string  `json:"date"`
	Supplier     string  `json:"supplier"`
	Items        int     `json:"items"`
	Subtotal     float64 `json:"subtotal"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
	DeliveryDate string  `json:"deliveryDate"`
}

type Supplier struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	TaxID        string  `json:"ruc"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	Category     string  `json:"category"`
	Products     int     `json:"products"`
	LastPurchase string  `json:"lastPurchase"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
}

type Client struct {
	Code     string   `json:"code"`
	Name     string   `json:"name"`
	TaxID    string   `json:"ruc"`
	City     string   `json:"city"`
	Country  string   `json:"country"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Type     string   `json:"type"`
	Orders   int      `json:"orders"`
	LastSale string   `json:"lastSale"`
	Total    float64  `json:"total"`
	Credit   *float64 `json:"credit"`
	Status   string   `json:"status"`
}

type Report struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Period    string `json:"period"`
	Generated string `json:"generated"`
	User      string `json:"user"`
	Size      string `json:"size"`
	Downloads int    `json:"downloads"`
	Status    string `json:"status"`
}

type Alert struct {
	ID          string `json:"id"`
	ProductCode string `json:"productCode"`
	Product     string `json:"product"`
	Level       string `json:"level"`
	Message     string `json:"message"`
	CreatedAt   string `json:"createdAt"`
	Status      string `json:"status"`
}

// Projection is a stock forecast for one product.
type Projection struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	Forecast int    `json:"forecast"`
	Days     int    `json:"days"`
	Action   string `json:"action"`
}

// DashboardSummary feeds the stat cards of the dashboard.
type DashboardSummary struct {
	TotalProducts    int        `json:"totalProducts"`
	LowStockProducts int        `json:"lowStockProducts"`
	MovementsToday   int        `json:"movementsToday"`
	PendingOrders    int        `json:"pendingOrders"`
	InventoryValue   float64    `json:"inventoryValue"`
	RecentMovements  []Movement `json:"recentMovements"`
}
