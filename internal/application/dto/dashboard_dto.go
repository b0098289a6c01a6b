package dto

// DashboardResponse agregados para o painel inicial.
type DashboardResponse struct {
	MovementsByStatus map[string]int      `json:"movements_by_status"`
	MovementsByKind   map[string]int      `json:"movements_by_kind"`
	StockByLocation   []LocationStockDTO  `json:"stock_by_location"`
	TopDelivered      []VariantCounterDTO `json:"top_delivered_30d"`
}

// LocationStockDTO total de unidades em estoque por unidade organizacional.
type LocationStockDTO struct {
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Total        int    `json:"total"`
	Reserved     int    `json:"reserved"`
}

// VariantCounterDTO contador por variação (ranking de entregas).
type VariantCounterDTO struct {
	ItemVariantID string `json:"item_variant_id"`
	Quantity      int    `json:"quantity"`
}
