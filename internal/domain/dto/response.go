package dto

// Metadata is the envelope metadata shared by the commodities and
// aggregate endpoints.
type Metadata struct {
	Period     string `json:"period" example:"5d"`
	LastUpdate string `json:"last_update" example:"2024-01-03T18:04:05+08:00"`
}

// SpreadMetadata extends Metadata with the number of spread points.
type SpreadMetadata struct {
	Period     string `json:"period" example:"5d"`
	DataPoints int    `json:"data_points" example:"5"`
	LastUpdate string `json:"last_update" example:"2024-01-03T18:04:05+08:00"`
}

// FxMetadata extends Metadata with the currency pair.
type FxMetadata struct {
	Pair       string `json:"pair" example:"USD/JPY"`
	Period     string `json:"period" example:"5d"`
	LastUpdate string `json:"last_update" example:"2024-01-03T18:04:05+08:00"`
}

// BondSpreadResponse is the envelope for GET /api/bond-spread.
type BondSpreadResponse struct {
	Success  bool           `json:"success"`
	Data     []SpreadRow    `json:"data"`
	Metadata SpreadMetadata `json:"metadata"`
}

// FxResponse is the envelope for GET /api/fx.
type FxResponse struct {
	Success  bool       `json:"success"`
	Data     []FxRow    `json:"data"`
	Metadata FxMetadata `json:"metadata"`
}

// CommoditiesResponse is the envelope for GET /api/commodities.
type CommoditiesResponse struct {
	Success  bool         `json:"success"`
	Data     CommoditySet `json:"data"`
	Metadata Metadata     `json:"metadata"`
}

// AllData merges the three dashboard series under named keys.
type AllData struct {
	BondSpread  []SpreadRow  `json:"bondSpread"`
	Fx          []FxRow      `json:"fx"`
	Commodities CommoditySet `json:"commodities"`
}

// AllResponse is the envelope for GET /api/all.
type AllResponse struct {
	Success  bool     `json:"success"`
	Data     AllData  `json:"data"`
	Metadata Metadata `json:"metadata"`
}

// RootResponse describes the service at GET /.
type RootResponse struct {
	Message   string            `json:"message" example:"finwatch API"`
	Version   string            `json:"version" example:"1.0.0"`
	Status    string            `json:"status" example:"running"`
	Endpoints map[string]string `json:"endpoints"`
}

// HealthResponse is the liveness payload at GET /health.
type HealthResponse struct {
	Status    string `json:"status" example:"healthy"`
	Timestamp string `json:"timestamp" example:"2024-01-03T18:04:05+08:00"`
}
