package models

// AnalyzeForm is the multipart form accompanying an uploaded tradebook.
// Broker and TradeType are optional overrides for when auto-detection fails;
// broker values match the SupportedBrokers keys ("zerodha", "kotak_equity",
// "kotak_derivatives", "icici"; bare "kotak" defaults to equity).
type AnalyzeForm struct {
	Broker    string `form:"broker"`
	TradeType string `form:"trade_type"`
}

// TradeFilter narrows and orders the trade table on analysis fetches,
// mirroring the dashboard's filter controls.
type TradeFilter struct {
	// Result: "" (all), "winners", "losers".
	Result string `form:"result"`
	// Grade band: "" (all), "a" (80+), "b" (60-79), "c" (50-59), "df" (<50).
	Grade string `form:"grade"`
	// Sort: "" or "date" (latest first), "pnl", "-pnl", "score".
	Sort string `form:"sort"`
}
