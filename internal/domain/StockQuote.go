package domain

// DailyQuote is one trading day of a listed stock, as returned by the TWSE
// daily quote endpoint. Prices are already numeric; Date keeps the exchange's
// ROC-calendar formatting ("113/01/02") untouched.
type DailyQuote struct {
	Date         string  `json:"date"`
	Volume       float64 `json:"volume"`
	Turnover     float64 `json:"turnover"`
	Open         float64 `json:"open"`
	High         float64 `json:"high"`
	Low          float64 `json:"low"`
	Close        float64 `json:"close"`
	Change       string  `json:"change"`
	Transactions float64 `json:"transactions"`
}

// StockQuoteSeries is one month of daily quotes for a single stock, the
// series a candlestick chart renders.
type StockQuoteSeries struct {
	StockNo string       `json:"stock_no"`
	Year    int          `json:"year"`
	Month   int          `json:"month"`
	Quotes  []DailyQuote `json:"quotes"`
}
