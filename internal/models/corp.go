package models

// CorpInfo is one registered corporation from the DART corpCode catalog.
// StockCode is empty for unlisted companies. ModifyDate stays in the
// YYYYMMDD form the registry supplies.
type CorpInfo struct {
	CorpCode   string `xml:"corp_code"`
	CorpName   string `xml:"corp_name"`
	StockCode  string `xml:"stock_code"`
	ModifyDate string `xml:"modify_date"`
}
