package models

// ReportInfo is one financial-report line item for one corporation and one
// fiscal year. Every field is a string straight from the API; unresolved
// fields hold "" rather than a null of any kind. Amounts are not parsed.
type ReportInfo struct {
	CorpCode     string
	CorpName     string
	BizRepr      string
	BsnsYear     string
	FsDiv        string
	StockCode    string
	OprtPrfit    string
	ThstrmNtic   string
	FnclTotasset string
}
