package dart

import (
	"strings"

	"dartcsv/internal/models"

	"github.com/tidwall/gjson"
)

// Key spellings per logical field. The report endpoints have not been
// consistent across years and statement variants, so each field is resolved
// against every spelling seen in the wild, first non-empty wins.
var (
	bizReprKeys    = []string{"biz_repr", "biz_repr_nm", "report_nm"}
	bsnsYearKeys   = []string{"bsns_year", "biz_year"}
	fsDivKeys      = []string{"fs_div", "sj_div"}
	stockCodeKeys  = []string{"stock_code", "stock_cd"}
	oprtPrfitKeys  = []string{"oprt_prfit", "oprt_prft", "op_prfit"}
	thstrmNticKeys = []string{"thstrm_ntic", "thstrm_ntincm", "ntic"}
	totassetKeys   = []string{"fncl_totasset", "fncl_totast", "totasset"}
)

// resolve returns the first non-empty trimmed value among the candidate
// keys, the trimmed fallback if none match, "" as a last resort.
func resolve(item gjson.Result, keys []string, fallback string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(item.Get(k).String()); v != "" {
			return v
		}
	}
	return strings.TrimSpace(fallback)
}

// newReportInfo maps one list item onto the fixed report schema. The catalog
// entry supplies the corp code and name when the payload omits them.
func newReportInfo(item gjson.Result, corp models.CorpInfo) models.ReportInfo {
	return models.ReportInfo{
		CorpCode:     resolve(item, []string{"corp_code"}, corp.CorpCode),
		CorpName:     resolve(item, []string{"corp_name"}, corp.CorpName),
		BizRepr:      resolve(item, bizReprKeys, ""),
		BsnsYear:     resolve(item, bsnsYearKeys, ""),
		FsDiv:        resolve(item, fsDivKeys, ""),
		StockCode:    resolve(item, stockCodeKeys, ""),
		OprtPrfit:    resolve(item, oprtPrfitKeys, ""),
		ThstrmNtic:   resolve(item, thstrmNticKeys, ""),
		FnclTotasset: resolve(item, totassetKeys, ""),
	}
}
