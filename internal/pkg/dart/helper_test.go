package dart

import (
	"dartcsv/internal/models"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"
)

var _ = Describe("resolve", func() {
	It("returns the first non-empty candidate", func() {
		item := gjson.Parse(`{"oprt_prfit":"", "oprt_prft":" 1000000 "}`)
		Expect(resolve(item, oprtPrfitKeys, "")).To(Equal("1000000"))
	})

	It("honors candidate order", func() {
		item := gjson.Parse(`{"oprt_prfit":"111", "oprt_prft":"222"}`)
		Expect(resolve(item, oprtPrfitKeys, "")).To(Equal("111"))
	})

	It("falls back when no candidate matches", func() {
		item := gjson.Parse(`{"unrelated":"x"}`)
		Expect(resolve(item, oprtPrfitKeys, "backup")).To(Equal("backup"))
	})

	It("returns the empty string when nothing resolves", func() {
		item := gjson.Parse(`{}`)
		Expect(resolve(item, oprtPrfitKeys, "")).To(Equal(""))
	})

	It("treats whitespace-only values as empty", func() {
		item := gjson.Parse(`{"fs_div":"   ", "sj_div":"BS"}`)
		Expect(resolve(item, fsDivKeys, "")).To(Equal("BS"))
	})
})

var _ = Describe("newReportInfo", func() {
	corp := models.CorpInfo{CorpCode: "00126380", CorpName: "Samsung Electronics"}

	It("never produces a null-like field", func() {
		report := newReportInfo(gjson.Parse(`{}`), corp)

		Expect(report.CorpCode).To(Equal("00126380"))
		Expect(report.CorpName).To(Equal("Samsung Electronics"))
		Expect(report.BizRepr).To(Equal(""))
		Expect(report.BsnsYear).To(Equal(""))
		Expect(report.FsDiv).To(Equal(""))
		Expect(report.StockCode).To(Equal(""))
		Expect(report.OprtPrfit).To(Equal(""))
		Expect(report.ThstrmNtic).To(Equal(""))
		Expect(report.FnclTotasset).To(Equal(""))
	})

	It("prefers payload values over the catalog fallback", func() {
		report := newReportInfo(gjson.Parse(`{"corp_name":"삼성전자"}`), corp)
		Expect(report.CorpName).To(Equal("삼성전자"))
	})
})
