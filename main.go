package main

import (
	"fmt"
	"log"
	"strconv"

	"dartcsv/internal/config"
	"dartcsv/internal/models"
	"dartcsv/internal/pkg/csvfile"
	"dartcsv/internal/pkg/dart"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.DartAPIKey == "" {
		fmt.Println("DART_API_KEY is not set.")
		fmt.Println("Request a key at https://opendart.fss.or.kr and put DART_API_KEY=<key> in .env")
		return
	}

	client := dart.New(cfg.DartAPIKey)

	fmt.Println("Fetching corporation catalog")
	companies, err := client.GetCompanies()
	if err != nil {
		log.Printf("failed to fetch corporation catalog: %v", err)
		companies = nil
	}

	if err := csvfile.WriteCorpCodes(csvfile.CorpCodePath, companies); err != nil {
		log.Fatalf("Failed to write %s: %v", csvfile.CorpCodePath, err)
	}
	fmt.Printf("Wrote %d corporations to %s\n", len(companies), csvfile.CorpCodePath)
	printCorpSamples(companies)

	corps, err := csvfile.ReadCorpCodes(csvfile.CorpCodePath)
	if err != nil {
		log.Printf("failed to read corporation catalog back: %v", err)
		return
	}

	if len(corps) == 0 {
		fmt.Println("No corporations to query, skipping financial reports")
		return
	}

	if limit := corpLimit(cfg.CorpLimit, len(corps)); limit < len(corps) {
		corps = corps[:limit]
	}

	fmt.Printf("Fetching %s financial reports for %d corporations\n", cfg.FiscalYear, len(corps))
	reports := client.GetFinancialReports(cfg.FiscalYear, corps)
	if len(reports) == 0 {
		fmt.Println("No report data collected")
		return
	}

	reportPath := csvfile.ReportPath(cfg.FiscalYear)
	if err := csvfile.WriteReports(reportPath, reports); err != nil {
		log.Fatalf("Failed to write %s: %v", reportPath, err)
	}
	fmt.Printf("Wrote %d report rows to %s\n", len(reports), reportPath)
	printReportSamples(reports)
}

// corpLimit caps phase two via DART_CORP_LIMIT so a full catalog run does not
// take hours at the inter-request rate. Unset or invalid means no cap.
func corpLimit(raw string, total int) int {
	if raw == "" {
		return total
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		log.Printf("failed to parse DART_CORP_LIMIT %q, querying all %d corporations", raw, total)
		return total
	}

	return limit
}

func printCorpSamples(companies []models.CorpInfo) {
	for i, co := range companies {
		if i == 5 {
			break
		}
		fmt.Printf("  %s %s stock=%s modified=%s\n", co.CorpCode, co.CorpName, co.StockCode, co.ModifyDate)
	}
}

func printReportSamples(reports []models.ReportInfo) {
	for i, r := range reports {
		if i == 5 {
			break
		}
		fmt.Printf("  %s %s %s fs=%s oprt_prfit=%s thstrm_ntic=%s totasset=%s\n",
			r.CorpCode, r.CorpName, r.BsnsYear, r.FsDiv, r.OprtPrfit, r.ThstrmNtic, r.FnclTotasset)
	}
}
