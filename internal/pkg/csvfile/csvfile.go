package csvfile

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"dartcsv/internal/models"
)

const OutputDir = "output"

// CorpCodePath is where the full corporation catalog lands.
var CorpCodePath = filepath.Join(OutputDir, "all_corp_codes.csv")

// ReportPath returns the per-year financial report file path.
func ReportPath(year string) string {
	return filepath.Join(OutputDir, fmt.Sprintf("financial_reports_%s.csv", year))
}

var corpHeader = []string{"corp_code", "corp_name", "stock_code", "modify_date"}

var reportHeader = []string{
	"corp_code", "corp_name", "biz_repr", "bsns_year", "fs_div",
	"stock_code", "oprt_prfit", "thstrm_ntic", "fncl_totasset",
}

// WriteCorpCodes overwrites path with the catalog header and one row per
// corporation, in input order.
func WriteCorpCodes(path string, corps []models.CorpInfo) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(corpHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, co := range corps {
		row := []string{co.CorpCode, co.CorpName, co.StockCode, co.ModifyDate}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// WriteReports overwrites path with the report header and one row per line
// item, in input order.
func WriteReports(path string, reports []models.ReportInfo) error {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range reports {
		row := []string{
			r.CorpCode, r.CorpName, r.BizRepr, r.BsnsYear, r.FsDiv,
			r.StockCode, r.OprtPrfit, r.ThstrmNtic, r.FnclTotasset,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// ReadCorpCodes loads the previously written catalog CSV back as
// (code, name) pairs. A missing file is a normal condition — phase one was
// skipped or produced nothing — and yields an empty list.
func ReadCorpCodes(path string) ([]models.CorpInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("no catalog file at %s, nothing to read", path)
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed catalog CSV %s: %w", path, err)
	}

	var corps []models.CorpInfo
	for i, row := range rows {
		if i == 0 { // header
			continue
		}

		code := cell(row, 0)
		if code == "" {
			continue
		}

		corps = append(corps, models.CorpInfo{CorpCode: code, CorpName: cell(row, 1)})
	}

	return corps, nil
}

// cell treats a missing column, the empty string and the literal "null" as
// absent.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}

	v := strings.TrimSpace(row[i])
	if strings.EqualFold(v, "null") {
		return ""
	}

	return v
}

func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	return f, nil
}
