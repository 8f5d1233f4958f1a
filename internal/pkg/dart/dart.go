package dart

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dartcsv/internal/models"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

const baseURL = "https://opendart.fss.or.kr/api"

type ReportType string

const FIRST_QUARTER = ReportType("11013")   // 1분기
const HALF_YEAR = ReportType("11012")       // 반기
const THIRD_QUARTER = ReportType("11014")   // 3분기
const BUSINESS_REPORT = ReportType("11011") // 사업보고서

type DartClient struct {
	key     string
	client  *http.Client
	limiter *rate.Limiter
}

type corpCodeXML struct {
	XMLName   xml.Name          `xml:"result"`
	Companies []models.CorpInfo `xml:"list"`
}

func New(apiKey string) *DartClient {
	return &DartClient{
		key: apiKey,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					// DART는 TLS1.2 호환이 확실 — TLS1.2로 고정해서 협상 단순화
					MinVersion: tls.VersionTLS12,
					MaxVersion: tls.VersionTLS12,

					// SNI를 명시 (보통 자동이지만, 명시로 문제 회피)
					ServerName: "opendart.fss.or.kr",
				},
			},
			Timeout: 20 * time.Second,
		},
		// one request per 500ms, the published courtesy limit
		limiter: rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// UseDefaultClient routes requests through http.DefaultClient so tests can
// swap its transport, and lifts the inter-request wait.
func (c *DartClient) UseDefaultClient() {
	c.client = http.DefaultClient
	c.limiter = rate.NewLimiter(rate.Inf, 0)
}

// 고유번호 전체 목록 조회
// https://opendart.fss.or.kr/guide/detail.do?apiGrpCd=DS001&apiId=2019018
func (c *DartClient) GetCompanies() ([]models.CorpInfo, error) {
	u, _ := url.Parse(baseURL + "/corpCode.xml")
	q := u.Query()
	q.Set("crtfc_key", c.key)
	u.RawQuery = q.Encode()

	resp, err := c.client.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DART error %d: %s", resp.StatusCode, string(buf))
	}

	if len(buf) == 0 {
		return nil, fmt.Errorf("DART returned an empty corpCode body")
	}

	zr, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, err
	}

	var entry *zip.File
	for _, f := range zr.File {
		if strings.EqualFold(f.Name, "CORPCODE.XML") {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("corpCode archive has no CORPCODE.XML entry")
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	// ReadAll drains the entry, which also verifies its CRC32
	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}

	text := strings.ToValidUTF8(string(raw), "�")

	var file corpCodeXML
	if err := xml.NewDecoder(strings.NewReader(text)).Decode(&file); err != nil {
		return nil, err
	}

	companies := make([]models.CorpInfo, 0, len(file.Companies))
	for _, co := range file.Companies {
		co.CorpCode = strings.TrimSpace(co.CorpCode)
		co.CorpName = strings.TrimSpace(co.CorpName)
		co.StockCode = strings.TrimSpace(co.StockCode)
		co.ModifyDate = strings.TrimSpace(co.ModifyDate)

		// 고유번호나 회사명이 없는 항목은 버림
		if co.CorpCode == "" || co.CorpName == "" {
			continue
		}

		companies = append(companies, co)
	}

	return companies, nil
}

// GetFinancialReports queries the annual summary endpoint for every
// corporation in corps, one request at a time. A failure for one corporation
// is logged and skipped; the loop always runs to the end.
func (c *DartClient) GetFinancialReports(year string, corps []models.CorpInfo) []models.ReportInfo {
	reports := make([]models.ReportInfo, 0, len(corps))

	for i, corp := range corps {
		if err := c.limiter.Wait(context.Background()); err != nil {
			log.Printf("rate limiter: %v", err)
			return reports
		}

		items, err := c.getAnnualSummary(corp.CorpCode, year, BUSINESS_REPORT)
		if err != nil {
			log.Printf("[%d/%d] %s (%s): %v", i+1, len(corps), corp.CorpName, corp.CorpCode, err)
			continue
		}

		for _, item := range items {
			reports = append(reports, newReportInfo(item, corp))
		}
	}

	return reports
}

// 단일회사 전체 재무제표 주요계정 요약 조회
func (c *DartClient) getAnnualSummary(corpCode, bsnsYear string, reportCode ReportType) ([]gjson.Result, error) {
	u, _ := url.Parse(baseURL + "/fnltt_lssum.json")
	q := u.Query()
	q.Set("crtfc_key", c.key)               // API Key
	q.Set("corp_code", corpCode)            // 8자리 기업코드(예: 삼성전자 00126380)
	q.Set("bsns_year", bsnsYear)            // 사업연도
	q.Set("reprt_code", string(reportCode)) // 보고서 코드

	u.RawQuery = q.Encode()

	resp, err := c.client.Get(u.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("DART error %d: %s", resp.StatusCode, string(buf))
	}

	if !gjson.ValidBytes(buf) {
		return nil, fmt.Errorf("malformed JSON response: %.80s", string(buf))
	}

	body := gjson.ParseBytes(buf)
	if status := body.Get("status").String(); status != "000" { // 000: 정상
		return nil, fmt.Errorf("DART error %s: %s", status, body.Get("message").String())
	}

	list := body.Get("list").Array()
	if len(list) == 0 {
		return nil, fmt.Errorf("no report entries for %s/%s", corpCode, bsnsYear)
	}

	return list, nil
}
