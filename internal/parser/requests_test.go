package parser

import (
	"path/filepath"
	"testing"
)

var requestHeaders = []any{"Medlemsnummer", "Plats", "Upptagning", "Kommentar medlem"}

func TestReadRequests(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "requests.xlsx")
	writeWorkbook(t, path, [][]any{
		requestHeaders,
		{42, "B-12", "Jag vill ta upp min båt", "kommer tidigt"},
		{7, "", NoSpotAnswer, ""},
		{9, "", "", ""},
	})

	requests, report, err := ReadRequests(path)
	if err != nil {
		t.Fatalf("ReadRequests: %v", err)
	}
	if report.Imported != 3 {
		t.Fatalf("imported = %d", report.Imported)
	}

	if r := requests[42]; r.Declined || r.Spot != "B-12" || r.Comment != "kommer tidigt" {
		t.Fatalf("request 42 = %+v", r)
	}
	// 问卷里选了"不要场地"
	if r := requests[7]; !r.Declined || r.Spot != "" {
		t.Fatalf("request 7 = %+v", r)
	}
	// 没填场地也算明确弃置
	if r := requests[9]; !r.Declined {
		t.Fatalf("request 9 = %+v", r)
	}
}

func TestReadRequests_DuplicateReportedOnce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "requests.xlsx")
	writeWorkbook(t, path, [][]any{
		requestHeaders,
		{42, "B-12", "", ""},
		{42, "C-1", "", ""},
		{42, "D-9", "", ""},
	})

	requests, report, err := ReadRequests(path)
	if err != nil {
		t.Fatalf("ReadRequests: %v", err)
	}
	if len(report.Duplicates) != 1 || report.Duplicates[0] != 42 {
		t.Fatalf("duplicates = %v", report.Duplicates)
	}
	if requests[42].Spot != "B-12" {
		t.Fatalf("first row not kept: %+v", requests[42])
	}
}
