package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/ShelfCut/internal/engine"
	"github.com/piwi3910/ShelfCut/internal/layout"
	"github.com/piwi3910/ShelfCut/internal/model"
)

func testPlan(t *testing.T) ([]model.Part, model.PackResult) {
	t.Helper()
	p := model.DefaultParams()
	parts := layout.GenerateParts(p)
	result := engine.GenerateSheetLayouts(parts)
	if len(result.Sheets) == 0 {
		t.Fatal("test plan produced no sheets")
	}
	return parts, result
}

func requireNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if fi.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestExportPDF(t *testing.T) {
	parts, result := testPlan(t)
	path := filepath.Join(t.TempDir(), "plan.pdf")

	if err := ExportPDF(path, result, parts); err != nil {
		t.Fatalf("ExportPDF: %v", err)
	}
	requireNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestExportPDFEmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.pdf")
	if err := ExportPDF(path, model.PackResult{}, nil); err == nil {
		t.Error("empty plan should fail instead of writing an empty document")
	}
}

func TestExportLabels(t *testing.T) {
	_, result := testPlan(t)
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestCollectLabelInfos(t *testing.T) {
	_, result := testPlan(t)
	labels := CollectLabelInfos(result)

	placed := 0
	for _, s := range result.Sheets {
		placed += len(s.Parts)
	}
	if len(labels) != placed {
		t.Fatalf("expected %d labels, got %d", placed, len(labels))
	}
	for _, l := range labels {
		if l.PartID == "" || l.SheetID == "" {
			t.Errorf("label missing identity: %+v", l)
		}
	}
}

func TestExportPartsCSV(t *testing.T) {
	parts, _ := testPlan(t)
	path := filepath.Join(t.TempDir(), "parts.csv")

	if err := ExportPartsCSV(path, parts); err != nil {
		t.Fatalf("ExportPartsCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != len(parts)+1 {
		t.Errorf("expected %d rows, got %d", len(parts)+1, len(rows))
	}
	if rows[0][0] != "id" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	// Display columns carry shop fractions.
	found := false
	for _, r := range rows[1:] {
		if strings.Contains(r[8], "/") {
			found = true
		}
	}
	if !found {
		t.Error("expected at least one fractional thickness column")
	}
}

func TestExportPlacementsCSV(t *testing.T) {
	_, result := testPlan(t)
	path := filepath.Join(t.TempDir(), "placements.csv")

	if err := ExportPlacementsCSV(path, result); err != nil {
		t.Fatalf("ExportPlacementsCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	placed := 0
	for _, s := range result.Sheets {
		placed += len(s.Parts)
	}
	want := placed + len(result.OversizedParts) + 1
	if len(rows) != want {
		t.Errorf("expected %d rows, got %d", want, len(rows))
	}
}

func TestExportWorkbook(t *testing.T) {
	p := model.DefaultParams()
	parts, result := testPlan(t)
	dims := layout.CalculateDimensions(p)
	est := model.CalculateMaterialEstimate(parts)
	warnings := model.GenerateWarnings(p)

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	if err := ExportWorkbook(path, p, dims, parts, est, warnings, result); err != nil {
		t.Fatalf("ExportWorkbook: %v", err)
	}
	requireNonEmptyFile(t, path)
}

func TestExportDXF(t *testing.T) {
	_, result := testPlan(t)
	path := filepath.Join(t.TempDir(), "plan.dxf")

	if err := ExportDXF(path, result); err != nil {
		t.Fatalf("ExportDXF: %v", err)
	}
	requireNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, layer := range []string{"SHEETS", "PARTS", "RIPS"} {
		if !strings.Contains(string(data), layer) {
			t.Errorf("drawing missing layer %s", layer)
		}
	}
}

func TestExportDXFEmptyPlan(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.dxf")
	if err := ExportDXF(path, model.PackResult{}); err == nil {
		t.Error("empty plan should fail")
	}
}

func TestExportUtilizationHTML(t *testing.T) {
	_, result := testPlan(t)
	path := filepath.Join(t.TempDir(), "util.html")

	if err := ExportUtilizationHTML(path, result); err != nil {
		t.Fatalf("ExportUtilizationHTML: %v", err)
	}
	requireNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "echarts") {
		t.Error("chart page should embed echarts")
	}
}

func TestRenderUtilizationChart(t *testing.T) {
	_, result := testPlan(t)
	var buf bytes.Buffer
	if err := RenderUtilizationChart(&buf, result); err != nil {
		t.Fatalf("RenderUtilizationChart: %v", err)
	}
	if !strings.Contains(buf.String(), "Sheet utilization") {
		t.Error("chart should carry its title")
	}
}
