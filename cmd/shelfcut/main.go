// ShelfCut: parametric shelving cut planner.
//
// Compiles a parametric shelving design (grid of bays, cell merges,
// material thicknesses, door style) into a cut list and an optimized
// sheet cutting plan, and writes shop-facing exports.
//
// Build:
//   go build -o shelfcut ./cmd/shelfcut
//
// Usage:
//   shelfcut -design mydesign.json -out ./plan -formats csv,pdf,labels,xlsx,dxf,html
//   shelfcut            # print a summary for the default design
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/ShelfCut/internal/export"
	"github.com/piwi3910/ShelfCut/internal/model"
	"github.com/piwi3910/ShelfCut/internal/project"
	"github.com/piwi3910/ShelfCut/internal/state"
)

func main() {
	designPath := flag.String("design", "", "design JSON file (Design or bare DesignParams); defaults when empty")
	outDir := flag.String("out", ".", "output directory for exports")
	formats := flag.String("formats", "", "comma-separated exports: csv,xlsx,pdf,labels,dxf,html")
	flag.Parse()

	params := model.DefaultParams()
	name := "default"
	if *designPath != "" {
		d, err := project.LoadDesign(*designPath)
		if err != nil {
			log.Fatalf("load design: %v", err)
		}
		params = d.Params
		name = strings.TrimSuffix(filepath.Base(*designPath), filepath.Ext(*designPath))
	} else if cfgPath, err := project.DefaultConfigPath(); err == nil {
		if cfg, err := project.LoadConfig(cfgPath); err == nil {
			cfg.ApplyToParams(&params)
		}
	}

	if err := params.Validate(); err != nil {
		log.Fatalf("invalid design: %v", err)
	}

	derived := state.Compute(params)
	printSummary(params, derived)

	if *formats == "" {
		return
	}
	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	for _, format := range strings.Split(*formats, ",") {
		format = strings.TrimSpace(strings.ToLower(format))
		if format == "" {
			continue
		}
		if err := writeExport(format, *outDir, name, params, derived); err != nil {
			log.Fatalf("export %s: %v", format, err)
		}
	}
}

func writeExport(format, dir, name string, params model.DesignParams, d state.Derived) error {
	out := func(ext string) string { return filepath.Join(dir, name+ext) }

	switch format {
	case "csv":
		if err := export.ExportPartsCSV(out("-cutlist.csv"), d.Parts); err != nil {
			return err
		}
		return export.ExportPlacementsCSV(out("-sheets.csv"), d.Packing)
	case "xlsx":
		return export.ExportWorkbook(out(".xlsx"), params, d.Dimensions, d.Parts, d.Estimate, d.Warnings, d.Packing)
	case "pdf":
		return export.ExportPDF(out(".pdf"), d.Packing, d.Parts)
	case "labels":
		return export.ExportLabels(out("-labels.pdf"), d.Packing)
	case "dxf":
		return export.ExportDXF(out(".dxf"), d.Packing)
	case "html":
		return export.ExportUtilizationHTML(out("-utilization.html"), d.Packing)
	}
	return fmt.Errorf("unknown format %q", format)
}

func printSummary(params model.DesignParams, d state.Derived) {
	fmt.Printf("Exterior: %s W x %s H x %s D\n",
		model.FormatDimension(d.Dimensions.ExtWidthIn, params.UnitSystem),
		model.FormatDimension(d.Dimensions.ExtHeightIn, params.UnitSystem),
		model.FormatDimension(d.Dimensions.ExtDepthIn, params.UnitSystem))

	fmt.Printf("\n%-24s %-18s %4s  %12s %12s %10s\n", "ID", "ROLE", "QTY", "LENGTH", "WIDTH", "THICK")
	for _, p := range d.Parts {
		fmt.Printf("%-24s %-18s %4d  %12s %12s %10s\n",
			p.ID, p.Role, p.Qty,
			model.FormatInches(p.LengthIn), model.FormatInches(p.WidthIn), model.FormatInches(p.ThicknessIn))
	}

	fmt.Printf("\nBoard feet (frame): %.2f | Panel sq ft: %.2f | Sheets: %d | Utilization: %.1f%%\n",
		d.Estimate.BoardFeet, d.Estimate.PanelSquareFeet, len(d.Packing.Sheets), d.Packing.TotalUtilization())

	for _, w := range d.Warnings {
		fmt.Printf("[%s] %s\n", w.Severity, w.Message)
	}
	for _, o := range d.Packing.OversizedParts {
		fmt.Printf("[oversized] %s: %s\n", o.Part.ID, o.Reason)
	}
}
