// PanelCut: BFD panel packing optimizer.
//
// Command line tool for packing rectangular items onto stock panels and
// exporting the resulting layouts.
//
// Build:
//   go build -o panelcut ./cmd/panelcut
//
// Usage:
//   panelcut optimize -input request.json [-output result.json] [-svg layout.svg]
//   panelcut generate -input result.json -output layout.svg [-format svg|pdf|xlsx|dxf]
//   panelcut labels   -input result.json -output labels.pdf
//   panelcut import   -input items.csv -panel sheet_a -width 2440 -height 1220 [-trim 10] [-output request.json]

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/piwi3910/panelcut/internal/engine"
	"github.com/piwi3910/panelcut/internal/export"
	"github.com/piwi3910/panelcut/internal/importer"
	"github.com/piwi3910/panelcut/internal/model"
	"github.com/piwi3910/panelcut/internal/project"
)

// Exit codes: 1 for invalid input, 2 for an item that cannot fit any panel.
const (
	exitInvalidInput = 1
	exitItemTooLarge = 2
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(exitInvalidInput)
	}

	var err error
	switch os.Args[1] {
	case "optimize":
		err = runOptimize(os.Args[2:])
	case "generate":
		err = runGenerate(os.Args[2:])
	case "labels":
		err = runLabels(os.Args[2:])
	case "import":
		err = runImport(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(exitInvalidInput)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var exceeds *model.ItemExceedsPanelError
		if errors.As(err, &exceeds) {
			os.Exit(exitItemTooLarge)
		}
		os.Exit(exitInvalidInput)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `PanelCut - panel packing optimizer

Commands:
  optimize   Pack items onto panels and write the result
  generate   Render a saved result as SVG, PDF, Excel or DXF
  labels     Generate QR-coded item labels from a saved result
  import     Build an optimize request from a CSV or Excel cut list

Run 'panelcut <command> -h' for command flags.
`)
}

func runOptimize(args []string) error {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	input := fs.String("input", "", "request file (JSON or YAML)")
	output := fs.String("output", "", "result output file (default: stdout)")
	svgOut := fs.String("svg", "", "also write an SVG layout to this path")
	fs.Parse(args)

	if *input == "" {
		return fmt.Errorf("optimize: -input is required")
	}

	req, err := project.LoadRequest(*input)
	if err != nil {
		return err
	}

	opt, err := engine.New(req)
	if err != nil {
		return err
	}
	result, err := opt.Optimize()
	if err != nil {
		return err
	}

	printSummary(result)

	if *svgOut != "" {
		if err := export.ExportSVG(*svgOut, result); err != nil {
			return err
		}
		fmt.Printf("Saved SVG to %s\n", *svgOut)
	}

	if *output != "" {
		if err := project.SaveResult(*output, result); err != nil {
			return err
		}
		fmt.Printf("Saved result to %s\n", *output)
		return nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// printSummary writes a human-readable run report to stdout.
func printSummary(result model.Result) {
	s := result.Summary
	fmt.Println("Optimization complete")
	fmt.Printf("  Panels used:  %d\n", s.TotalPanels)

	typeIDs := make([]string, 0, len(s.PanelsUsed))
	for id := range s.PanelsUsed {
		typeIDs = append(typeIDs, id)
	}
	sort.Strings(typeIDs)
	for _, id := range typeIDs {
		fmt.Printf("    %s: %d\n", id, s.PanelsUsed[id])
	}

	fmt.Printf("  Used area:    %.0f mm²\n", s.UsedArea)
	fmt.Printf("  Total waste:  %.1f%%\n", s.WastePercentage)

	if len(s.OptionalItemsUsed) > 0 {
		fmt.Println("  Optional items added:")
		for _, id := range s.OptionalItemsUsed {
			fmt.Printf("    - %s\n", id)
		}
	}
	fmt.Println()
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	input := fs.String("input", "", "result file (JSON)")
	output := fs.String("output", "", "output file")
	format := fs.String("format", "", "output format: svg, pdf, xlsx or dxf (default: by extension)")
	fs.Parse(args)

	if *input == "" || *output == "" {
		return fmt.Errorf("generate: -input and -output are required")
	}

	result, err := project.LoadResult(*input)
	if err != nil {
		return err
	}

	f := *format
	if f == "" {
		f = strings.TrimPrefix(filepath.Ext(*output), ".")
	}

	switch strings.ToLower(f) {
	case "svg":
		err = export.ExportSVG(*output, result)
	case "pdf":
		err = export.ExportPDF(*output, result)
	case "xlsx":
		err = export.ExportExcel(*output, result)
	case "dxf":
		err = export.ExportDXF(*output, result)
	default:
		return fmt.Errorf("generate: unsupported format %q", f)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s to %s\n", strings.ToUpper(f), *output)
	return nil
}

func runLabels(args []string) error {
	fs := flag.NewFlagSet("labels", flag.ExitOnError)
	input := fs.String("input", "", "result file (JSON)")
	output := fs.String("output", "", "labels PDF output file")
	fs.Parse(args)

	if *input == "" || *output == "" {
		return fmt.Errorf("labels: -input and -output are required")
	}

	result, err := project.LoadResult(*input)
	if err != nil {
		return err
	}

	if err := export.ExportLabels(*output, result); err != nil {
		return err
	}

	fmt.Printf("Saved labels to %s\n", *output)
	return nil
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	input := fs.String("input", "", "cut list file (CSV or Excel)")
	output := fs.String("output", "", "request output file (default: stdout)")
	panelID := fs.String("panel", "", "panel type id (default: generated)")
	width := fs.Float64("width", 2440, "panel width in mm")
	height := fs.Float64("height", 1220, "panel height in mm")
	trim := fs.Float64("trim", 0, "edge trim per side in mm")
	fs.Parse(args)

	if *input == "" {
		return fmt.Errorf("import: -input is required")
	}

	var imported importer.ImportResult
	switch strings.ToLower(filepath.Ext(*input)) {
	case ".csv":
		imported = importer.ImportCSV(*input)
	case ".xlsx", ".xls":
		imported = importer.ImportExcel(*input)
	default:
		return fmt.Errorf("import: unsupported file type %q", filepath.Ext(*input))
	}

	for _, w := range imported.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", w)
	}
	for _, e := range imported.Errors {
		fmt.Fprintln(os.Stderr, "error:", e)
	}
	if len(imported.Items) == 0 {
		return fmt.Errorf("import: no valid items found in %s", *input)
	}

	pt := model.NewPanelType(*width, *height, *trim)
	if *panelID != "" {
		pt.ID = *panelID
	}
	pt.Items = imported.Items
	req := model.Request{PanelTypes: []model.PanelType{pt}}

	fmt.Printf("Imported %d items\n", len(imported.Items))

	if *output != "" {
		if err := project.SaveRequest(*output, req); err != nil {
			return err
		}
		fmt.Printf("Saved request to %s\n", *output)
		return nil
	}

	data, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
