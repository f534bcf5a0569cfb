package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/pretty"

	"github.com/sadopc/sashay/internal/log"
	"github.com/sadopc/sashay/internal/ui/layout"
	"github.com/sadopc/sashay/internal/ui/splitview"
)

var errUsage = errors.New("invalid arguments")

// solveResult is the output of the solve subcommand.
type solveResult struct {
	Size    []float64 `json:"size"`
	MinSize []float64 `json:"min_size"`
	Grow    []float64 `json:"grow"`
	Target  float64   `json:"target"`
	Result  []float64 `json:"result"`
	Total   float64   `json:"total"`
	Offsets []float64 `json:"offsets"`
	Sashes  []float64 `json:"sashes"`
	Cells   []int     `json:"cells"`
}

// dragResult is the output of the drag subcommand.
type dragResult struct {
	Size    []float64 `json:"size"`
	MinSize []float64 `json:"min_size"`
	Sash    int       `json:"sash"`
	Delta   float64   `json:"delta"`
	Result  []float64 `json:"result"`
}

func solveCmd(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	sizeFlag := fs.String("size", "", "Comma-separated pane sizes")
	minFlag := fs.String("min", "", "Comma-separated minimum sizes (default all 0)")
	growFlag := fs.String("grow", "", "Comma-separated growth weights (default all 1)")
	targetFlag := fs.Float64("target", 0, "Container size along the split axis")
	outputFlag := fs.String("output", "text", "Output format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sashay solve --size <list> --target <n> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Fit pane sizes to a container, honoring minimums and growth weights.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sashay solve --size 10,10,10 --min 5,5,5 --target 24\n")
		fmt.Fprintf(os.Stderr, "  sashay solve --size 60,40 --grow 0,1 --target 120 --output json\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	res, err := solve(*sizeFlag, *minFlag, *growFlag, *targetFlag)
	if err == nil {
		err = printResult(os.Stdout, *outputFlag, res)
	}
	if err != nil {
		log.UserError("Error: " + err.Error())
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		os.Exit(2)
	}
}

func dragCmd(args []string) {
	fs := flag.NewFlagSet("drag", flag.ExitOnError)
	sizeFlag := fs.String("size", "", "Comma-separated pane sizes at drag start")
	minFlag := fs.String("min", "", "Comma-separated minimum sizes (default all 0)")
	sashFlag := fs.Int("sash", 0, "Index of the dragged sash (between pane i and i+1)")
	deltaFlag := fs.Float64("delta", 0, "Pointer movement along the split axis")
	outputFlag := fs.String("output", "text", "Output format: text, json")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: sashay drag --size <list> --sash <i> --delta <n> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Apply a sash drag: only the two panes next to the sash change.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  sashay drag --size 100,100,100 --min 20,20,20 --sash 0 --delta 150\n")
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}

	res, err := drag(*sizeFlag, *minFlag, *sashFlag, *deltaFlag)
	if err == nil {
		err = printResult(os.Stdout, *outputFlag, res)
	}
	if err != nil {
		log.UserError("Error: " + err.Error())
		if errors.Is(err, errUsage) {
			fs.Usage()
		}
		os.Exit(2)
	}
}

func solve(sizeArg, minArg, growArg string, target float64) (solveResult, error) {
	size, minSize, grow, err := parseLists(sizeArg, minArg, growArg)
	if err != nil {
		return solveResult{}, err
	}
	if target < 0 {
		return solveResult{}, fmt.Errorf("%w: --target must not be negative", errUsage)
	}

	out := layout.Solve(size, minSize, grow, target)
	return solveResult{
		Size:    size,
		MinSize: minSize,
		Grow:    grow,
		Target:  target,
		Result:  out,
		Total:   layout.Sum(out),
		Offsets: layout.Offsets(out),
		Sashes:  layout.SashPositions(out, 1),
		Cells:   layout.Cells(out),
	}, nil
}

func drag(sizeArg, minArg string, sash int, delta float64) (dragResult, error) {
	size, minSize, _, err := parseLists(sizeArg, minArg, "")
	if err != nil {
		return dragResult{}, err
	}
	if sash < 0 || sash > len(size)-2 {
		return dragResult{}, fmt.Errorf("%w: --sash must be between 0 and %d", errUsage, len(size)-2)
	}
	return dragResult{
		Size:    size,
		MinSize: minSize,
		Sash:    sash,
		Delta:   delta,
		Result:  splitview.Resize(size, minSize, sash, delta),
	}, nil
}

// parseLists parses the per-pane lists and fills in defaults for the
// optional ones.
func parseLists(sizeArg, minArg, growArg string) (size, minSize, grow []float64, err error) {
	if strings.TrimSpace(sizeArg) == "" {
		return nil, nil, nil, fmt.Errorf("%w: --size is required", errUsage)
	}
	if size, err = parseList("size", sizeArg); err != nil {
		return nil, nil, nil, err
	}
	if minSize, err = parseList("min", minArg); err != nil {
		return nil, nil, nil, err
	}
	if grow, err = parseList("grow", growArg); err != nil {
		return nil, nil, nil, err
	}
	if minSize == nil {
		minSize = make([]float64, len(size))
	}
	if grow == nil {
		grow = make([]float64, len(size))
		for i := range grow {
			grow[i] = 1
		}
	}

	p := splitview.Props{Size: size, MinSize: minSize, Grow: grow, Children: make([]splitview.Content, len(size))}
	if err := p.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	return size, minSize, grow, nil
}

func parseList(name, s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: --%s entry %d: %q is not a number", errUsage, name, i, p)
		}
		out[i] = v
	}
	return out, nil
}

func printResult(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		_, err = w.Write(pretty.Pretty(data))
		return err
	case "text":
	default:
		return fmt.Errorf("%w: invalid output format %q (must be text or json)", errUsage, format)
	}

	switch r := v.(type) {
	case solveResult:
		fmt.Fprintf(w, "target  %s\n", formatNumber(r.Target))
		fmt.Fprintf(w, "result  %s\n", formatList(r.Result))
		fmt.Fprintf(w, "total   %s\n", formatNumber(r.Total))
		fmt.Fprintf(w, "offsets %s\n", formatList(r.Offsets))
		fmt.Fprintf(w, "sashes  %s\n", formatList(r.Sashes))
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			cells[i] = strconv.Itoa(c)
		}
		fmt.Fprintf(w, "cells   %s\n", strings.Join(cells, ","))
	case dragResult:
		fmt.Fprintf(w, "sash    %d\n", r.Sash)
		fmt.Fprintf(w, "delta   %s\n", formatNumber(r.Delta))
		fmt.Fprintf(w, "result  %s\n", formatList(r.Result))
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, ",")
}
