// Command import_oils converts a supplier saponification sheet (CSV or
// PDF) into a catalog overlay file that the server loads at startup.
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"saponify/internal/catalog"
)

var (
	numberPattern   = regexp.MustCompile(`[-+]?\d*\.?\d+`)
	cleanWhitespace = regexp.MustCompile(`\s+`)

	// Supplier PDF rows read "<oil name> <sap naoh> <sap koh> [price]"
	// once the extracted text is collapsed to single spaces.
	sheetRowPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9'&,. ()-]*?)\s+(0?\.\d+)\s+(0?\.\d+)(?:\s+\$?(\d+(?:\.\d+)?))?$`)
)

type overlayFile struct {
	Oils []catalog.Oil `json:"oils"`
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import_oils <sheet.csv|sheet.pdf> [overlay.json]")
		os.Exit(2)
	}

	sheetPath := os.Args[1]
	overlayPath := "catalog_overlay.json"
	if len(os.Args) > 2 {
		overlayPath = os.Args[2]
	}

	if err := run(sheetPath, overlayPath); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(sheetPath, overlayPath string) error {
	if strings.TrimSpace(sheetPath) == "" {
		return fmt.Errorf("sheet path must not be empty")
	}

	if _, err := os.Stat(sheetPath); err != nil {
		return fmt.Errorf("locate sheet: %w", err)
	}

	var (
		oils []catalog.Oil
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(sheetPath)); ext {
	case ".csv":
		oils, err = importCSV(sheetPath)
	case ".pdf":
		oils, err = importPDF(sheetPath)
	default:
		return fmt.Errorf("unsupported sheet format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("parse sheet: %w", err)
	}

	if len(oils) == 0 {
		return errors.New("no oil rows found in sheet")
	}

	sort.Slice(oils, func(i, j int) bool { return oils[i].Name < oils[j].Name })

	raw, err := json.MarshalIndent(overlayFile{Oils: oils}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode overlay: %w", err)
	}
	if err := os.WriteFile(overlayPath, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("write overlay: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Imported %d oils from %s into %s\n", len(oils), filepath.Base(sheetPath), overlayPath)
	return nil
}

func importCSV(path string) ([]catalog.Oil, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	oils := make([]catalog.Oil, 0, len(records))
	for idx, record := range records {
		oil, err := buildOil(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", idx+2, err)
		}
		oils = append(oils, oil)
	}
	return oils, nil
}

func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, errors.New("csv is empty")
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		record := make(map[string]string, len(header))
		for idx, key := range header {
			if idx >= len(row) {
				continue
			}
			record[normalizeHeader(key)] = strings.TrimSpace(row[idx])
		}
		records = append(records, record)
	}

	return records, nil
}

func normalizeHeader(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.NewReplacer("(", " ", ")", " ", "%", " ").Replace(key)
	return strings.TrimSpace(cleanWhitespace.ReplaceAllString(key, " "))
}

func buildOil(row map[string]string) (catalog.Oil, error) {
	name := fieldValue(row, "oil name", "oil", "name", "ingredient")
	if name == "" {
		return catalog.Oil{}, errors.New("missing oil name")
	}

	sapNaOH := parseFirstNumber(fieldValue(row, "sap naoh", "naoh", "sap value naoh"))
	if sapNaOH <= 0 {
		return catalog.Oil{}, fmt.Errorf("oil %q has no NaOH saponification value", name)
	}

	sapKOH := parseFirstNumber(fieldValue(row, "sap koh", "koh", "sap value koh"))
	if sapKOH <= 0 {
		// KOH values track NaOH by the molecular weight ratio when the
		// supplier only publishes one column.
		sapKOH = round3(sapNaOH * 56.1 / 40.0)
	}

	oil := catalog.Oil{
		Name:        name,
		Description: fieldValue(row, "description", "notes"),
		SapNaOH:     sapNaOH,
		SapKOH:      sapKOH,
		PricePerKG:  parseFirstNumber(fieldValue(row, "price per kg", "price kg", "price")),
		Properties:  map[string]float64{},
		FattyAcids:  map[string]float64{},
	}

	for _, property := range catalog.PropertyNames {
		if value := fieldValue(row, property); value != "" {
			oil.Properties[property] = parseFirstNumber(value)
		}
	}
	for _, acid := range catalog.FattyAcidNames {
		if value := fieldValue(row, acid); value != "" {
			oil.FattyAcids[acid] = parseFirstNumber(value)
		}
	}

	return oil, nil
}

func fieldValue(row map[string]string, keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(row[key]); value != "" && !strings.EqualFold(value, "N/A") {
			return value
		}
	}
	return ""
}

func parseFirstNumber(value string) float64 {
	match := numberPattern.FindString(value)
	if match == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return parsed
}

func importPDF(path string) ([]catalog.Oil, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := extractTextFromPDF(data)
	if err != nil {
		return nil, err
	}
	return parseSheetText(text), nil
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// parseSheetText scans extracted PDF text for saponification rows and
// skips headers, footers, and anything without a plausible SAP value.
func parseSheetText(text string) []catalog.Oil {
	var oils []catalog.Oil
	seen := map[string]struct{}{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(cleanWhitespace.ReplaceAllString(line, " "))
		match := sheetRowPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		name := strings.TrimSpace(match[1])
		sapNaOH := parseFirstNumber(match[2])
		sapKOH := parseFirstNumber(match[3])
		if name == "" || sapNaOH <= 0 || sapNaOH >= 1 || sapKOH <= 0 || sapKOH >= 1 {
			continue
		}
		if _, ok := seen[strings.ToLower(name)]; ok {
			continue
		}
		seen[strings.ToLower(name)] = struct{}{}

		oils = append(oils, catalog.Oil{
			Name:       name,
			SapNaOH:    sapNaOH,
			SapKOH:     sapKOH,
			PricePerKG: parseFirstNumber(match[4]),
			Properties: map[string]float64{},
			FattyAcids: map[string]float64{},
		})
	}
	return oils
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
