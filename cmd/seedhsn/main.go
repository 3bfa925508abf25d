// Command seedhsn converts the GST council's HSN/SAC Excel workbook into a
// SQL seed file for the hsn_codes master table.
// Usage: go run ./cmd/seedhsn <workbook.xlsx>
// Output: db/seeds/hsn_codes.sql
package main

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

type masterEntry struct {
	code          string
	description   string
	gstRate       float64
	conditionDesc string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedhsn <workbook.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/hsn_codes.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	seen := make(map[string]bool)
	var entries []masterEntry

	hsnEntries, err := parseHSNSheet(f, seen)
	if err != nil {
		return fmt.Errorf("parse HSN sheet: %w", err)
	}
	entries = append(entries, hsnEntries...)
	log.Printf("HSN sheet: %d entries", len(hsnEntries))

	sacEntries, err := parseSACSheet(f, seen)
	if err != nil {
		return fmt.Errorf("parse SAC sheet: %w", err)
	}
	entries = append(entries, sacEntries...)
	log.Printf("SAC sheet: %d entries", len(sacEntries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	header := fmt.Sprintf("-- HSN/SAC master seed generated from the GST council workbook.\n-- %d entries in batches of %d.\nBEGIN;\n\n",
		len(entries), batchSize)
	if _, err := out.WriteString(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	if _, err := out.WriteString("\nCOMMIT;\n"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}

	log.Printf("Generated %d total entries in %s", len(entries), outPath)
	return nil
}

// parseHSNSheet reads the goods sheet (index 0). Columns: F(5)=4-digit code,
// H(7)=its description, I(8)=6-digit, J(9)=its description, K(10)=8-digit,
// M(12)=its description, N(13)=GST rate. Data starts at row index 5.
func parseHSNSheet(f *excelize.File, seen map[string]bool) ([]masterEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var entries []masterEntry
	for i := 5; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 14 {
			continue
		}

		rateStr := strings.TrimSuffix(strings.TrimSpace(cellVal(row, 13)), "%")
		if rateStr == "" {
			continue
		}
		var rate float64
		if _, serr := fmt.Sscanf(rateStr, "%f", &rate); serr != nil {
			continue
		}

		for _, pair := range [][2]int{{10, 12}, {8, 9}, {5, 7}} {
			code := strings.TrimSpace(cellVal(row, pair[0]))
			if code == "" || !isNumeric(code) {
				continue
			}
			entries = addEntry(entries, seen, code, strings.TrimSpace(cellVal(row, pair[1])), rate, "")
		}
	}
	return entries, nil
}

// parseSACSheet reads the services sheet. Columns: A(0)=4-digit SAC,
// B(1)=its description, C(2)=6-digit SAC, D(3)=its description, E(4)=rate as
// free text ("18%", "Exempt", "5% (without ITC)", "12%-18%"). Data starts at
// row index 3.
func parseSACSheet(f *excelize.File, seen map[string]bool) ([]masterEntry, error) {
	rows, err := f.GetRows("SAC_Master")
	if err != nil {
		return nil, err
	}

	var entries []masterEntry
	for i := 3; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}

		rateStr := strings.TrimSpace(cellVal(row, 4))
		rates, condition := parseSACRate(rateStr)
		if len(rates) == 0 {
			continue
		}

		code6 := strings.TrimSpace(cellVal(row, 2))
		desc6 := strings.TrimSpace(cellVal(row, 3))
		code4 := strings.TrimSpace(cellVal(row, 0))
		desc4 := strings.TrimSpace(cellVal(row, 1))

		for _, rate := range rates {
			if code6 != "" && isNumeric(code6) {
				entries = addEntry(entries, seen, code6, desc6, rate, condition)
			}
			if code4 != "" && isNumeric(code4) {
				entries = addEntry(entries, seen, code4, desc4, rate, condition)
			}
		}
	}
	return entries, nil
}

// ratePattern matches a number followed by "%".
var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// conditionPattern matches a parenthesised qualifier like "(without ITC)".
var conditionPattern = regexp.MustCompile(`\(([^)]+)\)`)

// parseSACRate extracts the GST rate(s) and any ITC condition from free-text
// SAC rate strings.
//
//	"18%"                                   -> [18], ""
//	"Exempt"                                -> [0], ""
//	"12%-18%"                               -> [12, 18], ""
//	"1% (without ITC) or 5% (without ITC)"  -> [1, 5], "without ITC"
func parseSACRate(s string) ([]float64, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ""
	}

	lower := strings.ToLower(s)
	if lower == "exempt" || lower == "nil" {
		return []float64{0}, ""
	}

	matches := ratePattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil, ""
	}

	condition := ""
	if cm := conditionPattern.FindStringSubmatch(s); cm != nil {
		condition = strings.TrimSpace(cm[1])
	}

	seen := make(map[float64]bool)
	var rates []float64
	for _, m := range matches {
		var rate float64
		if _, err := fmt.Sscanf(m[1], "%f", &rate); err == nil && !seen[rate] {
			seen[rate] = true
			rates = append(rates, rate)
		}
	}
	return rates, condition
}

func addEntry(entries []masterEntry, seen map[string]bool, code, description string, gstRate float64, condition string) []masterEntry {
	key := fmt.Sprintf("%s|%.2f|%s", code, gstRate, condition)
	if seen[key] {
		return entries
	}
	seen[key] = true
	return append(entries, masterEntry{code: code, description: description, gstRate: gstRate, conditionDesc: condition})
}

func writeBatch(out *os.File, batch []masterEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO hsn_codes (code, description, gst_rate, condition_desc, effective_from) VALUES\n")

	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %.2f, '%s', '2017-07-01')",
			escapeSQL(e.code), escapeSQL(e.description), e.gstRate, escapeSQL(e.conditionDesc))
	}

	b.WriteString("\nON CONFLICT (code, gst_rate, condition_desc, effective_from) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
