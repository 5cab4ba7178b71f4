package statement

import (
	"regexp"
	"strings"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// section tracks which part of the statement the scanner is inside. Transaction
// lines outside a recognized section are noise (account summaries, daily balance
// tables) and are never emitted.
type section int

const (
	sectionNone section = iota
	sectionCredit
	sectionDebit
)

// txnPattern matches a transaction line: leading MM/DD date, free-text
// description, trailing amount with exactly two decimals and optional
// thousands separators.
var txnPattern = regexp.MustCompile(`^(\d{2}/\d{2})\s+(.+?)\s+([\d,]+\.\d{2})$`)

// Parse scans statement pages in reading order and extracts transaction lines.
// Section markers carry across page boundaries. A page with no text contributes
// nothing; a statement with no matching lines yields an empty slice, not an
// error.
func Parse(pages []string) []model.RawTransaction {
	var txns []model.RawTransaction
	current := sectionNone

	for _, page := range pages {
		if strings.TrimSpace(page) == "" {
			continue
		}
		for _, line := range strings.Split(page, "\n") {
			line = strings.TrimSpace(line)
			// pdftotext output frequently drops spaces inside headings, so
			// markers are matched with spaces collapsed.
			marker := strings.ToUpper(strings.ReplaceAll(line, " ", ""))

			switch {
			case strings.Contains(marker, "ELECTRONICDEPOSITS"):
				current = sectionCredit
				continue
			case strings.Contains(marker, "ELECTRONICPAYMENTS"):
				current = sectionDebit
				continue
			case strings.HasPrefix(line, "Subtotal:") || strings.Contains(marker, "ACCOUNTSUMMARY"):
				current = sectionNone
				continue
			}

			// Column header lines are skipped without touching section state.
			if strings.Contains(marker, "POSTINGDATE") || strings.Contains(marker, "DESCRIPTION") {
				continue
			}

			m := txnPattern.FindStringSubmatch(line)
			if m == nil || current == sectionNone {
				continue
			}

			amount := strings.ReplaceAll(m[3], ",", "")
			txn := model.RawTransaction{
				Date:        m[1],
				Description: strings.TrimSpace(m[2]),
			}
			if current == sectionCredit {
				txn.Type = "CREDIT"
				txn.Credit = amount
			} else {
				txn.Type = "DEBIT"
				txn.Debit = amount
			}
			txns = append(txns, txn)
		}
	}
	return txns
}
