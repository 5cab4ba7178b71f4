package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// Header is the CSV header for raw statement transaction files.
const Header = "Date,Transaction Type,Description,Debit,Credit"

const (
	numFields = 5
	colDate   = 0
	colType   = 1
	colDesc   = 2
	colDebit  = 3
	colCredit = 4
)

// WriteRaw writes raw transactions to a CSV writer (including header).
func WriteRaw(w io.Writer, txns []model.RawTransaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalRaw(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadRaw reads all raw transactions from a CSV reader.
func ReadRaw(r io.Reader) ([]model.RawTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading statement CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.RawTransaction
	for _, rec := range records[1:] {
		txns = append(txns, UnmarshalRaw(rec))
	}
	return txns, nil
}

// MarshalRaw converts a RawTransaction to a CSV row.
func MarshalRaw(txn model.RawTransaction) []string {
	row := make([]string, numFields)
	row[colDate] = txn.Date
	row[colType] = txn.Type
	row[colDesc] = txn.Description
	row[colDebit] = txn.Debit
	row[colCredit] = txn.Credit
	return row
}

// UnmarshalRaw converts a CSV row to a RawTransaction.
func UnmarshalRaw(record []string) model.RawTransaction {
	return model.RawTransaction{
		Date:        record[colDate],
		Type:        record[colType],
		Description: record[colDesc],
		Debit:       record[colDebit],
		Credit:      record[colCredit],
	}
}
