package ledger

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// Header is the CSV header for the combined canonical ledger.
const Header = "date,time,description,merchant,category,type,amount,source,status,additional_info"

const (
	numFields   = 10
	dateFormat  = "2006-01-02"
	timeFormat  = "15:04:05"
	colDate     = 0
	colTime     = 1
	colDesc     = 2
	colMerchant = 3
	colCategory = 4
	colType     = 5
	colAmount   = 6
	colSource   = 7
	colStatus   = 8
	colInfo     = 9
)

// Write writes the ledger to a CSV writer (including header).
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		row, err := Marshal(txn)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Read reads all ledger transactions from a CSV reader.
func Read(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading ledger CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := Unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// Marshal converts a Transaction to a CSV row. The additional_info side
// channel is serialized as a JSON blob in the last column.
func Marshal(txn model.Transaction) ([]string, error) {
	row := make([]string, numFields)
	row[colDate] = txn.Date.Format(dateFormat)
	if txn.HasTime {
		row[colTime] = txn.Date.Format(timeFormat)
	}
	row[colDesc] = txn.Description
	row[colMerchant] = txn.Merchant
	row[colCategory] = txn.Category
	row[colType] = txn.Type
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colSource] = string(txn.Source)
	row[colStatus] = txn.Status

	if len(txn.AdditionalInfo) > 0 {
		info, err := json.Marshal(txn.AdditionalInfo)
		if err != nil {
			return nil, fmt.Errorf("marshaling additional_info: %w", err)
		}
		row[colInfo] = string(info)
	}
	return row, nil
}

// Unmarshal converts a CSV row to a Transaction.
func Unmarshal(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	hasTime := false
	if record[colTime] != "" {
		t, err := time.Parse(timeFormat, record[colTime])
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing time %q: %w", record[colTime], err)
		}
		date = time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
		hasTime = true
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	source, err := model.ParseSource(record[colSource])
	if err != nil {
		return model.Transaction{}, err
	}

	var info map[string]string
	if record[colInfo] != "" {
		if err := json.Unmarshal([]byte(record[colInfo]), &info); err != nil {
			return model.Transaction{}, fmt.Errorf("parsing additional_info: %w", err)
		}
	}

	return model.Transaction{
		Date:           date,
		HasTime:        hasTime,
		Description:    record[colDesc],
		Merchant:       record[colMerchant],
		Category:       record[colCategory],
		Type:           record[colType],
		Amount:         amount,
		Source:         source,
		Status:         record[colStatus],
		AdditionalInfo: info,
	}, nil
}
