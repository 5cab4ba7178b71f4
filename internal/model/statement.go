package model

// RawTransaction is one line extracted from a bank statement, before
// normalization. Date carries no year ("MM/DD"); year inference happens in the
// bank normalizer. Exactly one of Debit/Credit is set.
type RawTransaction struct {
	Date        string // MM/DD
	Type        string // CREDIT or DEBIT
	Description string
	Debit       string // amount string, empty for credits
	Credit      string // amount string, empty for debits
}
