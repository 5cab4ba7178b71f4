package recon

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// CardPayment is a bank-recorded credit card payment with its inferred issuer.
type CardPayment struct {
	Date        time.Time
	Description string
	CardType    string
	Amount      decimal.Decimal
}

// Card issuer names as inferred from bank payment descriptions.
const (
	CardTypeAppleCard = "Apple Card"
	CardTypeRobinhood = "Robinhood"
	CardTypeUnknown   = "Unknown"
)

// cardSources maps an inferred issuer to the source tag of its export.
var cardSources = map[string]model.Source{
	CardTypeAppleCard: model.SourceAppleCard,
	CardTypeRobinhood: model.SourceRobinhood,
}

// CardReconciliation links one bank payment to the issuer spend inside its
// lookback window.
type CardReconciliation struct {
	PaymentDate      time.Time       `json:"payment_date"`
	CardType         string          `json:"card_type"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	PeriodStart      time.Time       `json:"period_start"`
	PeriodEnd        time.Time       `json:"period_end"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	Difference       decimal.Decimal `json:"difference"`
	MatchPercentage  decimal.Decimal `json:"match_percentage"`
	TransactionCount int             `json:"transaction_count"`
	Status           Status          `json:"status"`
}

// CardPaymentsFromBank extracts bank records categorized as credit card
// payments, with the issuer inferred from description keywords.
func CardPaymentsFromBank(txns []model.Transaction) []CardPayment {
	var payments []CardPayment
	for _, txn := range txns {
		if txn.Source != model.SourceTDBank || txn.Category != "credit_card_payment" {
			continue
		}
		payments = append(payments, CardPayment{
			Date:        txn.DateOnly(),
			Description: txn.Description,
			CardType:    inferCardType(txn.Description),
			Amount:      txn.Amount,
		})
	}
	return payments
}

func inferCardType(desc string) string {
	lower := strings.ToLower(desc)
	switch {
	case strings.Contains(lower, "apple"):
		return CardTypeAppleCard
	case strings.Contains(lower, "robinhood"):
		return CardTypeRobinhood
	default:
		return CardTypeUnknown
	}
}

// ReconcileCardPayment matches one payment against issuer spend strictly
// within [payment-lookback, payment-1d]. The payment date itself is excluded
// so a same-day posting is never counted against its own payment. Spend is the
// sum of positive (expense) amounts; the transaction count covers every issuer
// record in the window, refunds included.
func ReconcileCardPayment(txns []model.Transaction, payment CardPayment, lookbackDays int) (CardReconciliation, error) {
	source, ok := cardSources[payment.CardType]
	if !ok {
		return CardReconciliation{}, fmt.Errorf("unknown card type %q", payment.CardType)
	}

	start := payment.Date.AddDate(0, 0, -lookbackDays)
	end := payment.Date.AddDate(0, 0, -1)

	totalSpent := decimal.Zero
	count := 0
	for _, txn := range txns {
		if txn.Source != source {
			continue
		}
		d := txn.DateOnly()
		if d.Before(start) || d.After(end) {
			continue
		}
		count++
		if txn.Amount.IsPositive() {
			totalSpent = totalSpent.Add(txn.Amount)
		}
	}

	difference := payment.Amount.Sub(totalSpent)
	return CardReconciliation{
		PaymentDate:      payment.Date,
		CardType:         payment.CardType,
		PaymentAmount:    payment.Amount,
		PeriodStart:      start,
		PeriodEnd:        end,
		TotalSpent:       totalSpent,
		Difference:       difference,
		MatchPercentage:  matchPercentage(payment.Amount, totalSpent),
		TransactionCount: count,
		Status:           statusFor(difference, cardReviewThreshold),
	}, nil
}

// ReconcileCardPayments runs the card check for every bank card payment.
// Payments whose issuer cannot be inferred are skipped; the skipped
// descriptions are returned so callers can report them without failing the
// batch.
func ReconcileCardPayments(txns []model.Transaction, lookbackDays int) (results []CardReconciliation, skipped []string) {
	for _, payment := range CardPaymentsFromBank(txns) {
		res, err := ReconcileCardPayment(txns, payment, lookbackDays)
		if err != nil {
			skipped = append(skipped, payment.Description)
			continue
		}
		results = append(results, res)
	}
	return results, skipped
}
