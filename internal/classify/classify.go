package classify

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgible-dev/ledgible/internal/model"
)

// Category is an analysis-level spend label, distinct from the source-native
// category a normalizer passes through.
type Category string

const (
	CategoryRent          Category = "rent"
	CategoryUtilities     Category = "utilities"
	CategoryDiningOut     Category = "dining_out"
	CategoryGroceries     Category = "groceries"
	CategorySubway        Category = "subway"
	CategoryTaxi          Category = "taxi"
	CategoryShopping      Category = "shopping"
	CategorySubscriptions Category = "subscriptions"
	CategoryHome          Category = "home"
	CategoryOther         Category = "other"
)

// Rule pairs a category with its predicate. Rules are evaluated in order and
// the first match wins; rent runs first so its keywords and the large-transfer
// heuristic claim records before any broader rule sees them.
type Rule struct {
	Category Category
	Match    func(tx model.Transaction) bool
}

var (
	rentKeywords = []string{"rent", "lease", "apartment", "building management", "property management"}

	utilityKeywords = []string{
		"electric", "electricity", "gas", "water", "internet", "wifi", "cable",
		"phone", "mobile", "verizon", "at&t", "tmobile", "sprint", "con ed",
		"coned", "utility", "national grid",
	}

	groceryKeywords = []string{
		"grocery", "supermarket", "whole foods", "wholefds", "trader joe",
		"food market", "deli", "bodega", "market",
	}

	subwayKeywords = []string{"nyct", "mta", "metro", "subway", "transit"}

	taxiKeywords = []string{"uber", "lyft", "taxi", "cab", "via", "curb"}

	subscriptionKeywords = []string{
		"subscription", "netflix", "spotify", "apple.com", "amazon prime",
		"hulu", "disney", "hbo", "youtube premium", "annual subscription",
		"monthly subscription", "gym", "fitness", "membership",
	}

	shoppingKeywords = []string{
		"amazon", "target", "walmart", "clothing", "apparel", "fashion",
		"store", "retail", "bloomingdale", "macy", "nordstrom", "adidas",
		"nike", "uniqlo", "zara", "h&m",
	}

	homeKeywords = []string{
		"furniture", "ikea", "home depot", "lowes", "bed bath", "cleaner",
		"hardware", "home improvement", "cleaning", "laundry", "dry clean",
	}

	// transferCategories are source-native labels under which large recurring
	// payments tend to be rent.
	transferCategories = []string{"payment", "debit", "standard transfer"}

	rentAmountFloor = decimal.NewFromInt(1000)
	subscriptionMin = decimal.NewFromInt(5)
	subscriptionMax = decimal.NewFromInt(50)
)

// DefaultRules returns the ordered rule cascade. The order is a versioned
// artifact: reordering changes classification outcomes.
func DefaultRules() []Rule {
	return []Rule{
		{CategoryRent, func(tx model.Transaction) bool {
			return matchesAny(tx, rentKeywords)
		}},
		{CategoryRent, func(tx model.Transaction) bool {
			return tx.Amount.GreaterThan(rentAmountFloor) && inSet(tx.Category, transferCategories)
		}},
		{CategoryUtilities, func(tx model.Transaction) bool {
			return matchesAny(tx, utilityKeywords)
		}},
		{CategoryDiningOut, func(tx model.Transaction) bool {
			return inSet(tx.Category, []string{"restaurants", "alcohol"})
		}},
		{CategoryGroceries, func(tx model.Transaction) bool {
			return strings.EqualFold(tx.Category, "grocery")
		}},
		{CategoryGroceries, func(tx model.Transaction) bool {
			return containsAny(strings.ToLower(tx.Merchant), groceryKeywords)
		}},
		{CategorySubway, func(tx model.Transaction) bool {
			return matchesAny(tx, subwayKeywords)
		}},
		{CategoryTaxi, func(tx model.Transaction) bool {
			return matchesAny(tx, taxiKeywords)
		}},
		{CategorySubscriptions, func(tx model.Transaction) bool {
			return matchesAny(tx, subscriptionKeywords)
		}},
		{CategorySubscriptions, func(tx model.Transaction) bool {
			return tx.Amount.GreaterThanOrEqual(subscriptionMin) &&
				tx.Amount.LessThanOrEqual(subscriptionMax) &&
				strings.Contains(strings.ToLower(tx.Description), "subscription")
		}},
		{CategoryShopping, func(tx model.Transaction) bool {
			return strings.EqualFold(tx.Category, "shopping")
		}},
		{CategoryShopping, func(tx model.Transaction) bool {
			return matchesAny(tx, shoppingKeywords)
		}},
		{CategoryHome, func(tx model.Transaction) bool {
			return matchesAny(tx, homeKeywords)
		}},
	}
}

// Classify assigns an analysis category using the default rule cascade.
func Classify(tx model.Transaction) Category {
	return ClassifyWith(DefaultRules(), tx)
}

// ClassifyWith evaluates rules in order; the first satisfied rule
// short-circuits the rest. No match falls through to "other".
func ClassifyWith(rules []Rule, tx model.Transaction) Category {
	for _, rule := range rules {
		if rule.Match(tx) {
			return rule.Category
		}
	}
	return CategoryOther
}

// matchesAny tests merchant and description, case-insensitive substring.
func matchesAny(tx model.Transaction, keywords []string) bool {
	merchant := strings.ToLower(tx.Merchant)
	desc := strings.ToLower(tx.Description)
	for _, kw := range keywords {
		if strings.Contains(merchant, kw) || strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func inSet(s string, set []string) bool {
	s = strings.ToLower(s)
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
