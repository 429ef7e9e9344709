package dialog

import (
	"strconv"
	"strings"
)

// The resolvers below map a raw user message onto catalog candidates or
// fixed keyword sets. They are pure: same input, same answer. Matching is
// deliberately simple: the candidate name must appear inside the message
// (case-insensitive), with a 1-based index as fallback. Anything smarter is
// an external concern.

// resolveOption finds which of n candidates the message refers to.
// nameAt returns the display name of candidate i. Returns -1 on no match.
// Name matches run before the numeric fallback, so an item literally named
// "2" wins over index interpretation.
func resolveOption(raw string, n int, nameAt func(int) string) int {
	lower := strings.ToLower(raw)
	for i := 0; i < n; i++ {
		name := strings.ToLower(nameAt(i))
		if name != "" && strings.Contains(lower, name) {
			return i
		}
	}
	if idx, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		if idx >= 1 && idx <= n {
			return idx - 1
		}
	}
	return -1
}

// resolveCategory matches like resolveOption but additionally tries each
// category name with its trailing character stripped, so "pizzaria"
// matches "pizzarias". This is a narrow singular/plural heuristic, not
// stemming.
func resolveCategory(raw string, categories []string) int {
	lower := strings.ToLower(raw)
	for i, name := range categories {
		lowerName := strings.ToLower(name)
		if strings.Contains(lower, lowerName) {
			return i
		}
		if runes := []rune(lowerName); len(runes) > 1 {
			if strings.Contains(lower, string(runes[:len(runes)-1])) {
				return i
			}
		}
	}
	if idx, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		if idx >= 1 && idx <= len(categories) {
			return idx - 1
		}
	}
	return -1
}

// quantityWord pairs a number word with its value. Table order decides
// which word wins when a message contains several.
type quantityWord struct {
	word  string
	value int
}

var quantityWords = []quantityWord{
	{"um", 1}, {"uma", 1}, {"one", 1},
	{"dois", 2}, {"duas", 2}, {"two", 2},
	{"três", 3}, {"tres", 3}, {"three", 3},
	{"quatro", 4}, {"four", 4},
	{"cinco", 5}, {"five", 5},
}

// resolveQuantity parses a quantity as an integer, or failing that as a
// bilingual number word. Zero and negative quantities do not resolve.
func resolveQuantity(raw string) (int, bool) {
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		if v <= 0 {
			return 0, false
		}
		return v, true
	}
	lower := strings.ToLower(raw)
	for _, qw := range quantityWords {
		if strings.Contains(lower, qw.word) {
			return qw.value, true
		}
	}
	return 0, false
}

// YesNo is the outcome of a yes/no question.
type YesNo int

const (
	AnswerUnclear YesNo = iota
	AnswerYes
	AnswerNo
)

// resolveYesNo scans the positive and negative keyword sets. When a message
// matches both, positive wins; that is a defined tie-break.
func resolveYesNo(raw string, kw Keywords) YesNo {
	if containsAny(raw, kw.Positive) {
		return AnswerYes
	}
	if containsAny(raw, kw.Negative) {
		return AnswerNo
	}
	return AnswerUnclear
}

// resolveDeliveryMethod picks delivery or pickup by keyword. Delivery is
// checked first.
func resolveDeliveryMethod(raw string, kw Keywords) (DeliveryMethod, bool) {
	if containsAny(raw, kw.Delivery) {
		return DeliveryHome, true
	}
	if containsAny(raw, kw.Pickup) {
		return DeliveryPickup, true
	}
	return "", false
}

// paymentAlias maps a shortcut or spelling to a payment method. Ordered:
// numeric shortcuts first, then hyphenated and plain spellings.
type paymentAlias struct {
	alias  string
	method PaymentMethod
}

var paymentAliases = []paymentAlias{
	{"1", PaymentEMola}, {"2", PaymentMPesa}, {"3", PaymentMKesh},
	{"e-mola", PaymentEMola}, {"m-pesa", PaymentMPesa}, {"m-kesh", PaymentMKesh},
	{"emola", PaymentEMola}, {"mpesa", PaymentMPesa}, {"mkesh", PaymentMKesh},
}

// resolvePaymentMethod matches a payment method by numeric shortcut or name
// variant with or without hyphen.
func resolvePaymentMethod(raw string) (PaymentMethod, bool) {
	lower := strings.ToLower(raw)
	for _, pa := range paymentAliases {
		if strings.Contains(lower, pa.alias) {
			return pa.method, true
		}
	}
	return "", false
}

// containsAny reports whether any of the words appears in the message,
// case-insensitive.
func containsAny(raw string, words []string) bool {
	lower := strings.ToLower(raw)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// isExactly reports whether the trimmed lowercased message equals one of
// the words. Global commands match the whole message so that ordinary
// sentences mentioning "cart" or "help" mid-flow do not hijack the turn.
func isExactly(raw string, words []string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	for _, w := range words {
		if lower == w {
			return true
		}
	}
	return false
}
