package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func nameList(names []string) func(int) string {
	return func(i int) string { return names[i] }
}

func TestResolveOptionSubstring(t *testing.T) {
	pizzerias := []string{"Pizzaria A", "Pizzaria B", "Pizzaria C"}

	got := resolveOption("quero a Pizzaria C", len(pizzerias), nameList(pizzerias))
	assert.Equal(t, 2, got)

	got = resolveOption("PIZZARIA b, por favor", len(pizzerias), nameList(pizzerias))
	assert.Equal(t, 1, got)
}

func TestResolveOptionNumericFallback(t *testing.T) {
	pizzerias := []string{"Pizzaria A", "Pizzaria B", "Pizzaria C"}

	assert.Equal(t, 1, resolveOption("2", len(pizzerias), nameList(pizzerias)))
	assert.Equal(t, 0, resolveOption(" 1 ", len(pizzerias), nameList(pizzerias)))
	assert.Equal(t, -1, resolveOption("4", len(pizzerias), nameList(pizzerias)))
	assert.Equal(t, -1, resolveOption("0", len(pizzerias), nameList(pizzerias)))
	assert.Equal(t, -1, resolveOption("qualquer coisa", len(pizzerias), nameList(pizzerias)))
}

func TestResolveOptionNameBeatsIndex(t *testing.T) {
	// An item literally named "2" wins over index interpretation.
	names := []string{"2", "Coca-Cola"}
	assert.Equal(t, 0, resolveOption("2", len(names), nameList(names)))
}

func TestResolveOptionIsPure(t *testing.T) {
	names := []string{"Pizzaria A", "Pizzaria B"}
	first := resolveOption("pizzaria b", len(names), nameList(names))
	second := resolveOption("pizzaria b", len(names), nameList(names))
	assert.Equal(t, first, second)
}

func TestResolveCategoryPluralStrip(t *testing.T) {
	categories := []string{"pizzarias", "boutiques"}

	// Singular form matches via the trailing-character heuristic.
	assert.Equal(t, 0, resolveCategory("quero uma pizzaria", categories))
	assert.Equal(t, 1, resolveCategory("tem alguma boutique?", categories))
	assert.Equal(t, 0, resolveCategory("pizzarias", categories))
	assert.Equal(t, 1, resolveCategory("2", categories))
	assert.Equal(t, -1, resolveCategory("sapatarias", categories))
}

func TestResolveQuantity(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"2", 2, true},
		{" 10 ", 10, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"duas, por favor", 2, true},
		{"quero três", 3, true},
		{"tres", 3, true},
		{"five please", 5, true},
		{"uma", 1, true},
		{"muitos", 0, false},
	}
	for _, tt := range tests {
		got, ok := resolveQuantity(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
		}
	}
}

func TestResolveYesNo(t *testing.T) {
	kw := DefaultKeywords()

	assert.Equal(t, AnswerYes, resolveYesNo("sim", kw))
	assert.Equal(t, AnswerYes, resolveYesNo("yes please", kw))
	assert.Equal(t, AnswerNo, resolveYesNo("não", kw))
	assert.Equal(t, AnswerNo, resolveYesNo("pronto, finalizar", kw))
	assert.Equal(t, AnswerUnclear, resolveYesNo("talvez", kw))

	// Both sets matching is resolved deterministically: positive wins.
	assert.Equal(t, AnswerYes, resolveYesNo("sim... não", kw))
}

func TestResolveDeliveryMethod(t *testing.T) {
	kw := DefaultKeywords()

	method, ok := resolveDeliveryMethod("prefiro entrega", kw)
	assert.True(t, ok)
	assert.Equal(t, DeliveryHome, method)

	method, ok = resolveDeliveryMethod("vou buscar na loja", kw)
	assert.True(t, ok)
	assert.Equal(t, DeliveryPickup, method)

	_, ok = resolveDeliveryMethod("tanto faz", kw)
	assert.False(t, ok)
}

func TestResolvePaymentMethod(t *testing.T) {
	tests := []struct {
		raw  string
		want PaymentMethod
		ok   bool
	}{
		{"1", PaymentEMola, true},
		{"2", PaymentMPesa, true},
		{"3", PaymentMKesh, true},
		{"e-mola", PaymentEMola, true},
		{"quero pagar com MPESA", PaymentMPesa, true},
		{"M-Kesh", PaymentMKesh, true},
		{"dinheiro", "", false},
	}
	for _, tt := range tests {
		got, ok := resolvePaymentMethod(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}
}

func TestIsExactly(t *testing.T) {
	kw := DefaultKeywords()

	assert.True(t, isExactly("Cancelar", kw.Cancel))
	assert.True(t, isExactly("  cancel order  ", kw.Cancel))
	// Mid-sentence mentions do not trigger global commands.
	assert.False(t, isExactly("quero cancelar depois", kw.Cancel))
}
