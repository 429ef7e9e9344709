package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
	"pizzarias": [
		{
			"nome": "Pizzaria A",
			"endereco": "Av. Julius Nyerere, 100",
			"horario_funcionamento": "10h - 22h",
			"avaliacao_media": 4.5,
			"menu": [
				{"nome": "Pizza Margherita", "preco": 150, "descricao": "Molho de tomate e mozzarella"},
				{"nome": "Sumo Natural", "preco": 100, "descricao": "Fruta da época"}
			]
		}
	],
	"boutiques": [
		{
			"nome": "Boutique Chic",
			"endereco": "Rua da Moda, 12",
			"horario_funcionamento": "9h - 18h",
			"avaliacao_media": 4.8,
			"produtos": [
				{"nome": "Vestido de Verão", "preco": 850, "descricao": "Tecido leve"}
			]
		}
	],
	"eletronicos": [
		{
			"nome": "TechMundo",
			"endereco": "Av. do Trabalho, 7",
			"horario_funcionamento": "8h - 17h",
			"avaliacao_media": 4.2,
			"products": []
		}
	]
}`

func TestDecodePreservesCategoryOrder(t *testing.T) {
	store, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"pizzarias", "boutiques", "eletronicos"}, store.Categories())
}

func TestDecodeNormalizesItemFields(t *testing.T) {
	store, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	// "menu" and "produtos" both land in Items.
	ests, err := store.Establishments("pizzarias")
	require.NoError(t, err)
	require.Len(t, ests, 1)
	require.Len(t, ests[0].Items, 2)
	assert.Equal(t, "Pizza Margherita", ests[0].Items[0].Name)
	assert.Equal(t, 150.0, ests[0].Items[0].Price)

	ests, err = store.Establishments("boutiques")
	require.NoError(t, err)
	require.Len(t, ests[0].Items, 1)
	assert.Equal(t, "Vestido de Verão", ests[0].Items[0].Name)

	// Neither field present (or empty) means an empty item list, not an
	// error.
	ests, err = store.Establishments("eletronicos")
	require.NoError(t, err)
	assert.Empty(t, ests[0].Items)
}

func TestEstablishmentLookup(t *testing.T) {
	store, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	est, err := store.Establishment("pizzarias", "Pizzaria A")
	require.NoError(t, err)
	assert.Equal(t, "Av. Julius Nyerere, 100", est.Address)
	assert.Equal(t, "10h - 22h", est.OpeningHours)
	assert.Equal(t, 4.5, est.AverageRating)
}

func TestMissingKeysReturnErrNotFound(t *testing.T) {
	store, err := Decode(strings.NewReader(sampleJSON))
	require.NoError(t, err)

	_, err = store.Establishments("discotecas")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Establishment("pizzarias", "Pizzaria Z")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Establishment("discotecas", "Club X")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeRejectsNonObject(t *testing.T) {
	_, err := Decode(strings.NewReader(`["not", "an", "object"]`))
	assert.Error(t, err)
}
