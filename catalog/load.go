package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// itemDoc mirrors one item entry of the catalog data file, which uses
// Portuguese field names.
type itemDoc struct {
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Descricao string  `json:"descricao"`
}

// establishmentDoc mirrors one establishment entry. The item list appears
// under "menu" for food categories and "produtos" (or "products") for
// retail ones; both mean the same thing.
type establishmentDoc struct {
	Nome                 string    `json:"nome"`
	Endereco             string    `json:"endereco"`
	HorarioFuncionamento string    `json:"horario_funcionamento"`
	AvaliacaoMedia       float64   `json:"avaliacao_media"`
	Menu                 []itemDoc `json:"menu"`
	Produtos             []itemDoc `json:"produtos"`
	Products             []itemDoc `json:"products"`
}

func (d establishmentDoc) normalize() Establishment {
	items := d.Menu
	if len(items) == 0 {
		items = d.Produtos
	}
	if len(items) == 0 {
		items = d.Products
	}
	est := Establishment{
		Name:          d.Nome,
		Address:       d.Endereco,
		OpeningHours:  d.HorarioFuncionamento,
		AverageRating: d.AvaliacaoMedia,
		Items:         make([]Item, 0, len(items)),
	}
	for _, it := range items {
		est.Items = append(est.Items, Item{
			Name:        it.Nome,
			Price:       it.Preco,
			Description: it.Descricao,
		})
	}
	return est
}

// LoadFile reads the catalog from a JSON file shaped like the original
// establishment data: a top-level object mapping category name to an array
// of establishments. Category order follows the document's key order, which
// is why the top level is walked token by token instead of through a map.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses catalog JSON from a reader. See LoadFile.
func Decode(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("read catalog: expected top-level object, got %v", tok)
	}

	var categories []Category
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("read catalog: expected category name, got %v", tok)
		}

		var docs []establishmentDoc
		if err := dec.Decode(&docs); err != nil {
			return nil, fmt.Errorf("read catalog category %q: %w", name, err)
		}

		cat := Category{Name: name, Establishments: make([]Establishment, 0, len(docs))}
		for _, d := range docs {
			cat.Establishments = append(cat.Establishments, d.normalize())
		}
		categories = append(categories, cat)
	}

	return NewStore(categories), nil
}
