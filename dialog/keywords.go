package dialog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Keywords are the fixed word sets the resolvers match against. They are
// data, not logic: deployments can override any set from a YAML file
// without touching the dialogue code.
type Keywords struct {
	Greetings          []string `yaml:"greetings"`
	CategoryRequests   []string `yaml:"category_requests"`
	Positive           []string `yaml:"positive"`
	Negative           []string `yaml:"negative"`
	Delivery           []string `yaml:"delivery"`
	Pickup             []string `yaml:"pickup"`
	LanguageEnglish    []string `yaml:"language_english"`
	LanguagePortuguese []string `yaml:"language_portuguese"`
	Help               []string `yaml:"help"`
	Cancel             []string `yaml:"cancel"`
	ViewCart           []string `yaml:"view_cart"`
}

// DefaultKeywords returns the built-in bilingual keyword sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Greetings: []string{
			"olá", "ola", "oi", "hello", "hi", "hey",
			"bom dia", "boa tarde", "boa noite",
		},
		CategoryRequests: []string{
			"categorias", "categories", "opções", "options",
			"o que tem", "what do you have",
		},
		Positive:           []string{"sim", "yes", "quero", "want", "mais", "more"},
		Negative:           []string{"não", "nao", "no", "pronto", "finalizar", "finish", "done"},
		Delivery:           []string{"delivery", "entrega", "entregar", "casa", "home", "deliver"},
		Pickup:             []string{"buscar", "pickup", "retirar", "retirada", "loja", "store", "pick up"},
		LanguageEnglish:    []string{"english", "inglês", "ingles", "en"},
		LanguagePortuguese: []string{"português", "portugues", "portuguese", "pt"},
		Help:               []string{"ajuda", "help", "socorro", "sos"},
		Cancel:             []string{"cancelar", "cancel", "cancelar pedido", "cancel order"},
		ViewCart:           []string{"ver sacola", "view bag", "carrinho", "cart", "sacola", "bag"},
	}
}

// LoadKeywords reads keyword overrides from a YAML file on top of the
// defaults. Sets absent from the file keep their default words.
func LoadKeywords(path string) (Keywords, error) {
	kw := DefaultKeywords()

	data, err := os.ReadFile(path)
	if err != nil {
		return kw, fmt.Errorf("read keywords file: %w", err)
	}
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return kw, fmt.Errorf("parse keywords file: %w", err)
	}
	return kw, nil
}
