package dialog

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"marketplace_bot/catalog"
)

// Every user-facing reply exists in Portuguese and English and is built
// from parameters (names, quantities, prices) here, so the dialogue logic
// never concatenates user text itself.

// pick selects the rendering for the session language. Portuguese is the
// default for any unknown value.
func pick(lang Language, pt, en string) string {
	if lang == LangEN {
		return en
	}
	return pt
}

// formatNumber renders a price or rating without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// capitalize upper-cases the first rune of a name for display.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// categoryEmoji picks a display emoji for a category name.
func categoryEmoji(name string) string {
	switch name {
	case "pizzarias", "restaurantes":
		return "🍔"
	case "brechos", "boutiques", "eletronicos", "ferragens":
		return "🛍️"
	case "discotecas":
		return "🎵"
	default:
		return "📦"
	}
}

func msgGreeting(lang Language) string {
	return pick(lang,
		"Olá! 👋 Bem-vindo(a) ao nosso marketplace! Como posso ajudar hoje? Procura algo específico ou gostaria de ver as nossas categorias?",
		"Hello! 👋 Welcome to our marketplace! How can I help you today? Are you looking for something specific, or would you like to see our categories?")
}

func msgCategories(lang Language, categories []string) string {
	var b strings.Builder
	b.WriteString(pick(lang,
		"Temos uma variedade de opções para si! As nossas categorias principais são:\n\n",
		"We have a variety of options for you! Our main categories are:\n\n"))
	for i, name := range categories {
		fmt.Fprintf(&b, "%s %d. %s\n", categoryEmoji(name), i+1, capitalize(name))
	}
	b.WriteString(pick(lang,
		"\nEm qual delas está interessado(a)?",
		"\nWhich one are you interested in?"))
	return b.String()
}

func msgCategoryNotFound(lang Language) string {
	return pick(lang,
		"Desculpe, não consegui identificar essa categoria. Por favor, escolha uma das categorias listadas ou digite o número correspondente.",
		"Sorry, I couldn't identify that category. Please choose one of the listed categories or type the corresponding number.")
}

func msgEstablishments(lang Language, category string, ests []catalog.Establishment) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(lang,
		"Ótimo! Aqui estão os estabelecimentos disponíveis na categoria %s:\n\n",
		"Great! Here are the available establishments in the %s category:\n\n"),
		capitalize(category))
	for i, e := range ests {
		fmt.Fprintf(&b, "%d. %s - ⭐ %s\n", i+1, e.Name, formatNumber(e.AverageRating))
	}
	b.WriteString(pick(lang,
		"\nQual deles gostaria de explorar?",
		"\nWhich one would you like to explore?"))
	return b.String()
}

func msgEstablishmentNotFound(lang Language) string {
	return pick(lang,
		"Desculpe, não consegui identificar esse estabelecimento. Por favor, escolha um dos estabelecimentos listados ou digite o número correspondente.",
		"Sorry, I couldn't identify that establishment. Please choose one of the listed establishments or type the corresponding number.")
}

func writeItems(b *strings.Builder, items []catalog.Item) {
	for i, it := range items {
		fmt.Fprintf(b, "%d. %s - %s MT\n   %s\n\n", i+1, it.Name, formatNumber(it.Price), it.Description)
	}
}

func msgMenu(lang Language, est catalog.Establishment) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(lang,
		"Excelente escolha! Aqui está o menu/catálogo de %s:\n\n",
		"Excellent choice! Here's the menu/catalog from %s:\n\n"), est.Name)
	writeItems(&b, est.Items)
	fmt.Fprintf(&b, pick(lang,
		"\nLocalização: %s\nHorário de funcionamento: %s\nAvaliação: ⭐ %s\n\n",
		"\nLocation: %s\nOpening hours: %s\nRating: ⭐ %s\n\n"),
		est.Address, est.OpeningHours, formatNumber(est.AverageRating))
	b.WriteString(pick(lang,
		"O que gostaria de pedir?",
		"What would you like to order?"))
	return b.String()
}

func msgMenuAgain(lang Language, est catalog.Establishment) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(lang,
		"Claro! Aqui está novamente o menu/catálogo de %s:\n\n",
		"Sure! Here's the menu/catalog from %s again:\n\n"), est.Name)
	writeItems(&b, est.Items)
	b.WriteString(pick(lang,
		"O que mais gostaria de pedir?",
		"What else would you like to order?"))
	return b.String()
}

func msgItemNotFound(lang Language) string {
	return pick(lang,
		"Desculpe, não consegui identificar esse item. Por favor, escolha um dos itens listados ou digite o número correspondente.",
		"Sorry, I couldn't identify that item. Please choose one of the listed items or type the corresponding number.")
}

func msgAskQuantity(lang Language, itemName string) string {
	return fmt.Sprintf(pick(lang,
		"Ótima escolha! Quantos %s deseja?",
		"Great choice! How many %s would you like?"), itemName)
}

func msgInvalidQuantity(lang Language) string {
	return pick(lang,
		"Por favor, indique uma quantidade válida (um número ou palavras como 'um', 'dois', etc.).",
		"Please provide a valid quantity (a number or words like 'one', 'two', etc.).")
}

func writeCartLines(b *strings.Builder, cart []CartLine) {
	for _, line := range cart {
		fmt.Fprintf(b, "• %dx %s - %s MT\n", line.Quantity, line.Name, formatNumber(line.Subtotal))
	}
}

func msgAddedToCart(lang Language, line CartLine, cart []CartLine, total float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(lang,
		"%dx %s adicionado(s) à sua sacola. ✅\n\n",
		"%dx %s added to your bag. ✅\n\n"), line.Quantity, line.Name)
	b.WriteString(pick(lang, "Sua sacola atual:\n", "Your current bag:\n"))
	writeCartLines(&b, cart)
	fmt.Fprintf(&b, pick(lang, "\nTotal parcial: %s MT\n\n", "\nSubtotal: %s MT\n\n"), formatNumber(total))
	b.WriteString(pick(lang,
		"Vai querer mais alguma coisa?",
		"Would you like anything else?"))
	return b.String()
}

func msgMoreItemsUnclear(lang Language) string {
	return pick(lang,
		"Desculpe, não entendi. Você gostaria de pedir mais alguma coisa? Por favor, responda com 'sim' ou 'não'.",
		"Sorry, I didn't understand. Would you like to order anything else? Please answer with 'yes' or 'no'.")
}

func msgAskDeliveryMethod(lang Language) string {
	return pick(lang,
		"Perfeito! Seu pedido está quase finalizado.\nPrefere receber por delivery (entrega) ou vir buscar no estabelecimento?",
		"Perfect! Your order is almost complete.\nWould you prefer delivery or pickup at the establishment?")
}

func msgDeliveryMethodUnclear(lang Language) string {
	return pick(lang,
		"Desculpe, não entendi sua escolha. Por favor, indique se prefere receber por delivery (entrega) ou se prefere buscar no estabelecimento.",
		"Sorry, I didn't understand your choice. Please indicate if you prefer delivery or pickup at the establishment.")
}

func msgAskDeliveryInfo(lang Language) string {
	return pick(lang,
		"Entendido, entrega ao domicílio! Para calcularmos a taxa de entrega e agilizarmos o processo, por favor, informe:\n\n• O seu contacto para chamadas (se diferente do WhatsApp).\n• O seu bairro e um ponto de referência.\n• O horário em que gostaria de receber o pedido.",
		"Understood, home delivery! To calculate the delivery fee and speed up the process, please provide:\n\n• Your contact number for calls (if different from WhatsApp).\n• Your neighborhood and a reference point.\n• The time you would like to receive your order.")
}

func msgAskPickupTime(lang Language) string {
	return pick(lang,
		"Ótimo, você optou por buscar no estabelecimento. A que horas pretende buscar o seu pedido?",
		"Great, you've chosen to pick up at the establishment. What time do you plan to pick up your order?")
}

func writePaymentMenu(b *strings.Builder, lang Language) {
	b.WriteString(pick(lang,
		"Estes são os nossos métodos de pagamento:\n\n",
		"These are our payment methods:\n\n"))
	b.WriteString("1. E-Mola\n2. M-Pesa\n3. M-Kesh\n\n")
	b.WriteString(pick(lang, "Qual prefere?", "Which do you prefer?"))
}

func msgDeliverySummary(lang Language, cart []CartLine, fee, total float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(lang,
		"Obrigado pelas informações! A taxa de entrega para a sua localização é de %s MT.\n\n",
		"Thank you for the information! The delivery fee to your location is %s MT.\n\n"), formatNumber(fee))
	b.WriteString(pick(lang, "Resumo do seu pedido:\n", "Your order summary:\n"))
	writeCartLines(&b, cart)
	fmt.Fprintf(&b, pick(lang, "Taxa de entrega - %s MT\n", "Delivery fee - %s MT\n"), formatNumber(fee))
	fmt.Fprintf(&b, pick(lang, "\nTotal a pagar: %s MT\n\n", "\nTotal to pay: %s MT\n\n"), formatNumber(total))
	writePaymentMenu(&b, lang)
	return b.String()
}

func msgPickupSummary(lang Language, pickupTime string, cart []CartLine, total float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(lang,
		"Perfeito! Seu pedido estará pronto para retirada às %s.\n\n",
		"Perfect! Your order will be ready for pickup at %s.\n\n"), pickupTime)
	b.WriteString(pick(lang, "Resumo do seu pedido:\n", "Your order summary:\n"))
	writeCartLines(&b, cart)
	fmt.Fprintf(&b, pick(lang, "\nTotal a pagar: %s MT\n\n", "\nTotal to pay: %s MT\n\n"), formatNumber(total))
	writePaymentMenu(&b, lang)
	return b.String()
}

func msgPaymentNotRecognized(lang Language) string {
	return pick(lang,
		"Desculpe, não reconheci esse método de pagamento. Por favor, escolha entre E-Mola, M-Pesa ou M-Kesh.",
		"Sorry, I didn't recognize that payment method. Please choose between E-Mola, M-Pesa, or M-Kesh.")
}

func msgPaymentDetails(lang Language, method PaymentMethod, dest PaymentDestination, total float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, pick(lang,
		"Escolheu %s. Estes são os dados para pagamento:\n\n",
		"You chose %s. Here are the payment details:\n\n"), method)
	fmt.Fprintf(&b, pick(lang,
		"• Nome: %s\n• Contacto: %s\n\n",
		"• Name: %s\n• Contact: %s\n\n"), dest.Name, dest.Contact)
	fmt.Fprintf(&b, pick(lang,
		"Assim que efetuar o pagamento de %s MT, por favor, envie-nos o print do comprovativo aqui mesmo.",
		"Once you've made the payment of %s MT, please send us a screenshot of the receipt right here."), formatNumber(total))
	return b.String()
}

func msgAskPaymentProof(lang Language) string {
	return pick(lang,
		"Por favor, envie uma imagem do comprovativo de pagamento para podermos processar o seu pedido.",
		"Please send an image of the payment receipt so we can process your order.")
}

func msgProofReceived(lang Language) string {
	return pick(lang,
		"Comprovativo recebido! Muito obrigado. 😊\nUm dos nossos atendentes humanos irá verificar o pagamento e confirmar o seu pedido em breve. Por favor, aguarde a confirmação.",
		"Receipt received! Thank you very much. 😊\nOne of our human attendants will verify the payment and confirm your order soon. Please wait for confirmation.")
}

func msgPreviousOrderProcessed(lang Language) string {
	return pick(lang,
		"Seu pedido anterior foi processado. Como posso ajudar hoje?",
		"Your previous order has been processed. How can I help you today?")
}

func msgGenericError(lang Language) string {
	return pick(lang,
		"Desculpe, ocorreu um erro. Como posso ajudar hoje?",
		"Sorry, an error occurred. How can I help you today?")
}

func msgLanguageEnglish() string {
	return "Language changed to English. How can I help you today?"
}

func msgLanguagePortuguese() string {
	return "Idioma alterado para Português. Como posso ajudar hoje?"
}

func msgHelp(lang Language) string {
	return pick(lang,
		"Estou aqui para ajudar! Você pode dizer o que procura (ex: 'quero uma pizza', 'lojas de roupa'), pedir para ver as 'categorias', ou se estiver a meio de um pedido, pode dizer 'ver sacola' ou 'cancelar pedido'. Como posso assistir?",
		"I'm here to help! You can tell me what you're looking for (e.g., 'I want a pizza', 'clothing stores'), ask to see the 'categories', or if you're in the middle of an order, you can say 'view bag' or 'cancel order'. How can I assist?")
}

func msgOrderCancelled(lang Language) string {
	return pick(lang,
		"Pedido cancelado. Como posso ajudar hoje?",
		"Order canceled. How can I help you today?")
}

func msgEmptyBag(lang Language) string {
	return pick(lang,
		"Sua sacola está vazia. Como posso ajudar hoje?",
		"Your bag is empty. How can I help you today?")
}

func msgViewCart(lang Language, cart []CartLine, total float64) string {
	var b strings.Builder
	b.WriteString(pick(lang, "Sua sacola atual:\n", "Your current bag:\n"))
	writeCartLines(&b, cart)
	fmt.Fprintf(&b, pick(lang, "\nTotal parcial: %s MT\n\n", "\nSubtotal: %s MT\n\n"), formatNumber(total))
	b.WriteString(pick(lang,
		"Deseja continuar com o pedido ou adicionar mais itens?",
		"Would you like to continue with the order or add more items?"))
	return b.String()
}
