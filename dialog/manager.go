package dialog

import (
	"context"
	"fmt"
	"log"

	"marketplace_bot/catalog"
)

// DialogManager is the entry point the transport layer talks to: one
// inbound message in, one localized reply out.
type DialogManager interface {
	HandleMessage(ctx context.Context, userID, text, mediaURL string) (string, error)
}

// IntentDetector is an optional external disambiguation service consulted
// only when keyword matching in the initial state is inconclusive. Best
// effort: errors fall through to the default path.
type IntentDetector interface {
	DetectIntent(ctx context.Context, sessionID, text string, lang Language) (string, error)
}

// ManagerConfig carries the tunable parts of the dialogue. Zero values fall
// back to the built-in defaults.
type ManagerConfig struct {
	Keywords     Keywords
	Destinations map[PaymentMethod]PaymentDestination
	DeliveryFee  *float64       // nil means the default of 80 MT; 0 means free delivery
	Orders       OrderSink      // optional
	Intents      IntentDetector // optional
}

// Manager runs the conversation state machine. All session mutation happens
// here, one turn at a time per user.
type Manager struct {
	catalog      *catalog.Store
	store        SessionStore
	keywords     Keywords
	destinations map[PaymentMethod]PaymentDestination
	deliveryFee  float64
	orders       OrderSink
	intents      IntentDetector
	locks        *userLocks
}

// NewManager creates a dialogue manager over a loaded catalog and a session
// store.
func NewManager(cat *catalog.Store, store SessionStore, cfg ManagerConfig) *Manager {
	if cfg.Keywords.Positive == nil {
		cfg.Keywords = DefaultKeywords()
	}
	if cfg.Destinations == nil {
		cfg.Destinations = DefaultPaymentDestinations()
	}
	fee := 80.0
	if cfg.DeliveryFee != nil {
		fee = *cfg.DeliveryFee
	}
	return &Manager{
		catalog:      cat,
		store:        store,
		keywords:     cfg.Keywords,
		destinations: cfg.Destinations,
		deliveryFee:  fee,
		orders:       cfg.Orders,
		intents:      cfg.Intents,
		locks:        newUserLocks(),
	}
}

// HandleMessage processes one inbound message. Turns for the same user are
// serialized; turns for different users run in parallel.
func (m *Manager) HandleMessage(ctx context.Context, userID, text, mediaURL string) (string, error) {
	unlock := m.locks.acquire(userID)
	defer unlock()

	sess, err := m.store.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("load session %s: %w", userID, err)
	}

	reply := m.dispatch(ctx, sess, text, mediaURL)

	if err := m.store.Put(ctx, sess); err != nil {
		return "", fmt.Errorf("save session %s: %w", userID, err)
	}
	return reply, nil
}

// dispatch checks the global commands first; none matching, it hands the
// message to the turn handler for the session's current state.
func (m *Manager) dispatch(ctx context.Context, sess *Session, text, mediaURL string) string {
	switch {
	case isExactly(text, m.keywords.LanguageEnglish):
		sess.Language = LangEN
		return msgLanguageEnglish()
	case isExactly(text, m.keywords.LanguagePortuguese):
		sess.Language = LangPT
		return msgLanguagePortuguese()
	case isExactly(text, m.keywords.Help):
		return msgHelp(sess.Language)
	case isExactly(text, m.keywords.Cancel):
		sess.Reset()
		return msgOrderCancelled(sess.Language)
	case isExactly(text, m.keywords.ViewCart):
		if len(sess.Cart) == 0 {
			return msgEmptyBag(sess.Language)
		}
		return msgViewCart(sess.Language, sess.Cart, sess.CartTotal())
	}

	reply, err := m.handleTurn(ctx, sess, text, mediaURL)
	if err != nil {
		// Broken catalog reference or store trouble mid-turn. The session
		// keeps its state so the shopper can simply retry.
		log.Printf("❌ Turn failed for %s in state %s: %v", sess.UserID, sess.State, err)
		return msgGenericError(sess.Language)
	}
	return reply
}

func (m *Manager) handleTurn(ctx context.Context, sess *Session, text, mediaURL string) (string, error) {
	switch sess.State {
	case StateInitial:
		return m.handleInitial(ctx, sess, text), nil
	case StateSelectingCategory:
		return m.handleCategorySelection(sess, text)
	case StateShowingEstablishments:
		return m.handleEstablishmentSelection(sess, text)
	case StateShowingMenu:
		return m.handleItemSelection(sess, text)
	case StateAskingQuantity:
		return m.handleQuantity(sess, text)
	case StateAskingMoreItems:
		return m.handleMoreItems(sess, text)
	case StateAskingDeliveryMethod:
		return m.handleDeliveryMethod(sess, text), nil
	case StateAskingDeliveryInfo:
		return m.handleDeliveryInfo(sess, text), nil
	case StateAskingPickupTime:
		return m.handlePickupTime(sess, text), nil
	case StateShowingPaymentMethods:
		return m.handlePaymentMethod(sess, text), nil
	case StateShowingPaymentDetails:
		return m.handlePaymentProof(ctx, sess, mediaURL), nil
	case StateOrderCompleted:
		sess.Reset()
		return msgPreviousOrderProcessed(sess.Language), nil
	default:
		// Corrupted state value. Start over rather than crash.
		log.Printf("⚠️ Unknown state %q for %s, resetting", sess.State, sess.UserID)
		sess.Reset()
		return msgGenericError(sess.Language), nil
	}
}

func (m *Manager) handleInitial(ctx context.Context, sess *Session, text string) string {
	if containsAny(text, m.keywords.Greetings) {
		return msgGreeting(sess.Language)
	}
	if containsAny(text, m.keywords.CategoryRequests) {
		return m.showCategories(sess)
	}
	if m.intents != nil {
		intent, err := m.intents.DetectIntent(ctx, sess.UserID, text, sess.Language)
		if err != nil {
			log.Printf("⚠️ Intent detection failed for %s: %v", sess.UserID, err)
		} else if intent == "greeting" {
			return msgGreeting(sess.Language)
		}
	}
	return m.showCategories(sess)
}

func (m *Manager) showCategories(sess *Session) string {
	sess.State = StateSelectingCategory
	return msgCategories(sess.Language, m.catalog.Categories())
}

func (m *Manager) handleCategorySelection(sess *Session, text string) (string, error) {
	categories := m.catalog.Categories()
	i := resolveCategory(text, categories)
	if i < 0 {
		return msgCategoryNotFound(sess.Language), nil
	}

	ests, err := m.catalog.Establishments(categories[i])
	if err != nil {
		return "", err
	}

	sess.SelectedCategory = categories[i]
	sess.State = StateShowingEstablishments
	return msgEstablishments(sess.Language, categories[i], ests), nil
}

func (m *Manager) handleEstablishmentSelection(sess *Session, text string) (string, error) {
	ests, err := m.catalog.Establishments(sess.SelectedCategory)
	if err != nil {
		return "", err
	}

	i := resolveOption(text, len(ests), func(i int) string { return ests[i].Name })
	if i < 0 {
		return msgEstablishmentNotFound(sess.Language), nil
	}

	sess.SelectedEstablishment = ests[i].Name
	sess.State = StateShowingMenu
	return msgMenu(sess.Language, ests[i]), nil
}

func (m *Manager) handleItemSelection(sess *Session, text string) (string, error) {
	est, err := m.catalog.Establishment(sess.SelectedCategory, sess.SelectedEstablishment)
	if err != nil {
		return "", err
	}

	i := resolveOption(text, len(est.Items), func(i int) string { return est.Items[i].Name })
	if i < 0 {
		return msgItemNotFound(sess.Language), nil
	}

	sess.SelectedItem = est.Items[i].Name
	sess.State = StateAskingQuantity
	return msgAskQuantity(sess.Language, est.Items[i].Name), nil
}

func (m *Manager) handleQuantity(sess *Session, text string) (string, error) {
	quantity, ok := resolveQuantity(text)
	if !ok {
		return msgInvalidQuantity(sess.Language), nil
	}

	est, err := m.catalog.Establishment(sess.SelectedCategory, sess.SelectedEstablishment)
	if err != nil {
		return "", err
	}
	item, err := findItem(est, sess.SelectedItem)
	if err != nil {
		return "", err
	}

	line := sess.AddToCart(item.Name, item.Price, quantity)
	sess.State = StateAskingMoreItems
	return msgAddedToCart(sess.Language, line, sess.Cart, sess.CartTotal()), nil
}

func (m *Manager) handleMoreItems(sess *Session, text string) (string, error) {
	switch resolveYesNo(text, m.keywords) {
	case AnswerYes:
		est, err := m.catalog.Establishment(sess.SelectedCategory, sess.SelectedEstablishment)
		if err != nil {
			return "", err
		}
		sess.State = StateShowingMenu
		return msgMenuAgain(sess.Language, est), nil
	case AnswerNo:
		sess.State = StateAskingDeliveryMethod
		return msgAskDeliveryMethod(sess.Language), nil
	default:
		return msgMoreItemsUnclear(sess.Language), nil
	}
}

func (m *Manager) handleDeliveryMethod(sess *Session, text string) string {
	method, ok := resolveDeliveryMethod(text, m.keywords)
	if !ok {
		return msgDeliveryMethodUnclear(sess.Language)
	}

	sess.DeliveryMethod = method
	if method == DeliveryHome {
		sess.State = StateAskingDeliveryInfo
		return msgAskDeliveryInfo(sess.Language)
	}
	sess.State = StateAskingPickupTime
	return msgAskPickupTime(sess.Language)
}

func (m *Manager) handleDeliveryInfo(sess *Session, text string) string {
	sess.DeliveryInfo = text
	sess.State = StateShowingPaymentMethods
	total := sess.CartTotal() + m.deliveryFee
	return msgDeliverySummary(sess.Language, sess.Cart, m.deliveryFee, total)
}

func (m *Manager) handlePickupTime(sess *Session, text string) string {
	sess.PickupTime = text
	sess.State = StateShowingPaymentMethods
	return msgPickupSummary(sess.Language, text, sess.Cart, sess.CartTotal())
}

func (m *Manager) handlePaymentMethod(sess *Session, text string) string {
	method, ok := resolvePaymentMethod(text)
	if !ok {
		return msgPaymentNotRecognized(sess.Language)
	}

	sess.PaymentMethod = method
	sess.State = StateShowingPaymentDetails
	return msgPaymentDetails(sess.Language, method, m.destinations[method], m.orderTotal(sess))
}

func (m *Manager) handlePaymentProof(ctx context.Context, sess *Session, mediaURL string) string {
	if mediaURL == "" {
		return msgAskPaymentProof(sess.Language)
	}

	fee := 0.0
	if sess.DeliveryMethod == DeliveryHome {
		fee = m.deliveryFee
	}
	order := newOrder(sess, fee, m.orderTotal(sess), mediaURL)

	if m.orders != nil {
		if err := m.orders.SubmitOrder(ctx, order); err != nil {
			log.Printf("❌ Order %s submission failed: %v", order.Ref, err)
		}
	} else {
		log.Printf("🧾 Order %s submitted by %s: %s MT via %s",
			order.Ref, order.UserID, formatNumber(order.Total), order.PaymentMethod)
	}

	sess.State = StateOrderCompleted
	return msgProofReceived(sess.Language)
}

// orderTotal is the cart total plus the delivery fee when the shopper chose
// home delivery.
func (m *Manager) orderTotal(sess *Session) float64 {
	total := sess.CartTotal()
	if sess.DeliveryMethod == DeliveryHome {
		total += m.deliveryFee
	}
	return total
}

func findItem(est catalog.Establishment, name string) (catalog.Item, error) {
	for _, it := range est.Items {
		if it.Name == name {
			return it, nil
		}
	}
	return catalog.Item{}, fmt.Errorf("item %q in %q: %w", name, est.Name, catalog.ErrNotFound)
}
