// Package checkout drives the three-step order wizard:
// Shipping -> Payment -> Review, then Submitting -> Done when the order is
// placed. Each forward transition is gated by its step's validator; going
// backward never validates.
package checkout

import (
	"errors"
	"sync"
	"time"

	"saree-store/internal/cart"
	"saree-store/internal/models"
	"saree-store/internal/orders"
	"saree-store/internal/pricing"
)

type Step int

const (
	StepShipping Step = iota
	StepPayment
	StepReview
	StepSubmitting
	StepDone
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	case StepSubmitting:
		return "submitting"
	case StepDone:
		return "done"
	}
	return "unknown"
}

func (s Step) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// PaymentDetails is the payment step's form. Only the card method carries
// validated fields; upi and cod need nothing beyond the method itself.
type PaymentDetails struct {
	Method         string `json:"method"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardHolderName string `json:"cardHolderName,omitempty"`
	CardExpiry     string `json:"cardExpiry,omitempty"`
	CardCVV        string `json:"cardCvv,omitempty"`
	UPIID          string `json:"upiId,omitempty"`
}

// Session is one user's wizard state.
type Session struct {
	Step     Step                   `json:"step"`
	Shipping models.ShippingDetails `json:"shipping"`
	Payment  PaymentDetails         `json:"payment"`
	OrderID  string                 `json:"orderId,omitempty"`
}

// ContinueInput carries the payload for a forward transition. Which field
// is read depends on the session's current step; the review step reads
// neither.
type ContinueInput struct {
	Shipping *models.ShippingDetails
	Payment  *PaymentDetails
}

// Result reports the outcome of a forward transition. Exactly one of
// FieldErrors (validation blocked the step) or Session is meaningful;
// Order is set when the final step completed.
type Result struct {
	Session     Session
	FieldErrors map[string]string
	Order       *models.Order
}

var (
	ErrNoSession  = errors.New("no checkout in progress")
	ErrSubmitting = errors.New("order submission already in progress")
	ErrEmptyCart  = errors.New("cart is empty")
	ErrDone       = errors.New("checkout already completed")
)

// Manager owns the per-user wizard sessions. The cart and order stores are
// injected; placing an order snapshots the cart into the order store and
// then clears it.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	cart        *cart.Store
	orders      *orders.Store
	submitDelay time.Duration // stands in for the payment round trip
}

func NewManager(cartStore *cart.Store, orderStore *orders.Store, submitDelay time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		cart:        cartStore,
		orders:      orderStore,
		submitDelay: submitDelay,
	}
}

// Start begins a fresh wizard at the shipping step, discarding any
// previous session. Callers enforce the entry guards (signed-in user,
// non-empty cart) before starting.
func (m *Manager) Start(userID string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{Step: StepShipping}
	m.sessions[userID] = s
	return *s
}

// Get returns the user's current session.
func (m *Manager) Get(userID string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return Session{}, false
	}
	return *s, true
}

// Continue attempts the forward transition from the session's current
// step. Validation failures come back as field-keyed messages and leave
// the step unchanged. From the review step it places the order: the cart
// is snapshotted, the simulated submission delay runs, the order is
// recorded and the cart cleared.
func (m *Manager) Continue(userID string, in ContinueInput) (*Result, error) {
	m.mu.Lock()

	s, ok := m.sessions[userID]
	if !ok {
		m.mu.Unlock()
		return nil, ErrNoSession
	}

	switch s.Step {
	case StepShipping:
		var details models.ShippingDetails
		if in.Shipping != nil {
			details = *in.Shipping
		}
		if errs := ValidateShipping(details); len(errs) > 0 {
			m.mu.Unlock()
			return &Result{Session: *s, FieldErrors: errs}, nil
		}
		s.Shipping = details
		s.Step = StepPayment
		out := *s
		m.mu.Unlock()
		return &Result{Session: out}, nil

	case StepPayment:
		var details PaymentDetails
		if in.Payment != nil {
			details = *in.Payment
		}
		if errs := ValidatePayment(details); len(errs) > 0 {
			m.mu.Unlock()
			return &Result{Session: *s, FieldErrors: errs}, nil
		}
		s.Payment = details
		s.Step = StepReview
		out := *s
		m.mu.Unlock()
		return &Result{Session: out}, nil

	case StepReview:
		items := m.cart.Items(userID)
		if len(items) == 0 {
			m.mu.Unlock()
			return nil, ErrEmptyCart
		}
		s.Step = StepSubmitting
		shipping, method := s.Shipping, s.Payment.Method
		m.mu.Unlock()

		// Simulated payment gateway call. Best effort, always succeeds.
		time.Sleep(m.submitDelay)

		subtotal := 0
		for _, it := range items {
			subtotal += it.Product.Price * it.Quantity
		}
		totals := pricing.ForOrder(subtotal)
		order := m.orders.Place(userID, items, shipping, method, totals)
		m.cart.Clear(userID)

		m.mu.Lock()
		s.Step = StepDone
		s.OrderID = order.ID
		out := *s
		m.mu.Unlock()
		return &Result{Session: out, Order: &order}, nil

	case StepSubmitting:
		m.mu.Unlock()
		return nil, ErrSubmitting

	default:
		m.mu.Unlock()
		return nil, ErrDone
	}
}

// Back steps the wizard one step back. From the shipping step there is
// nothing earlier: the session is dropped and exited is true, which the
// HTTP layer turns into a redirect back to the cart.
func (m *Manager) Back(userID string) (Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		return Session{}, false, ErrNoSession
	}

	switch s.Step {
	case StepShipping:
		delete(m.sessions, userID)
		return Session{}, true, nil
	case StepPayment, StepReview:
		s.Step--
		return *s, false, nil
	case StepSubmitting:
		return Session{}, false, ErrSubmitting
	default:
		return Session{}, false, ErrDone
	}
}

// Totals computes the checkout-side order summary for the user's cart.
func (m *Manager) Totals(userID string) pricing.OrderTotals {
	return pricing.ForOrder(m.cart.TotalPrice(userID))
}
