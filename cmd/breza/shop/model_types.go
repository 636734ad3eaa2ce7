// Package shop provides the interactive storefront TUI.
// This file contains the model's supporting types: view modes, form
// states, and the messages delivered by asynchronous commands.
package shop

import (
	"github.com/charmbracelet/bubbles/textinput"

	"breza/internal/orders"
	"breza/internal/session"
)

// ViewMode determines which page is on screen.
type ViewMode int

const (
	HomeView ViewMode = iota
	ProductsView
	CategoriesView
	DetailView
	CartView
	CheckoutView
	AuthView
	AboutView
)

// Variant options offered on the product detail page. Free-form at the
// cart layer; these are just what the storefront displays.
var (
	availableColors = []string{"Black", "White", "Gray", "Navy", "Olive"}
	availableSizes  = []string{"XS", "S", "M", "L", "XL", "XXL"}
)

// defaultColorIdx/defaultSizeIdx match the storefront defaults (Black, M).
const (
	defaultColorIdx = 0
	defaultSizeIdx  = 2
)

// detailState is the product detail page: which product, and the
// currently picked variant.
type detailState struct {
	productID string
	colorIdx  int
	sizeIdx   int
}

// AuthMode toggles the auth page between sign in and create account.
type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthRegister
)

// Auth form field order: name (register only), email, password.
const (
	authFieldName = iota
	authFieldEmail
	authFieldPassword
	authFieldCount
)

// authState is the sign-in / register form.
type authState struct {
	mode       AuthMode
	inputs     [authFieldCount]textinput.Model
	focus      int
	submitting bool
	failed     bool
}

// CheckoutStep tracks progress through the checkout wizard.
type CheckoutStep int

const (
	StepShipping CheckoutStep = iota
	StepPayment
	StepConfirmation
)

// Shipping form field order.
const (
	shipFieldName = iota
	shipFieldEmail
	shipFieldAddress
	shipFieldCity
	shipFieldZip
	shipFieldCount
)

// Payment form field order.
const (
	payFieldCardNumber = iota
	payFieldExpiry
	payFieldCVV
	payFieldCardholder
	payFieldCount
)

// checkoutState is the two-step checkout wizard plus the confirmation.
type checkoutState struct {
	step     CheckoutStep
	shipping [shipFieldCount]textinput.Model
	payment  [payFieldCount]textinput.Model
	focus    int
	order    orders.Order
	placeErr error
}

// authResultMsg is delivered when an async Login/Register resolves.
type authResultMsg struct {
	session session.Session
	ok      bool
}

// orderPlacedMsg is delivered when checkout submission completes.
type orderPlacedMsg struct {
	order orders.Order
	err   error
}
