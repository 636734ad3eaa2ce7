package shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"breza/internal/cart"
	"breza/internal/orders"
	"breza/internal/session"
)

// Update implements tea.Model. One message is fully processed before the
// next is handled; every cart mutation goes through the store.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if !m.auth.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case authResultMsg:
		return m.handleAuthResult(msg)

	case orderPlacedMsg:
		return m.handleOrderPlaced(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.view {
	case HomeView:
		return m.handleBrowseKeys(msg)
	case ProductsView:
		return m.handleProductsKeys(msg)
	case CategoriesView:
		return m.handleCategoriesKeys(msg)
	case DetailView:
		return m.handleDetailKeys(msg)
	case CartView:
		return m.handleCartKeys(msg)
	case CheckoutView:
		return m.handleCheckoutKeys(msg)
	case AuthView:
		return m.handleAuthKeys(msg)
	case AboutView:
		return m.handleBrowseKeys(msg)
	}
	return m, nil
}

// handleGlobalNav handles the keys shared by every browsing page.
// Returns handled=false when the key is not a navigation key.
func (m Model) handleGlobalNav(key string) (Model, bool) {
	m.status = ""
	switch key {
	case "1", "H":
		m.view = HomeView
		m.catIndex = 0
		m.search.SetValue("")
		m.refreshVisible()
	case "2", "P":
		m.view = ProductsView
	case "3", "G":
		m.view = CategoriesView
	case "4", "A":
		m.view = AboutView
	case "c":
		m.lastView = m.view
		m.view = CartView
		m.cartCursor = 0
	case "u":
		m.lastView = m.view
		m.view = AuthView
	default:
		return m, false
	}
	return m, true
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		if m.view == HomeView {
			return m, tea.Quit
		}
		m.view = HomeView
		return m, nil
	case "enter":
		if m.view == HomeView {
			m.view = ProductsView
		}
		return m, nil
	}
	if next, ok := m.handleGlobalNav(msg.String()); ok {
		return next, nil
	}
	return m, nil
}

func (m Model) handleProductsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refreshVisible()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = HomeView
		return m, nil
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil
	case "tab", "right", "l":
		m.catIndex = (m.catIndex + 1) % (len(m.cfg.Catalog.Categories) + 1)
		m.cursor = 0
		m.refreshVisible()
		return m, nil
	case "shift+tab", "left", "h":
		m.catIndex--
		if m.catIndex < 0 {
			m.catIndex = len(m.cfg.Catalog.Categories)
		}
		m.cursor = 0
		m.refreshVisible()
		return m, nil
	case "r":
		// Clear filters, as the storefront's "Clear Filters" control.
		m.catIndex = 0
		m.search.SetValue("")
		m.cursor = 0
		m.refreshVisible()
		return m, nil
	case "enter":
		if len(m.visible) > 0 {
			m.detail = detailState{
				productID: m.visible[m.cursor].ID,
				colorIdx:  defaultColorIdx,
				sizeIdx:   defaultSizeIdx,
			}
			m.view = DetailView
		}
		return m, nil
	case "b":
		// Quick add straight from the listing, no variant selection.
		if len(m.visible) > 0 {
			p := m.visible[m.cursor]
			m.dispatch(cart.AddItem{Product: p})
			m.status = fmt.Sprintf("Added %s to your bag", p.Name)
		}
		return m, nil
	}

	if next, ok := m.handleGlobalNav(msg.String()); ok {
		return next, nil
	}
	return m, nil
}

func (m Model) handleCategoriesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.view = HomeView
		return m, nil
	case "up", "k":
		if m.catCursor > 0 {
			m.catCursor--
		}
		return m, nil
	case "down", "j":
		if m.catCursor < len(m.cfg.Catalog.Categories)-1 {
			m.catCursor++
		}
		return m, nil
	case "enter":
		m.catIndex = m.catCursor + 1
		m.cursor = 0
		m.refreshVisible()
		m.view = ProductsView
		return m, nil
	}

	if next, ok := m.handleGlobalNav(msg.String()); ok {
		return next, nil
	}
	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p, ok := m.cfg.Catalog.ProductByID(m.detail.productID)
	if !ok {
		m.view = ProductsView
		return m, nil
	}

	switch msg.String() {
	case "esc", "q":
		m.view = ProductsView
		return m, nil
	case "c", "right":
		m.detail.colorIdx = (m.detail.colorIdx + 1) % len(availableColors)
		return m, nil
	case "s", "left":
		m.detail.sizeIdx = (m.detail.sizeIdx + 1) % len(availableSizes)
		return m, nil
	case "enter", "b":
		if !p.InStock {
			m.status = "Out of stock"
			return m, nil
		}
		m.dispatch(cart.AddItem{
			Product: p,
			Color:   availableColors[m.detail.colorIdx],
			Size:    availableSizes[m.detail.sizeIdx],
		})
		m.status = fmt.Sprintf("Added %s (%s, %s) to your bag",
			p.Name, availableColors[m.detail.colorIdx], availableSizes[m.detail.sizeIdx])
		m.view = ProductsView
		return m, nil
	}
	return m, nil
}

func (m Model) handleCartKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.view = m.lastView
		return m, nil
	case "up", "k":
		if m.cartCursor > 0 {
			m.cartCursor--
		}
		return m, nil
	case "down", "j":
		if m.cartCursor < len(m.cartState.Items)-1 {
			m.cartCursor++
		}
		return m, nil
	case "+", "=", "right":
		if li, ok := m.selectedLine(); ok {
			m.dispatch(cart.UpdateQuantity{ProductID: li.Product.ID, Quantity: li.Quantity + 1})
		}
		return m, nil
	case "-", "left":
		// Quantity 0 removes the line; the reducer owns that rule.
		if li, ok := m.selectedLine(); ok {
			m.dispatch(cart.UpdateQuantity{ProductID: li.Product.ID, Quantity: li.Quantity - 1})
			m.clampCartCursor()
		}
		return m, nil
	case "x", "delete", "backspace":
		if li, ok := m.selectedLine(); ok {
			m.dispatch(cart.RemoveItem{ProductID: li.Product.ID})
			m.clampCartCursor()
		}
		return m, nil
	case "enter", "o":
		if len(m.cartState.Items) == 0 {
			m.status = "Your cart is empty"
			return m, nil
		}
		m.checkout = newCheckoutState()
		m.prefillShipping()
		m.view = CheckoutView
		return m, nil
	}
	return m, nil
}

func (m Model) handleCheckoutKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.checkout.step {
	case StepShipping:
		return m.handleShippingKeys(msg)
	case StepPayment:
		return m.handlePaymentKeys(msg)
	case StepConfirmation:
		// Any key returns to the storefront; the cart is already clear.
		m.checkout = newCheckoutState()
		m.view = HomeView
		return m, nil
	}
	return m, nil
}

func (m Model) handleShippingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.view = CartView
		return m, nil
	case "tab", "down":
		return m.focusShipping(m.checkout.focus + 1), nil
	case "shift+tab", "up":
		return m.focusShipping(m.checkout.focus - 1), nil
	case "enter":
		if m.checkout.focus < shipFieldCount-1 {
			return m.focusShipping(m.checkout.focus + 1), nil
		}
		for i := range m.checkout.shipping {
			if strings.TrimSpace(m.checkout.shipping[i].Value()) == "" {
				m.status = "Please fill in all shipping fields"
				return m.focusShipping(i), nil
			}
		}
		m.status = ""
		m.checkout.step = StepPayment
		return m.focusPayment(0), nil
	}

	var cmd tea.Cmd
	m.checkout.shipping[m.checkout.focus], cmd = m.checkout.shipping[m.checkout.focus].Update(msg)
	return m, cmd
}

func (m Model) handlePaymentKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.status = ""
		m.checkout.step = StepShipping
		return m.focusShipping(0), nil
	case "tab", "down":
		return m.focusPayment(m.checkout.focus + 1), nil
	case "shift+tab", "up":
		return m.focusPayment(m.checkout.focus - 1), nil
	case "enter":
		if m.checkout.focus < payFieldCount-1 {
			return m.focusPayment(m.checkout.focus + 1), nil
		}
		for i := range m.checkout.payment {
			if strings.TrimSpace(m.checkout.payment[i].Value()) == "" {
				m.status = "Please fill in all payment fields"
				return m.focusPayment(i), nil
			}
		}
		m.status = ""
		order := orders.FromCart(m.cartState,
			strings.TrimSpace(m.checkout.shipping[shipFieldName].Value()))
		return m, m.placeOrderCmd(order)
	}

	var cmd tea.Cmd
	m.checkout.payment[m.checkout.focus], cmd = m.checkout.payment[m.checkout.focus].Update(msg)
	return m, cmd
}

func (m Model) handleAuthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Profile page when already signed in.
	if _, ok := m.cfg.Sessions.Current(); ok {
		switch msg.String() {
		case "d":
			m.cfg.Sessions.Logout()
			m.status = "Signed out"
			m.view = m.lastView
		case "esc", "q":
			m.view = m.lastView
		}
		return m, nil
	}

	// Ignore everything while a submission is in flight; the session
	// store also ignores re-entrant calls, this just keeps the form quiet.
	if m.auth.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.view = m.lastView
		return m, nil
	case "ctrl+r":
		if m.auth.mode == AuthLogin {
			m.auth.mode = AuthRegister
			return m.focusAuth(authFieldName), nil
		}
		m.auth.mode = AuthLogin
		return m.focusAuth(authFieldEmail), nil
	case "tab", "down":
		return m.focusAuth(m.auth.focus + 1), nil
	case "shift+tab", "up":
		return m.focusAuth(m.auth.focus - 1), nil
	case "enter":
		if m.auth.focus < authFieldPassword {
			return m.focusAuth(m.auth.focus + 1), nil
		}
		return m.submitAuth()
	}

	var cmd tea.Cmd
	m.auth.inputs[m.auth.focus], cmd = m.auth.inputs[m.auth.focus].Update(msg)
	return m, cmd
}

// submitAuth launches the async login/register and starts the spinner.
func (m Model) submitAuth() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.auth.inputs[authFieldName].Value())
	email := strings.TrimSpace(m.auth.inputs[authFieldEmail].Value())
	password := m.auth.inputs[authFieldPassword].Value()
	mode := m.auth.mode

	m.auth.submitting = true
	m.auth.failed = false

	cmd := func() tea.Msg {
		var (
			sess session.Session
			ok   bool
		)
		if mode == AuthRegister {
			sess, ok = m.cfg.Sessions.Register(context.Background(), name, email, password)
		} else {
			sess, ok = m.cfg.Sessions.Login(context.Background(), email, password)
		}
		return authResultMsg{session: sess, ok: ok}
	}
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m Model) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.auth.submitting = false
	if !msg.ok {
		// One generic failure line; no reason is distinguished.
		m.auth.failed = true
		return m, nil
	}

	m.log.Info("signed in", zap.String("name", msg.session.Name))
	m.status = fmt.Sprintf("Welcome, %s", msg.session.Name)
	m.auth = newAuthState()
	m.view = m.lastView
	return m, nil
}

// placeOrderCmd stores the order. The cart is cleared only after a
// successful write, in handleOrderPlaced.
func (m Model) placeOrderCmd(order orders.Order) tea.Cmd {
	store := m.cfg.Orders
	return func() tea.Msg {
		if store == nil {
			return orderPlacedMsg{order: order}
		}
		placed, err := store.Place(order)
		if err != nil {
			return orderPlacedMsg{err: err}
		}
		return orderPlacedMsg{order: placed}
	}
}

func (m Model) handleOrderPlaced(msg orderPlacedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error("failed to record order", zap.Error(msg.err))
		m.checkout.placeErr = msg.err
		m.status = "Could not place the order, please try again"
		return m, nil
	}

	m.dispatch(cart.Clear{})
	m.checkout.order = msg.order
	m.checkout.placeErr = nil
	m.checkout.step = StepConfirmation
	return m, nil
}

func (m Model) selectedLine() (cart.LineItem, bool) {
	if m.cartCursor < 0 || m.cartCursor >= len(m.cartState.Items) {
		return cart.LineItem{}, false
	}
	return m.cartState.Items[m.cartCursor], true
}

func (m *Model) clampCartCursor() {
	if m.cartCursor >= len(m.cartState.Items) {
		m.cartCursor = len(m.cartState.Items) - 1
	}
	if m.cartCursor < 0 {
		m.cartCursor = 0
	}
}

// prefillShipping seeds the shipping form from the signed-in session.
func (m *Model) prefillShipping() {
	if sess, ok := m.cfg.Sessions.Current(); ok {
		m.checkout.shipping[shipFieldName].SetValue(sess.Name)
		m.checkout.shipping[shipFieldEmail].SetValue(sess.Email)
	}
}

func (m Model) focusShipping(idx int) Model {
	if idx < 0 {
		idx = 0
	}
	if idx > shipFieldCount-1 {
		idx = shipFieldCount - 1
	}
	for i := range m.checkout.shipping {
		m.checkout.shipping[i].Blur()
	}
	m.checkout.focus = idx
	m.checkout.shipping[idx].Focus()
	return m
}

func (m Model) focusPayment(idx int) Model {
	if idx < 0 {
		idx = 0
	}
	if idx > payFieldCount-1 {
		idx = payFieldCount - 1
	}
	for i := range m.checkout.payment {
		m.checkout.payment[i].Blur()
	}
	m.checkout.focus = idx
	m.checkout.payment[idx].Focus()
	return m
}

func (m Model) focusAuth(idx int) Model {
	first := authFieldEmail
	if m.auth.mode == AuthRegister {
		first = authFieldName
	}
	if idx < first {
		idx = first
	}
	if idx > authFieldPassword {
		idx = authFieldPassword
	}
	for i := range m.auth.inputs {
		m.auth.inputs[i].Blur()
	}
	m.auth.focus = idx
	m.auth.inputs[idx].Focus()
	return m
}
