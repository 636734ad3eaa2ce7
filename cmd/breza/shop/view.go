// View rendering for the storefront pages.
package shop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"breza/cmd/breza/ui"
	"breza/internal/catalog"
	"breza/internal/orders"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading Breza..."
	}

	var body string
	switch m.view {
	case HomeView:
		body = m.renderHome()
	case ProductsView:
		body = m.renderProducts()
	case CategoriesView:
		body = m.renderCategories()
	case DetailView:
		body = m.renderDetail()
	case CartView:
		body = m.renderCart()
	case CheckoutView:
		body = m.renderCheckout()
	case AuthView:
		body = m.renderAuth()
	case AboutView:
		body = m.renderAbout()
	}

	sections := []string{m.renderHeader()}
	if m.status != "" {
		sections = append(sections, m.styles.Info.Render("  "+m.status))
	}
	sections = append(sections, m.styles.Content.Render(body), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	nav := []struct {
		label string
		view  ViewMode
	}{
		{"[1] Home", HomeView},
		{"[2] Products", ProductsView},
		{"[3] Categories", CategoriesView},
		{"[4] About", AboutView},
	}

	var items []string
	for _, n := range nav {
		if m.view == n.view {
			items = append(items, m.styles.NavActive.Render(n.label))
		} else {
			items = append(items, m.styles.NavInactive.Render(n.label))
		}
	}

	bag := fmt.Sprintf("[c] Bag (%d)", m.cartState.Units())
	if m.view == CartView {
		items = append(items, m.styles.NavActive.Render(bag))
	} else {
		items = append(items, m.styles.NavInactive.Render(bag))
	}

	who := "[u] Sign in"
	if sess, ok := m.cfg.Sessions.Current(); ok {
		who = "[u] " + sess.Name
	}
	if m.view == AuthView {
		items = append(items, m.styles.NavActive.Render(who))
	} else {
		items = append(items, m.styles.NavInactive.Render(who))
	}

	brand := m.styles.Header.Render("BREZA")
	return brand + "  " + strings.Join(items, "  ")
}

func (m Model) renderFooter() string {
	var hint string
	switch m.view {
	case HomeView:
		hint = "enter shop all • 1-4 navigate • c bag • u account • q quit"
	case ProductsView:
		if m.searching {
			hint = "type to search • enter/esc done"
		} else {
			hint = "↑/↓ browse • tab category • / search • r clear • enter details • b add to bag"
		}
	case CategoriesView:
		hint = "↑/↓ browse • enter shop category • esc home"
	case DetailView:
		hint = "c color • s size • enter add to bag • esc back"
	case CartView:
		hint = "↑/↓ select • +/- quantity • x remove • enter checkout • esc back"
	case CheckoutView:
		if m.checkout.step == StepConfirmation {
			hint = "press any key to continue shopping"
		} else {
			hint = "tab next field • enter continue • esc back"
		}
	case AuthView:
		if _, ok := m.cfg.Sessions.Current(); ok {
			hint = "d sign out • esc back"
		} else {
			hint = "tab next field • enter submit • ctrl+r toggle login/register • esc back"
		}
	case AboutView:
		hint = "1-4 navigate • esc home"
	}
	return m.styles.Footer.Render(hint)
}

func (m Model) renderHome() string {
	var sb strings.Builder
	sb.WriteString(ui.Logo(m.styles))
	sb.WriteString(m.styles.Subtitle.Render("Where music meets fashion, and creativity knows no bounds"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Title.Render("Featured Drops"))
	sb.WriteString("\n")

	for _, p := range m.cfg.Catalog.Featured() {
		sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
			m.styles.Badge.Render("★"),
			m.styles.Body.Render(p.Name),
			m.renderPrice(p)))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Press enter to shop the complete collection."))
	return sb.String()
}

func (m Model) renderProducts() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Complete Collection"))
	sb.WriteString("\n")

	// Search line
	if m.searching {
		sb.WriteString(m.search.View())
	} else if m.search.Value() != "" {
		sb.WriteString(m.styles.Muted.Render("/ " + m.search.Value()))
	} else {
		sb.WriteString(m.styles.Muted.Render("/ press / to search"))
	}
	sb.WriteString("\n\n")

	// Category chips
	chips := []string{m.renderChip("All Styles", m.catIndex == 0)}
	for i, cat := range m.cfg.Catalog.Categories {
		chips = append(chips, m.renderChip(cat.Name, m.catIndex == i+1))
	}
	sb.WriteString(strings.Join(chips, " "))
	sb.WriteString("\n\n")

	// Result summary, matching the storefront's "N products found" line.
	summary := fmt.Sprintf("%d products found", len(m.visible))
	if c := m.selectedCategory(); c != "" {
		summary += " in " + c
	}
	if q := m.search.Value(); q != "" {
		summary += fmt.Sprintf(" for %q", q)
	}
	sb.WriteString(m.styles.Muted.Render(summary))
	sb.WriteString("\n\n")

	if len(m.visible) == 0 {
		sb.WriteString(m.styles.Body.Render("No products found"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("Try adjusting your search or filter criteria (r clears all filters)"))
		return sb.String()
	}

	for i, p := range m.visible {
		line := fmt.Sprintf("%-46s %s  %s", truncate(p.Name, 46), m.renderPrice(p), m.renderRating(p))
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderChip(label string, on bool) string {
	if on {
		return m.styles.FilterChipOn.Render(label)
	}
	return m.styles.FilterChipOff.Render(label)
}

func (m Model) renderCategories() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Shop by Style"))
	sb.WriteString("\n")

	for i, cat := range m.cfg.Catalog.Categories {
		line := fmt.Sprintf("%-32s %s", cat.Name,
			m.styles.Muted.Render(fmt.Sprintf("%d products", cat.ProductCount)))
		if i == m.catCursor {
			sb.WriteString(m.styles.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderDetail() string {
	p, ok := m.cfg.Catalog.ProductByID(m.detail.productID)
	if !ok {
		return m.styles.Error.Render("Product not found")
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(p.Category))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderPrice(p))
	sb.WriteString("  ")
	sb.WriteString(m.renderRating(p))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Body.Width(70).Render(p.Description))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Bold.Render("Color  "))
	for i, c := range availableColors {
		if i == m.detail.colorIdx {
			sb.WriteString(m.styles.FilterChipOn.Render(c))
		} else {
			sb.WriteString(m.styles.FilterChipOff.Render(c))
		}
		sb.WriteString(" ")
	}
	sb.WriteString("\n")

	sb.WriteString(m.styles.Bold.Render("Size   "))
	for i, s := range availableSizes {
		if i == m.detail.sizeIdx {
			sb.WriteString(m.styles.FilterChipOn.Render(s))
		} else {
			sb.WriteString(m.styles.FilterChipOff.Render(s))
		}
		sb.WriteString(" ")
	}
	sb.WriteString("\n\n")

	if p.InStock {
		sb.WriteString(m.styles.Success.Render("In stock"))
	} else {
		sb.WriteString(m.styles.Error.Render("Out of stock"))
	}
	return sb.String()
}

func (m Model) renderCart() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render(fmt.Sprintf("Shopping Cart (%d)", m.cartState.Units())))
	sb.WriteString("\n")

	if len(m.cartState.Items) == 0 {
		sb.WriteString(m.styles.Body.Render("Your cart is empty"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render("Add some products to get started!"))
		return sb.String()
	}

	for i, li := range m.cartState.Items {
		variant := ""
		if li.Color != "" || li.Size != "" {
			variant = m.styles.Muted.Render(fmt.Sprintf(" (%s/%s)", li.Color, li.Size))
		}
		line := fmt.Sprintf("%dx %-42s%s  %s", li.Quantity, truncate(li.Product.Name, 42),
			variant, m.styles.Price.Render(money(li.Subtotal())))
		if i == m.cartCursor {
			sb.WriteString(m.styles.Selected.Render("> ") + line)
		} else {
			sb.WriteString("  " + line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.RenderDivider(60))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Bold.Render("Total: ") + m.styles.Price.Render(money(m.cartState.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("Press enter to proceed to checkout."))
	return sb.String()
}

func (m Model) renderCheckout() string {
	if m.checkout.step == StepConfirmation {
		return m.renderOrderConfirmation()
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Checkout"))
	sb.WriteString("\n")
	sb.WriteString(m.renderStepIndicator())
	sb.WriteString("\n\n")

	labels := map[CheckoutStep][]string{
		StepShipping: {"Full name", "Email", "Address", "City", "ZIP"},
		StepPayment:  {"Card number", "Expiry", "CVV", "Cardholder"},
	}[m.checkout.step]

	inputs := make([]string, 0, len(labels))
	switch m.checkout.step {
	case StepShipping:
		for i := range m.checkout.shipping {
			inputs = append(inputs, m.checkout.shipping[i].View())
		}
	case StepPayment:
		for i := range m.checkout.payment {
			inputs = append(inputs, m.checkout.payment[i].View())
		}
	}
	for i, label := range labels {
		sb.WriteString(fmt.Sprintf("%s\n%s\n", m.styles.Muted.Render(label), inputs[i]))
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderOrderSummary(orders.Summarize(m.cartState.Total)))
	if m.checkout.placeErr != nil {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render("Something went wrong placing your order. Your cart is untouched."))
	}
	return sb.String()
}

func (m Model) renderStepIndicator() string {
	one := m.styles.Badge.Render("1 Shipping")
	two := m.styles.FilterChipOff.Render("2 Payment")
	if m.checkout.step >= StepPayment {
		two = m.styles.Badge.Render("2 Payment")
	}
	return one + m.styles.Divider.Render(" ── ") + two
}

func (m Model) renderOrderSummary(t orders.Totals) string {
	tbl := ui.NewSimpleTable("Order Summary", []string{"", ""})
	tbl.AddRow("Subtotal", money(t.Subtotal))
	tbl.AddRow("Shipping", money(t.Shipping))
	tbl.AddRow("Tax (8%)", money(t.Tax))
	tbl.AddRow("Total", money(t.Total))
	return tbl.View(m.styles)
}

func (m Model) renderOrderConfirmation() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Success.Render("Order placed!"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Body.Render("Thank you for shopping with Breza."))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Order " + m.checkout.order.ID))
	sb.WriteString("\n\n")
	sb.WriteString(m.renderOrderSummary(m.checkout.order.Totals))
	return sb.String()
}

func (m Model) renderAuth() string {
	if sess, ok := m.cfg.Sessions.Current(); ok {
		var sb strings.Builder
		sb.WriteString(m.styles.Title.Render("Your Account"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Bold.Render(sess.Name))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(sess.Email))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Muted.Render("Press d to sign out."))
		return sb.String()
	}

	var sb strings.Builder
	if m.auth.mode == AuthRegister {
		sb.WriteString(m.styles.Title.Render("Create Account"))
	} else {
		sb.WriteString(m.styles.Title.Render("Sign In"))
	}
	sb.WriteString("\n")

	if m.auth.mode == AuthRegister {
		sb.WriteString(m.auth.inputs[authFieldName].View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.auth.inputs[authFieldEmail].View())
	sb.WriteString("\n")
	sb.WriteString(m.auth.inputs[authFieldPassword].View())
	sb.WriteString("\n\n")

	if m.auth.submitting {
		sb.WriteString(m.spinner.View())
		sb.WriteString(m.styles.Muted.Render(" Signing in..."))
	} else if m.auth.failed {
		sb.WriteString(m.styles.Error.Render("Invalid details, please try again."))
	}
	return sb.String()
}

func (m Model) renderAbout() string {
	return m.safeRenderMarkdown(aboutMarkdown)
}

func (m Model) renderPrice(p catalog.Product) string {
	price := m.styles.Price.Render(money(p.Price))
	if p.Discounted() {
		return price + " " + m.styles.StrikePrice.Render(money(p.OriginalPrice))
	}
	return price
}

func (m Model) renderRating(p catalog.Product) string {
	return m.styles.Muted.Render(fmt.Sprintf("★ %.1f (%d)", p.Rating, p.Reviews))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
