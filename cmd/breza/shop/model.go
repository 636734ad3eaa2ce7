package shop

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"

	"breza/cmd/breza/ui"
	"breza/internal/cart"
	"breza/internal/catalog"
	"breza/internal/orders"
	"breza/internal/session"
)

// Config wires the storefront's collaborators into the view layer. The
// model owns no state of its own beyond view concerns: the cart store and
// session store are injected and remain the single owners of their state.
type Config struct {
	Catalog  catalog.Catalog
	Cart     *cart.Store
	Sessions *session.Store
	Orders   *orders.Store
	Styles   ui.Styles
	Logger   *zap.Logger
}

// Model is the Bubble Tea model for the storefront.
type Model struct {
	cfg    Config
	styles ui.Styles
	log    *zap.Logger

	width  int
	height int
	ready  bool

	view     ViewMode
	lastView ViewMode // where Esc returns to from cart/auth overlays

	// Products page
	search    textinput.Model
	searching bool
	catIndex  int // 0 = all styles, otherwise 1-based into Catalog.Categories
	cursor    int
	visible   []catalog.Product

	// Categories page
	catCursor int

	// Detail / cart / checkout / auth pages
	detail     detailState
	cartCursor int
	checkout   checkoutState
	auth       authState

	cartState cart.State

	spinner  spinner.Model
	renderer *glamour.TermRenderer
	status   string // one-line transient feedback under the header
}

// New creates the storefront model. Collaborators must be non-nil except
// Orders, which may be nil when order history is unavailable (checkout
// then completes without recording).
func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	search := textinput.New()
	search.Placeholder = "Search tees, hoodies..."
	search.Prompt = "/ "
	search.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = cfg.Styles.Spinner

	// Markdown renderer for the about page. A failure here just means
	// plain text output.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		cfg.Logger.Warn("markdown renderer unavailable", zap.Error(err))
		renderer = nil
	}

	m := Model{
		cfg:       cfg,
		styles:    cfg.Styles,
		log:       cfg.Logger,
		view:      HomeView,
		search:    search,
		spinner:   sp,
		renderer:  renderer,
		cartState: cfg.Cart.State(),
		checkout:  newCheckoutState(),
		auth:      newAuthState(),
	}
	m.refreshVisible()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// selectedCategory returns the active category filter name, "" for all.
func (m Model) selectedCategory() string {
	if m.catIndex <= 0 || m.catIndex > len(m.cfg.Catalog.Categories) {
		return ""
	}
	return m.cfg.Catalog.Categories[m.catIndex-1].Name
}

// refreshVisible recomputes the products page listing from the current
// search text and category selection, clamping the cursor.
func (m *Model) refreshVisible() {
	m.visible = catalog.Filter(m.cfg.Catalog.Products, m.search.Value(), m.selectedCategory())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// dispatch forwards a cart intent to the store and caches the new state.
func (m *Model) dispatch(a cart.Action) {
	m.cartState = m.cfg.Cart.Dispatch(a)
}

// safeRenderMarkdown renders markdown with panic recovery; glamour can
// choke on odd terminal capability combinations.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

func newAuthState() authState {
	var st authState
	for i := range st.inputs {
		in := textinput.New()
		in.CharLimit = 64
		st.inputs[i] = in
	}
	st.inputs[authFieldName].Placeholder = "Full name"
	st.inputs[authFieldEmail].Placeholder = "Email"
	st.inputs[authFieldPassword].Placeholder = "Password (min 6 characters)"
	st.inputs[authFieldPassword].EchoMode = textinput.EchoPassword
	st.inputs[authFieldPassword].EchoCharacter = '•'
	st.focus = authFieldEmail
	st.inputs[authFieldEmail].Focus()
	return st
}

func newCheckoutState() checkoutState {
	var st checkoutState

	shipPlaceholders := [shipFieldCount]string{
		"Full name", "Email", "Address", "City", "ZIP code",
	}
	for i := range st.shipping {
		in := textinput.New()
		in.Placeholder = shipPlaceholders[i]
		in.CharLimit = 96
		st.shipping[i] = in
	}

	payPlaceholders := [payFieldCount]string{
		"Card number", "MM/YY", "CVV", "Cardholder name",
	}
	for i := range st.payment {
		in := textinput.New()
		in.Placeholder = payPlaceholders[i]
		in.CharLimit = 32
		st.payment[i] = in
	}
	st.payment[payFieldCVV].EchoMode = textinput.EchoPassword
	st.payment[payFieldCVV].EchoCharacter = '•'

	st.shipping[shipFieldName].Focus()
	return st
}

// Run starts the storefront TUI and blocks until it exits.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("storefront UI error: %w", err)
	}
	return nil
}
