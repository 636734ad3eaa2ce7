package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"breza/cmd/breza/shop"
	"breza/cmd/breza/ui"
	"breza/internal/cart"
	"breza/internal/catalog"
	"breza/internal/config"
	"breza/internal/orders"
	"breza/internal/session"
)

// Simulated auth latency for the interactive storefront. Purely cosmetic;
// the shell subcommands skip it.
const authDelay = 750 * time.Millisecond

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.UserConfig
	logger *zap.Logger
)

// rootCmd launches the interactive storefront.
var rootCmd = &cobra.Command{
	Use:   "breza",
	Short: "Breza - streetwear storefront for your terminal",
	Long: `Breza is a terminal storefront: browse the collection, filter by
style, fill a bag, and walk through checkout - all rendered locally from
the built-in catalog. Sign-in is a mock (no backend); the session and
order history live under ~/.breza.

Run without arguments to open the interactive storefront.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorefront()
	},
}

// catalogCmd prints the product catalog, optionally filtered.
var (
	catalogCategory string
	catalogSearch   string
	catalogFeatured bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the product catalog",
	Long: `Prints the built-in catalog as a table. The same filter the
storefront uses applies: --category matches the category name exactly,
--search matches name or description case-insensitively, and both
conditions must hold.`,
	RunE: runCatalog,
}

// loginCmd signs in from the shell.
var loginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Sign in (mock authentication)",
	Long: `Issues a local session for the given email. No backend is
involved: any non-empty email with a password of at least six characters
succeeds. The session is persisted under the data directory until logout.`,
	Args: cobra.ExactArgs(2),
	RunE: runLogin,
}

// registerCmd creates an account from the shell.
var registerCmd = &cobra.Command{
	Use:   "register [name] [email] [password]",
	Short: "Create an account (mock authentication)",
	Args:  cobra.ExactArgs(3),
	RunE:  runRegister,
}

// logoutCmd clears the persisted session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and delete the persisted session",
	RunE:  runLogout,
}

// whoamiCmd shows the current session.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who is signed in",
	RunE:  runWhoami,
}

// ordersCmd lists locally recorded orders.
var ordersLimit int

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List your order history",
	RunE:  runOrders,
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle (the closure refers to rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		// The TUI owns the terminal, so its logs go to a file.
		toFile := cmd == rootCmd
		logger, err = cfg.GetLogging().Build(verbose, toFile)
		return err
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file path")

	catalogCmd.Flags().StringVar(&catalogCategory, "category", "", "Filter by category name")
	catalogCmd.Flags().StringVar(&catalogSearch, "search", "", "Filter by search text")
	catalogCmd.Flags().BoolVar(&catalogFeatured, "featured", false, "Only featured products")

	ordersCmd.Flags().IntVar(&ordersLimit, "limit", 10, "Maximum orders to list")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(ordersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runStorefront() error {
	dataDir := cfg.GetDataDir()

	cartStore := cart.NewStore(logger)
	cartStore.Subscribe(func(st cart.State) {
		logger.Debug("cart changed", zap.Int("units", st.Units()), zap.Float64("total", st.Total))
	})

	sessions := session.NewStore(dataDir, authDelay, logger)

	orderStore, err := orders.NewStore(filepath.Join(dataDir, "breza.db"))
	if err != nil {
		// The storefront still works without history; checkout just
		// won't be recorded.
		logger.Warn("order history unavailable", zap.Error(err))
		orderStore = nil
	} else {
		defer orderStore.Close()
	}

	return shop.Run(shop.Config{
		Catalog:  catalog.Default(),
		Cart:     cartStore,
		Sessions: sessions,
		Orders:   orderStore,
		Styles:   ui.NewStyles(ui.ThemeByName(cfg.GetTheme())),
		Logger:   logger,
	})
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()
	products := catalog.Filter(cat.Products, catalogSearch, catalogCategory)

	styles := ui.NewStyles(ui.ThemeByName(cfg.GetTheme()))
	tbl := ui.NewSimpleTable("Breza Catalog", []string{"ID", "Name", "Category", "Price", "Rating"})
	for _, p := range products {
		if catalogFeatured && !p.Featured {
			continue
		}
		tbl.AddRow(p.ID, p.Name, p.Category, fmt.Sprintf("$%.2f", p.Price),
			fmt.Sprintf("%.1f (%d)", p.Rating, p.Reviews))
	}

	out := tbl.View(styles)
	if out == "" {
		fmt.Println("No products found")
		return nil
	}
	fmt.Print(out)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	sessions := session.NewStore(cfg.GetDataDir(), 0, logger)
	sess, ok := sessions.Login(context.Background(), args[0], args[1])
	if !ok {
		return fmt.Errorf("invalid credentials")
	}
	fmt.Printf("Signed in as %s <%s>\n", sess.Name, sess.Email)
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	sessions := session.NewStore(cfg.GetDataDir(), 0, logger)
	sess, ok := sessions.Register(context.Background(), args[0], args[1], args[2])
	if !ok {
		return fmt.Errorf("invalid registration details")
	}
	fmt.Printf("Welcome, %s <%s>\n", sess.Name, sess.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	sessions := session.NewStore(cfg.GetDataDir(), 0, logger)
	sessions.Logout()
	fmt.Println("Signed out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	sessions := session.NewStore(cfg.GetDataDir(), 0, logger)
	sess, ok := sessions.Current()
	if !ok {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s <%s>\n", sess.Name, sess.Email)
	return nil
}

func runOrders(cmd *cobra.Command, args []string) error {
	store, err := orders.NewStore(filepath.Join(cfg.GetDataDir(), "breza.db"))
	if err != nil {
		return err
	}
	defer store.Close()

	recent, err := store.Recent(ordersLimit)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		fmt.Println("No orders yet")
		return nil
	}

	styles := ui.NewStyles(ui.ThemeByName(cfg.GetTheme()))
	tbl := ui.NewSimpleTable("Order History", []string{"Placed", "Order", "Customer", "Items", "Total"})
	for _, o := range recent {
		items := 0
		for _, l := range o.Lines {
			items += l.Quantity
		}
		tbl.AddRow(
			o.PlacedAt.Local().Format("2006-01-02 15:04"),
			o.ID[:8],
			o.Customer,
			fmt.Sprintf("%d", items),
			fmt.Sprintf("$%.2f", o.Totals.Total),
		)
	}
	fmt.Print(tbl.View(styles))
	return nil
}
