package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/router"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. App implements it.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	SignUp(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context, link string) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Go(ctx context.Context, target string) error
	Dashboard(ctx context.Context) error
	Inventory(ctx context.Context, args []string) error
	CreateProduct(ctx context.Context) error
	EditProduct(ctx context.Context, code string) error
	UpdateStock(ctx context.Context, code string) error
	Listing(ctx context.Context, path string, args []string) error
	Settings(ctx context.Context, args []string) error
}

const (
	guestHelp = "Available commands: login, signup, forgot, reset <token|link>, go <path>, exit"
	userHelp  = "Available commands: dashboard, inventory [next|prev|page N|search TEXT], product new|edit CODE, " +
		"stock [CODE], movements, purchases, suppliers, clients, reports, alerts, projections, " +
		"settings [prefs KEY VALUE|notify NAME|reset], passwd, go <path>, logout, exit"
)

var listingCommands = map[string]string{
	"movements":   router.PathMovements,
	"purchases":   router.PathPurchases,
	"suppliers":   router.PathSuppliers,
	"clients":     router.PathClients,
	"reports":     router.PathReports,
	"alerts":      router.PathAlerts,
	"projections": router.PathProjections,
}

// runREPL reads commands from scanner and dispatches them to a until EOF or
// "exit". Handlers report their own errors to the user, so the loop ignores
// them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("stockdesk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "login":
			_ = a.Login(ctx)
		case "signup", "register":
			_ = a.SignUp(ctx)
		case "forgot":
			_ = a.ForgotPassword(ctx)
		case "reset":
			link := ""
			if len(args) > 0 {
				link = args[0]
			}
			_ = a.ResetPassword(ctx, link)
		case "passwd":
			_ = a.ChangePassword(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Go(ctx, args[0])
		case "dashboard":
			_ = a.Dashboard(ctx)
		case "inventory", "inv":
			_ = a.Inventory(ctx, args)
		case "product":
			switch {
			case len(args) == 1 && args[0] == "new":
				_ = a.CreateProduct(ctx)
			case len(args) == 2 && args[0] == "edit":
				_ = a.EditProduct(ctx, args[1])
			default:
				printlnFn("Usage: product new | product edit <code>")
			}
		case "stock":
			code := ""
			if len(args) > 0 {
				code = args[0]
			}
			_ = a.UpdateStock(ctx, code)
		case "settings":
			_ = a.Settings(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if path, ok := listingCommands[cmd]; ok {
				_ = a.Listing(ctx, path, args)
				continue
			}
			printlnFn("Unknown command:", cmd)
		}
	}
}
