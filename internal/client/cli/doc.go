// Package cli provides the interactive stockdesk command-line client.
//
// Every command opens a page of the router (login, dashboard, inventory,
// listings, settings) so the route guards decide what a guest or a signed-in
// user may see. A background watcher warns before the session token expires
// and reports the forced sign-out when it does.
//
// Key features:
//   - Login, sign-up, forgot and reset password
//   - Dashboard summary and the inventory with paging and search
//   - Product create and edit, stock movements
//   - Movements, purchases, suppliers, clients, reports, alerts, projections
//   - Settings: profile, password change, preferences, notifications
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
