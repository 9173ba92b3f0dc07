package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/router"
)

var movementHeaders = []string{"DATE", "CODE", "PRODUCT", "TYPE", "QTY", "BEFORE", "AFTER", "USER", "STATUS"}

func movementRow(m models.Movement) []string {
	return []string{m.Date, m.ProductCode, m.Product, m.Type, itoa(m.Qty), itoa(m.BalancePrev), itoa(m.BalanceNew), m.User, m.Status}
}

// Listing shows one of the read-only listings. args page through it or
// filter it, as for the inventory.
func (a *App) Listing(ctx context.Context, path string, args []string) error {
	if !a.enter(ctx, path) {
		return nil
	}
	q, err := a.listQuery(path, args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	return a.showListing(ctx, path, q)
}

func (a *App) showListing(ctx context.Context, path string, q models.ListQuery) error {
	switch path {
	case router.PathMovements:
		return showPage(ctx, a, path, models.ResourceMovements, q, movementHeaders, movementRow)

	case router.PathPurchases:
		return showPage(ctx, a, path, models.ResourcePurchases, q,
			[]string{"CODE", "DATE", "SUPPLIER", "ITEMS", "TOTAL", "STATUS", "DELIVERY"},
			func(o models.PurchaseOrder) []string {
				return []string{o.Code, o.Date, o.Supplier, itoa(o.Items), money(o.Total), o.Status, orDash(o.DeliveryDate)}
			})

	case router.PathSuppliers:
		return showPage(ctx, a, path, models.ResourceSuppliers, q,
			[]string{"CODE", "NAME", "RUC", "PHONE", "EMAIL", "CATEGORY", "STATUS"},
			func(s models.Supplier) []string {
				return []string{s.Code, s.Name, s.TaxID, s.Phone, s.Email, s.Category, s.Status}
			})

	case router.PathClients:
		return showPage(ctx, a, path, models.ResourceClients, q,
			[]string{"CODE", "NAME", "RUC", "CITY", "TYPE", "ORDERS", "TOTAL", "CREDIT", "STATUS"},
			func(c models.Client) []string {
				credit := "-"
				if c.Credit != nil {
					credit = money(*c.Credit)
				}
				return []string{c.Code, c.Name, c.TaxID, c.City, c.Type, itoa(c.Orders), money(c.Total), credit, c.Status}
			})

	case router.PathReports:
		return showPage(ctx, a, path, models.ResourceReports, q,
			[]string{"ID", "TITLE", "PERIOD", "GENERATED", "USER", "SIZE", "STATUS"},
			func(r models.Report) []string {
				return []string{r.ID, r.Title, r.Period, r.Generated, r.User, r.Size, r.Status}
			})

	case router.PathAlerts:
		return showPage(ctx, a, path, models.ResourceAlerts, q,
			[]string{"ID", "CODE", "PRODUCT", "LEVEL", "MESSAGE", "STATUS"},
			func(al models.Alert) []string {
				return []string{al.ID, al.ProductCode, al.Product, al.Level, al.Message, al.Status}
			})

	case router.PathProjections:
		return showPage(ctx, a, path, models.ResourceProjections, q,
			[]string{"SKU", "NAME", "STOCK", "FORECAST", "DAYS", "ACTION"},
			func(p models.Projection) []string {
				return []string{p.SKU, p.Name, itoa(p.Stock), itoa(p.Forecast), strconv.Itoa(p.Days), p.Action}
			})
	}
	return fmt.Errorf("no listing at %s", path)
}

// showPage fetches one page of resource and prints it with row.
func showPage[T any](ctx context.Context, a *App, path string, resource models.Resource, q models.ListQuery,
	headers []string, row func(T) []string) error {
	var page models.Page[T]
	if err := a.listings.Fetch(ctx, resource, q, &page); err != nil {
		return a.fail(err)
	}
	a.remember(path, q, page.Pagination)

	printTable(a.out, headers, rowsOf(page.Data, row))
	printPagination(a.out, page.Pagination)
	return nil
}
