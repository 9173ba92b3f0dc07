package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/router"
)

var (
	errLastPage  = errors.New("already on the last page")
	errFirstPage = errors.New("already on the first page")
)

func (a *App) Dashboard(ctx context.Context) error {
	if !a.enter(ctx, router.PathDashboard) {
		return nil
	}
	return a.showDashboard(ctx)
}

func (a *App) showDashboard(ctx context.Context) error {
	sum, err := a.inventory.Dashboard(ctx)
	if err != nil {
		return a.fail(err)
	}

	printTable(a.out, []string{"PRODUCTS", "LOW STOCK", "MOVEMENTS TODAY", "PENDING ORDERS", "INVENTORY VALUE"},
		[][]string{{
			itoa(sum.TotalProducts), itoa(sum.LowStockProducts), itoa(sum.MovementsToday),
			itoa(sum.PendingOrders), money(sum.InventoryValue),
		}})

	if len(sum.RecentMovements) > 0 {
		fmt.Fprintln(a.out, "\nRecent movements:")
		printTable(a.out, movementHeaders, rowsOf(sum.RecentMovements, movementRow))
	}
	return nil
}

// Inventory shows the product list. args page through it or filter it.
func (a *App) Inventory(ctx context.Context, args []string) error {
	if !a.enter(ctx, router.PathInventory) {
		return nil
	}
	q, err := a.listQuery(router.PathInventory, args)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}
	return a.showInventory(ctx, q)
}

func (a *App) showInventory(ctx context.Context, q models.ListQuery) error {
	page, err := a.inventory.List(ctx, q)
	if err != nil {
		return a.fail(err)
	}
	a.remember(router.PathInventory, q, page.Pagination)

	printTable(a.out, []string{"CODE", "NAME", "CATEGORY", "STOCK", "MIN", "PRICE", ""}, rowsOf(page.Data, productRow))
	printPagination(a.out, page.Pagination)
	return nil
}

func productRow(p models.Product) []string {
	flag := ""
	if p.LowStock() {
		flag = "low"
	}
	return []string{p.ProductCode, p.ProductName, orDash(p.ProductCategory), itoa(p.CurrentStock), itoa(p.MinimumStock), money(p.UnitPrice), flag}
}

// listQuery applies the paging arguments of a listing command to the query
// last used for path.
func (a *App) listQuery(path string, args []string) (models.ListQuery, error) {
	q := a.queries[path]
	if len(args) == 0 {
		return q, nil
	}

	p := a.pages[path]
	switch args[0] {
	case "next":
		next, ok := q.Next(p)
		if !ok {
			return q, errLastPage
		}
		return next, nil
	case "prev":
		prev, ok := q.Prev(p)
		if !ok {
			return q, errFirstPage
		}
		return prev, nil
	case "page":
		if len(args) < 2 {
			return q, errors.New("usage: page N")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return q, fmt.Errorf("invalid page %q", args[1])
		}
		q.Page = n
		return q, nil
	case "search":
		q.Search = strings.Join(args[1:], " ")
		q.Page = 1
		return q, nil
	case "clear":
		return models.ListQuery{}, nil
	}
	return q, fmt.Errorf("unknown option %q", args[0])
}

func (a *App) remember(path string, q models.ListQuery, p models.Pagination) {
	a.queries[path] = q
	a.pages[path] = p
}

// CreateProduct walks through the product form.
func (a *App) CreateProduct(ctx context.Context) error {
	if !a.enter(ctx, router.PathInventory) {
		return nil
	}

	var req models.CreateProductRequest
	var err error

	if req.ProductName, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if req.ProductDescription, err = getSimpleText(a.reader, "Description (optional)", a.out); err != nil {
		return err
	}
	if req.UnitPrice, err = GetFloat(a.reader, "Unit price", a.out, 0); err != nil {
		return a.fail(err)
	}
	if req.CategoryID, err = a.chooseCategory(ctx, ""); err != nil {
		return a.fail(err)
	}
	if req.MeasurementID, err = a.chooseMeasurement(ctx); err != nil {
		return a.fail(err)
	}
	if req.ActualStock, err = GetInt(a.reader, "Initial stock", a.out, 0); err != nil {
		return a.fail(err)
	}
	if req.MinimumStock, err = a.optionalInt("Minimum stock (optional)"); err != nil {
		return a.fail(err)
	}
	lot, err := a.optionalInt("Lot id (optional)")
	if err != nil {
		return a.fail(err)
	}
	if lot != nil {
		id := int64(*lot)
		req.LotID = &id
	}

	resp, err := a.inventory.CreateProduct(ctx, req)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Product %s created.\n", resp.ProductCode)
	return nil
}

// EditProduct updates name, description, price and category of the product
// with the given code. Empty answers keep the current values.
func (a *App) EditProduct(ctx context.Context, code string) error {
	if !a.enter(ctx, router.PathInventory) {
		return nil
	}

	p, err := a.inventory.ProductByCode(ctx, code)
	if err != nil {
		return a.fail(err)
	}

	req := models.UpdateProductRequest{
		ProductName:        p.ProductName,
		ProductDescription: p.ProductDescription,
		UnitPrice:          p.UnitPrice,
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", p.ProductName), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		req.ProductName = name
	}
	desc, err := getSimpleText(a.reader, fmt.Sprintf("Description [%s]", p.ProductDescription), a.out)
	if err != nil {
		return err
	}
	if desc != "" {
		req.ProductDescription = desc
	}
	if req.UnitPrice, err = GetFloat(a.reader, fmt.Sprintf("Unit price [%s]", money(p.UnitPrice)), a.out, p.UnitPrice); err != nil {
		return a.fail(err)
	}
	if req.CategoryID, err = a.chooseCategory(ctx, p.ProductCategory); err != nil {
		return a.fail(err)
	}

	if _, err := a.inventory.UpdateProduct(ctx, p.ProductID, req); err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "Product %s updated.\n", p.ProductCode)
	return nil
}

// UpdateStock looks the product up by code, then registers an inbound or
// outbound movement for it.
func (a *App) UpdateStock(ctx context.Context, code string) error {
	if !a.enter(ctx, router.PathInventory) {
		return nil
	}

	var err error
	if code == "" {
		if code, err = getSimpleText(a.reader, "Product code", a.out); err != nil {
			return err
		}
	}

	p, err := a.inventory.ProductByCode(ctx, code)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "%s (%s), current stock %d\n", p.ProductName, p.ProductCode, p.CurrentStock)

	answer, err := getSimpleText(a.reader, "Movement type (in/out)", a.out)
	if err != nil {
		return err
	}
	typ, err := parseMovement(answer)
	if err != nil {
		return a.fail(err)
	}
	qty, err := GetInt(a.reader, "Quantity", a.out, 0)
	if err != nil {
		return a.fail(err)
	}

	if err := a.inventory.UpdateStock(ctx, p, qty, typ); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Stock updated.")
	return nil
}

func parseMovement(s string) (models.MovementType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "i", "entrada", "e":
		return models.MovementIn, nil
	case "out", "o", "salida", "s":
		return models.MovementOut, nil
	}
	return "", fmt.Errorf("unknown movement type %q", s)
}

// chooseCategory lets the user search the categories and pick one by id.
// An empty search keeps current when it names an existing category.
func (a *App) chooseCategory(ctx context.Context, current string) (int64, error) {
	prompt := "Category (search)"
	if current != "" {
		prompt = fmt.Sprintf("Category (search) [%s]", current)
	}
	search, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	if search == "" {
		search = current
	}

	cats, err := a.inventory.Categories(ctx, search)
	if err != nil {
		return 0, err
	}
	for _, c := range cats {
		if strings.EqualFold(c.CategoryName, search) {
			return c.CategoryID, nil
		}
	}
	switch len(cats) {
	case 0:
		return 0, fmt.Errorf("no category matches %q", search)
	case 1:
		fmt.Fprintf(a.out, "Category: %s\n", cats[0].CategoryName)
		return cats[0].CategoryID, nil
	}

	printTable(a.out, []string{"ID", "CATEGORY"}, rowsOf(cats, func(c models.Category) []string {
		return []string{strconv.FormatInt(c.CategoryID, 10), c.CategoryName}
	}))
	id, err := GetInt(a.reader, "Category id", a.out, 0)
	return int64(id), err
}

func (a *App) chooseMeasurement(ctx context.Context) (int64, error) {
	mts, err := a.inventory.MeasurementTypes(ctx)
	if err != nil {
		return 0, err
	}
	printTable(a.out, []string{"ID", "UNIT"}, rowsOf(mts, func(m models.MeasurementType) []string {
		return []string{strconv.FormatInt(m.MeasurementID, 10), m.MeasurementName}
	}))
	id, err := GetInt(a.reader, "Unit id", a.out, 0)
	return int64(id), err
}

func (a *App) optionalInt(prompt string) (*int, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil || s == "" {
		return nil, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", s)
	}
	return &n, nil
}

func rowsOf[T any](items []T, row func(T) []string) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, row(it))
	}
	return rows
}
