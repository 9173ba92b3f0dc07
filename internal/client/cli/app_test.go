package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/stockdesk/internal/client/config"
	"github.com/dmitrijs2005/stockdesk/internal/client/migrations"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/router"
	"github.com/dmitrijs2005/stockdesk/internal/client/services"
	"github.com/dmitrijs2005/stockdesk/internal/client/session"
	"github.com/dmitrijs2005/stockdesk/internal/jwtx"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
	"github.com/dmitrijs2005/stockdesk/internal/validation"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func mint(t *testing.T, now time.Time, ttl time.Duration) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwtx.Claims{
		Subject:   7,
		Email:     "laura@example.com",
		Name:      "Laura",
		Role:      "almacen",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

// fakeAuth installs token in the real session store on a successful login,
// the way the auth service does.
type fakeAuth struct {
	store *session.Store
	token string
	err   error
	msg   string

	calls     int
	lastLogin models.LoginRequest
	lastReg   models.RegisterRequest
	lastReset models.ResetPasswordRequest
}

func (f *fakeAuth) install(ctx context.Context) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if err := f.store.SetAuthenticatedUser(ctx, f.token); err != nil {
		return nil, err
	}
	return &models.User{ID: 7, Name: "Laura"}, nil
}

func (f *fakeAuth) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	f.calls++
	f.lastLogin = req
	return f.install(ctx)
}

func (f *fakeAuth) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	f.calls++
	f.lastReg = req
	return f.install(ctx)
}

func (f *fakeAuth) ForgotPassword(context.Context, models.ForgotPasswordRequest) (string, error) {
	f.calls++
	return f.msg, f.err
}

func (f *fakeAuth) ResetPassword(_ context.Context, req models.ResetPasswordRequest) (string, error) {
	f.calls++
	f.lastReset = req
	return f.msg, f.err
}

func (f *fakeAuth) ChangePassword(context.Context, models.ChangePasswordRequest) (string, error) {
	f.calls++
	return f.msg, f.err
}

func (f *fakeAuth) Logout(ctx context.Context) { f.store.Logout(ctx) }

type fakeInventory struct {
	summary  *models.DashboardSummary
	pages    []*models.Page[models.Product]
	product  *models.Product
	cats     []models.Category
	mts      []models.MeasurementType
	err      error
	queries  []models.ListQuery
	created  models.CreateProductRequest
	updated  models.UpdateProductRequest
	stock    []models.StockUpdateRequest
	lookups  []string
	listHits int
}

func (f *fakeInventory) Dashboard(context.Context) (*models.DashboardSummary, error) {
	return f.summary, f.err
}

func (f *fakeInventory) List(_ context.Context, q models.ListQuery) (*models.Page[models.Product], error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	p := f.pages[f.listHits%len(f.pages)]
	f.listHits++
	return p, nil
}

func (f *fakeInventory) ProductByCode(_ context.Context, code string) (*models.Product, error) {
	f.lookups = append(f.lookups, code)
	return f.product, f.err
}

func (f *fakeInventory) CreateProduct(_ context.Context, req models.CreateProductRequest) (*models.ProductResponse, error) {
	f.created = req
	return &models.ProductResponse{ProductCode: "P-100"}, f.err
}

func (f *fakeInventory) UpdateProduct(_ context.Context, _ int64, req models.UpdateProductRequest) (*models.ProductResponse, error) {
	f.updated = req
	return &models.ProductResponse{}, f.err
}

func (f *fakeInventory) Categories(_ context.Context, search string) ([]models.Category, error) {
	return models.FilterCategories(f.cats, search), f.err
}

func (f *fakeInventory) MeasurementTypes(context.Context) ([]models.MeasurementType, error) {
	return f.mts, f.err
}

func (f *fakeInventory) UpdateStock(_ context.Context, p *models.Product, qty int, typ models.MovementType) error {
	if f.err != nil {
		return f.err
	}
	f.stock = append(f.stock, models.NewStockUpdate(p, qty, typ, 7))
	return nil
}

type fakeLister struct {
	body      string
	err       error
	resources []models.Resource
}

func (f *fakeLister) Fetch(_ context.Context, r models.Resource, _ models.ListQuery, out any) error {
	f.resources = append(f.resources, r)
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.body), out)
}

type harness struct {
	app    *App
	out    *bytes.Buffer
	clock  *clock
	store  *session.Store
	router *router.Router
	auth   *fakeAuth
	inv    *fakeInventory
	lister *fakeLister
}

// newHarness wires an App around a real session store and router. With
// signedIn the store starts with a token valid for an hour.
func newHarness(t *testing.T, signedIn bool) *harness {
	t.Helper()
	ctx := context.Background()
	clk := &clock{t: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)}
	log := logging.Discard()

	token := mint(t, clk.Now(), time.Hour)
	stored := ""
	if signedIn {
		stored = token
	}
	store := session.New(ctx, session.NewMemoryStorage(stored), jwtx.NewCodec(jwtx.WithClock(clk.Now)), log)

	r := router.New(store, log, router.DefaultRoutes()...)
	t.Cleanup(r.FollowSession(store))

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, migrations.Up(ctx, db))

	var cfg config.Config
	cfg.LoadDefaults()

	h := &harness{
		out:    &bytes.Buffer{},
		clock:  clk,
		store:  store,
		router: r,
		auth:   &fakeAuth{store: store, token: token},
		inv:    &fakeInventory{pages: []*models.Page[models.Product]{{}}},
		lister: &fakeLister{body: `{"data":[],"pagination":{}}`},
	}
	h.app = NewApp(Deps{
		Config:    &cfg,
		Log:       log,
		Session:   store,
		Router:    r,
		Auth:      h.auth,
		Inventory: h.inv,
		Listings:  h.lister,
		Settings:  services.NewSettingsService(db, validation.New()),
	})
	h.app.out = h.out
	h.app.reader = bufio.NewReader(strings.NewReader(""))
	return h
}

// stubPrompts answers text prompts and password prompts from the given
// queues. An exhausted queue behaves like a closed stdin.
func stubPrompts(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origPW := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origST, origPW })

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ io.Writer, _ string) (string, error) {
		if len(passwords) == 0 {
			return "", io.EOF
		}
		s := passwords[0]
		passwords = passwords[1:]
		return s, nil
	}
}

// capturePrintln collects everything written through printlnFn.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var (
		mu    sync.Mutex
		lines []string
	)
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}
