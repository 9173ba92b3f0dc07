package router

const (
	PathLogin          = "/login"
	PathSignUp         = "/sign-up"
	PathForgotPassword = "/forgot-password"
	PathResetPassword  = "/reset-password"

	PathDashboard   = "/dashboard"
	PathInventory   = "/inventory"
	PathMovements   = "/movements"
	PathPurchases   = "/purchases"
	PathSuppliers   = "/suppliers"
	PathClients     = "/clients"
	PathReports     = "/reports"
	PathProjections = "/projections"
	PathAlerts      = "/alerts"
	PathSettings    = "/settings"
)

type Route struct {
	Path  string
	Title string
	Guard Guard
}

// DefaultRoutes is the navigation surface of the application.
func DefaultRoutes() []Route {
	return []Route{
		{Path: PathLogin, Title: "Iniciar sesión", Guard: GuestGuard},
		{Path: PathSignUp, Title: "Crear cuenta", Guard: GuestGuard},
		{Path: PathForgotPassword, Title: "Recuperar contraseña", Guard: GuestGuard},
		{Path: PathResetPassword, Title: "Restablecer contraseña", Guard: GuestGuard},

		{Path: PathDashboard, Title: "Visión General", Guard: AuthGuard},
		{Path: PathInventory, Title: "Inventario", Guard: AuthGuard},
		{Path: PathMovements, Title: "Historial de movimientos", Guard: AuthGuard},
		{Path: PathPurchases, Title: "Compras", Guard: AuthGuard},
		{Path: PathSuppliers, Title: "Proveedores", Guard: AuthGuard},
		{Path: PathClients, Title: "Clientes", Guard: AuthGuard},
		{Path: PathReports, Title: "Reportes", Guard: AuthGuard},
		{Path: PathProjections, Title: "Proyecciones", Guard: AuthGuard},
		{Path: PathAlerts, Title: "Alertas", Guard: AuthGuard},
		{Path: PathSettings, Title: "Configuración", Guard: AuthGuard},
	}
}
