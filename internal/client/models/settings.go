package models

// Preferences are stored locally; allowed values are listed in the
// validate tags.
type Preferences struct {
	Language   string `json:"language" validate:"oneof=es en pt"`
	Timezone   string `json:"timezone" validate:"oneof=America/Bogota America/Santiago America/Buenos_Aires America/Lima"`
	Currency   string `json:"currency" validate:"oneof=COP CLP USD EUR"`
	DateFormat string `json:"dateFormat" validate:"oneof=DD/MM/YYYY MM/DD/YYYY YYYY-MM-DD"`
	Theme      string `json:"theme" validate:"oneof=light dark auto"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Language:   "es",
		Timezone:   "America/Bogota",
		Currency:   "COP",
		DateFormat: "DD/MM/YYYY",
		Theme:      "light",
	}
}

type NotificationSettings struct {
	Email               bool `json:"email"`
	Push                bool `json:"push"`
	SMS                 bool `json:"sms"`
	StockAlerts         bool `json:"stockAlerts"`
	OrderUpdates        bool `json:"orderUpdates"`
	SystemNotifications bool `json:"systemNotifications"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Email:        true,
		StockAlerts:  true,
		OrderUpdates: true,
	}
}

// Toggle flips the named notification channel. It returns false for an
// unknown name.
func (n *NotificationSettings) Toggle(name string) bool {
	switch name {
	case "email":
		n.Email = !n.Email
	case "push":
		n.Push = !n.Push
	case "sms":
		n.SMS = !n.SMS
	case "stockAlerts":
		n.StockAlerts = !n.StockAlerts
	case "orderUpdates":
		n.OrderUpdates = !n.OrderUpdates
	case "systemNotifications":
		n.SystemNotifications = !n.SystemNotifications
	default:
		return false
	}
	return true
}

// Set assigns one preference by its JSON name.
func (p *Preferences) Set(key, value string) bool {
	switch key {
	case "language":
		p.Language = value
	case "timezone":
		p.Timezone = value
	case "currency":
		p.Currency = value
	case "dateFormat":
		p.DateFormat = value
	case "theme":
		p.Theme = value
	default:
		return false
	}
	return true
}

// NotificationChannels lists the names accepted by Toggle, in display order.
var NotificationChannels = []string{"email", "push", "sms", "stockAlerts", "orderUpdates", "systemNotifications"}

// Enabled reports the state of the named channel; unknown names are off.
func (n NotificationSettings) Enabled(name string) bool {
	switch name {
	case "email":
		return n.Email
	case "push":
		return n.Push
	case "sms":
		return n.SMS
	case "stockAlerts":
		return n.StockAlerts
	case "orderUpdates":
		return n.OrderUpdates
	case "systemNotifications":
		return n.SystemNotifications
	}
	return false
}
