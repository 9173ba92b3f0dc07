package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/client/router"
)

// Settings shows the profile, preferences and notification toggles, or
// changes one of them:
//
//	settings prefs KEY VALUE
//	settings notify NAME
//	settings reset
func (a *App) Settings(ctx context.Context, args []string) error {
	if !a.enter(ctx, router.PathSettings) {
		return nil
	}

	if len(args) == 0 {
		return a.showSettings(ctx)
	}

	switch args[0] {
	case "prefs":
		if len(args) != 3 {
			printlnFn("Usage: settings prefs <language|timezone|currency|dateFormat|theme> <value>")
			return nil
		}
		if _, err := a.settings.SetPreference(ctx, args[1], args[2]); err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.out, "%s set to %s.\n", args[1], args[2])
		return nil

	case "notify":
		if len(args) != 2 {
			printlnFn("Usage: settings notify <email|push|sms|stockAlerts|orderUpdates|systemNotifications>")
			return nil
		}
		n, err := a.settings.ToggleNotification(ctx, args[1])
		if err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.out, "%s notifications %s.\n", args[1], onOff(n.Enabled(args[1])))
		return nil

	case "reset":
		ok, err := Confirm(a.reader, "Restore default settings?", a.out)
		if err != nil || !ok {
			return err
		}
		if err := a.settings.Reset(ctx); err != nil {
			return a.fail(err)
		}
		fmt.Fprintln(a.out, "Settings restored.")
		return nil
	}

	printlnFn("Unknown settings option:", args[0])
	return nil
}

func (a *App) showSettings(ctx context.Context) error {
	if p, ok := a.session.Profile(); ok {
		fmt.Fprintln(a.out, "Profile:")
		printTable(a.out, []string{"ID", "NAME", "EMAIL", "ROLE"},
			[][]string{{strconv.FormatInt(p.ID, 10), orDash(p.Name), orDash(p.Email), orDash(p.Role)}})
	}

	prefs, err := a.settings.Preferences(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "\nPreferences:")
	printTable(a.out, []string{"KEY", "VALUE"}, [][]string{
		{"language", prefs.Language},
		{"timezone", prefs.Timezone},
		{"currency", prefs.Currency},
		{"dateFormat", prefs.DateFormat},
		{"theme", prefs.Theme},
	})

	n, err := a.settings.Notifications(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "\nNotifications:")
	rows := make([][]string, 0, len(models.NotificationChannels))
	for _, name := range models.NotificationChannels {
		rows = append(rows, []string{name, onOff(n.Enabled(name))})
	}
	printTable(a.out, []string{"CHANNEL", "STATE"}, rows)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
