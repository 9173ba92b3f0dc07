package cli

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/stockdesk/internal/client/client"
	"github.com/dmitrijs2005/stockdesk/internal/common"
	"github.com/dmitrijs2005/stockdesk/internal/validation"
)

// describeError turns an error returned by the services into the text shown
// to the user.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		lines := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			lines = append(lines, fe.Field+": "+fe.Message)
		}
		return strings.Join(lines, "\n")
	}

	switch {
	case errors.Is(err, common.ErrNotAuthenticated):
		return "You need to sign in first."
	case errors.Is(err, common.ErrTokenExpired):
		return "Your session has expired. Please sign in again."
	case errors.Is(err, common.ErrMissingUserID):
		return "Could not identify the current user. Please sign in again."
	case errors.Is(err, common.ErrInvalidToken):
		return "The server returned an invalid session."
	}

	status, ok := client.StatusOf(err)
	if !ok {
		return err.Error()
	}
	msg := client.MessageOf(err)

	switch {
	case status == 0:
		return "Cannot reach the server. Check your connection."
	case status == http.StatusBadRequest:
		if msg != "" {
			return "Invalid data: " + msg
		}
		return "Invalid data."
	case status == http.StatusUnauthorized:
		return "Invalid credentials."
	case status == http.StatusForbidden:
		return "You are not allowed to do that."
	case status == http.StatusNotFound:
		return "Not found."
	case status == http.StatusConflict:
		return "That email is already registered."
	case status >= http.StatusInternalServerError:
		return "Server error. Please try again later."
	}
	if msg != "" {
		return msg
	}
	return err.Error()
}
