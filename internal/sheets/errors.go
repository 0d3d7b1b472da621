package sheets

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

// Sentinel errors for the failure classes surfaced by the client. Callers
// match them with errors.Is and map them to tool-facing messages.
var (
	// ErrAuth indicates the service account credentials could not be loaded
	// or were rejected by Google.
	ErrAuth = errors.New("authentication failed")

	// ErrNotFound indicates the spreadsheet, sheet, or range does not exist
	// or is not accessible to the service account.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a name collision, such as creating a sheet whose
	// title is already taken.
	ErrConflict = errors.New("already exists")

	// ErrRange indicates an invalid index range for a dimension deletion.
	ErrRange = errors.New("invalid range")

	// ErrValidation indicates malformed input.
	ErrValidation = errors.New("invalid argument")
)

// Kind labels used in logs, metrics, and tool error payloads.
const (
	KindAuth       = "auth"
	KindNotFound   = "not_found"
	KindConflict   = "conflict"
	KindRange      = "range"
	KindValidation = "validation"
	KindInternal   = "internal"
)

// KindOf returns the kind label for err. Errors outside the sentinel
// classes report as internal.
func KindOf(err error) string {
	switch {
	case errors.Is(err, ErrAuth):
		return KindAuth
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrRange):
		return KindRange
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindInternal
	}
}

// classify maps a Google API error onto one of the sentinel classes so that
// callers can match it with errors.Is. A 403 is treated the same as a 404:
// a spreadsheet the service account cannot access is indistinguishable from
// one that does not exist. Errors that fit no class are returned unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}

	msg := apiErr.Message
	if msg == "" {
		msg = apiErr.Error()
	}

	switch apiErr.Code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrAuth, msg)
	case http.StatusForbidden, http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusBadRequest:
		lower := strings.ToLower(msg)
		switch {
		case strings.Contains(lower, "unable to parse range"):
			// The API reports an unknown sheet or malformed range as a
			// parse failure of the A1 reference.
			return fmt.Errorf("%w: %s", ErrNotFound, msg)
		case strings.Contains(lower, "already exists"):
			return fmt.Errorf("%w: %s", ErrConflict, msg)
		case strings.Contains(lower, "out of bounds"), strings.Contains(lower, "grid limits"):
			return fmt.Errorf("%w: %s", ErrRange, msg)
		default:
			return fmt.Errorf("%w: %s", ErrValidation, msg)
		}
	}

	return err
}
