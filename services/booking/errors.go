package booking

import "fmt"

// FlowError is a domain-rule rejection raised by the booking flow. The
// session state is guaranteed unchanged whenever one is returned.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSessionNotFound: no draft exists under the given session id, or it
	// expired.
	ErrSessionNotFound = &FlowError{Code: "sessionNotFound", Message: "booking session not found or expired"}
	// ErrOutletNotChosen: a detail operation was attempted before an outlet
	// was fixed.
	ErrOutletNotChosen = &FlowError{Code: "outletNotChosen", Message: "an outlet must be chosen first"}
	// ErrUnknownOutlet: the outlet id is not in the catalog.
	ErrUnknownOutlet = &FlowError{Code: "unknownOutlet", Message: "outlet not found in catalog"}
	// ErrUnknownProvider: the provider id is neither a catalog provider nor
	// the no-preference sentinel.
	ErrUnknownProvider = &FlowError{Code: "unknownProvider", Message: "provider not found in catalog"}
	// ErrUnknownService: the service id is not in the catalog.
	ErrUnknownService = &FlowError{Code: "unknownService", Message: "service not found in catalog"}
	// ErrBadDate: the date is not a valid yyyy-mm-dd value.
	ErrBadDate = &FlowError{Code: "badDate", Message: "date must be a valid yyyy-mm-dd value"}
	// ErrPastDate: the date is strictly before today.
	ErrPastDate = &FlowError{Code: "pastDate", Message: "dates before today are not selectable"}
	// ErrSlotUnavailable: the time is not in the current availability set.
	ErrSlotUnavailable = &FlowError{Code: "slotUnavailable", Message: "time is not available for the chosen provider"}
	// ErrViewOutOfRange: the requested calendar view is outside the
	// navigable horizon.
	ErrViewOutOfRange = &FlowError{Code: "viewOutOfRange", Message: "calendar view is outside the selectable range"}
	// ErrIncompleteDraft: confirmation was attempted with outlet, date, time
	// or services still missing.
	ErrIncompleteDraft = &FlowError{Code: "incompleteDraft", Message: "outlet, date, time and at least one service are required to confirm"}
)
