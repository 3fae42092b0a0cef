package httpassert

import (
	"net/http"

	"github.com/jacoelho/restassert/assertion"
	"github.com/jacoelho/restassert/predicate"
)

func HasStatus(r Response, code int) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if r.Status() != code {
		return assertion.Failuref("Expecting status code to be %d but was %d", code, r.Status())
	}
	return assertion.Success()
}

func DoesNotHaveStatus(r Response, code int) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if r.Status() == code {
		return assertion.Failuref("Expecting status code not to be %d", code)
	}
	return assertion.Success()
}

// IsStatusBetween is inclusive on both ends.
func IsStatusBetween(r Response, low, high int) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if low > high {
		return assertion.InvalidInputf("Expecting status range %d..%d to be ordered", low, high)
	}
	if s := r.Status(); s < low || s > high {
		return assertion.Failuref("Expecting status code to be between %d and %d but was %d", low, high, s)
	}
	return assertion.Success()
}

// StatusMatches evaluates p against the status code.
func StatusMatches(r Response, p predicate.Expr) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	ok, err := p.Evaluate(r.Status())
	if err != nil {
		return assertion.InvalidInput(err.Error())
	}
	if !ok {
		return assertion.Failuref("Expecting status code to satisfy %s but was %d", p, r.Status())
	}
	return assertion.Success()
}

func statusClass(r Response, class int) assertion.Result {
	if isNil(r) {
		return nilResponse()
	}
	if r.Status()/100 != class {
		return assertion.Failuref("Expecting status code to be %dxx but was %d", class, r.Status())
	}
	return assertion.Success()
}

func IsInformational(r Response) assertion.Result { return statusClass(r, 1) }
func IsSuccess(r Response) assertion.Result       { return statusClass(r, 2) }
func IsRedirection(r Response) assertion.Result   { return statusClass(r, 3) }
func IsClientError(r Response) assertion.Result   { return statusClass(r, 4) }
func IsServerError(r Response) assertion.Result   { return statusClass(r, 5) }

func IsOk(r Response) assertion.Result             { return HasStatus(r, http.StatusOK) }
func IsCreated(r Response) assertion.Result        { return HasStatus(r, http.StatusCreated) }
func IsAccepted(r Response) assertion.Result       { return HasStatus(r, http.StatusAccepted) }
func IsNoContent(r Response) assertion.Result      { return HasStatus(r, http.StatusNoContent) }
func IsPartialContent(r Response) assertion.Result { return HasStatus(r, http.StatusPartialContent) }

func IsMovedPermanently(r Response) assertion.Result { return HasStatus(r, http.StatusMovedPermanently) }
func IsFound(r Response) assertion.Result            { return HasStatus(r, http.StatusFound) }
func IsNotModified(r Response) assertion.Result      { return HasStatus(r, http.StatusNotModified) }

func IsBadRequest(r Response) assertion.Result           { return HasStatus(r, http.StatusBadRequest) }
func IsUnauthorized(r Response) assertion.Result         { return HasStatus(r, http.StatusUnauthorized) }
func IsForbidden(r Response) assertion.Result            { return HasStatus(r, http.StatusForbidden) }
func IsNotFound(r Response) assertion.Result             { return HasStatus(r, http.StatusNotFound) }
func IsMethodNotAllowed(r Response) assertion.Result     { return HasStatus(r, http.StatusMethodNotAllowed) }
func IsConflict(r Response) assertion.Result             { return HasStatus(r, http.StatusConflict) }
func IsPreconditionFailed(r Response) assertion.Result   { return HasStatus(r, http.StatusPreconditionFailed) }
func IsUnsupportedMediaType(r Response) assertion.Result { return HasStatus(r, http.StatusUnsupportedMediaType) }
func IsUnprocessableEntity(r Response) assertion.Result  { return HasStatus(r, http.StatusUnprocessableEntity) }

func IsInternalServerError(r Response) assertion.Result { return HasStatus(r, http.StatusInternalServerError) }
func IsNotImplemented(r Response) assertion.Result      { return HasStatus(r, http.StatusNotImplemented) }
func IsServiceUnavailable(r Response) assertion.Result  { return HasStatus(r, http.StatusServiceUnavailable) }
