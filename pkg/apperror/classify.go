package apperror

import "net/http"

// Classify returns a copy of rec with StatusCode set to newStatus, and Code
// set to newCode when one is given, if rec.Code equals matchCode. Otherwise
// rec is returned unchanged.
func Classify(rec Record, matchCode string, newStatus int, newCode ...string) Record {
	if rec.Code != matchCode {
		return rec
	}
	rec.StatusCode = newStatus
	if len(newCode) > 0 && newCode[0] != "" {
		rec.Code = newCode[0]
	}
	return rec
}

// Rule maps an upstream error code to an application status and code.
type Rule struct {
	MatchCode     string
	NewStatusCode int
	// NewCode is optional; an empty value keeps the incoming code.
	NewCode string
}

// Rules is an ordered classification table.
type Rules []Rule

// Apply runs every rule in order. Each rule is matched against the code rec
// arrived with, so a rewritten code never triggers a later rule.
func (rs Rules) Apply(rec Record) Record {
	original := rec.Code
	for _, r := range rs {
		if original != r.MatchCode {
			continue
		}
		rec = Classify(Record{StatusCode: rec.StatusCode, Message: rec.Message, Code: original}, r.MatchCode, r.NewStatusCode, r.NewCode)
	}
	return rec
}

// TokenRules classifies failures of a registration token exchange.
var TokenRules = Rules{
	{MatchCode: "ExpiredTokenException", NewStatusCode: http.StatusBadRequest, NewCode: Code(KindTokenException)},
	{MatchCode: "InvalidTokenException", NewStatusCode: http.StatusBadRequest, NewCode: Code(KindTokenException)},
	{MatchCode: "ThrottlingException", NewStatusCode: http.StatusBadRequest, NewCode: Code(KindTokenException)},
	{MatchCode: "DisabledApiException", NewStatusCode: http.StatusBadRequest, NewCode: Code(KindTokenException)},
}

// EntitlementRules classifies failures of an entitlement lookup.
var EntitlementRules = Rules{
	{MatchCode: "InvalidParameterException", NewStatusCode: http.StatusBadRequest, NewCode: Code(KindEntitlementException)},
	{MatchCode: "ThrottlingException", NewStatusCode: http.StatusBadRequest, NewCode: Code(KindEntitlementException)},
}
