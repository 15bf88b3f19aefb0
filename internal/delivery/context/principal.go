package context

import (
	"vendo/internal/domain/entity"
	"vendo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// KeySubject is where the authenticated token subject is stored.
	KeySubject ContextKey = "subject"

	// KeyAccessDecision holds the gate decision for the current request.
	KeyAccessDecision ContextKey = "access_decision"

	// KeyClaims holds the verified token claims.
	KeyClaims ContextKey = "claims"
)

// SetPrincipal records the outcome of an authorized request on c.
func SetPrincipal(c echo.Context, decision entity.AccessDecision, claims service.Claims) {
	c.Set(string(KeySubject), decision.Subject)
	c.Set(string(KeyAccessDecision), decision)
	c.Set(string(KeyClaims), claims)
}

// GetSubject returns the authenticated subject, if any.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(string(KeySubject)).(string)

	return subject, ok && subject != ""
}

// GetAccessDecision returns the decision made for this request.
func GetAccessDecision(c echo.Context) (entity.AccessDecision, bool) {
	decision, ok := c.Get(string(KeyAccessDecision)).(entity.AccessDecision)

	return decision, ok
}

// GetClaims returns the verified claims of the bearer token.
func GetClaims(c echo.Context) (service.Claims, bool) {
	claims, ok := c.Get(string(KeyClaims)).(service.Claims)

	return claims, ok
}
