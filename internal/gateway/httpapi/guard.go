package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authgate/internal/authrpc"
	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/dmitrijs2005/authgate/internal/logging"
)

// Guard rejection messages.
const (
	MsgNoAuthHeader      = "no authorization header"
	MsgInvalidAuthFormat = "invalid authorization header format"
	MsgInvalidToken      = "invalid or expired token"
)

// Guard decision labels.
const (
	decisionAdmitted      = "admitted"
	decisionMissingHeader = "missing_header"
	decisionBadFormat     = "bad_format"
	decisionInvalidToken  = "invalid_token"
)

// TokenValidator asks the authentication service whether a token is valid.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*authrpc.User, error)
}

type ctxKey struct{}

// UserFromContext returns the user admitted by the Guard.
func UserFromContext(ctx context.Context) (*authrpc.User, bool) {
	u, ok := ctx.Value(ctxKey{}).(*authrpc.User)
	return u, ok && u != nil
}

// Guard admits a request only when its bearer token is confirmed by the
// authentication service. It makes exactly one remote call per request and
// never retries.
type Guard struct {
	validator TokenValidator
	metrics   *Metrics
	logger    logging.Logger
}

func NewGuard(v TokenValidator, m *Metrics, l logging.Logger) *Guard {
	return &Guard{validator: v, metrics: m, logger: l.With("module", "guard")}
}

func (g *Guard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeaderName)
		if header == "" {
			g.reject(w, decisionMissingHeader, MsgNoAuthHeader)
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			g.reject(w, decisionBadFormat, MsgInvalidAuthFormat)
			return
		}

		user, err := g.validator.ValidateToken(r.Context(), token)
		if err != nil {
			g.logger.Warn(r.Context(), "token validation failed", "error", err)
			g.reject(w, decisionInvalidToken, MsgInvalidToken)
			return
		}
		if user == nil {
			g.reject(w, decisionInvalidToken, MsgInvalidToken)
			return
		}

		g.metrics.guardDecision(decisionAdmitted)
		ctx := context.WithValue(r.Context(), ctxKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (g *Guard) reject(w http.ResponseWriter, decision, message string) {
	g.metrics.guardDecision(decision)
	writeError(w, http.StatusUnauthorized, message)
}

// bearerToken splits "Bearer <token>" on single spaces and returns the second
// part. The scheme is case-sensitive.
func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) < 2 || parts[0] != common.BearerScheme || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
