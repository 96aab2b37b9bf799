package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/ballotbox/internal/ballot/domain"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/service"
	"github.com/aussiebroadwan/ballotbox/internal/ballot/store"
	"github.com/aussiebroadwan/ballotbox/pkg/httpx"
	"github.com/aussiebroadwan/ballotbox/pkg/slogx"

	_ "github.com/aussiebroadwan/ballotbox/api/ballot" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate swag init --generalInfo router.go --dir .,../../../pkg/ballotsdk --output ../../../api/ballot --outputTypes go --packageName ballot

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	TokenService    *service.TokenService
	AccountService  *service.AccountService
	RegistryService *service.RegistryService
	BallotService   *service.BallotService
	ResultsService  *service.ResultsService
	UserService     *service.UserService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerElections()
	r.registerVotes()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			BallotBox Voting Service API
//	@version		0.1.0
//	@description	Online voting: accounts, elections, candidates, one ballot per voter per election, and live results.
//	@description
//	@description				Session tokens are HS256 or EdDSA signed JWTs sent as bearer credentials.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/ballotbox
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// session wraps h for any signed in user.
func (r *Router) session(h http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.TokenService),
		httpx.RateLimitByUser(limit),
	)
}

// admin wraps h for signed in admins only.
func (r *Router) admin(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.TokenService),
		httpx.RequireRole(string(domain.RoleAdmin), domain.CanAccess),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AccountService: r.AccountService}

	// Credential endpoints are strict. Login and forgot-password are keyed
	// by IP plus the submitted email.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /auth/forgot-password",
		httpx.Chain(http.HandlerFunc(h.HandleForgotPassword),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "email"),
		),
	)
	r.Mux.Handle("POST /auth/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerElections() {
	h := &ElectionsHandler{RegistryService: r.RegistryService}

	r.Mux.Handle("GET /elections", r.session(h.HandleListElections, httpx.LenientLimit))
	r.Mux.Handle("GET /candidates/{electionId}", r.session(h.HandleListCandidates, httpx.LenientLimit))

	r.Mux.Handle("POST /elections/create", r.admin(h.HandleCreateElection))
	r.Mux.Handle("POST /candidates/add", r.admin(h.HandleAddCandidate))
	r.Mux.Handle("DELETE /election/{id}", r.admin(h.HandleDeleteElection))
	r.Mux.Handle("DELETE /candidate/{id}", r.admin(h.HandleDeleteCandidate))
}

func (r *Router) registerVotes() {
	h := &VotesHandler{
		BallotService:  r.BallotService,
		ResultsService: r.ResultsService,
	}

	r.Mux.Handle("POST /vote", r.session(h.HandleCastVote, httpx.ModerateLimit))
	r.Mux.Handle("GET /all-votes", r.session(h.HandleListVotes, httpx.LenientLimit))
	r.Mux.Handle("GET /results/{electionId}", r.session(h.HandleResults, httpx.LenientLimit))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /users", r.admin(h.HandleListUsers))
	r.Mux.Handle("DELETE /user/{id}", r.admin(h.HandleDeleteUser))
	r.Mux.Handle("POST /make-admin", r.admin(h.HandleMakeAdmin))
	r.Mux.Handle("POST /make-voter", r.admin(h.HandleMakeVoter))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.TokenService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
