package web

import (
	"crypto/sha256"
	"net/http"
	"time"

	"bookclub/internal/adapters/books"
	"bookclub/internal/adapters/email"
	"bookclub/internal/adapters/http/middleware"
	"bookclub/internal/adapters/http/perf"
	"bookclub/internal/adapters/llm"
	"bookclub/internal/adapters/notion"
	memberstore "bookclub/internal/adapters/storage/member"
)

// RateLimitPerSecond is the per-IP request budget.
const RateLimitPerSecond = 20

// Stores aggregates the persistence dependencies the handlers need.
type Stores struct {
	Members memberstore.Store
}

// Clients aggregates the outbound service dependencies the handlers need.
type Clients struct {
	Notion   *notion.Client
	Books    *books.Client
	LLM      *llm.Client
	Notifier *email.Notifier
}

// Package-level dependencies, set once by NewMux before the server starts.
var (
	stores        *Stores
	clients       *Clients
	secureCookies bool
)

// NewMux builds the HTTP handler tree with the full middleware chain.
// PRE: s and c are non-nil; secretKey is non-empty
// POST: Returned handler serves all routes plus /static/ assets
func NewMux(staticDir string, s *Stores, c *Clients, collector *perf.Collector, secretKey string, production bool) http.Handler {
	stores = s
	clients = c
	secureCookies = production
	initFlash(secretKey)

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// gorilla/csrf wants exactly 32 key bytes; derive them from the secret.
	csrfKey := sha256.Sum256([]byte(secretKey))

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey[:], production),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}

// registerRoutes wires each path to its handler.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleIndex)
	mux.HandleFunc("/members", handleMembersPage)
	mux.HandleFunc("/add_member", handleAddMember)
	mux.HandleFunc("/add_book", handleAddBook)
	mux.HandleFunc("/generate_keywords", handleGenerateKeywords)
	mux.HandleFunc("/health", handleHealth)
}
