package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "modernc.org/sqlite"

	"bookclub/internal/adapters/books"
	emailPkg "bookclub/internal/adapters/email"
	web "bookclub/internal/adapters/http"
	"bookclub/internal/adapters/http/perf"
	"bookclub/internal/adapters/llm"
	"bookclub/internal/adapters/notion"
	"bookclub/internal/adapters/storage"
	memberStore "bookclub/internal/adapters/storage/member"
	"bookclub/internal/application/orchestrators"
	"bookclub/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize database with WAL mode and a busy timeout
	dsn := cfg.DatabaseURL + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	members := memberStore.NewSQLiteStore(timedDB)
	stores := &web.Stores{Members: members}

	// Seed the default member roster on a fresh database
	seedDeps := orchestrators.SeedMembersDeps{MemberStore: members}
	if err := orchestrators.ExecuteSeedMembers(context.Background(), seedDeps); err != nil {
		log.Fatalf("failed to seed members: %v", err)
	}

	// One shared HTTP client for all outbound integrations
	httpClient := &http.Client{Timeout: 10 * time.Second}

	// Configure organizer notification email
	var sender emailPkg.Sender
	if cfg.ResendAPIKey != "" {
		sender = emailPkg.NewResendSender(cfg.ResendAPIKey, cfg.NotifyFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		log.Println("Email sender configured (noop — set RESEND_API_KEY for real delivery)")
	}

	clients := &web.Clients{
		Notion:   notion.NewClient(cfg.NotionToken, cfg.NotionDatabaseID, httpClient),
		Books:    books.NewClient(cfg.GoogleBooksAPIKey, httpClient),
		LLM:      llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, httpClient),
		Notifier: emailPkg.NewNotifier(sender, cfg.NotifyEmail, cfg.NotifyFrom),
	}
	if !cfg.NotionConfigured() {
		log.Println("WARNING: NOTION_TOKEN / NOTION_DATABASE_ID not set — book entries will not be mirrored")
	}

	// Create HTTP handler with middleware (pass collector for timing)
	mux := web.NewMux("static", stores, clients, collector, cfg.SecretKey, cfg.IsProduction())

	addr := ":" + cfg.Port
	log.Printf("Bookclub %s starting on %s (env=%s)", version, addr, cfg.Env)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
