package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/importworks/hts-helpers/internal/classify"
	"github.com/importworks/hts-helpers/internal/config"
	"github.com/importworks/hts-helpers/internal/database"
	"github.com/importworks/hts-helpers/internal/handlers"
	"github.com/importworks/hts-helpers/internal/mcp"
	"github.com/importworks/hts-helpers/internal/usitc"
)

func main() {
	cfg := config.Load()

	// Command line flags override environment configuration
	port := flag.String("port", cfg.Port, "Server port")
	dbPath := flag.String("db", cfg.DBPath, "Path to the SQLite search cache")
	apiBase := flag.String("hts-api", cfg.HTSAPIBase, "USITC tariff API base URL")
	flag.Parse()

	db, err := database.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	cacheTTL := time.Duration(cfg.CacheTTLHours) * time.Hour
	if pruned, err := db.PruneSearchCache(cacheTTL); err != nil {
		log.Printf("Cache prune failed: %v", err)
	} else if pruned > 0 {
		log.Printf("Pruned %d stale cached searches", pruned)
	}

	client := usitc.NewClient(usitc.Config{
		APIBase: *apiBase,
		Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
	})
	searcher := usitc.NewCachedSearcher(client, db, cacheTTL)
	classifier := classify.NewClassifier(searcher)

	h := handlers.NewHandler(classifier, searcher, db)

	// Callable-tool surface for external agents
	toolServer := mcp.NewServer(classifier, searcher)
	mcpHTTP := server.NewStreamableHTTPServer(toolServer.Server())

	// Set up routes
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", h.HealthCheck)
	mux.HandleFunc("/api/classify", h.Classify)
	mux.HandleFunc("/api/hts/search", h.SearchHts)
	mux.HandleFunc("/api/duties", h.CalculateDuties)
	mux.HandleFunc("/api/remedies", h.CheckRemedies)
	mux.HandleFunc("/api/countries", h.GetCountries)
	mux.Handle("/mcp/", http.StripPrefix("/mcp", mcpHTTP))

	addr := ":" + *port
	log.Printf("Starting HTS helpers on http://localhost%s", addr)
	log.Printf("Tariff database: %s", *apiBase)
	log.Printf("Search cache: %s (TTL %s)", *dbPath, cacheTTL)

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
