package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	httpadapter "github.com/compentube/compentube-server/internal/adapters/http"
	"github.com/compentube/compentube-server/internal/adapters/identity"
	"github.com/compentube/compentube-server/internal/adapters/llm"
	firestorestore "github.com/compentube/compentube-server/internal/adapters/storage/firestore"
	memstore "github.com/compentube/compentube-server/internal/adapters/storage/memory"
	"github.com/compentube/compentube-server/internal/adapters/transcript"
	"github.com/compentube/compentube-server/internal/adapters/youtube"
	"github.com/compentube/compentube-server/internal/app/auth"
	"github.com/compentube/compentube-server/internal/app/summarize"
	"github.com/compentube/compentube-server/internal/config"
	"github.com/compentube/compentube-server/internal/domain"
)

func main() {
	ctx := context.Background()

	// Optional .env for local development.
	_ = godotenv.Load()

	cfg := config.Load()

	// Session storage: memory or Firestore
	var store domain.SessionStore
	switch cfg.StorageBackend {
	case "firestore":
		log.Printf("[STORE] Using Firestore sessions (project=%s)", cfg.GCPProjectID)
		fsStore, err := firestorestore.NewStore(ctx, cfg.GCPProjectID, config.SessionTTL)
		if err != nil {
			log.Fatalf("error initializing Firestore store: %v", err)
		}
		store = fsStore
	default:
		log.Println("[STORE] Using in-memory sessions")
		store = memstore.NewSessionStore(config.SessionTTL)
	}

	// Generation backend: mock, service API key, or the user's own
	// delegated credentials (default).
	var generator domain.TextGenerator
	switch {
	case cfg.UseMockLLM:
		log.Println("[LLM] Using MOCK generator")
		generator = llm.NewMockGenerator()
	case cfg.LLMBackend == "genai":
		log.Println("[LLM] Using genai API-key backend")
		g, err := llm.NewGenAIClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing genai client: %v", err)
		}
		generator = g
	default:
		log.Println("[LLM] Using delegated-credential Gemini backend")
		generator = llm.NewGeminiClient(cfg.ModelName)
	}

	exchanger, err := identity.NewGoogleExchanger(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.RedirectURL)
	if err != nil {
		log.Fatalf("error initializing Google exchanger: %v", err)
	}

	authSvc := auth.NewService(exchanger, store)
	sumSvc := summarize.NewService(
		transcript.NewExtractor(cfg.PythonBin, cfg.TranscriptScript),
		youtube.NewClient(),
		generator,
	)

	handler := httpadapter.NewServer(authSvc, sumSvc, cfg.ClientOrigin)

	addr := ":" + cfg.Port
	log.Println("Compentube API listening on port:", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
