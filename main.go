package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gedo/creds"
	"gedo/db"
	"gedo/filemgr"
	"gedo/globals"
	"gedo/middleware"
	"gedo/mq"
	"gedo/ratelim"
	"gedo/rdx"
	"gedo/routes"
	"gedo/site"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func baseURL(port string) string {
	if filemgr.IsProd() {
		return "https://gedo-server-294732304552.us-central1.run.app"
	}
	return "http://localhost" + port
}

func newStore(ctx context.Context, account *creds.ServiceAccount, port string) (filemgr.Store, error) {
	if filemgr.IsProd() {
		return filemgr.NewBucketStore(ctx, account.Bucket(), baseURL(port))
	}
	return filemgr.NewDiskStore(filemgr.UploadsDir(), baseURL(port))
}

func setupRouter(auth *middleware.Authenticator, rl *ratelim.RateLimiter, cooldown *ratelim.Cooldown, store filemgr.Store) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	routes.AddDishRoutes(router, auth, rl)
	routes.AddCategoryRoutes(router, auth, rl)
	routes.AddTestimonialRoutes(router, auth, rl, cooldown)
	routes.AddGalleryRoutes(router, auth, rl)
	routes.AddSiteRoutes(router, auth, rl)
	routes.AddUploadRoutes(router, auth, store)
	routes.AddStaticRoutes(router, store)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	// credentials must resolve before anything serves
	account, err := creds.Resolve()
	if err != nil {
		log.Fatalf("%v", err)
	}
	globals.JwtSecret = account.SigningSecret()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":5000"
	} else if port[0] != ':' {
		port = ":" + port
	}

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	rdx.Init()
	go mq.StartWorker()

	store, err := newStore(ctx, account, port)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	fallbackUser := os.Getenv("ADMIN_USERNAME")
	if fallbackUser == "" {
		fallbackUser = "Gedo"
	}
	fallbackPass := os.Getenv("ADMIN_PASSWORD")
	if fallbackPass == "" {
		fallbackPass = "Gedo1999"
	}
	auth := middleware.NewAuthenticator(site.StoredAdminAuth, fallbackUser, fallbackPass, globals.JwtSecret)

	rateLimiter := ratelim.NewRateLimiter()
	cooldown := ratelim.NewCooldown(5 * time.Minute)

	router := setupRouter(auth, rateLimiter, cooldown, store)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Backend listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	if err := db.Client.Disconnect(context.Background()); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}

	log.Println("Server stopped cleanly")
}
