package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
)

const SHUTDOWN_TIMEOUT = 5 * time.Second

// HttpServer wires the registered routes into an HTTP server with graceful
// shutdown on SIGINT/SIGTERM.
type HttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewHttpServer(router *Router, muxRouter *mux.Router, addr string) *HttpServer {
	return &HttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Start registers routes and serves until interrupted.
func (s *HttpServer) Start() {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[HttpServer] Starting server on %s", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	<-stop
	log.Println("[HttpServer] Shutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), SHUTDOWN_TIMEOUT)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[HttpServer] Server exiting")
}
