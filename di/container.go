package di

import (
	"log"

	"github.com/gorilla/mux"

	"roamiq/api"
	"roamiq/api/besttime"
	"roamiq/config"
	"roamiq/server"
	"roamiq/server/handlers"
	services "roamiq/service"
)

// Container holds all application dependencies.
type Container struct {
	Config         *config.Config
	BestTimeAPI    besttime.BestTimeAPI
	CrowdPredictor *services.CrowdPredictor
	CrowdResolver  *services.CrowdDataResolver
	CrowdService   *services.CrowdService
	ElderlyService *services.ElderlyService
	ChildService   *services.ChildService
	CrowdHandler   *handlers.CrowdHandler
	ElderlyHandler *handlers.ElderlyHandler
	ChildHandler   *handlers.ChildHandler
	MuxRouter      *mux.Router
	Router         *server.Router
	HttpServer     *server.HttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	log.Printf("initializing container - env: %s", cfg.Env)

	// Initialize BestTimeApi - mock outside prod
	var bestTimeApiClient besttime.BestTimeAPI
	if cfg.Env != "prod" {
		bestTimeApiClient = besttime.NewBestTimeApiClientMock()
		log.Printf("Using mock best time api")
	} else {
		log.Printf("Using prod best time api")
		httpClient := api.NewHTTPClient(cfg.BestTimeBaseURL)

		bestTimeApiClient = besttime.NewBestTimeApiClient(httpClient)
		bestTimeApiClient.SetCredentials(cfg.BestTimePublicKey, cfg.BestTimePrivateKey)
	}

	// Scoring and prediction layer
	crowdPredictor := services.NewCrowdPredictor()
	crowdResolver := services.NewCrowdDataResolver(bestTimeApiClient, crowdPredictor)
	elderlyScorer := services.NewElderlyScorer()
	childScorer := services.NewChildScorer()

	// Service layer
	crowdService := services.NewCrowdService(bestTimeApiClient, crowdResolver)
	elderlyService := services.NewElderlyService(bestTimeApiClient, crowdResolver, elderlyScorer)
	childService := services.NewChildService(bestTimeApiClient, crowdResolver, childScorer)

	// Handlers
	crowdHandler := handlers.NewCrowdHandler(crowdService, crowdPredictor)
	elderlyHandler := handlers.NewElderlyHandler(elderlyService)
	childHandler := handlers.NewChildHandler(childService)

	// Routing
	muxRouter := mux.NewRouter()
	router := server.NewRouter(crowdHandler, elderlyHandler, childHandler, muxRouter)
	httpServer := server.NewHttpServer(router, muxRouter, cfg.ListenAddr)

	return &Container{
		Config:         cfg,
		BestTimeAPI:    bestTimeApiClient,
		CrowdPredictor: crowdPredictor,
		CrowdResolver:  crowdResolver,
		CrowdService:   crowdService,
		ElderlyService: elderlyService,
		ChildService:   childService,
		CrowdHandler:   crowdHandler,
		ElderlyHandler: elderlyHandler,
		ChildHandler:   childHandler,
		MuxRouter:      muxRouter,
		Router:         router,
		HttpServer:     httpServer,
	}
}
