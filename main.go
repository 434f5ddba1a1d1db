package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/BasedOctavian/LayoverApp-sub001/config"
	"github.com/BasedOctavian/LayoverApp-sub001/logger"
	"github.com/BasedOctavian/LayoverApp-sub001/routes"
	"github.com/BasedOctavian/LayoverApp-sub001/services"
	"github.com/BasedOctavian/LayoverApp-sub001/socket"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	sugar := zapLogger.Sugar()

	awsCfg := services.LoadAWSConfig(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: services.InitializeDynamoDBClient(awsCfg)}
	sugar.Infow("DynamoDB client initialized", "region", cfg.AWSRegion)

	// Store-facing services
	profileService := &services.ProfileService{Dynamo: dynamoService, Logger: sugar}
	connectionService := &services.ConnectionService{Dynamo: dynamoService, Logger: sugar}
	chatService := &services.ChatService{Dynamo: dynamoService, Logger: sugar}
	mediaService := services.NewMediaService(awsCfg, cfg.S3Bucket)

	// Realtime layer
	io := socket.NewServer(sugar)
	go func() {
		if err := io.Serve(); err != nil {
			sugar.Errorw("socket server stopped", "error", err)
		}
	}()

	// Engine services
	profileCache := services.NewProfileCache(profileService, cfg.ProfileCacheTTL)
	notificationService := &services.NotificationService{
		Profiles:  profileService,
		Push:      services.NewExpoPushSender(sugar),
		Broadcast: &socket.RoomNotifier{Server: io},
		Logger:    sugar,
	}
	feedService := &services.FeedService{
		Cache:           profileCache,
		Profiles:        profileService,
		Connections:     connectionService,
		Chats:           chatService,
		FreshnessWindow: cfg.FreshnessWindow,
		Logger:          sugar,
	}
	swipeService := &services.SwipeService{
		Profiles:    profileService,
		Connections: connectionService,
		Chats:       chatService,
		Notifier:    notificationService,
		Logger:      sugar,
	}
	resetService := &services.ResetService{
		Profiles:    profileService,
		Connections: connectionService,
		Chats:       chatService,
		Cache:       profileCache,
		PageSize:    cfg.ResetPageSize,
		Logger:      sugar,
	}

	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Layover")
	}).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	r.Handle("/socket.io/", io)

	routes.RegisterFeedRoutes(r, feedService)
	routes.RegisterSwipeRoutes(r, swipeService)
	routes.RegisterResetRoutes(r, resetService)
	routes.RegisterConnectionRoutes(r, connectionService, chatService)
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterNotificationRoutes(r, notificationService)
	routes.RegisterMediaRoutes(r, mediaService)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	sugar.Infow("starting server", "port", cfg.Port)
	serveErr := http.ListenAndServe(":"+cfg.Port, corsHandler)

	// Flush and close explicitly; os.Exit would skip deferred cleanup.
	sugar.Errorw("server stopped", "error", serveErr)
	io.Close()
	zapLogger.Sync()
	os.Exit(1)
}
