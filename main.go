package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-lab/api"
	api_i "github.com/beka-birhanu/maze-lab/api/i"
	"github.com/beka-birhanu/maze-lab/api/mazeapi"
	"github.com/beka-birhanu/maze-lab/api/statsapi"
	"github.com/beka-birhanu/maze-lab/config"
	"github.com/beka-birhanu/maze-lab/infrastruture/logger"
	"github.com/beka-birhanu/maze-lab/infrastruture/repo"
	"github.com/beka-birhanu/maze-lab/infrastruture/scoreboard"
	"github.com/beka-birhanu/maze-lab/service"
	"github.com/beka-birhanu/maze-lab/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient     *mongo.Client
	redisClient     *redis.Client
	runRepo         i.RunRepo
	runScoreboard   i.Scoreboard
	sessionManager  i.SessionManager
	mazeController  api_i.Controller
	statsController api_i.Controller
	router          *api.Router
	appLogger       i.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRunRepo(client *mongo.Client) {
	runRepo = repo.NewRunRepo(client, config.Envs.DBName, "runs")
	appLogger.Info("Run repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initScoreboard() {
	var err error
	runScoreboard, err = scoreboard.NewScoreboard(redisClient, nil)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating scoreboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Scoreboard initialized")
}

func initSessionManager() {
	sessionLogger, err := logger.New("SESSION-MANAGER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager logger: %v", err))
		os.Exit(1)
	}

	sessionManager, err = service.NewSessionManager(service.Config{
		TickInterval: time.Duration(config.Envs.TickMs) * time.Millisecond,
		MaxDimension: config.Envs.MaxMazeDimension,
		RunRepo:      runRepo,
		Scoreboard:   runScoreboard,
		Logger:       sessionLogger,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating session manager: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Session manager initialized")
}

func initMazeController() {
	mazeLogger, err := logger.New("MAZE-API", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller logger: %v", err))
		os.Exit(1)
	}

	mazeController, err = mazeapi.NewController(sessionManager, mazeLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initStatsController() {
	var err error
	statsController, err = statsapi.NewController(runRepo, runScoreboard)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating stats controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Stats controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController, statsController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRunRepo(mongoClient)
	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initScoreboard()
	initSessionManager()
	initMazeController()
	initStatsController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}

	// Allow time for cleanup operations (TODO: use WaitGroups instead)
	time.Sleep(2 * time.Second)
}
