package cmd

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/vinom-mazegen/api"
	api_i "github.com/beka-birhanu/vinom-mazegen/api/i"
	"github.com/beka-birhanu/vinom-mazegen/api/mazeapi"
	"github.com/beka-birhanu/vinom-mazegen/config"
	"github.com/beka-birhanu/vinom-mazegen/infrastruture/cache"
	"github.com/beka-birhanu/vinom-mazegen/logger"
	"github.com/beka-birhanu/vinom-mazegen/service"
	"github.com/beka-birhanu/vinom-mazegen/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve mazes over HTTP",
		Long: `Serve mazes over HTTP.

Routes:
  GET /api/v1/maze?rows=21&columns=21[&pass=.][&wall=X][&seed=7]
  GET /api/v1/maze/text?rows=21&columns=21

Seeded mazes are cached in Redis when REDIS_ADDR is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runServe()
		},
	}
}

func runServe() error {
	appLogger, err := logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		return err
	}

	var mazeCache i.MazeCache
	if config.Envs.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     config.Envs.RedisAddr,
			Password: config.Envs.RedisPassword,
		})
		defer client.Close()

		mazeCache, err = cache.NewRedisMazeCache(client, config.Envs.CacheTTLSeconds)
		if err != nil {
			return fmt.Errorf("creating maze cache: %w", err)
		}
		appLogger.Info(fmt.Sprintf("Maze cache initialized at %s", config.Envs.RedisAddr))
	} else {
		appLogger.Warning("REDIS_ADDR not set, maze cache disabled")
	}

	serviceLogger, err := logger.New("MAZE-SERVICE", config.ColorCyan, os.Stdout)
	if err != nil {
		return err
	}
	mazeService, err := service.NewMazeService(mazeCache, serviceLogger, &service.Options{
		PassChar: config.Envs.PassChar,
		WallChar: config.Envs.WallChar,
		MaxBytes: config.Envs.MaxBytes,
	})
	if err != nil {
		return fmt.Errorf("creating maze service: %w", err)
	}
	appLogger.Info("Maze service initialized")

	mazeController, err := mazeapi.NewMazeController(mazeService)
	if err != nil {
		return fmt.Errorf("creating maze controller: %w", err)
	}

	httpLogger, err := logger.New("HTTP", config.ColorBlue, os.Stdout)
	if err != nil {
		return err
	}

	switch config.Envs.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(config.Envs.GinMode)
	default:
		return fmt.Errorf("unknown GIN_MODE %q", config.Envs.GinMode)
	}
	router := api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{mazeController},
		Middlewares: []gin.HandlerFunc{api.RequestLogger(httpLogger)},
	})
	appLogger.Info(fmt.Sprintf("Listening on %s:%v", config.Envs.HostIP, config.Envs.RESTPort))

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		return err
	}
	return nil
}
