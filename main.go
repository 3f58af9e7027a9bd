package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/raushankrgupta/virtual-tryon-api/api"
	"github.com/raushankrgupta/virtual-tryon-api/artifacts"
	"github.com/raushankrgupta/virtual-tryon-api/config"
	"github.com/raushankrgupta/virtual-tryon-api/gemini"
	"github.com/raushankrgupta/virtual-tryon-api/store"
	"github.com/raushankrgupta/virtual-tryon-api/tryon"
)

func main() {
	config.LoadConfig()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// A missing credential must abort startup, not fail per request.
	if config.GeminiAPIKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY is required")
	}

	ctx := context.Background()

	generator, err := gemini.NewClient(ctx, config.GeminiAPIKey, config.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}
	defer generator.Close()

	var jobs store.JobStore
	switch config.JobStore {
	case "mongo":
		mongoStore, err := store.NewMongoStore(ctx, config.MongoURI, "fitly")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
		}
		jobs = mongoStore
		log.Info().Msg("Using MongoDB job store")
	default:
		jobs = store.NewMemoryStore()
	}

	var arts artifacts.ArtifactStore
	resultsDir := ""
	switch config.ArtifactStore {
	case "s3":
		s3Store, err := artifacts.NewS3Store(ctx, config.AWSRegion, config.AWSBucketName)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create S3 client")
		}
		arts = s3Store
		log.Info().Str("bucket", config.AWSBucketName).Msg("Using S3 artifact store")
	default:
		arts = artifacts.NewDiskStore(config.ResultsDir)
		resultsDir = config.ResultsDir
	}

	manager := tryon.NewManager(jobs, arts, generator)
	router := api.NewRouter(api.NewHandler(manager), config.CORSAllowOrigin, resultsDir)

	log.Info().Str("port", config.Port).Msg("Server starting")
	if err := http.ListenAndServe(":"+config.Port, router); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
