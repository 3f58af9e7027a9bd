package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	Port            string
	GeminiAPIKey    string
	GeminiModel     string
	ResultsDir      string
	JobStore        string
	MongoURI        string
	ArtifactStore   string
	AWSRegion       string
	AWSBucketName   string
	CORSAllowOrigin string
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "8080"
	}

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	GeminiModel = os.Getenv("GEMINI_MODEL")
	if GeminiModel == "" {
		GeminiModel = "gemini-2.5-flash-image-preview"
	}

	ResultsDir = os.Getenv("RESULTS_DIR")
	if ResultsDir == "" {
		ResultsDir = "static/results"
	}

	JobStore = os.Getenv("JOB_STORE")
	if JobStore == "" {
		JobStore = "memory"
	}

	MongoURI = os.Getenv("MONGO_URI")
	if MongoURI == "" {
		MongoURI = "mongodb://localhost:27017/"
	}

	ArtifactStore = os.Getenv("ARTIFACT_STORE")
	if ArtifactStore == "" {
		ArtifactStore = "disk"
	}

	AWSRegion = os.Getenv("AWS_REGION")
	if AWSRegion == "" {
		AWSRegion = "ap-south-1"
	}
	AWSBucketName = os.Getenv("AWS_BUCKET_NAME")

	CORSAllowOrigin = os.Getenv("CORS_ALLOW_ORIGIN")
	if CORSAllowOrigin == "" {
		CORSAllowOrigin = "*"
	}
}
