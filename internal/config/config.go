package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JwtSecret          string
	DbHost             string
	DbPort             string
	DbUser             string
	DbPassword         string
	DbName             string
	ServerPort         string
	Issuer             string
	AuditRetentionDays int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	IsProduction bool
)

// ReservedAdminUsername is the bootstrap administrator that can never be
// deleted or downgraded.
const ReservedAdminUsername = "admin"

// Roles a user can hold. Exactly one per user.
const (
	RoleAssessor = "assessor"
	RoleReviewer = "reviewer"
	RoleAdmin    = "admin"
)

// GateFormKey is the service-approval form. Every other form of a project is
// hidden until this one is approved.
const GateFormKey = "serviceApproval"

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "vendorgate")
	ServerPort = getEnv("SERVER_PORT", "8080")
	Issuer = getEnv("ISSUER", "vendorgate")
	AuditRetentionDays, _ = strconv.Atoi(getEnv("AUDIT_RETENTION_DAYS", "90"))

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "vendorgate-attachments")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	IsProduction = getEnv("APP_ENV", "development") == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
