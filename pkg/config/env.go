package config

// EnvPrefix namespaces all environment variables consumed by the service.
const EnvPrefix = "BYOM"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv    = "BYOM_APP_ENV"
	EnvPort      = "BYOM_APP_PORT"
	EnvDBDSN     = "BYOM_DB_DSN"
	EnvDBHost    = "BYOM_DB_HOST"
	EnvDBUser    = "BYOM_DB_USER"
	EnvDBName    = "BYOM_DB_NAME"
	EnvRedisURL  = "BYOM_REDIS_URL"
	EnvJWTSecret = "BYOM_JWT_SECRET"
	EnvJWTIssuer = "BYOM_JWT_ISSUER"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
