package config

// EnvPrefix namespaces every environment variable the service reads.
const EnvPrefix = "MEDIHOUSE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "MEDIHOUSE_APP_ENV"
	EnvPort     = "MEDIHOUSE_APP_PORT"
	EnvDBDSN    = "MEDIHOUSE_DB_DSN"
	EnvDBHost   = "MEDIHOUSE_DB_HOST"
	EnvDBUser   = "MEDIHOUSE_DB_USER"
	EnvDBName   = "MEDIHOUSE_DB_NAME"
	EnvRedisURL = "MEDIHOUSE_REDIS_URL"

	EnvJWTSecret  = "MEDIHOUSE_JWT_SECRET"
	EnvJWTIssuer  = "MEDIHOUSE_JWT_ISSUER"
	EnvJWTExpMins = "MEDIHOUSE_JWT_EXPIRATION_MINUTES"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
