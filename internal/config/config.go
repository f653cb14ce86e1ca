package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nsflhq/nsfl-api/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	HTTPAddr                      string
	DBURL                         string
	DBDisablePreparedBinary       bool
	CacheEnabled                  bool
	CacheTTL                      time.Duration
	CORSAllowedOrigins            []string
	MediaBaseURL                  string
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
	PprofEnabled                  bool
	PprofAddr                     string
	GatekeeperBaseURL             string
	GatekeeperIntrospectPath      string
	GatekeeperAdminKey            string
	GatekeeperTimeout             time.Duration
	GatekeeperVerdictTTL          time.Duration
	GatekeeperCircuitEnabled      bool
	GatekeeperCircuitFailureCount int
	GatekeeperCircuitOpenTimeout  time.Duration
	GatekeeperCircuitHalfOpenReq  int
	YouTubeEnabled                bool
	YouTubeBaseURL                string
	YouTubeAPIKey                 string
	YouTubeTimeout                time.Duration
	YouTubeCircuitEnabled         bool
	YouTubeCircuitFailureCount    int
	YouTubeCircuitOpenTimeout     time.Duration
	YouTubeCircuitHalfOpenReq     int
	HighlightRefreshWorkers       int
	UptraceEnabled                bool
	UptraceDSN                    string
	UptraceLogsEnabled            bool
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
	LogLevel                      logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	youtubeEnabled, err := strconv.ParseBool(getEnv("YOUTUBE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YOUTUBE_ENABLED: %w", err)
	}
	youtubeTimeout, err := time.ParseDuration(getEnv("YOUTUBE_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YOUTUBE_TIMEOUT: %w", err)
	}
	if youtubeTimeout <= 0 {
		return Config{}, fmt.Errorf("YOUTUBE_TIMEOUT must be > 0")
	}
	youtubeCircuitEnabled, err := strconv.ParseBool(getEnv("YOUTUBE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YOUTUBE_CIRCUIT_ENABLED: %w", err)
	}
	youtubeCircuitFailureCount, err := getEnvAsInt("YOUTUBE_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse YOUTUBE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if youtubeCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("YOUTUBE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	youtubeCircuitOpenTimeout, err := time.ParseDuration(getEnv("YOUTUBE_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse YOUTUBE_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if youtubeCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("YOUTUBE_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	youtubeCircuitHalfOpenReq, err := getEnvAsInt("YOUTUBE_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse YOUTUBE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if youtubeCircuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("YOUTUBE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	youtubeAPIKey := strings.TrimSpace(getEnv("YOUTUBE_API_KEY", ""))
	if youtubeEnabled && youtubeAPIKey == "" {
		return Config{}, fmt.Errorf("YOUTUBE_API_KEY is required when YOUTUBE_ENABLED=true")
	}

	highlightRefreshWorkers, err := getEnvAsInt("HIGHLIGHT_REFRESH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse HIGHLIGHT_REFRESH_WORKERS: %w", err)
	}
	if highlightRefreshWorkers < 1 {
		return Config{}, fmt.Errorf("HIGHLIGHT_REFRESH_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "nsfl-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", "")),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MediaBaseURL:               strings.TrimSpace(getEnv("MEDIA_BASE_URL", "")),
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		GatekeeperBaseURL:          getEnv("GATEKEEPER_BASE_URL", "http://localhost:8081"),
		GatekeeperIntrospectPath:   getEnv("GATEKEEPER_INTROSPECT_PATH", "/v1/auth/introspect"),
		GatekeeperAdminKey:         getEnv("GATEKEEPER_ADMIN_KEY", ""),
		YouTubeEnabled:             youtubeEnabled,
		YouTubeBaseURL:             strings.TrimSpace(getEnv("YOUTUBE_BASE_URL", "https://www.googleapis.com/youtube/v3")),
		YouTubeAPIKey:              youtubeAPIKey,
		YouTubeTimeout:             youtubeTimeout,
		YouTubeCircuitEnabled:      youtubeCircuitEnabled,
		YouTubeCircuitFailureCount: youtubeCircuitFailureCount,
		YouTubeCircuitOpenTimeout:  youtubeCircuitOpenTimeout,
		YouTubeCircuitHalfOpenReq:  youtubeCircuitHalfOpenReq,
		HighlightRefreshWorkers:    highlightRefreshWorkers,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceLogsEnabled:         uptraceLogsEnabled,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	gatekeeperTimeout, err := time.ParseDuration(getEnv("GATEKEEPER_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_TIMEOUT: %w", err)
	}

	gatekeeperVerdictTTL, err := time.ParseDuration(getEnv("GATEKEEPER_VERDICT_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_VERDICT_TTL: %w", err)
	}
	if gatekeeperVerdictTTL <= 0 {
		return Config{}, fmt.Errorf("GATEKEEPER_VERDICT_TTL must be > 0")
	}

	gatekeeperCircuitEnabled, err := strconv.ParseBool(getEnv("GATEKEEPER_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_CIRCUIT_ENABLED: %w", err)
	}

	gatekeeperCircuitFailureCount, err := getEnvAsInt("GATEKEEPER_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if gatekeeperCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("GATEKEEPER_CIRCUIT_FAILURE_COUNT must be >= 1")
	}

	gatekeeperCircuitOpenTimeout, err := time.ParseDuration(getEnv("GATEKEEPER_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if gatekeeperCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("GATEKEEPER_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	gatekeeperCircuitHalfOpenReq, err := getEnvAsInt("GATEKEEPER_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse GATEKEEPER_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if gatekeeperCircuitHalfOpenReq < 1 {
		return Config{}, fmt.Errorf("GATEKEEPER_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.GatekeeperTimeout = gatekeeperTimeout
	cfg.GatekeeperVerdictTTL = gatekeeperVerdictTTL
	cfg.GatekeeperCircuitEnabled = gatekeeperCircuitEnabled
	cfg.GatekeeperCircuitFailureCount = gatekeeperCircuitFailureCount
	cfg.GatekeeperCircuitOpenTimeout = gatekeeperCircuitOpenTimeout
	cfg.GatekeeperCircuitHalfOpenReq = gatekeeperCircuitHalfOpenReq
	cfg.LogLevel = logLevel

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
