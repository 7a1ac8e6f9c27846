package cfg

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/product-table/pkg/e"
	"github.com/DRSN-tech/product-table/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Источники каталога.
const (
	SourceFixture  = "fixture"
	SourcePostgres = "postgres"
	SourceMinio    = "minio"
)

// Экспортеры OpenTelemetry.
const (
	ExporterStdout = "stdout"
	ExporterNone   = "none"
)

type Config struct {
	Http    *HTTPConfig
	Grpc    *GRPCConfig
	Catalog *CatalogCfg
	Session *SessionCfg
	Db      *PGDBCfg  // nil, если CATALOG_SOURCE != postgres
	Minio   *MinIOCfg // nil, если CATALOG_SOURCE != minio
	Redis   *RedisCfg // nil, если REDIS_ADDR не задан
	Kafka   *KafkaCfg // nil, если KAFKA_BROKERS не задан
	Otel    *OtelCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type GRPCConfig struct {
	Port        string
	NetworkMode string
}

type CatalogCfg struct {
	Source      string
	Locale      language.Tag // язык сравнения строк и приведения регистра
	LoadRetries int
	RetryBase   time.Duration
	RetryMax    time.Duration
}

type OtelCfg struct {
	Exporter       string // stdout | none
	ServiceName    string
	MetricInterval time.Duration // период выгрузки метрик
}

type SessionCfg struct {
	TTL time.Duration // время жизни сессии без изменений
}

type PGDBCfg struct {
	Host          string
	Port          string
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsDir string
}

type MinIOCfg struct {
	MinioEndpoint     string
	BucketName        string
	MinioRootUser     string
	MinioRootPassword string
	MinioUseSSL       bool
	CatalogObjectKey  string // ключ JSON-снимка каталога в бакете
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	CatalogTTL  time.Duration
}

type KafkaCfg struct {
	Topic             string
	Brokers           []string
	NetworkMode       string
	Partitions        int
	ReplicationFactor int
}

// Load читает .env (если есть) и переменные окружения.
func Load(log logger.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		log.Debugf(".env not found, using process environment")
	}

	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalog, err := loadCatalogCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	session, err := loadSessionCfg()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	otel, err := loadOtelCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	config := &Config{
		Http:    http,
		Grpc:    loadGRPCConfig(),
		Catalog: catalog,
		Session: session,
		Otel:    otel,
	}

	switch catalog.Source {
	case SourcePostgres:
		if config.Db, err = loadPGDBCfg(log); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	case SourceMinio:
		if config.Minio, err = loadMinIOCfg(log); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if getEnv("REDIS_ADDR") != "" {
		if config.Redis, err = loadRedisCfg(log); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	if getEnv("KAFKA_BROKERS") != "" {
		if config.Kafka, err = loadKafkaCfg(); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return config, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8080"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadGRPCConfig() *GRPCConfig {
	const (
		defaultPort        = "8091"
		defaultNetworkMode = "tcp"
	)

	return &GRPCConfig{
		Port:        getEnvOrDefault("GRPC_PORT", defaultPort),
		NetworkMode: getEnvOrDefault("GRPC_NETWORK_MODE", defaultNetworkMode),
	}
}

func loadCatalogCfg(log logger.Logger) (*CatalogCfg, error) {
	const (
		defaultLocale    = "en"
		defaultRetries   = 3
		defaultRetryBase = 200 * time.Millisecond
		defaultRetryMax  = 5 * time.Second
	)

	source := strings.ToLower(getEnvOrDefault("CATALOG_SOURCE", SourceFixture))
	switch source {
	case SourceFixture, SourcePostgres, SourceMinio:
	default:
		err := fmt.Errorf("%w: CATALOG_SOURCE=%q", e.ErrUnknownCatalogSource, source)
		log.Errorf(err, "invalid CATALOG_SOURCE")
		return nil, err
	}

	locale, err := language.Parse(getEnvOrDefault("CATALOG_LOCALE", defaultLocale))
	if err != nil {
		log.Errorf(err, "invalid CATALOG_LOCALE")
		return nil, e.Wrap("CATALOG_LOCALE", e.ErrIncorrectEnvVariable)
	}

	retries, err := parseIntEnv("CATALOG_LOAD_RETRIES", defaultRetries)
	if err != nil {
		return nil, e.Wrap("CATALOG_LOAD_RETRIES", err)
	}

	base, err := parseDurationEnv("CATALOG_RETRY_BASE", defaultRetryBase)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_RETRY_BASE")
		return nil, err
	}

	max, err := parseDurationEnv("CATALOG_RETRY_MAX", defaultRetryMax)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_RETRY_MAX")
		return nil, err
	}

	return &CatalogCfg{
		Source:      source,
		Locale:      locale,
		LoadRetries: retries,
		RetryBase:   base,
		RetryMax:    max,
	}, nil
}

func loadOtelCfg(log logger.Logger) (*OtelCfg, error) {
	const (
		defaultServiceName    = "product-table"
		defaultMetricInterval = time.Minute
	)

	exporter := strings.ToLower(getEnvOrDefault("OTEL_EXPORTER", ExporterStdout))
	switch exporter {
	case ExporterStdout, ExporterNone:
	default:
		err := e.Wrap(fmt.Sprintf("OTEL_EXPORTER=%q", exporter), e.ErrIncorrectEnvVariable)
		log.Errorf(err, "invalid OTEL_EXPORTER")
		return nil, err
	}

	interval, err := parseDurationEnv("OTEL_METRIC_INTERVAL", defaultMetricInterval)
	if err != nil {
		log.Errorf(err, "invalid OTEL_METRIC_INTERVAL")
		return nil, err
	}

	return &OtelCfg{
		Exporter:       exporter,
		ServiceName:    getEnvOrDefault("OTEL_SERVICE_NAME", defaultServiceName),
		MetricInterval: interval,
	}, nil
}

func loadSessionCfg() (*SessionCfg, error) {
	const defaultTTL = 30 * time.Minute

	ttl, err := parseDurationEnv("SESSION_TTL", defaultTTL)
	if err != nil {
		return nil, e.Wrap("SESSION_TTL", err)
	}

	return &SessionCfg{TTL: ttl}, nil
}

func loadPGDBCfg(log logger.Logger) (*PGDBCfg, error) {
	const (
		defaultHost          = "localhost"
		defaultPort          = "5432"
		defaultSSLMode       = "disable"
		defaultMigrationsDir = "db/migrations"
	)

	user, err := requireEnv(log, "POSTGRES_USER")
	if err != nil {
		return nil, err
	}

	password, err := requireEnv(log, "POSTGRES_PASSWORD")
	if err != nil {
		return nil, err
	}

	dbName, err := requireEnv(log, "POSTGRES_DB")
	if err != nil {
		return nil, err
	}

	return &PGDBCfg{
		Host:          getEnvOrDefault("POSTGRES_HOST", defaultHost),
		Port:          getEnvOrDefault("POSTGRES_PORT", defaultPort),
		User:          user,
		Password:      password,
		DBName:        dbName,
		SSLMode:       getEnvOrDefault("SSL_MODE", defaultSSLMode),
		MigrationsDir: getEnvOrDefault("MIGRATIONS_DIR", defaultMigrationsDir),
	}, nil
}

func loadMinIOCfg(log logger.Logger) (*MinIOCfg, error) {
	const (
		defaultUseSSL    = false
		defaultEndpoint  = "minio:9000"
		defaultObjectKey = "catalog.json"
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Errorf(err, "invalid MINIO_USE_SSL")
		return nil, err
	}

	bucket, err := requireEnv(log, "BUCKET_NAME")
	if err != nil {
		return nil, err
	}

	return &MinIOCfg{
		MinioEndpoint:     getEnvOrDefault("MINIO_ENDPOINT", defaultEndpoint),
		BucketName:        bucket,
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		CatalogObjectKey:  getEnvOrDefault("CATALOG_OBJECT_KEY", defaultObjectKey),
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultCatalogTTL   = 10 * time.Minute
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetries, err := parseIntEnv("MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	catalogTTL, err := parseDurationEnv("CATALOG_TTL", defaultCatalogTTL)
	if err != nil {
		log.Errorf(err, "invalid CATALOG_TTL")
		return nil, err
	}

	return &RedisCfg{
		Addr:        getEnv("REDIS_ADDR"),
		Password:    getEnv("REDIS_PASSWORD"),
		User:        getEnv("REDIS_USER"),
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     max(readTimeout, writeTimeout),
		CatalogTTL:  catalogTTL,
	}, nil
}

func loadKafkaCfg() (*KafkaCfg, error) {
	const (
		defaultTopic             = "product-table.query-changed"
		defaultPartitions        = 3
		defaultReplicationFactor = 1
		defaultNetworkMode       = "tcp"
	)

	brokers := strings.Split(getEnv("KAFKA_BROKERS"), ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	partitions, err := parseIntEnv("KAFKA_PARTITIONS", defaultPartitions)
	if err != nil {
		return nil, e.Wrap("KAFKA_PARTITIONS", err)
	}

	replicationFactor, err := parseIntEnv("REPLICATION_FACTOR", defaultReplicationFactor)
	if err != nil {
		return nil, e.Wrap("REPLICATION_FACTOR", err)
	}

	return &KafkaCfg{
		Brokers:           brokers,
		Topic:             getEnvOrDefault("KAFKA_TOPIC", defaultTopic),
		Partitions:        partitions,
		ReplicationFactor: replicationFactor,
		NetworkMode:       getEnvOrDefault("KAFKA_NETWORK_MODE", defaultNetworkMode),
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func requireEnv(log logger.Logger, key string) (string, error) {
	v := getEnv(key)
	if v == "" {
		err := e.Wrap(key, e.ErrMissingEnvVariable)
		log.Errorf(err, "missing %s", key)
		return "", err
	}

	return v, nil
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return d, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
