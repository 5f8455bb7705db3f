package config

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultDataDir - каталог файла ссылок по умолчанию.
	DefaultDataDir = "data"
	// DataFileName - имя файла ссылок в каталоге данных.
	DataFileName = "tinylink.json"
)

// Config - настройки сервера и консольной утилиты.
type Config struct {
	Address      string
	URL          string
	LogLevel     string
	MemoryFile   string
	DatabaseDSN  string
	GRPCAddress  string
	EnableHTTPS  bool
	StaticDir    string
	CertDir      string
	CodeLength   int
	CodeAttempts int
}

// New читает аргументы процесса и переменные окружения.
func New() *Config {
	return NewFromArgs(os.Args[0], os.Args[1:])
}

// NewFromArgs собирает конфигурацию из флагов, затем переменные окружения
// переопределяют их. Сначала загружается .env из рабочего каталога.
func NewFromArgs(name string, args []string) *Config {
	_ = godotenv.Load()

	var config Config
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&config.Address, "a", "localhost:3000", "server address")
	fs.StringVar(&config.URL, "b", "http://localhost:3000", "base url of short links")
	fs.StringVar(&config.LogLevel, "l", "info", "log level")
	fs.StringVar(&config.MemoryFile, "f", filepath.Join(DefaultDataDir, DataFileName), "link storage file")
	fs.StringVar(&config.DatabaseDSN, "d", "", "postgres dsn")
	fs.StringVar(&config.GRPCAddress, "g", "", "grpc address, disabled when empty")
	fs.BoolVar(&config.EnableHTTPS, "s", false, "serve https with a self-signed certificate")
	fs.StringVar(&config.StaticDir, "t", "public", "static files directory")
	fs.StringVar(&config.CertDir, "c", ".", "directory of the generated certificate")
	fs.IntVar(&config.CodeLength, "code-length", 7, "length of generated codes")
	fs.IntVar(&config.CodeAttempts, "code-attempts", 20, "attempts to generate a free code")

	// о неизвестных флагах сообщает сам FlagSet
	_ = fs.Parse(args)

	if port := os.Getenv("PORT"); port != "" {
		config.Address = ":" + port
	}
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		config.Address = serverAddress
	}
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		config.URL = baseURL
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		config.MemoryFile = fileFromDatabaseURL(databaseURL)
	}
	if fileStoragePath := os.Getenv("FILE_STORAGE_PATH"); fileStoragePath != "" {
		config.MemoryFile = fileStoragePath
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.DatabaseDSN = dsn
	}
	if grpcAddress := os.Getenv("GRPC_ADDRESS"); grpcAddress != "" {
		config.GRPCAddress = grpcAddress
	}
	if enableHTTPS, err := strconv.ParseBool(os.Getenv("ENABLE_HTTPS")); err == nil {
		config.EnableHTTPS = enableHTTPS
	}
	if staticDir := os.Getenv("STATIC_DIR"); staticDir != "" {
		config.StaticDir = staticDir
	}
	if certDir := os.Getenv("CERT_DIR"); certDir != "" {
		config.CertDir = certDir
	}
	if n, err := strconv.Atoi(os.Getenv("CODE_LENGTH")); err == nil {
		config.CodeLength = n
	}
	if n, err := strconv.Atoi(os.Getenv("CODE_ATTEMPTS")); err == nil {
		config.CodeAttempts = n
	}

	return &config
}

// fileFromDatabaseURL превращает DATABASE_URL вида "sqlite:./store.db" в каталог
// "./store" и возвращает путь к файлу ссылок в нём.
func fileFromDatabaseURL(databaseURL string) string {
	dir := strings.TrimPrefix(databaseURL, "sqlite:")
	dir = strings.TrimSuffix(dir, ".db")
	if dir == "" || dir == "." {
		dir = DefaultDataDir
	}
	return filepath.Join(dir, DataFileName)
}
