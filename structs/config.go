package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Cache     *CacheConfig
	Storage   *StorageConfig
	Auth      *AuthConfig
	Email     *EmailConfig
	RateLimit *RateLimitConfig
	Provision *ProvisionConfig
	Upload    *UploadConfig
}

type ServerConfig struct {
	AppName        string        // DXB Dubi
	Environment    string        // development, production
	Port           string        // :8082
	PublicOrigin   string        // origin used for redirect links in emails
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	CookieDomain   string // cross-subdomain cookie domain in production
}

type CorsConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	DefaultTTL      time.Duration
	ProductListTTL  time.Duration
	SettingsTTL     time.Duration
}

// StorageConfig configures the S3-compatible object store holding product
// images. PublicBaseURL is the externally reachable prefix used to resolve
// public URLs for uploaded objects.
type StorageConfig struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	UseSSL        bool
	Bucket        string // product-images
	PublicBaseURL string
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
	BlacklistCacheTTL  time.Duration
	CacheUserTTL       time.Duration
}

type EmailConfig struct {
	ApiKey string
	From   string
}

type RateLimitConfig struct {
	Enabled         bool
	GeneralLimit    int
	GeneralWindow   time.Duration
	AuthLimit       int
	AuthWindow      time.Duration
	AdminLimit      int
	AdminWindow     time.Duration
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
}

// ProvisionConfig holds the fixed admin account ensured by the provisioning
// endpoint.
type ProvisionConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminFullName string
}

type UploadConfig struct {
	MaxFiles  int    // hard cap per bulk-upload run
	BatchSize int    // concurrent upload+insert chains per batch
	KeyPrefix string // object key prefix, e.g. "products"
}
