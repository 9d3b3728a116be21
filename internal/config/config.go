package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisPass string
	RedisDB   int

	JWTSecret string
	JWTTTL    time.Duration

	IdempTTLSecs int

	// AllowAdminRequests lets admins file requests in addition to deciding
	// them; off by default so only technicians create requests.
	AllowAdminRequests bool

	// CheckTimezone is the IANA zone used to decide "today" and the 08:00
	// window for daily checks.
	CheckTimezone string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getbool(k string, d bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return d
}

func Load() *Config {
	// .env is optional; absence is only worth a note
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file, using environment")
	}

	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "sils"),
		MySQLUser: getenv("MYSQL_USER", "sils"),
		MySQLPass: getenv("MYSQL_PASS", "sils"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisPass: os.Getenv("REDIS_PASS"),

		JWTSecret: getenv("JWT_SECRET", ""),
		JWTTTL:    24 * time.Hour,

		IdempTTLSecs: 300,

		AllowAdminRequests: getbool("ALLOW_ADMIN_REQUESTS", false),
		CheckTimezone:      getenv("CHECK_TIMEZONE", "Local"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.JWTTTL = time.Duration(n) * time.Hour
		}
	}
	if v := os.Getenv("IDEMPOTENCY_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.IdempTTLSecs = n
		}
	}
	if c.JWTSecret == "" {
		log.Println("config: JWT_SECRET not set, using an insecure development default")
		c.JWTSecret = "sils-dev-secret"
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	return nil
}

// CheckLocation resolves CheckTimezone, falling back to the host zone.
func (c *Config) CheckLocation() *time.Location {
	loc, err := time.LoadLocation(c.CheckTimezone)
	if err != nil {
		log.Printf("config: invalid CHECK_TIMEZONE %q, using local", c.CheckTimezone)
		return time.Local
	}
	return loc
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// multiStatements=true is handy for migrations; parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
