package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	AppName string
	Port    int
	Debug   bool
	// CORSOrigins is a comma separated list handed to the CORS middleware.
	CORSOrigins string
	DB          DBConfig
	Session     SessionConfig
	Attendance  AttendanceConfig
}

type DBConfig struct {
	Driver       string
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

type SessionConfig struct {
	CookieName   string
	Expiration   time.Duration
	CookieSecure bool
}

// AttendanceConfig holds the fixed values written on every scan.
type AttendanceConfig struct {
	CourseID int64
	Status   string
}

func setDefaults(v *viper.Viper) {
	v.SetTypeByDefaultValue(true)
	v.SetDefault("app_name", "Asistencia QR")
	v.SetDefault("port", 8080)
	v.SetDefault("debug", false)
	v.SetDefault("cors_origins", "*")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.url", "postgres://postgres@localhost:5432/asistencia?sslmode=disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("session.cookie_name", "session_id")
	v.SetDefault("session.expiration", 24*time.Hour)
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("attendance.course_id", 1)
	v.SetDefault("attendance.status", "Presente")
}

// Load reads defaults, then config/.env.<ENV> and .env when present, then the
// process environment. Keys map to variables with dots replaced by
// underscores (database.url -> DATABASE_URL).
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	env := strings.ToLower(os.Getenv("ENV"))
	if env == "" {
		env = "dev"
	}
	for _, path := range []string{filepath.Join("config", ".env."+env), ".env"} {
		if err := loadDotEnv(path); err != nil {
			return nil, err
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		AppName:     v.GetString("app_name"),
		Port:        v.GetInt("port"),
		Debug:       v.GetBool("debug"),
		CORSOrigins: v.GetString("cors_origins"),
		DB: DBConfig{
			Driver:       strings.ToLower(v.GetString("database.driver")),
			URL:          v.GetString("database.url"),
			MaxOpenConns: v.GetInt("database.max_open_conns"),
			MaxIdleConns: v.GetInt("database.max_idle_conns"),
		},
		Session: SessionConfig{
			CookieName:   v.GetString("session.cookie_name"),
			Expiration:   v.GetDuration("session.expiration"),
			CookieSecure: v.GetBool("session.cookie_secure"),
		},
		Attendance: AttendanceConfig{
			CourseID: v.GetInt64("attendance.course_id"),
			Status:   v.GetString("attendance.status"),
		},
	}

	switch cfg.DB.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return nil, errors.Errorf("config: unknown database driver %q", cfg.DB.Driver)
	}
	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "config: stat %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "config: load %s", path)
	}
	log.Printf("Loaded environment from %s", path)
	return nil
}

// OpenDB connects to PostgreSQL and checks the connection.
func OpenDB(cfg DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database connection")
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	log.Println("Testing database connection...")
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "cannot establish database connection")
	}
	log.Println("Database connected successfully")
	return db, nil
}
