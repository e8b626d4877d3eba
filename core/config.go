package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// Config holds all runtime settings. It is built once in main and passed
	// down explicitly; nothing reads the environment after NewConfig returns.
	Config struct {
		AppName string
		Env     string // DEV (default), TEST, QA, PROD
		Debug   bool
		Build   string

		SecretKey                 []byte
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration

		RollbarToken string

		Server ServerConfig
		Sheets SheetsConfig
	}

	ServerConfig struct {
		Host            string
		Addr            string
		ShutdownTimeout time.Duration
	}

	// SheetsConfig enumerates the external spreadsheet endpoints: one
	// published-CSV export URL per cached table, and the web-app URL used for
	// live reads and all mutations.
	SheetsConfig struct {
		WebAppURL    string
		CSVURLs      map[string]string // table name -> published CSV export
		FetchTimeout time.Duration
	}
)

// NewConfig loads settings from an optional config/.env.<env> file and the
// environment, with sane defaults for local development.
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "TK IT Harvysyah")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "w3lc0me-t0-tk!t-harvysyah-p0rtal-s3cret")
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("sheetsWebAppURL", "")
	conf.SetDefault("sheetsFetchTimeout", 15*time.Second)
	conf.SetDefault("teacherCSVURL", "")
	conf.SetDefault("studentCSVURL", "")
	conf.SetDefault("hafalanCSVURL", "")
	conf.SetDefault("principalCSVURL", "")
	conf.SetDefault("sppCSVURL", "")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:                   conf.GetString("appName"),
		Env:                       env,
		Debug:                     conf.GetBool("debug"),
		Build:                     conf.GetString("build"),
		SecretKey:                 []byte(conf.GetString("secretKey")),
		JWTExpirationDelta:        conf.GetDuration("jwtExpirationDelta"),
		JWTRefreshExpirationDelta: conf.GetDuration("jwtRefreshExpirationDelta"),
		RollbarToken:              conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Addr:            conf.GetString("serverAddr"),
			ShutdownTimeout: conf.GetDuration("shutdownTimeout"),
		},
		Sheets: SheetsConfig{
			WebAppURL: conf.GetString("sheetsWebAppURL"),
			CSVURLs: map[string]string{
				"Teacher":   conf.GetString("teacherCSVURL"),
				"Student":   conf.GetString("studentCSVURL"),
				"Hafalan":   conf.GetString("hafalanCSVURL"),
				"Principal": conf.GetString("principalCSVURL"),
				"SPP":       conf.GetString("sppCSVURL"),
			},
			FetchTimeout: conf.GetDuration("sheetsFetchTimeout"),
		},
	}
}
