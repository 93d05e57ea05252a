package config

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host       string `yaml:"host" json:"host"`
	Port       int    `yaml:"port" json:"port"`
	Secret     string `yaml:"secret" json:"secret"`
	AdminToken string `yaml:"admin_token" json:"admin_token"` // required to sign up admin accounts
}

type DBConfig struct {
	Type     string `yaml:"type" json:"type"`
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Name     string `yaml:"name" json:"name"`
	User     string `yaml:"user" json:"user"`
	Passwd   string `yaml:"passwd" json:"passwd"`
	MaxConn  int    `yaml:"max_conn" json:"max_conn"`
	IdleConn int    `yaml:"idle_conn" json:"idle_conn"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

// SearchConfig describes the external shopping-search collaborator.
type SearchConfig struct {
	ApiUrl       string `yaml:"api_url" json:"api_url"`
	ClientId     string `yaml:"client_id" json:"client_id"`
	ClientSecret string `yaml:"client_secret" json:"client_secret"`
	Display      int    `yaml:"display" json:"display"`
	Timeout      int    `yaml:"timeout" json:"timeout"` // seconds
}

type SmtpConfig struct {
	Host     string `yaml:"host" json:"host"`
	Port     int    `yaml:"port" json:"port"`
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
	From     string `yaml:"from" json:"from"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"` // development or production
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type AppConfig struct {
	System   SysConfig    `yaml:"system" json:"system"`
	Web      WebConfig    `yaml:"web" json:"web"`
	Database DBConfig     `yaml:"database" json:"database"`
	Search   SearchConfig `yaml:"search" json:"search"`
	Smtp     SmtpConfig   `yaml:"smtp" json:"smtp"`
	Logger   LogConfig    `yaml:"logger" json:"logger"`
}

var DefaultAppConfig = AppConfig{
	System: SysConfig{
		Appid:    "selectshop",
		Location: "Asia/Seoul",
		Workdir:  "/var/selectshop",
		Debug:    true,
	},
	Web: WebConfig{
		Host:       "0.0.0.0",
		Port:       1898,
		Secret:     "9b6de5cc-selectshop-0cc9-11ec-9d64",
		AdminToken: "c9d64-selectshop-admin-0cc9-11ec",
	},
	Database: DBConfig{
		Type:     "postgres",
		Host:     "127.0.0.1",
		Port:     5432,
		Name:     "selectshop",
		User:     "postgres",
		Passwd:   "",
		MaxConn:  100,
		IdleConn: 10,
	},
	Search: SearchConfig{
		ApiUrl:  "https://openapi.naver.com/v1/search/shop.json",
		Display: 15,
		Timeout: 10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/selectshop/selectshop.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v := os.Getenv(name); v != "" {
		f(v)
	}
}

func setEnvInt64Value(name string, f func(v int64)) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if p, err := strconv.ParseInt(v, 10, 64); err == nil {
		f(p)
	}
}

func setEnvBoolValue(name string, f func(v bool)) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	if p, err := strconv.ParseBool(v); err == nil {
		f(p)
	}
}

// LoadConfig reads the yaml config file if it exists, applies
// SELECTSHOP_* environment overrides and returns the merged config.
func LoadConfig(cfile string) *AppConfig {
	cfg := DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(filepath.Clean(cfile)); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				panic(err)
			}
		}
	}

	setEnvValue("SELECTSHOP_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("SELECTSHOP_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvBoolValue("SELECTSHOP_SYSTEM_DEBUG", func(v bool) { cfg.System.Debug = v })

	setEnvValue("SELECTSHOP_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvInt64Value("SELECTSHOP_WEB_PORT", func(v int64) { cfg.Web.Port = int(v) })
	setEnvValue("SELECTSHOP_WEB_SECRET", func(v string) { cfg.Web.Secret = v })
	setEnvValue("SELECTSHOP_WEB_ADMIN_TOKEN", func(v string) { cfg.Web.AdminToken = v })

	setEnvValue("SELECTSHOP_DB_TYPE", func(v string) { cfg.Database.Type = v })
	setEnvValue("SELECTSHOP_DB_HOST", func(v string) { cfg.Database.Host = v })
	setEnvInt64Value("SELECTSHOP_DB_PORT", func(v int64) { cfg.Database.Port = int(v) })
	setEnvValue("SELECTSHOP_DB_NAME", func(v string) { cfg.Database.Name = v })
	setEnvValue("SELECTSHOP_DB_USER", func(v string) { cfg.Database.User = v })
	setEnvValue("SELECTSHOP_DB_PWD", func(v string) { cfg.Database.Passwd = v })

	setEnvValue("SELECTSHOP_SEARCH_API_URL", func(v string) { cfg.Search.ApiUrl = v })
	setEnvValue("SELECTSHOP_SEARCH_CLIENT_ID", func(v string) { cfg.Search.ClientId = v })
	setEnvValue("SELECTSHOP_SEARCH_CLIENT_SECRET", func(v string) { cfg.Search.ClientSecret = v })

	setEnvValue("SELECTSHOP_SMTP_HOST", func(v string) { cfg.Smtp.Host = v })
	setEnvInt64Value("SELECTSHOP_SMTP_PORT", func(v int64) { cfg.Smtp.Port = int(v) })
	setEnvValue("SELECTSHOP_SMTP_USERNAME", func(v string) { cfg.Smtp.Username = v })
	setEnvValue("SELECTSHOP_SMTP_PASSWORD", func(v string) { cfg.Smtp.Password = v })
	setEnvValue("SELECTSHOP_SMTP_FROM", func(v string) { cfg.Smtp.From = v })

	setEnvValue("SELECTSHOP_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	return &cfg
}
