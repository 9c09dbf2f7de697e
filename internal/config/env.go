package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr           string
	GinMode           string
	DBDSN             string
	CORSOrigins       []string
	JWTSecret         string
	AdminPasswordHash string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/userhub?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:           appAddr,
		GinMode:           strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:             dsn,
		CORSOrigins:       origins,
		JWTSecret:         strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
	}
}
