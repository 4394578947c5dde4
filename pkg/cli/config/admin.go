package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Admin holds the authentication settings of the admin endpoints
type Admin struct {
	JWTSecret string
}

// Flags returns CLI flags for Admin configuration
func (a *Admin) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "admin-jwt-secret",
			Usage:       "HS256 secret for admin bearer tokens (admin endpoints are open when empty)",
			Category:    "Admin",
			Sources:     cli.EnvVars("ORGSHIFT_ADMIN_JWT_SECRET"),
			Destination: &a.JWTSecret,
		},
	}
}

// Secret returns the signing secret, nil when unset
func (a *Admin) Secret() []byte {
	if a.JWTSecret == "" {
		return nil
	}
	return []byte(a.JWTSecret)
}

// LogValue returns structured log value
func (a Admin) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_jwt_secret", a.JWTSecret != ""),
	)
}
