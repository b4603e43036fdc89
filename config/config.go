package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// AppConfig is the root configuration document. Values come from
// config/app.json and can be overridden through environment variables
// handled by the loader.
type AppConfig struct {
	Name        string      `json:"name" koanf:"name"`
	Environment string      `json:"environment" koanf:"environment"`
	Server      Server      `json:"server" koanf:"server"`
	Auth        Auth        `json:"auth" koanf:"auth"`
	Persistence Persistence `json:"persistence" koanf:"persistence"`
	Seed        Seed        `json:"seed" koanf:"seed"`
}

type Server struct {
	Addr        string   `json:"addr" koanf:"addr"`
	CORSOrigins []string `json:"cors_origins" koanf:"cors_origins"`
}

type Auth struct {
	SigningKey         string   `json:"signing_key" koanf:"signing_key"`
	ContextKey         string   `json:"context_key" koanf:"context_key"`
	TokenTTLExpression string   `json:"token_ttl" koanf:"token_ttl"`
	AuthScheme         string   `json:"auth_scheme" koanf:"auth_scheme"`
	Issuer             string   `json:"issuer" koanf:"issuer"`
	Audience           []string `json:"audience" koanf:"audience"`
	PasswordBcryptCost int      `json:"bcrypt_cost" koanf:"bcrypt_cost"`
}

type Persistence struct {
	DSN string `json:"dsn" koanf:"dsn"`
}

type Seed struct {
	AdminUsername string `json:"admin_username" koanf:"admin_username"`
	AdminEmail    string `json:"admin_email" koanf:"admin_email"`
	AdminPassword string `json:"admin_password" koanf:"admin_password"`
}

func (a *AppConfig) Validate() error {
	if err := validation.ValidateStruct(a,
		validation.Field(&a.Server, validation.Required),
		validation.Field(&a.Auth, validation.Required),
		validation.Field(&a.Persistence, validation.Required),
	); err != nil {
		return err
	}
	if err := a.Auth.Validate(); err != nil {
		return err
	}
	return a.Persistence.Validate()
}

func (a *AppConfig) GetServer() *Server           { return &a.Server }
func (a *AppConfig) GetAuth() *Auth               { return &a.Auth }
func (a *AppConfig) GetPersistence() *Persistence { return &a.Persistence }
func (a *AppConfig) GetSeed() *Seed               { return &a.Seed }

func (s *Server) GetAddr() string {
	if s.Addr == "" {
		return ":8080"
	}
	return s.Addr
}

func (s *Server) GetCORSOrigins() []string {
	if len(s.CORSOrigins) == 0 {
		return []string{"*"}
	}
	return s.CORSOrigins
}

func (a *Auth) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.SigningKey, validation.Required, validation.Length(16, 0)),
		validation.Field(&a.TokenTTLExpression, validation.Required),
	)
}

func (a *Auth) GetSigningKey() string { return a.SigningKey }

func (a *Auth) GetContextKey() string {
	if a.ContextKey == "" {
		return "user"
	}
	return a.ContextKey
}

// GetTokenTTL parses the configured duration expression, e.g. "720h".
func (a *Auth) GetTokenTTL() time.Duration {
	dur, err := time.ParseDuration(a.TokenTTLExpression)
	if err != nil {
		panic(
			fmt.Sprintf("unable to parse time: expr %s", a.TokenTTLExpression),
		)
	}
	return dur
}

func (a *Auth) GetAuthScheme() string {
	if a.AuthScheme == "" {
		return "Bearer"
	}
	return a.AuthScheme
}

func (a *Auth) GetIssuer() string { return a.Issuer }

func (a *Auth) GetAudience() []string { return a.Audience }

func (a *Auth) GetBcryptCost() int { return a.PasswordBcryptCost }

func (p *Persistence) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.DSN, validation.Required),
	)
}

func (p *Persistence) GetDSN() string { return p.DSN }

func (s *Seed) GetAdminUsername() string {
	if s.AdminUsername == "" {
		return "admin"
	}
	return s.AdminUsername
}

func (s *Seed) GetAdminEmail() string { return s.AdminEmail }

func (s *Seed) GetAdminPassword() string { return s.AdminPassword }
