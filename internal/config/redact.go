package config

import (
	"net/url"
	"regexp"
)

const redactedValue = "xxxxx"

var dsnPassword = regexp.MustCompile(`(?i)(password=)\S+`)

// Redacted returns a copy of cfg that is safe to log: signing keys and API
// keys are masked, passwords inside connection strings are replaced.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	out := cfg
	out.App.TokenSignKey = mask(cfg.App.TokenSignKey)
	out.LLM.APIKey = mask(cfg.LLM.APIKey)
	out.Storage.DB.DSN = redactDSN(cfg.Storage.DB.DSN)
	out.Storage.History.URI = redactDSN(cfg.Storage.History.URI)
	out.Server.AllowedOrigins = append([]string(nil), cfg.Server.AllowedOrigins...)
	return out
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	return redactedValue
}

// redactDSN hides the password of a URL-style DSN ("postgres://u:p@h/db")
// or of a keyword DSN ("host=h password=p").
func redactDSN(dsn string) string {
	if dsn == "" {
		return ""
	}
	if u, err := url.Parse(dsn); err == nil && u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), redactedValue)
		}
		return u.String()
	}
	return dsnPassword.ReplaceAllString(dsn, "${1}"+redactedValue)
}
