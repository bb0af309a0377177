package database

import (
	"fmt"
	"net/url"

	"bankapp/internal/config"
)

// PostgresDSN returns the key/value connection string used by the GORM driver.
func PostgresDSN(c config.DatabaseConfig) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// PostgresURL returns the URL form expected by golang-migrate.
func PostgresURL(c config.DatabaseConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// SQLiteDSN enables foreign keys so goal and settings rows cascade with their user.
func SQLiteDSN(c config.DatabaseConfig) string {
	return "file:" + c.Path + "?_foreign_keys=on&_busy_timeout=5000"
}
