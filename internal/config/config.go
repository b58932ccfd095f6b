package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses the verification delay duration
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations.
type Config struct {
	Env          string        // application environment (e.g. "dev", "prod")
	Port         string        // HTTP port to listen on
	StoreBackend string        // persistence backend: memory, redis or mysql
	DBUser       string        // database username (mysql backend)
	DBPass       string        // database password (optional)
	DBHost       string        // database host address (mysql backend)
	DBPort       string        // database port number (mysql backend)
	DBName       string        // database name (mysql backend)
	JWTSecret    string        // secret used to sign JWTs
	AccessTTLMin int           // access token time-to-live in minutes
	PasscodeHash string        // bcrypt hash of the kiosk passcode exchanged for a token
	VerifyDelay  time.Duration // fixed arrival-verification delay (simulated badge scan)
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Database variables
// are only required when the mysql store backend is selected; main
// validates that combination.
func Load() Config {
	return Config{
		Env:          must("APP_ENV"),                 // environment (dev/test/prod)
		Port:         must("APP_PORT"),                // port to bind the HTTP server
		StoreBackend: getenvDefault("STORE_BACKEND", "memory"),
		DBUser:       os.Getenv("DB_USER"),            // database user (mysql only)
		DBPass:       os.Getenv("DB_PASS"),            // database password (empty allowed)
		DBHost:       os.Getenv("DB_HOST"),            // database host (mysql only)
		DBPort:       os.Getenv("DB_PORT"),            // database port (mysql only)
		DBName:       os.Getenv("DB_NAME"),            // database name (mysql only)
		JWTSecret:    must("JWT_SECRET"),              // secret used for signing JWTs
		AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
		PasscodeHash: must("AUTH_PASSCODE_HASH"),      // bcrypt hash of the access passcode
		VerifyDelay:  durDefault("VERIFY_DELAY", 1500*time.Millisecond),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// getenvDefault returns the variable's value, or def when unset/empty.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// durDefault parses the variable as a Go duration, falling back to def
// when unset or unparsable.
func durDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid duration for %s: %q, using %s", key, v, def)
		return def
	}
	return d
}
