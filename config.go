package opensearch

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Config holds client construction settings. Zero values fall back to
// sensible defaults in NewClient; only Addresses is mandatory.
type Config struct {
	// Addresses lists node URLs. The default transport uses the first
	// entry only — node selection belongs to custom transports.
	Addresses []string `validate:"required,min=1,dive,url"`

	// Username and Password enable basic auth on the default transport.
	Username string
	Password string

	// Throttle caps outgoing requests per second on the default
	// transport; zero disables throttling. Burst defaults to 1.
	Throttle float64 `validate:"gte=0"`
	Burst    int     `validate:"gte=0"`

	// Logger receives deprecation warnings. Defaults to slog.Default.
	Logger *slog.Logger

	// Serializer encodes request bodies. Defaults to JSONSerializer.
	Serializer Serializer

	// Transport overrides the default net/http transport. When set,
	// Addresses, auth, throttle, and HTTPClient are ignored.
	Transport Transport

	// HTTPClient is used by the default transport. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client
}

var validate = validator.New()

// validateConfig checks cfg before the client is built. A custom
// Transport supplies its own endpoint, so Addresses is only required
// when the default transport will be constructed.
func validateConfig(cfg Config) error {
	if cfg.Transport != nil {
		return nil
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
