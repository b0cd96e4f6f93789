package permstore

// Config holds the store's environment-driven settings. Fields are
// populated from environment variables via github.com/caarlos0/env.
type Config struct {
	// SlotKey names the persisted slot holding the serialized matrix.
	SlotKey string `env:"MERCHANT_PERMISSIONS_KEY" envDefault:"eishro:merchant-permissions"`
}
