package walletauth

// Version constants
const (
	// Version is the SDK version
	Version = "1.0.0"
)
