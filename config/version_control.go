package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular components
	Benchmark = "v1.0.1"
	Diagram   = "v1.0.0"
	Motif     = "v1.1.0"
	Seq_stats = "v1.0.0"
)
