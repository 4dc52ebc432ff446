package version

import "fmt"

// These variables are set at build time using -ldflags
// Example: go build -ldflags "-X github.com/alexiusacademia/gochemics/internal/version.Version=0.2.0"
var (
	// Version is the semantic version of the application
	Version = "0.1.0"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2025"
)

// Banner is the heading printed by the root command
func Banner() string {
	return fmt.Sprintf(`
╔═══════════════════════════════════════════════════════════╗
║        GOCHEMICS - Chemical Engineering Calculators       ║
║   Proximate analysis bases · bubble rise · particle drag  ║
╚═══════════════════════════════════════════════════════════╝
  v%s  ·  © %s %s
`, Version, Year, Author)
}
