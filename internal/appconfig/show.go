// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg *Config, fallback Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}
	if cfg == nil {
		cfg = &fallback
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:    %v\n", cfg.Debug)
	fmt.Fprintf(out, "  No Color: %v\n", cfg.NoColor)
	if path := cfg.LogFilePath(); path != "" {
		fmt.Fprintf(out, "  Log File: %s\n", path)
	} else {
		fmt.Fprintln(out, "  Log File: (stderr only)")
	}
}
