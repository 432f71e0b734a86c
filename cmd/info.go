package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"agenkas/internal/app"
	"agenkas/internal/ui/views"
)

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

func runInfo() error {
	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	rawDBPath := cfg.Database.Path
	if rawDBPath == "" {
		appDir, _ := app.GetAppDataDir()
		rawDBPath = filepath.Join(appDir, "agenkas.db")
	}
	expandedDBPath, _ := expandPath(rawDBPath)

	dbExists := false
	if _, err := os.Stat(expandedDBPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:      configPath,
		DBPath:          expandedDBPath,
		DBExists:        dbExists,
		DefaultCurrency: cfg.Defaults.Currency,
		AppDataDir:      getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
