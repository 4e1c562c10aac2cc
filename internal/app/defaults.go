package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults locates the config file and the directory holding the
// application table, exports, keys and logs. JOBTRACK_CONFIG_PATH overrides
// ~/.config/jobtrack.toml and JOBTRACK_HOME overrides ~/.local/share/jobtrack.
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

func getConfigPath() (string, error) {
	if path := os.Getenv("JOBTRACK_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "jobtrack.toml"), nil
}

// getBaseDir is where the tracker keeps job_applications.csv by default.
func getBaseDir() (string, error) {
	if path := os.Getenv("JOBTRACK_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "jobtrack"), nil
}
