package runner

import (
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/bytespray/abrade"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	defaultCfg := filepath.Join(getUserHomeDir(), ".config/abrade/defaults.yaml")
	if fileutil.FileExists(defaultCfg) {
		if cfg, err := abrade.NewConfig(defaultCfg); err == nil {
			defaultConfig = *cfg
			return
		} else {
			gologger.Error().Msgf("abrade yaml configuration syntax error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := validateDir(filepath.Join(getUserHomeDir(), ".config/abrade")); err != nil {
		gologger.Error().Msgf("abrade config dir not found and failed to create got: %v", err)
		return
	}
	if err := abrade.GenerateSample(defaultCfg); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultCfg, err)
	}
}

// defaultConfig seeds flag defaults from the user's persisted
// preferences; ParseFlags reads its fields before CreateGroup so a
// repeat user's saved agent string and concurrency tuning apply
// without retyping flags.
var defaultConfig = abrade.Config{
	UserAgent:          abrade.DefaultUserAgent,
	InitialConcurrency: abrade.DefaultInitialConcurrency,
	MinConcurrency:     abrade.DefaultMinConcurrency,
	MaxConcurrency:     abrade.DefaultMaxConcurrency,
	SampleSize:         abrade.DefaultSampleSize,
	SampleInterval:     abrade.DefaultSampleInterval,
}

// validateDir checks if dir exists if not creates it
func validateDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
