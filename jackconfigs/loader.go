package jackconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/jackc/configs"
	"github.com/reusee/jackc/logs"
	"github.com/reusee/jackc/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"jackc.cue",
	".jackc.cue",
}

// ConfigsLoader searches the working directory, then the user config dir, then /etc.
func (Module) ConfigsLoader(
	mode modes.Mode,
	logger logs.Logger,
) configs.Loader {
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	paths := searchPaths(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func searchPaths(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
