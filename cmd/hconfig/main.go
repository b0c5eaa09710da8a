package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/goccy/go-yaml"

	config "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/logging"
)

func main() {
	app := kingpin.New("hconfig", "Inspect configuration merged from files, URLs, the environment, and overrides")
	app.Version(config.Version)

	files := app.Flag("file", "Configuration file to merge; repeat to layer, later files win").Short('f').Strings()
	urls := app.Flag("url", "Configuration URL to merge; repeat to layer, later URLs win").Strings()
	format := app.Flag("format", "Force a registered format (json, yaml) instead of detecting one").String()
	useEnv := app.Flag("env", "Merge the process environment (PATH__TO__KEY entries)").Bool()
	sets := app.Flag("set", "Override in path=value form, applied after all other sources").Strings()
	delimiter := app.Flag("delimiter", "Path delimiter").Default(":").String()
	logLevel := app.Flag("log-level", "Log level: debug, info, warn, error").Default("info").String()

	getCmd := app.Command("get", "Print the value at a path")
	getPath := getCmd.Arg("path", "Delimiter-separated path, e.g. database:host").Required().String()

	viewCmd := app.Command("view", "Print the fully merged configuration tree")

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	slog.SetDefault(logging.New(*logLevel, os.Stderr))

	store, err := buildStore(*delimiter, *files, *urls, *format, *useEnv, *sets)
	if err != nil {
		app.Fatalf("%v", err)
	}

	switch cmd {
	case getCmd.FullCommand():
		value := store.Get(*getPath)
		if value == nil {
			app.Fatalf("no value at path %q", *getPath)
		}

		render(app, value)
	case viewCmd.FullCommand():
		render(app, store.Configs())
	}
}

// buildStore layers the requested sources in CLI-argument order: files, then
// URLs, then the environment, then explicit overrides.
func buildStore(delimiter string, files, urls []string, format string, useEnv bool, sets []string) (*config.Store, error) {
	store := config.New(config.WithDelimiter(delimiter))

	var loadOpts []config.LoadOption

	if format != "" {
		loadOpts = append(loadOpts, config.WithFormat(format))
	}

	for _, fpath := range files {
		err := store.LoadFile(fpath, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", fpath, err)
		}
	}

	for _, rawURL := range urls {
		err := store.LoadURL(rawURL, loadOpts...)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", rawURL, err)
		}
	}

	if useEnv {
		store.LoadEnv(nil)
	}

	for _, override := range sets {
		path, value, found := strings.Cut(override, "=")
		if !found || path == "" {
			return nil, fmt.Errorf("override %q is not in path=value form", override)
		}

		store.Set(path, value)
	}

	return store, nil
}

func render(app *kingpin.Application, value any) {
	out, err := yaml.Marshal(value)
	if err != nil {
		app.Fatalf("rendering value: %v", err)
	}

	fmt.Print(string(out))
}
