package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/eykd/tokengen-go/internal/clipboard"
	"github.com/eykd/tokengen-go/internal/config"
	"github.com/eykd/tokengen-go/internal/domain"
	"github.com/eykd/tokengen-go/internal/entropy"
	"github.com/eykd/tokengen-go/internal/generator"
)

// configStore abstracts the config.Store methods used by adapters.
type configStore interface {
	Load(ctx context.Context) (*config.File, bool, error)
	Save(ctx context.Context, f *config.File, overwrite bool) error
	Path() string
}

// --- settingsLoader ---

// settingsLoader locates and reads the configuration file. The file path
// comes from --config, then TKG_CONFIG, then the user config directory.
type settingsLoader struct {
	parseEnv    func() (config.Env, error)
	defaultPath func() (string, error)
	configFlag  func() string
	newStore    func(path string) configStore
}

func newSettingsLoader() *settingsLoader {
	return &settingsLoader{
		parseEnv:    config.ParseEnv,
		defaultPath: config.DefaultPath,
		configFlag:  GetConfigPath,
		newStore:    func(path string) configStore { return config.NewStore(path) },
	}
}

// store returns the configuration store together with the parsed
// environment.
func (l *settingsLoader) store() (configStore, config.Env, error) {
	env, err := l.parseEnv()
	if err != nil {
		return nil, config.Env{}, err
	}
	path := l.configFlag()
	if path == "" {
		path = env.ConfigFile
	}
	if path == "" {
		path, err = l.defaultPath()
		if err != nil {
			return nil, config.Env{}, fmt.Errorf("%w: %w", ErrNoConfig, err)
		}
	}
	return l.newStore(path), env, nil
}

// load reads the configuration file. A missing file yields the built-in
// configuration with found set to false.
func (l *settingsLoader) load(ctx context.Context) (file *config.File, env config.Env, store configStore, found bool, err error) {
	store, env, err = l.store()
	if err != nil {
		return nil, config.Env{}, nil, false, err
	}
	file, found, err = store.Load(ctx)
	if err != nil {
		return nil, config.Env{}, nil, false, &ContextError{Op: "load config", Path: store.Path(), Err: err}
	}
	return file, env, store, found, nil
}

// --- generateAdapter ---

type generateAdapter struct {
	openSource func() (entropy.Source, error)
	settings   *settingsLoader
	clip       clipboard.Writer
	logger     func() *slog.Logger
}

func (a *generateAdapter) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	file, env, _, _, err := a.settings.load(ctx)
	if err != nil {
		return nil, err
	}
	res, err := file.Resolve(env, config.Overrides{
		Profile: req.Profile,
		Length:  req.Length,
		Classes: req.Classes,
	})
	if err != nil {
		return nil, err
	}

	src, err := a.openSource()
	if err != nil {
		return nil, err
	}
	values, err := generator.NewService(src, a.logger()).GenerateBatch(ctx, res.Config, req.Count)
	if err != nil {
		return nil, err
	}

	alphabetSize := domain.BuildAlphabet(res.Config.Classes).Len()
	result := &GenerateResult{
		Values:       values,
		Length:       res.Config.Length,
		Classes:      res.Config.Classes.Names(),
		AlphabetSize: alphabetSize,
		Strength:     domain.Classify(res.Config.Length),
		EntropyBits:  domain.EntropyBits(res.Config.Length, alphabetSize),
		Profile:      res.Profile,
	}

	if req.Copy {
		if err := a.clip.WriteAll(values[len(values)-1]); err != nil {
			return result, &ContextError{Op: "copy to clipboard", Err: err}
		}
		result.Copied = true
	}
	return result, nil
}

// --- profilesAdapter ---

type profilesAdapter struct {
	settings *settingsLoader
}

func (a *profilesAdapter) Profiles(ctx context.Context) (*ProfilesResult, error) {
	file, _, store, found, err := a.settings.load(ctx)
	if err != nil {
		return nil, err
	}

	result := &ProfilesResult{Path: store.Path(), Found: found, Profiles: []ProfileInfo{}}
	for _, p := range file.ProfileList() {
		res, err := file.Resolve(config.Env{}, config.Overrides{Profile: p.Name})
		if err != nil {
			return nil, err
		}
		result.Profiles = append(result.Profiles, ProfileInfo{
			Name:    p.Name,
			Length:  res.Config.Length,
			Classes: res.Config.Classes.Names(),
		})
	}
	return result, nil
}

// --- initAdapter ---

type initAdapter struct {
	settings *settingsLoader
}

func (a *initAdapter) Init(ctx context.Context, force bool) (*InitResult, error) {
	store, _, err := a.settings.store()
	if err != nil {
		return nil, err
	}

	_, statErr := os.Stat(store.Path())
	existed := statErr == nil
	if err := store.Save(ctx, config.Default(), force); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			return nil, fmt.Errorf("%w (use --force to overwrite)", err)
		}
		return nil, &ContextError{Op: "write config", Path: store.Path(), Err: err}
	}
	return &InitResult{Path: store.Path(), Overwritten: existed}, nil
}
