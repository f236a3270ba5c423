// Package config loads generation defaults and named profiles from a
// configuration file and the environment, and resolves them against
// command-line overrides.
package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/eykd/tokengen-go/internal/domain"
)

// Built-in defaults used when neither the file nor the environment set a
// value.
const (
	DefaultLength = 16
)

// DefaultClasses is the class set used when nothing else selects one.
var DefaultClasses = domain.NewClassSet(domain.Uppercase, domain.Lowercase, domain.Digit)

// ErrUnknownProfile is returned when a requested profile is not configured.
var ErrUnknownProfile = errors.New("unknown profile")

// ErrInvalidProfileName is returned when a profile name is empty after
// normalization.
var ErrInvalidProfileName = errors.New("invalid profile name")

// ErrDuplicateProfile is returned when two profile names normalize to the
// same key.
var ErrDuplicateProfile = errors.New("duplicate profile")

// Profile holds optional generation settings. Zero values mean "inherit".
type Profile struct {
	Length  int      `yaml:"length,omitempty" toml:"length,omitempty"`
	Classes []string `yaml:"classes,omitempty,flow" toml:"classes,omitempty"`
}

// File is the on-disk configuration document.
type File struct {
	Defaults Profile            `yaml:"defaults" toml:"defaults"`
	Profiles map[string]Profile `yaml:"profiles,omitempty" toml:"profiles,omitempty"`
}

// Default returns the configuration written by "tkg init" and used when
// no file exists.
func Default() *File {
	return &File{
		Defaults: Profile{
			Length:  DefaultLength,
			Classes: DefaultClasses.Names(),
		},
		Profiles: map[string]Profile{
			"api-key":  {Length: 32, Classes: []string{"uppercase", "lowercase", "digits"}},
			"password": {Length: 20, Classes: domain.NewClassSet(domain.AllClasses...).Names()},
			"pin":      {Length: 6, Classes: []string{"digits"}},
		},
	}
}

// normalize rewrites profile keys through NormalizeName and checks that
// every class name parses.
func (f *File) normalize() error {
	if _, err := domain.ParseClassSet(f.Defaults.Classes); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	if len(f.Profiles) == 0 {
		return nil
	}
	profiles := make(map[string]Profile, len(f.Profiles))
	for name, p := range f.Profiles {
		key := NormalizeName(name)
		if key == "" {
			return fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
		}
		if _, dup := profiles[key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateProfile, key)
		}
		if _, err := domain.ParseClassSet(p.Classes); err != nil {
			return fmt.Errorf("profile %s: %w", key, err)
		}
		profiles[key] = p
	}
	f.Profiles = profiles
	return nil
}

// NamedProfile pairs a profile with its normalized name.
type NamedProfile struct {
	Name string
	Profile
}

// ProfileList returns the configured profiles sorted by name.
func (f *File) ProfileList() []NamedProfile {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	list := make([]NamedProfile, len(names))
	for i, name := range names {
		list[i] = NamedProfile{Name: name, Profile: f.Profiles[name]}
	}
	return list
}

// Lookup finds a profile by name, normalizing the name first.
func (f *File) Lookup(name string) (Profile, bool) {
	p, ok := f.Profiles[NormalizeName(name)]
	return p, ok
}

// Overrides carries values given explicitly on the command line. Nil
// fields were not given.
type Overrides struct {
	Profile string
	Length  *int
	Classes *domain.ClassSet
}

// Resolution is a resolved generation request and where it came from.
type Resolution struct {
	Config  domain.GenerationConfig
	Profile string
}

// Resolve applies, from lowest to highest precedence: built-in defaults,
// file defaults, the selected profile, the environment and the overrides.
// The profile is chosen by the overrides, then the environment.
//
// Resolve never rejects an empty class set or a non-positive length; the
// generator reports those.
func (f *File) Resolve(env Env, flags Overrides) (Resolution, error) {
	length := DefaultLength
	classes := DefaultClasses

	layer := func(p Profile) error {
		if p.Length != 0 {
			length = p.Length
		}
		if len(p.Classes) > 0 {
			set, err := domain.ParseClassSet(p.Classes)
			if err != nil {
				return err
			}
			classes = set
		}
		return nil
	}

	if err := layer(f.Defaults); err != nil {
		return Resolution{}, fmt.Errorf("defaults: %w", err)
	}

	name := flags.Profile
	if name == "" {
		name = env.Profile
	}
	var profileName string
	if name != "" {
		p, ok := f.Lookup(name)
		if !ok {
			return Resolution{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
		}
		profileName = NormalizeName(name)
		if err := layer(p); err != nil {
			return Resolution{}, fmt.Errorf("profile %s: %w", profileName, err)
		}
	}

	if err := layer(Profile{Length: env.Length, Classes: env.Classes}); err != nil {
		return Resolution{}, fmt.Errorf("environment: %w", err)
	}

	if flags.Length != nil {
		length = *flags.Length
	}
	if flags.Classes != nil {
		classes = *flags.Classes
	}

	return Resolution{
		Config:  domain.GenerationConfig{Length: length, Classes: classes},
		Profile: profileName,
	}, nil
}
