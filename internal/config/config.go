package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/thinktandem/seocheck/pkg/seocheck"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// EnvCanonicalBase overrides canonicalBase when set.
const EnvCanonicalBase = "SEOCHECK_CANONICAL_BASE"

// Defaults returns the built-in options. Each call returns fresh slices.
func Defaults() seocheck.Options {
	return seocheck.Options{
		IgnoreFiles:   []string{},
		ToInspect:     seocheck.StringList{seocheck.DefaultInspectPattern},
		TrailingSlash: seocheck.Bool(true),
		Lengths: seocheck.LengthLimits{
			{Attribute: "title", Max: 60},
			{Attribute: "description", Max: 160},
		},
		SEO: seocheck.SEOOptions{
			Title:  seocheck.Bool(true),
			Robots: seocheck.String("index, follow"),
		},
		OGP: seocheck.OGPOptions{
			DefaultType:        seocheck.String("website"),
			IgnoreMissingImage: seocheck.Bool(false),
		},
		Twitter: seocheck.TwitterOptions{
			SiteURL: seocheck.String("https://thinktandem.io"),
			Card:    seocheck.String("summary"),
			Site:    seocheck.String("@ThinkTandem"),
		},
		Content: seocheck.ContentOptions{
			Exclude: []string{"**/node_modules/**", "**/.git/**"},
		},
	}
}

// MergeDefaults returns user with every unset field filled from defaults,
// recursively. Values set by the user always win, including an explicit "".
// Neither argument is modified.
//
// Lengths merge by attribute: the user's limits keep their order and any
// default attribute the user did not mention is appended.
func MergeDefaults(user, defaults seocheck.Options) (seocheck.Options, error) {
	merged := user
	err := mergo.Merge(&merged, defaults,
		mergo.WithoutDereference,
		mergo.WithTransformers(lengthsTransformer{}),
	)
	if err != nil {
		return seocheck.Options{}, fmt.Errorf("merge default options: %w", err)
	}
	return merged, nil
}

// lengthsTransformer merges LengthLimits keywise instead of replacing the slice.
type lengthsTransformer struct{}

func (lengthsTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeOf(seocheck.LengthLimits{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if !dst.CanSet() {
			return nil
		}
		user, _ := dst.Interface().(seocheck.LengthLimits)
		defaults, _ := src.Interface().(seocheck.LengthLimits)
		dst.Set(reflect.ValueOf(mergeLengths(user, defaults)))
		return nil
	}
}

func mergeLengths(user, defaults seocheck.LengthLimits) seocheck.LengthLimits {
	out := make(seocheck.LengthLimits, 0, len(user)+len(defaults))
	out = append(out, user...)
	for _, lim := range defaults {
		if _, ok := user.Get(lim.Attribute); !ok {
			out = append(out, lim)
		}
	}
	return out
}

// Load reads seocheck.yaml from sourcePath. The result holds only what the
// file sets; merge it over Defaults before use.
func Load(sourcePath string) (*seocheck.Options, error) {
	configPath := filepath.Join(sourcePath, seocheck.ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var opts seocheck.Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parse %s: %w: %w", configPath, seocheck.ErrInvalidConfig, err)
	}
	return &opts, nil
}

// ApplyEnv returns opts with environment overrides applied.
func ApplyEnv(opts seocheck.Options) seocheck.Options {
	if v := os.Getenv(EnvCanonicalBase); v != "" {
		opts.CanonicalBase = v
	}
	return opts
}

// Resolve loads sourcePath's config (if any), applies environment overrides
// and merges the result over Defaults.
func Resolve(sourcePath string) (seocheck.Options, error) {
	var user seocheck.Options
	loaded, err := Load(sourcePath)
	switch {
	case err == nil:
		user = *loaded
	case errors.Is(err, ErrConfigNotFound):
	default:
		return seocheck.Options{}, err
	}
	return MergeDefaults(ApplyEnv(user), Defaults())
}
