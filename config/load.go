package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// LoadWithEnv reads <name>.yaml from the first directory that has it (the
// working directory, then each of dirs) and overlays environment variables.
// POSTGRES_SSLMODE overrides postgres.sslMode: env segments are matched against
// the YAML keys ignoring case and separators.
func LoadWithEnv[T any](name string, dirs ...string) (*T, error) {
	path, err := findConfigFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s failed", path)
	}

	yamlKeys := k.Raw()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, yamlKeys), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoderConfig(cfg)}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s failed", path)
	}

	return cfg, nil
}

func decoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		Result:           result,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
}

func findConfigFile(filename string, dirs []string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "os.Getwd")
	}

	candidates := make([]string, 0, len(dirs)+1)
	candidates = append(candidates, wd)
	for _, dir := range dirs {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(wd, dir)
		}
		candidates = append(candidates, dir)
	}

	for _, dir := range candidates {
		path := filepath.Join(dir, filename)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", errors.Errorf("config file %s not found in any search path", filename)
}

// canonicalizeEnvKey turns AUTH_ACCESSTOKENTTL into auth.accessTokenTTL by
// walking the YAML tree. Segments below an unknown key stay lower case.
func canonicalizeEnvKey(rawKey string, tree map[string]any) string {
	var path []string

	node := tree
	for segment := range strings.SplitSeq(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := lookupKey(node, segment)
		path = append(path, key)
		node = child
	}

	return strings.Join(path, ".")
}

// lookupKey returns the YAML key in node matching segment and its subtree.
// Without a match it returns segment itself and a nil subtree.
func lookupKey(node map[string]any, segment string) (string, map[string]any) {
	want := normalizeToken(segment)
	for key, value := range node {
		if normalizeToken(key) == want {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

// normalizeToken lower-cases s and drops everything but letters and digits.
func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}
