package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPrefix is prepended to every field's upper-cased name (or its
// explicit env tag) when checking for an override.
const EnvPrefix = "VOXSTRUCT_"

// Load builds a Config from defaults, then an optional TOML file at
// path (skipped entirely if path is ""), then environment overrides —
// each stage only overwriting what it actually sets.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}
	applyEnvOverrides(reflect.ValueOf(cfg).Elem())
	return cfg, nil
}

// applyEnvOverrides walks cfg's fields, overwriting any whose env tag
// (or auto-generated VOXSTRUCT_<FIELD> name) is set in the process
// environment.
func applyEnvOverrides(v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		ft := t.Field(i)
		if !field.CanSet() {
			continue
		}

		name := ft.Tag.Get("env")
		if name == "" {
			name = strings.ToUpper(ft.Name)
		}
		raw, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Bool:
			if b, err := strconv.ParseBool(raw); err == nil {
				field.SetBool(b)
			}
		case reflect.Int, reflect.Int64:
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				field.SetInt(n)
			}
		}
	}
}
