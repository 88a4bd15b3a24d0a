package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/value"
	"gopkg.in/yaml.v3"
)

// nativeFile is the layout of YAML and TOML definition files.
type nativeFile struct {
	Commands []nativeCommand `yaml:"commands" toml:"commands"`
	Hosts    []nativeHost    `yaml:"hosts" toml:"hosts"`
	Services []nativeService `yaml:"services" toml:"services"`
}

type nativeCommand struct {
	Name   base.String    `yaml:"name" toml:"name"`
	Method base.String    `yaml:"method" toml:"method"`
	Vars   map[string]any `yaml:"vars" toml:"vars"`
}

type nativeHost struct {
	Name         base.String    `yaml:"name" toml:"name"`
	DisplayName  base.String    `yaml:"display_name" toml:"display_name"`
	Address      base.String    `yaml:"address" toml:"address"`
	CheckCommand base.String    `yaml:"check_command" toml:"check_command"`
	Vars         map[string]any `yaml:"vars" toml:"vars"`
}

type nativeService struct {
	Host         base.String    `yaml:"host" toml:"host"`
	Name         base.String    `yaml:"name" toml:"name"`
	DisplayName  base.String    `yaml:"display_name" toml:"display_name"`
	CheckCommand base.String    `yaml:"check_command" toml:"check_command"`
	Vars         map[string]any `yaml:"vars" toml:"vars"`
}

func decodeYAML(src []byte) (*Definitions, error) {
	var file nativeFile
	if err := yaml.Unmarshal(src, &file); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return file.definitions()
}

func decodeTOML(src []byte) (*Definitions, error) {
	var file nativeFile
	if _, err := toml.Decode(string(src), &file); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return file.definitions()
}

func (f nativeFile) definitions() (*Definitions, error) {
	defs := &Definitions{}

	for _, c := range f.Commands {
		vars, err := varsFromNative(c.Vars)
		if err != nil {
			return nil, fmt.Errorf("command '%s': %w", c.Name, err)
		}
		defs.Commands = append(defs.Commands, Command{
			Name:   c.Name,
			Method: c.Method,
			Vars:   vars,
		})
	}

	for _, h := range f.Hosts {
		vars, err := varsFromNative(h.Vars)
		if err != nil {
			return nil, fmt.Errorf("host '%s': %w", h.Name, err)
		}
		defs.Hosts = append(defs.Hosts, Host{
			Name:         h.Name,
			DisplayName:  h.DisplayName,
			Address:      h.Address,
			CheckCommand: h.CheckCommand,
			Vars:         vars,
		})
	}

	for _, s := range f.Services {
		vars, err := varsFromNative(s.Vars)
		if err != nil {
			return nil, fmt.Errorf("service '%s!%s': %w", s.Host, s.Name, err)
		}
		defs.Services = append(defs.Services, Service{
			Host:         s.Host,
			Name:         s.Name,
			DisplayName:  s.DisplayName,
			CheckCommand: s.CheckCommand,
			Vars:         vars,
		})
	}

	return defs, nil
}

func varsFromNative(vars map[string]any) (*value.Dictionary, error) {
	dict := value.NewDictionary()
	for k, v := range vars {
		converted, err := value.FromNative(v)
		if err != nil {
			return nil, fmt.Errorf("vars.%s: %w", k, err)
		}
		dict.Set(k, converted)
	}
	return dict, nil
}
