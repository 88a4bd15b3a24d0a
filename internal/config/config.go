// Package config reads object definition files. A definition file declares
// check commands, hosts and services, and can be written as YAML, TOML or
// HCL.
package config

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/ctxlog"
	"github.com/tsatke/sentinel/internal/value"
)

type Format uint8

const (
	FormatUnknown Format = iota
	FormatYAML
	FormatTOML
	FormatHCL
)

var formatNames = [...]string{
	FormatUnknown: "unknown",
	FormatYAML:    "yaml",
	FormatTOML:    "toml",
	FormatHCL:     "hcl",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return formatNames[FormatUnknown]
}

// FormatFromPath determines the format of a definition file from its
// extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return FormatUnknown, fmt.Errorf("unsupported definition file extension %q", filepath.Ext(path))
}

// Definitions are the objects declared in one or more definition files.
type Definitions struct {
	Commands []Command
	Hosts    []Host
	Services []Service
}

type Command struct {
	Name   base.String
	Method base.String
	Vars   *value.Dictionary
}

type Host struct {
	Name         base.String
	DisplayName  base.String
	Address      base.String
	CheckCommand base.String
	Vars         *value.Dictionary
}

type Service struct {
	Host         base.String
	Name         base.String
	DisplayName  base.String
	CheckCommand base.String
	Vars         *value.Dictionary
}

// Load reads the definition file at path from fs.
func Load(ctx context.Context, fs afero.Fs, path string) (*Definitions, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	ctxlog.FromContext(ctx).Debug("Loading definition file.", "path", path, "format", format.String())

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	defs, err := Decode(f, path, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return defs, nil
}

// LoadAll reads all given definition files from fs and merges their
// definitions, so objects in one file may refer to objects in another.
func LoadAll(ctx context.Context, fs afero.Fs, paths ...string) (*Definitions, error) {
	all := &Definitions{}
	for _, path := range paths {
		defs, err := Load(ctx, fs, path)
		if err != nil {
			return nil, err
		}
		all.Merge(defs)
	}
	return all, nil
}

// Decode reads definitions in the given format from r. The filename is only
// used in diagnostics.
func Decode(r io.Reader, filename string, format Format) (*Definitions, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var defs *Definitions
	switch format {
	case FormatYAML:
		defs, err = decodeYAML(src)
	case FormatTOML:
		defs, err = decodeTOML(src)
	case FormatHCL:
		defs, err = decodeHCL(src, filename)
	default:
		return nil, fmt.Errorf("unsupported format %s", format)
	}
	if err != nil {
		return nil, err
	}

	if err := defs.validate(); err != nil {
		return nil, err
	}
	return defs, nil
}

// Merge appends all objects of other to d.
func (d *Definitions) Merge(other *Definitions) {
	d.Commands = append(d.Commands, other.Commands...)
	d.Hosts = append(d.Hosts, other.Hosts...)
	d.Services = append(d.Services, other.Services...)
}

func (d *Definitions) validate() error {
	for i, c := range d.Commands {
		if c.Name.IsEmpty() {
			return fmt.Errorf("command %d: name is required", i)
		}
		if c.Method.IsEmpty() {
			return fmt.Errorf("command '%s': method is required", c.Name)
		}
	}
	for i, h := range d.Hosts {
		if h.Name.IsEmpty() {
			return fmt.Errorf("host %d: name is required", i)
		}
		if h.CheckCommand.IsEmpty() {
			return fmt.Errorf("host '%s': check_command is required", h.Name)
		}
	}
	for i, s := range d.Services {
		if s.Host.IsEmpty() || s.Name.IsEmpty() {
			return fmt.Errorf("service %d: host and name are required", i)
		}
		if s.CheckCommand.IsEmpty() {
			return fmt.Errorf("service '%s!%s': check_command is required", s.Host, s.Name)
		}
	}
	return nil
}
