package config

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsatke/sentinel/internal/value"
)

const yamlDefinitions = `
commands:
  - name: ping
    method: dummy
    vars:
      dummy_state: 0
      dummy_text: "PING OK - $host.address$"
hosts:
  - name: web01
    display_name: Web Server
    address: 10.0.0.1
    check_command: ping
    vars:
      ports: [80, 443]
services:
  - host: web01
    name: http
    check_command: ping
    vars:
      dummy_state: 1
`

const tomlDefinitions = `
[[commands]]
name = "ping"
method = "dummy"

[commands.vars]
dummy_state = 0
dummy_text = "PING OK - $host.address$"

[[hosts]]
name = "web01"
display_name = "Web Server"
address = "10.0.0.1"
check_command = "ping"

[hosts.vars]
ports = [80, 443]

[[services]]
host = "web01"
name = "http"
check_command = "ping"

[services.vars]
dummy_state = 1
`

const hclDefinitions = `
command "ping" {
  method = "dummy"
  vars = {
    dummy_state = 0
    dummy_text  = "PING OK - $host.address$"
  }
}

host "web01" {
  display_name  = "Web Server"
  address       = "10.0.0.1"
  check_command = "ping"
  vars = {
    ports = [80, 443]
  }
}

service "web01" "http" {
  check_command = "ping"
  vars = {
    dummy_state = 1
  }
}
`

func expectedDefinitions() *Definitions {
	commandVars := value.NewDictionary()
	commandVars.Set("dummy_state", value.NewNumber(0))
	commandVars.Set("dummy_text", value.NewString("PING OK - $host.address$"))

	hostVars := value.NewDictionary()
	hostVars.Set("ports", value.Array{value.NewNumber(80), value.NewNumber(443)})

	serviceVars := value.NewDictionary()
	serviceVars.Set("dummy_state", value.NewNumber(1))

	return &Definitions{
		Commands: []Command{
			{Name: "ping", Method: "dummy", Vars: commandVars},
		},
		Hosts: []Host{
			{Name: "web01", DisplayName: "Web Server", Address: "10.0.0.1", CheckCommand: "ping", Vars: hostVars},
		},
		Services: []Service{
			{Host: "web01", Name: "http", CheckCommand: "ping", Vars: serviceVars},
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
	}{
		{"yaml", "/etc/sentinel/objects.yaml", yamlDefinitions},
		{"yml", "/etc/sentinel/objects.yml", yamlDefinitions},
		{"toml", "/etc/sentinel/objects.toml", tomlDefinitions},
		{"hcl", "/etc/sentinel/objects.hcl", hclDefinitions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0644))

			got, err := Load(context.Background(), fs, tt.path)
			require.NoError(t, err)
			if diff := cmp.Diff(expectedDefinitions(), got); diff != "" {
				t.Errorf("definitions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), afero.NewMemMapFs(), "/objects.yaml")
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.yaml", FormatYAML, false},
		{"a.YML", FormatYAML, false},
		{"dir/a.toml", FormatTOML, false},
		{"a.hcl", FormatHCL, false},
		{"a.json", FormatUnknown, true},
		{"a", FormatUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"command without name", "commands:\n  - method: dummy\n", "command 0: name is required"},
		{"command without method", "commands:\n  - name: ping\n", "command 'ping': method is required"},
		{"host without command", "hosts:\n  - name: web01\n", "host 'web01': check_command is required"},
		{"service without host", "services:\n  - name: http\n    check_command: ping\n", "service 0: host and name are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.content), "objects.yaml", FormatYAML)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestDecodeHCLVarsMustBeObject(t *testing.T) {
	_, err := Decode(strings.NewReader(`
command "ping" {
  method = "dummy"
  vars   = "nope"
}
`), "objects.hcl", FormatHCL)
	assert.EqualError(t, err, "command 'ping': vars must be an object, got string")
}

func TestDecodeHCLUnknownBlock(t *testing.T) {
	_, err := Decode(strings.NewReader(`
hots "web01" {
  check_command = "ping"
}
`), "objects.hcl", FormatHCL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hots")
}

func TestDecodeSyntaxErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("commands: [\n"), "a.yaml", FormatYAML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("[[commands]\n"), "a.toml", FormatTOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("command {"), "a.hcl", FormatHCL)
	assert.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/commands.toml", []byte(`
[[commands]]
name = "ping"
method = "dummy"
`), 0644))
	require.NoError(t, afero.WriteFile(fs, "/hosts.hcl", []byte(`
host "web01" {
  check_command = "ping"
}
`), 0644))

	defs, err := LoadAll(context.Background(), fs, "/hosts.hcl", "/commands.toml")
	require.NoError(t, err)
	require.Len(t, defs.Commands, 1)
	require.Len(t, defs.Hosts, 1)
	assert.Equal(t, "ping", defs.Commands[0].Name.String())
	assert.Equal(t, "web01", defs.Hosts[0].Name.String())

	_, err = LoadAll(context.Background(), fs, "/commands.toml", "/missing.yaml")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	defs := &Definitions{}
	defs.Merge(expectedDefinitions())
	defs.Merge(expectedDefinitions())

	assert.Len(t, defs.Commands, 2)
	assert.Len(t, defs.Hosts, 2)
	assert.Len(t, defs.Services, 2)
}
