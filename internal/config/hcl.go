package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/value"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the layout of HCL definition files.
//
//	command "ping" {
//	  method = "dummy"
//	  vars = { dummy_state = 0 }
//	}
//	host "web01" {
//	  address       = "10.0.0.1"
//	  check_command = "ping"
//	}
//	service "web01" "http" {
//	  check_command = "ping"
//	}
type hclFile struct {
	Commands []*hclCommand `hcl:"command,block"`
	Hosts    []*hclHost    `hcl:"host,block"`
	Services []*hclService `hcl:"service,block"`
}

type hclCommand struct {
	Name   string     `hcl:"name,label"`
	Method string     `hcl:"method"`
	Vars   *cty.Value `hcl:"vars,optional"`
}

type hclHost struct {
	Name         string     `hcl:"name,label"`
	DisplayName  string     `hcl:"display_name,optional"`
	Address      string     `hcl:"address,optional"`
	CheckCommand string     `hcl:"check_command"`
	Vars         *cty.Value `hcl:"vars,optional"`
}

type hclService struct {
	Host         string     `hcl:"host,label"`
	Name         string     `hcl:"name,label"`
	DisplayName  string     `hcl:"display_name,optional"`
	CheckCommand string     `hcl:"check_command"`
	Vars         *cty.Value `hcl:"vars,optional"`
}

func decodeHCL(src []byte, filename string) (*Definitions, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse hcl: %s", diags.Error())
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decode hcl: %s", diags.Error())
	}

	defs := &Definitions{}

	for _, c := range parsed.Commands {
		vars, err := varsFromCty(c.Vars)
		if err != nil {
			return nil, fmt.Errorf("command '%s': %w", c.Name, err)
		}
		defs.Commands = append(defs.Commands, Command{
			Name:   base.New(c.Name),
			Method: base.New(c.Method),
			Vars:   vars,
		})
	}

	for _, h := range parsed.Hosts {
		vars, err := varsFromCty(h.Vars)
		if err != nil {
			return nil, fmt.Errorf("host '%s': %w", h.Name, err)
		}
		defs.Hosts = append(defs.Hosts, Host{
			Name:         base.New(h.Name),
			DisplayName:  base.New(h.DisplayName),
			Address:      base.New(h.Address),
			CheckCommand: base.New(h.CheckCommand),
			Vars:         vars,
		})
	}

	for _, s := range parsed.Services {
		vars, err := varsFromCty(s.Vars)
		if err != nil {
			return nil, fmt.Errorf("service '%s!%s': %w", s.Host, s.Name, err)
		}
		defs.Services = append(defs.Services, Service{
			Host:         base.New(s.Host),
			Name:         base.New(s.Name),
			DisplayName:  base.New(s.DisplayName),
			CheckCommand: base.New(s.CheckCommand),
			Vars:         vars,
		})
	}

	return defs, nil
}

func varsFromCty(vars *cty.Value) (*value.Dictionary, error) {
	if vars == nil || vars.IsNull() {
		return value.NewDictionary(), nil
	}
	converted, err := value.FromCty(*vars)
	if err != nil {
		return nil, fmt.Errorf("vars: %w", err)
	}
	dict, ok := converted.(*value.Dictionary)
	if !ok {
		return nil, fmt.Errorf("vars must be an object, got %s", converted.Type())
	}
	return dict, nil
}
