package engine

import (
	"context"
	"fmt"

	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/check"
	"github.com/tsatke/sentinel/internal/config"
	"github.com/tsatke/sentinel/internal/ctxlog"
)

// apply builds the objects declared in defs and adds them to the engine.
// Nothing is added if any object is invalid. The created hosts and services
// are returned in declaration order, hosts first.
func (e *Engine) apply(ctx context.Context, defs *config.Definitions) ([]check.Checkable, error) {
	logger := ctxlog.FromContext(ctx)

	commands := make(map[base.String]*check.CheckCommand, len(defs.Commands))
	lookupCommand := func(name base.String) (*check.CheckCommand, bool) {
		if c, ok := commands[name]; ok {
			return c, true
		}
		c, ok := e.commands[name]
		return c, ok
	}

	for _, def := range defs.Commands {
		if _, exists := lookupCommand(def.Name); exists {
			return nil, fmt.Errorf("command '%s' is already defined", def.Name)
		}
		if _, err := e.registry.Lookup(def.Method.String()); err != nil {
			return nil, fmt.Errorf("command '%s': %w", def.Name, err)
		}
		commands[def.Name] = check.NewCheckCommand(def.Name, def.Method, def.Vars)
	}

	hosts := make(map[base.String]*check.Host, len(defs.Hosts))
	lookupHost := func(name base.String) (*check.Host, bool) {
		if h, ok := hosts[name]; ok {
			return h, true
		}
		h, ok := e.hosts[name]
		return h, ok
	}

	var checkables []check.Checkable
	for _, def := range defs.Hosts {
		if _, exists := lookupHost(def.Name); exists {
			return nil, fmt.Errorf("host '%s' is already defined", def.Name)
		}
		command, ok := lookupCommand(def.CheckCommand)
		if !ok {
			return nil, fmt.Errorf("host '%s': check command '%s' does not exist", def.Name, def.CheckCommand)
		}
		h := check.NewHost(def.Name, def.DisplayName, def.Address, command, def.Vars)
		hosts[def.Name] = h
		checkables = append(checkables, h)
	}

	services := make(map[base.String]*check.Service, len(defs.Services))
	for _, def := range defs.Services {
		host, ok := lookupHost(def.Host)
		if !ok {
			return nil, fmt.Errorf("service '%s!%s': host '%s' does not exist", def.Host, def.Name, def.Host)
		}
		command, ok := lookupCommand(def.CheckCommand)
		if !ok {
			return nil, fmt.Errorf("service '%s!%s': check command '%s' does not exist", def.Host, def.Name, def.CheckCommand)
		}
		s := check.NewService(host, def.Name, def.DisplayName, command, def.Vars)
		if _, exists := services[s.Name()]; exists {
			return nil, fmt.Errorf("service '%s' is already defined", s.Name())
		}
		if _, exists := e.services[s.Name()]; exists {
			return nil, fmt.Errorf("service '%s' is already defined", s.Name())
		}
		services[s.Name()] = s
		checkables = append(checkables, s)
	}

	for name, c := range commands {
		e.commands[name] = c
	}
	for name, h := range hosts {
		e.hosts[name] = h
	}
	for name, s := range services {
		e.services[name] = s
	}

	logger.Debug("Applied definitions.", "commands", len(commands), "hosts", len(hosts), "services", len(services))
	return checkables, nil
}
