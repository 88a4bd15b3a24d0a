package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/afero"
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/check"
	"github.com/tsatke/sentinel/internal/config"
	"github.com/tsatke/sentinel/internal/macro"
	"github.com/tsatke/sentinel/internal/methods"
	"github.com/tsatke/sentinel/internal/value"
)

const commands = `
commands:
  - name: ping
    method: dummy
    vars:
      dummy_state: 0
      dummy_text: "PING OK - $host.address$"
`

const objects = `
hosts:
  - name: web01
    address: 10.0.0.1
    check_command: ping
  - name: db01
    address: 10.0.0.2
    check_command: ping
    vars:
      dummy_state: 2
      dummy_text: "PING CRITICAL - $host.address$ | rta=800ms;100;500"
services:
  - host: web01
    name: http
    check_command: ping
    vars:
      dummy_state: 1
      dummy_text: "$service.name$ slow on $host.name$"
`

func (suite *EngineSuite) eval(source string) []Report {
	reports, err := suite.engine.Eval(context.Background(), strings.NewReader(source), config.FormatYAML)
	suite.Require().NoError(err)
	return reports
}

func (suite *EngineSuite) TestEval() {
	reports := suite.eval(commands + objects)

	suite.Require().Len(reports, 3)
	suite.Equal(base.String("web01"), reports[0].Checkable.Name())
	suite.Equal(base.String("db01"), reports[1].Checkable.Name())
	suite.Equal(base.String("web01!http"), reports[2].Checkable.Name())

	suite.Equal(check.StateOK, reports[0].Result.State)
	suite.Equal(check.StateCritical, reports[1].Result.State)
	suite.Equal([]base.String{"rta=800ms;100;500"}, reports[1].Result.PerformanceData)
	suite.Equal(check.StateWarning, reports[2].Result.State)
	for _, r := range reports {
		suite.NoError(r.Err)
		suite.Equal(suite.now, r.Result.ExecutionEnd)
		suite.Equal(base.String("ping"), r.Result.Command)
	}

	suite.Equal("web01\tOK\tPING OK - 10.0.0.1\n"+
		"db01\tCRITICAL\tPING CRITICAL - 10.0.0.2  | rta=800ms;100;500\n"+
		"web01!http\tWARNING\thttp slow on web01\n", suite.stdout.String())
}

func (suite *EngineSuite) TestEvalBuildsOnPreviousState() {
	suite.Empty(suite.eval(commands))
	suite.Len(suite.eval(objects), 3)

	host, ok := suite.engine.Host("web01")
	suite.Require().True(ok)
	suite.Equal(check.StateOK, host.State())

	_, ok = suite.engine.Service("web01!http")
	suite.True(ok)
}

func (suite *EngineSuite) TestEvalFailureLeavesStateUnaffected() {
	_, err := suite.engine.Eval(context.Background(), strings.NewReader(commands+`
hosts:
  - name: web01
    check_command: ping
  - name: web02
    check_command: missing
`), config.FormatYAML)
	suite.EqualError(err, "host 'web02': check command 'missing' does not exist")

	_, ok := suite.engine.Host("web01")
	suite.False(ok)
	suite.Empty(suite.stdout.String())

	// the commands were not added either, so they can be defined again
	suite.Empty(suite.eval(commands))
}

func (suite *EngineSuite) TestEvalDuplicates() {
	suite.eval(commands + objects)

	tests := []struct {
		name    string
		source  string
		wantErr string
	}{
		{"command", commands, "command 'ping' is already defined"},
		{"host", "hosts:\n  - name: web01\n    check_command: ping\n", "host 'web01' is already defined"},
		{"service", "services:\n  - host: web01\n    name: http\n    check_command: ping\n", "service 'web01!http' is already defined"},
		{"unknown host", "services:\n  - host: web09\n    name: http\n    check_command: ping\n", "service 'web09!http': host 'web09' does not exist"},
		{"unknown method", "commands:\n  - name: x\n    method: ssh\n", "command 'x': check method 'ssh' does not exist"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.engine.Eval(context.Background(), strings.NewReader(tt.source), config.FormatYAML)
			suite.EqualError(err, tt.wantErr)
		})
	}
}

func (suite *EngineSuite) TestEvalDecodeError() {
	_, err := suite.engine.Eval(context.Background(), strings.NewReader("hosts: ["), config.FormatYAML)
	suite.Error(err)
}

func (suite *EngineSuite) TestEvalFile() {
	suite.Require().NoError(afero.WriteFile(suite.fs, "/etc/sentinel/objects.hcl", []byte(`
command "ping" {
  method = "dummy"
  vars = {
    dummy_text = "OK - $host.display_name$"
  }
}

host "web01" {
  display_name  = "Web Server"
  check_command = "ping"
}
`), 0644))

	reports, err := suite.engine.EvalFile(context.Background(), "/etc/sentinel/objects.hcl")
	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)
	suite.Equal(base.String("OK - Web Server"), reports[0].Result.Output)
	suite.Equal("web01\tOK\tOK - Web Server\n", suite.stdout.String())
}

func (suite *EngineSuite) TestEvalFileMultiple() {
	suite.Require().NoError(afero.WriteFile(suite.fs, "/hosts.yaml", []byte(objects), 0644))
	suite.Require().NoError(afero.WriteFile(suite.fs, "/commands.yaml", []byte(commands), 0644))

	reports, err := suite.engine.EvalFile(context.Background(), "/hosts.yaml", "/commands.yaml")
	suite.Require().NoError(err)
	suite.Len(reports, 3)
}

func (suite *EngineSuite) TestEvalFileMultipleFailure() {
	suite.Require().NoError(afero.WriteFile(suite.fs, "/commands.yaml", []byte(commands), 0644))
	suite.Require().NoError(afero.WriteFile(suite.fs, "/hosts.yaml", []byte(objects), 0644))

	_, err := suite.engine.EvalFile(context.Background(), "/commands.yaml", "/hosts.yaml", "/missing.yaml")
	suite.Error(err)

	_, ok := suite.engine.Host("web01")
	suite.False(ok)
}

func (suite *EngineSuite) TestEvalFileMissing() {
	_, err := suite.engine.EvalFile(context.Background(), "/nope.toml")
	suite.Error(err)
}

func (suite *EngineSuite) TestFailingCheckIsUnknown() {
	reports := suite.eval(commands + `
hosts:
  - name: web01
    check_command: ping
    vars:
      dummy_state: "up"
`)

	suite.Require().Len(reports, 1)
	r := reports[0]
	suite.Error(r.Err)
	suite.IsType(CheckError{}, r.Err)
	suite.Equal(check.StateUnknown, r.Result.State)
	suite.Equal(3, r.Result.ExitStatus)
	suite.Equal(base.String(r.Err.Error()), r.Result.Output)
	suite.Equal(suite.now, r.Result.ExecutionEnd)
	suite.Contains(suite.stderr.String(), "Check failed.")
}

func (suite *EngineSuite) TestRecursiveMacros() {
	reports := suite.eval(commands + `
hosts:
  - name: web01
    check_command: ping
    vars:
      dummy_text: "$a$"
      a: "$b$"
      b: "$a$"
`)

	suite.Require().Len(reports, 1)
	var recursionErr macro.RecursionError
	suite.True(errors.As(reports[0].Err, &recursionErr))
	suite.Len(recursionErr.Stack, macro.MaxRecursion)
}

func (suite *EngineSuite) TestResolveMacrosAndReplay() {
	suite.eval(commands + objects)
	suite.stdout.Reset()

	resolved, err := suite.engine.ResolveMacros(context.Background(), "web01!http")
	suite.Require().NoError(err)
	suite.Equal([]string{"dummy_state", "dummy_text", "host.name", "service.name"}, resolved.Keys())
	text, _ := resolved.Get("dummy_text")
	suite.Equal("http slow on web01", text.String())

	resolved.Set("dummy_text", value.NewString("replayed"))
	report, err := suite.engine.Replay(context.Background(), "web01!http", resolved)
	suite.Require().NoError(err)
	suite.Equal(base.String("replayed"), report.Result.Output)
	suite.Equal(check.StateWarning, report.Result.State)
	suite.Empty(suite.stdout.String())

	_, err = suite.engine.ResolveMacros(context.Background(), "nope")
	suite.EqualError(err, "checkable 'nope' does not exist")
}

func (suite *EngineSuite) TestCustomMethod() {
	registry := methods.NewRegistry()
	registry.Register("static", func(ctx context.Context, c check.Checkable, cr *check.Result, _ *value.Dictionary, _ bool) error {
		cr.State = check.StateOK
		cr.Output = "static"
		c.ProcessCheckResult(ctx, cr)
		return nil
	})
	e := New(WithStdout(suite.stdout), WithStderr(suite.stderr), WithRegistry(registry))

	reports, err := e.Eval(context.Background(), strings.NewReader(`
commands:
  - name: s
    method: static
hosts:
  - name: h
    check_command: s
`), config.FormatYAML)
	suite.Require().NoError(err)
	suite.Require().Len(reports, 1)
	suite.Equal(base.String("static"), reports[0].Result.Output)
	suite.Equal("h\tOK\tstatic\n", suite.stdout.String())
}
