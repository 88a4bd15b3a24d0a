package methods

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/check"
	"github.com/tsatke/sentinel/internal/clock"
	"github.com/tsatke/sentinel/internal/value"
)

func TestDummyCheckTaskSuite(t *testing.T) {
	suite.Run(t, new(DummyCheckTaskSuite))
}

type DummyCheckTaskSuite struct {
	suite.Suite

	ctx     context.Context
	now     time.Time
	command *check.CheckCommand
	host    *check.Host
}

func (suite *DummyCheckTaskSuite) SetupTest() {
	suite.now = time.Unix(1606850863, 419123456)
	suite.ctx = clock.WithClock(context.Background(), clock.Fixed(suite.now))

	vars := value.NewDictionary()
	vars.Set("dummy_state", value.NewNumber(0))
	vars.Set("dummy_text", value.NewString("Check was successful."))
	suite.command = check.NewCheckCommand("dummy", "dummy", vars)
	suite.host = check.NewHost("web01", "", "10.0.0.1", suite.command, nil)
}

func (suite *DummyCheckTaskSuite) TestDefaults() {
	cr := check.NewResult()
	suite.Require().NoError(DummyCheckTask(suite.ctx, suite.host, cr, nil, false))

	suite.Equal(check.StateOK, cr.State)
	suite.Equal(0, cr.ExitStatus)
	suite.Equal(base.String("Check was successful."), cr.Output)
	suite.Empty(cr.PerformanceData)
	suite.Equal(base.String("dummy"), cr.Command)
	suite.Equal(suite.now, cr.ExecutionStart)
	suite.Equal(suite.now, cr.ExecutionEnd)
	suite.Same(cr, suite.host.LastCheckResult())
	suite.Equal(check.StateOK, suite.host.State())
}

func (suite *DummyCheckTaskSuite) TestOverriddenByService() {
	vars := value.NewDictionary()
	vars.Set("dummy_state", value.NewString("2"))
	vars.Set("dummy_text", value.NewString("CRITICAL - $service.name$ on $host.address$ | time=5s;1;2 size=10B"))
	service := check.NewService(suite.host, "http", "", suite.command, vars)

	cr := check.NewResult()
	suite.Require().NoError(DummyCheckTask(suite.ctx, service, cr, nil, false))

	suite.Equal(check.StateCritical, cr.State)
	suite.Equal(base.String("CRITICAL - http on 10.0.0.1 "), cr.Output)
	suite.Equal([]base.String{"time=5s;1;2", "size=10B"}, cr.PerformanceData)
	suite.Equal(check.StateCritical, service.State())
	suite.Nil(suite.host.LastCheckResult())
}

func (suite *DummyCheckTaskSuite) TestUnknownExitStatus() {
	suite.host.Vars().Set("dummy_state", value.NewNumber(42))

	cr := check.NewResult()
	suite.Require().NoError(DummyCheckTask(suite.ctx, suite.host, cr, nil, false))
	suite.Equal(check.StateUnknown, cr.State)
	suite.Equal(42, cr.ExitStatus)
}

func (suite *DummyCheckTaskSuite) TestCollectMacrosOnly() {
	resolved := value.NewDictionary()
	cr := check.NewResult()
	suite.Require().NoError(DummyCheckTask(suite.ctx, suite.host, cr, resolved, false))

	suite.Equal([]string{"dummy_state", "dummy_text"}, resolved.Keys())
	suite.Equal(check.StateUnknown, cr.State, "result must not be touched")
	suite.Nil(suite.host.LastCheckResult())
}

func (suite *DummyCheckTaskSuite) TestUseResolvedMacros() {
	resolved := value.NewDictionary()
	resolved.Set("dummy_state", value.NewNumber(1))
	resolved.Set("dummy_text", value.NewString("remote says warning"))

	cr := check.NewResult()
	suite.Require().NoError(DummyCheckTask(suite.ctx, suite.host, cr, resolved, true))
	suite.Equal(check.StateWarning, cr.State)
	suite.Equal(base.String("remote says warning"), cr.Output)
}

func (suite *DummyCheckTaskSuite) TestInvalidState() {
	suite.host.Vars().Set("dummy_state", value.NewString("not a number"))

	err := DummyCheckTask(suite.ctx, suite.host, check.NewResult(), nil, false)
	suite.Error(err)
}

func (suite *DummyCheckTaskSuite) TestRegistry() {
	r := NewRegistry()
	suite.Equal([]string{"dummy"}, r.Names())

	fn, err := r.Lookup("dummy")
	suite.NoError(err)
	suite.NotNil(fn)

	_, err = r.Lookup("plugin")
	suite.EqualError(err, "check method 'plugin' does not exist")

	r.Register("noop", func(context.Context, check.Checkable, *check.Result, *value.Dictionary, bool) error {
		return nil
	})
	suite.Equal([]string{"dummy", "noop"}, r.Names())
}
