package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/venturesim-oss/task"
	"github.com/tsinghua-fib-lab/venturesim-oss/utils/config"
)

func newTestContext() *task.Context {
	ctx := task.NewContext("test", "", config.Config{
		Control: config.Control{
			Step: config.ControlStep{Start: 0, Total: 100, Interval: 1},
			Seed: 42,
		},
	})
	ctx.Init()
	return ctx
}

func TestUpdateCompliance(t *testing.T) {
	ctx := newTestContext()
	em := ctx.EventManager()
	v := ctx.BusinessManager().Venture()

	// compliant businesses are left alone
	capBefore := v.Capital()
	em.UpdateCompliance()
	assert.Equal(t, capBefore, v.Capital())

	v.AddCompliance(-25)
	assert.InDelta(t, 45.0, v.ComplianceScore(), 1e-9)
	capBefore = v.Capital()
	em.UpdateCompliance()
	assert.InDelta(t, capBefore-10000, v.Capital(), 1e-9)
	assert.InDelta(t, 45.0, v.Reputation(), 1e-9)
}

func TestUpdateEvents(t *testing.T) {
	ctx := newTestContext()
	em := ctx.EventManager()

	// macro events hit the whole economy at once; over enough steps at
	// least one must fire and leave a trace on the books
	v := ctx.BusinessManager().Venture()
	revenue, expenses := v.Revenue(), v.Expenses()
	cost := v.Products()[0].Cost
	morale := v.Employees()[0].Morale
	changed := false
	for i := 0; i < 500 && !changed; i++ {
		em.UpdateEvents()
		changed = v.Revenue() != revenue || v.Expenses() != expenses ||
			v.Products()[0].Cost != cost || v.Employees()[0].Morale != morale
	}
	assert.True(t, changed)
}
