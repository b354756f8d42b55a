package logfan

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

type Dummy struct{}

func fixedClock() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2012, 2, 29, 9, 0, 0, 0, time.UTC))
}

func TestRenderDefaults(t *testing.T) {
	f := Format{}.merge(DefaultFormat())
	line := f.render(fixedClock(), &Dummy{}, int(LevelInfo), "Hello, world!")
	assert.Equal(t, "[2012-02-29 09:00:00] Dummy: INFO: Hello, world!\n", line)
}

func TestRenderAllEmpty(t *testing.T) {
	f := Format{
		Timestamp: TimeLayout(""),
		Caller:    CallerText(""),
		Severity:  SeverityText(""),
	}.merge(DefaultFormat())
	assert.Equal(t, "a message\n", f.render(fixedClock(), &Dummy{}, int(LevelInfo), "a message"))
}

func TestRenderCustomParts(t *testing.T) {
	f := Format{
		Timestamp: TimeLayout("15:04 "),
		Caller:    CallerFunc(func(owner any) string { return "svc/" }),
		Severity:  SeverityFunc(func(rank int) string { return "<" + levelLabel(rank) + ">" }),
	}.merge(DefaultFormat())
	line := f.render(fixedClock(), nil, int(LevelError), "boom")
	assert.Equal(t, "09:00 svc/<ERROR: >boom\n", line)
}

func TestMergePreservesExplicitEmpty(t *testing.T) {
	f := Format{Caller: CallerText("")}.merge(DefaultFormat())
	assert.Nil(t, f.Caller.fn)
	assert.Equal(t, "", f.Caller.text)
	// unset parts inherit the defaults
	assert.Equal(t, defaultTimeLayout, f.Timestamp.layout)
	assert.NotNil(t, f.Severity.fn)
}

func TestOwnerTypeName(t *testing.T) {
	assert.Equal(t, "Dummy: ", ownerTypeName(Dummy{}))
	assert.Equal(t, "Dummy: ", ownerTypeName(&Dummy{}))
	assert.Equal(t, "", ownerTypeName(nil))
}

func TestRenderCustomRankLabel(t *testing.T) {
	f := Format{
		Timestamp: TimeLayout(""),
		Caller:    CallerText(""),
	}.merge(DefaultFormat())
	assert.Equal(t, "Log level -3: low\n", f.render(fixedClock(), nil, -3, "low"))
}
