package monads_test

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/monads/pkg/monads"
)

// Not parallel: swaps the package logger.
func TestSetLogger_RecordsRecoveredPanics(t *testing.T) {
	prev := monads.Logger()
	t.Cleanup(func() { monads.SetLogger(prev) })

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	monads.SetLogger(logger)

	monads.Attempt(func() int { panic(errors.New("boom")) })

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "attempt: recovered panic", entry.Message)
	assert.EqualError(t, entry.Data[logrus.ErrorKey].(error), "boom")
}

func TestSetLogger_Nil(t *testing.T) {
	prev := monads.Logger()
	t.Cleanup(func() { monads.SetLogger(prev) })

	monads.SetLogger(nil)
	require.NotNil(t, monads.Logger())

	assert.NotPanics(t, func() {
		monads.Attempt(func() int { panic("quiet") })
	})
}
