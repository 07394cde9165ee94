package segment_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/wordbreak/segment"
)

func TestDefaultOptions(t *testing.T) {
	o := segment.DefaultOptions()
	assert.NotNil(t, o.Logger)
	assert.Nil(t, o.Metrics)
	assert.Nil(t, o.OnCommit)
	assert.Nil(t, o.OnBacktrack)

	segment.WithLogger(nil)(&o)
	assert.NotNil(t, o.Logger, "nil logger keeps the default")
}

func TestSegment_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	res, err := segment.Segment("ABC", words("A", "AB", "BC"), segment.WithLogger(zap.New(core)))
	require.NoError(t, err)
	require.True(t, res.Found)

	assert.Equal(t, 3, logs.FilterMessage("segment: commit").Len())
	assert.Equal(t, 1, logs.FilterMessage("segment: backtrack").Len())

	done := logs.FilterMessage("segment: done").All()
	require.Len(t, done, 1)
	fields := done[0].ContextMap()
	assert.Equal(t, "ABC", fields["input"])
	assert.Equal(t, true, fields["found"])
}

func TestSegment_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := segment.NewMetrics(reg)

	_, err := segment.Segment("ABC", words("A", "AB", "BC"), segment.WithMetrics(m))
	require.NoError(t, err)
	_, err = segment.Segment("XYZ", words("A"), segment.WithMetrics(m))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SearchesTotal.WithLabelValues("not_found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BacktracksTotal))
	// "ABC": 3 + 1 + 2 lookups, "XYZ": 3 lookups
	assert.Equal(t, 9.0, testutil.ToFloat64(m.OracleCallsTotal))

	n, err := testutil.GatherAndCount(reg, "wordbreak_segment_words")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
