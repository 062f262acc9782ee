package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EpochSeconds(t *testing.T) {
	ts, err := Parse("1700000000")
	require.NoError(t, err)

	assert.Equal(t, "epoch_seconds", ts.Strategy)
	assert.Equal(t, int64(1700000000), ts.Time.Unix())
}

func TestParse_EpochMillis(t *testing.T) {
	ts, err := Parse("1700000000123")
	require.NoError(t, err)

	assert.Equal(t, "epoch_millis", ts.Strategy)
	assert.Equal(t, int64(1700000000123), ts.Time.UnixMilli())
}

func TestParse_RFC3339(t *testing.T) {
	ts, err := Parse("2023-11-14T22:13:20Z")
	require.NoError(t, err)

	assert.Equal(t, "rfc3339", ts.Strategy)
	assert.Equal(t, int64(1700000000), ts.Time.Unix())
}

func TestParse_DateOnly(t *testing.T) {
	ts, err := Parse("2023-11-14")
	require.NoError(t, err)

	assert.Equal(t, "date_only", ts.Strategy)
	assert.Equal(t, 2023, ts.Time.Year())
	assert.Equal(t, time.November, ts.Time.Month())
	assert.Equal(t, 14, ts.Time.Day())
}

func TestParse_StrategyOrder(t *testing.T) {
	// A plain integer must be read as an epoch even though a datetime
	// parser might coerce it
	ts, err := Parse("20230101")
	require.NoError(t, err)
	assert.Equal(t, "epoch_seconds", ts.Strategy)
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "  ", "next tuesday", "14/11/2023"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestRender(t *testing.T) {
	instant := time.Unix(1700000000, 0)

	rendering := Render(instant)

	assert.Equal(t, int64(1700000000), rendering.UnixSeconds)
	assert.Equal(t, int64(1700000000000), rendering.UnixMillis)
	assert.Equal(t, "2023-11-14T22:13:20Z", rendering.RFC3339)
	assert.Equal(t, "Tue, 14 Nov 2023 22:13:20 UTC", rendering.RFC1123)
	assert.NotEmpty(t, rendering.Local)
}

func TestParseRenderRoundtrip(t *testing.T) {
	ts, err := Parse("1700000000")
	require.NoError(t, err)

	back, err := Parse(Render(ts.Time).RFC3339)
	require.NoError(t, err)
	assert.True(t, ts.Time.Equal(back.Time))
}
