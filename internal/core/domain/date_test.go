package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1990-05-20")
	require.NoError(t, err)
	assert.Equal(t, NewDate(1990, time.May, 20), d)

	_, err = ParseDate("20/05/1990")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	out, err := json.Marshal(NewDate(1990, time.May, 20))
	require.NoError(t, err)
	assert.Equal(t, `"1990-05-20"`, string(out))

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1990-05-20"`), &d))
	assert.Equal(t, "1990-05-20", d.String())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1990-05-20", d.String())

	assert.Error(t, d.Scan(42))
}
