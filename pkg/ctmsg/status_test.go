package ctmsg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "CS_SUCCEED", StatusSucceed.String())
	assert.Equal(t, "CS_FAIL", StatusFail.String())
	assert.Equal(t, "CS_UNSUPPORTED", StatusUnsupported.String())
	assert.Equal(t, "Status(42)", Status(42).String())
	assert.Equal(t, "Status(-99)", Status(-99).String())
}

func TestParseStatus(t *testing.T) {
	for code, name := range statusNames {
		got, err := ParseStatus(name)
		require.NoError(t, err)
		assert.Equal(t, code, got)
	}

	got, err := ParseStatus("-42")
	require.NoError(t, err)
	assert.Equal(t, Status(-42), got)

	_, err = ParseStatus("CS_MAYBE")
	require.Error(t, err)
}

func TestStatusUnmarshalYAML(t *testing.T) {
	var doc struct {
		Statuses []Status `yaml:"statuses"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("statuses: [CS_FAIL, \"-2\", 1, CS_RET_HAFAILOVER]\n"), &doc))
	assert.Equal(t, []Status{StatusFail, StatusPending, StatusSucceed, StatusRetHAFailover}, doc.Statuses)

	require.Error(t, yaml.Unmarshal([]byte("statuses: [CS_MAYBE]\n"), &doc))
	require.Error(t, yaml.Unmarshal([]byte("statuses: [{code: 1}]\n"), &doc))
}
