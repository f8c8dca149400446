package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataChangedMessage(t *testing.T) {
	msg, err := dataChangedMessage(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"fips.json", "categories.json", "nested_all_user_groups.json"}, msg.Files)

	msg, err = dataChangedMessage([]string{"/srv/data/fips.json", "fips.json", "categories.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"fips.json", "categories.json"}, msg.Files)

	_, err = dataChangedMessage([]string{"secrets.json"})
	assert.Error(t, err)
}
