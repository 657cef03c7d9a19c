package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromCode(t *testing.T) {
	assert.Equal(t, StatusIncomplete, StatusFromCode(0))
	assert.Equal(t, StatusComplete, StatusFromCode(1))
	assert.Equal(t, StatusArchived, StatusFromCode(2))
}

func TestStatusFromCode_UnknownDecodesAsArchived(t *testing.T) {
	assert.Equal(t, StatusArchived, StatusFromCode(99))
	assert.Equal(t, StatusArchived, StatusFromCode(-1))
}

func TestStatus_RoundTrip(t *testing.T) {
	for _, s := range []Status{StatusIncomplete, StatusComplete, StatusArchived} {
		assert.Equal(t, s, StatusFromCode(s.Code()))
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "incomplete", StatusIncomplete.String())
	assert.Equal(t, "complete", StatusComplete.String())
	assert.Equal(t, "archived", StatusArchived.String())
}
