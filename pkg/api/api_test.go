package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresListenAddress(t *testing.T) {
	_, err := New(Config{}, stubService{})
	assert.Error(t, err)
}

func TestNew_OK(t *testing.T) {
	a, err := New(Config{Listen: ":0"}, stubService{})
	require.NoError(t, err)
	assert.NotNil(t, a)
}

type stubService struct {
	result string
	err    error
}

func (s stubService) Search(context.Context, string) (string, error) {
	return s.result, s.err
}
