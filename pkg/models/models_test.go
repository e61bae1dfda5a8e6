package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_TableName(t *testing.T) {
	assert.Equal(t, "pools", Pool{}.TableName())
}

func TestPool_ZeroValues(t *testing.T) {
	pool := Pool{ID: "medical", Name: "International Medical Relief"}
	assert.Equal(t, float64(0), pool.TotalDonated)
	assert.Equal(t, 0, pool.DonorCount)
}
