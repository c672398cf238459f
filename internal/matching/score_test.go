package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampScore(t *testing.T) {
	assert.Equal(t, 1.0, ClampScore(1.4))
	assert.Equal(t, 0.0, ClampScore(-0.2))
	assert.Equal(t, 0.73, ClampScore(0.73))
	assert.Equal(t, 0.0, ClampScore(0))
	assert.Equal(t, 1.0, ClampScore(1))
	assert.Equal(t, 0.0, ClampScore(math.NaN()))
}

func TestBucket(t *testing.T) {
	assert.Equal(t, "Excellent", Bucket(1.0))
	assert.Equal(t, "Excellent", Bucket(0.8))
	assert.Equal(t, "Good", Bucket(0.79))
	assert.Equal(t, "Good", Bucket(0.6))
	assert.Equal(t, "Fair", Bucket(0.59))
	assert.Equal(t, "Fair", Bucket(0.4))
	assert.Equal(t, "Poor", Bucket(0.39))
	assert.Equal(t, "Poor", Bucket(0))
}

func TestNormalizeTopK(t *testing.T) {
	assert.Equal(t, DefaultTopK, NormalizeTopK(0))
	assert.Equal(t, DefaultTopK, NormalizeTopK(-3))
	assert.Equal(t, 5, NormalizeTopK(5))
	assert.Equal(t, MaxTopK, NormalizeTopK(500))
}
