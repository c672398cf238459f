package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilityFromRole(t *testing.T) {
	assert.Equal(t, CapabilityManagement, CapabilityFromRole("leader"))
	assert.Equal(t, CapabilityManagement, CapabilityFromRole("manager"))

	assert.Equal(t, CapabilityContributor, CapabilityFromRole("contributor"))
	assert.Equal(t, CapabilityContributor, CapabilityFromRole("intern"))
	assert.Equal(t, CapabilityContributor, CapabilityFromRole("user"))
	assert.Equal(t, CapabilityContributor, CapabilityFromRole(""))
	assert.Equal(t, CapabilityContributor, CapabilityFromRole("Leader"))
}

func TestCanManage(t *testing.T) {
	assert.True(t, CapabilityFromRole("manager").CanManage())
	assert.False(t, CapabilityFromRole("intern").CanManage())
}
