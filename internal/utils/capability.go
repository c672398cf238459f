package utils

import "github.com/ascend-hq/ascend/internal/entity"

// Capability collapses the five nominal access roles into the two classes the
// UI actually branches on. Derive it once from the stored role string instead
// of comparing role strings at every call site.
type Capability int

const (
	CapabilityContributor Capability = iota
	CapabilityManagement
)

func CapabilityFromRole(role string) Capability {
	switch role {
	case entity.RoleLeader, entity.RoleManager:
		return CapabilityManagement
	default:
		return CapabilityContributor
	}
}

func (c Capability) CanManage() bool {
	return c == CapabilityManagement
}
