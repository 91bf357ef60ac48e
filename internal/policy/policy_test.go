package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	assert.True(t, RoleManager.Known())
	assert.True(t, RoleStaff.Known())
	assert.False(t, Role("admin").Known())
	assert.False(t, Role("").Known())
}

func TestManagerOnlyCapabilities(t *testing.T) {
	assert.True(t, RoleManager.CanRegisterUsers())
	assert.True(t, RoleManager.CanManageCatalog())
	assert.True(t, RoleManager.CanViewAuditLogs())

	assert.False(t, RoleStaff.CanRegisterUsers())
	assert.False(t, RoleStaff.CanManageCatalog())
	assert.False(t, RoleStaff.CanViewAuditLogs())
}
