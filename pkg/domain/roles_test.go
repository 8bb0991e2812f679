package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseRole_ClosedSet validates that the authorization boundary only
// recognizes the closed role set; everything else reads as unknown.
func TestParseRole_ClosedSet(t *testing.T) {
	tests := []struct {
		label string
		want  Role
		known bool
	}{
		{"admin", RoleAdmin, true},
		{"Admin", RoleAdmin, true},
		{"  territory_manager ", RoleTerritoryManager, true},
		{"dealer", RoleDealer, true},
		{"finance", RoleFinance, true},
		{"employee", RoleEmployee, true},
		{"superadmin", "superadmin", false},
		{"", "", false},
		{"root", "root", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, known := ParseRole(tt.label)
			assert.Equal(t, tt.known, known)
			if tt.known {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	t.Run("known roles use curated labels", func(t *testing.T) {
		assert.Equal(t, "Territory Manager", DisplayName(RoleTerritoryManager))
		assert.Equal(t, "Admin", DisplayName(RoleAdmin))
	})

	t.Run("unknown roles fall back to title case", func(t *testing.T) {
		assert.Equal(t, "Regional Auditor", DisplayName(Role("regional_auditor")))
	})
}
