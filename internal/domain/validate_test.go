package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_SiteConfigURL(t *testing.T) {
	cfg := DefaultSiteConfig()
	require.NoError(t, Validate(cfg))

	cfg.GoogleScriptURL = "bukan url"
	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tidak sah")

	// An empty URL is the unset endpoint, which is allowed.
	cfg.GoogleScriptURL = ""
	assert.NoError(t, Validate(cfg))
}

func TestValidate_TeacherRequiredFields(t *testing.T) {
	tc := Teacher{ID: NewTeacherID(), Name: "Cikgu Ana", Subject: "Sains"}
	require.NoError(t, Validate(tc))

	tc.Subject = ""
	err := Validate(tc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Subject")
}

func TestValidate_SchoolProfileEmail(t *testing.T) {
	p := DefaultSchoolProfile()
	require.NoError(t, Validate(p))

	p.SchoolEmail = "bukan emel"
	assert.Error(t, Validate(p))
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleAdminSistem.Valid())
	assert.False(t, Role("guru").Valid())
	assert.False(t, Role("").Valid())
}

func TestPermissions_EnabledAndSet(t *testing.T) {
	var p Permissions
	for _, name := range ModuleNames() {
		on, known := p.Enabled(name)
		assert.True(t, known, name)
		assert.False(t, on, name)
	}

	require.True(t, p.Set("kurikulum", true))
	on, known := p.Enabled("kurikulum")
	assert.True(t, known)
	assert.True(t, on)

	assert.False(t, p.Set("sukan", true))
	_, known = p.Enabled("sukan")
	assert.False(t, known)
}
