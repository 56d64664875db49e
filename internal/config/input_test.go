package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mtax/tax-analyzer/internal/domain"
	"github.com/mtax/tax-analyzer/internal/policy"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	parser := NewInputParser()

	path := writeTempFile(t, "profile.yaml", `
filing_status: married_filing_jointly
ordinary_wages: 80000
ltcg: 15000
social_security_benefit: 30000
is_user_senior: true
is_spouse_senior: false
show_irmaa: true
`)

	profile, err := parser.LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.FilingMarriedFilingJointly, profile.FilingStatus)
	assert.True(t, profile.OrdinaryWages.Equal(decimal.NewFromInt(80000)))
	assert.True(t, profile.LTCG.Equal(decimal.NewFromInt(15000)))
	assert.True(t, profile.SocialSecurity.Equal(decimal.NewFromInt(30000)))
	assert.True(t, profile.IsUserSenior)
	assert.False(t, profile.IsSpouseSenior)
	assert.True(t, profile.ShowIRMAA)
}

func TestLoadProfileMissingFile(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadProfileMalformedYAML(t *testing.T) {
	parser := NewInputParser()
	path := writeTempFile(t, "bad.yaml", "filing_status: [unclosed")
	_, err := parser.LoadProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadProfileValidationFailure(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		content string
	}{
		{"negative wages", "filing_status: single\nordinary_wages: -100\n"},
		{"unknown status", "filing_status: head_of_household\nordinary_wages: 100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "profile.yaml", tt.content)
			_, err := parser.LoadProfile(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestLoadPolicyRoundTrip(t *testing.T) {
	parser := NewInputParser()

	data, err := yaml.Marshal(policy.Default2026())
	require.NoError(t, err)
	path := writeTempFile(t, "policy.yaml", string(data))

	table, err := parser.LoadPolicy(path)
	require.NoError(t, err)
	assert.Equal(t, 2026, table.Year)
	assert.True(t, table.NIITRate.Equal(decimal.NewFromFloat(0.038)))
	assert.True(t, table.Single.StandardDeduction.Equal(decimal.NewFromInt(16100)))
	assert.Len(t, table.MarriedJoint.OrdinaryBrackets, 7)
}

func TestLoadPolicyRejectsBrokenTable(t *testing.T) {
	parser := NewInputParser()

	broken := policy.Default2026()
	broken.Single.OrdinaryBrackets[0].Lower = decimal.NewFromInt(5000)
	data, err := yaml.Marshal(broken)
	require.NoError(t, err)
	path := writeTempFile(t, "policy.yaml", string(data))

	_, err = parser.LoadPolicy(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy table validation failed")
}

func TestLoadPolicyOrDefault(t *testing.T) {
	parser := NewInputParser()

	table, err := parser.LoadPolicyOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, 2026, table.Year)

	_, err = parser.LoadPolicyOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
