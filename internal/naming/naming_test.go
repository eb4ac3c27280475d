package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// dnsLabelRe matches the adjective-noun-token shape, which is also a
// valid Azure DNS label.
var dnsLabelRe = regexp.MustCompile(`^[a-z]+-[a-z]+-\d{4}$`)

func TestDNSLabel_Shape(t *testing.T) {
	for i := 0; i < 20; i++ {
		label := DNSLabel()
		assert.Regexp(t, dnsLabelRe, label)
		assert.LessOrEqual(t, len(label), 63, "DNS labels are limited to 63 characters")
	}
}

func TestDNSLabel_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		seen[DNSLabel()] = true
	}
	assert.Greater(t, len(seen), 1, "labels should not repeat across runs")
}

func TestFQDN(t *testing.T) {
	assert.Equal(t, "foo.westus.cloudapp.azure.com", FQDN("foo", "westus"))
	assert.Equal(t, "long-winter-1234.eastus2.cloudapp.azure.com", FQDN("long-winter-1234", "eastus2"))
}
