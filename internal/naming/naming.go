// Package naming generates names for deployment resources.
//
// DNS labels follow the adjective-noun-token "haiku" convention so that
// repeated sample runs get distinct public hostnames without operator
// input.
package naming

import (
	"fmt"

	haikunator "github.com/atrox/haikunatorgo/v2"
)

// DNSLabel returns a random DNS label prefix, e.g. "patient-dew-4405".
func DNSLabel() string {
	return haikunator.New().Haikunate()
}

// FQDN returns the public hostname formed from a DNS label prefix and an
// Azure location, e.g. "patient-dew-4405.westus.cloudapp.azure.com".
func FQDN(dnsLabelPrefix, location string) string {
	return fmt.Sprintf("%s.%s.cloudapp.azure.com", dnsLabelPrefix, location)
}
