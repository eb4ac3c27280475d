package deployer

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// templateJSON is the ARM template provisioning the sample VM: a storage
// account, a public IP with the DNS label, a virtual network, a NIC, and
// an Ubuntu VM that accepts the supplied SSH public key.
//
//go:embed template.json
var templateJSON []byte

// loadTemplate parses the embedded ARM template.
func loadTemplate() (map[string]any, error) {
	var template map[string]any
	if err := json.Unmarshal(templateJSON, &template); err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return template, nil
}

// buildParameters wraps each deployment parameter in the {"value": v}
// shape the deployments API expects.
func buildParameters(sshKeyData, vmName, dnsLabelPrefix string) map[string]any {
	values := map[string]any{
		"sshKeyData":     sshKeyData,
		"vmName":         vmName,
		"dnsLabelPrefix": dnsLabelPrefix,
	}

	parameters := make(map[string]any, len(values))
	for k, v := range values {
		parameters[k] = map[string]any{"value": v}
	}
	return parameters
}
