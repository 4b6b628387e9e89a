package models

import "fmt"

// DeploymentType classifies a deployment environment.
type DeploymentType string

const (
	TypePreview DeploymentType = "preview"
	TypeDev     DeploymentType = "dev"
	TypeProd    DeploymentType = "prod"
)

// ValidTypes returns the deployment types the API knows about.
func ValidTypes() []DeploymentType {
	return []DeploymentType{TypePreview, TypeDev, TypeProd}
}

// ParseType validates a user-supplied type string.
func ParseType(s string) (DeploymentType, error) {
	switch DeploymentType(s) {
	case TypePreview, TypeDev, TypeProd:
		return DeploymentType(s), nil
	}
	return "", fmt.Errorf("invalid deployment type %q (valid: preview, dev, prod)", s)
}

// Deployment is one deployment record from a project listing. Values are
// constructed fresh from each listing response and never mutated.
type Deployment struct {
	Name      string         `json:"name"`
	Type      DeploymentType `json:"deploymentType"`
	Region    string         `json:"region,omitempty"`
	IsDefault bool           `json:"isDefault"`
}

// ParseRecord converts one raw listing record into a Deployment. Records
// without a string name or deploymentType are rejected; region and isDefault
// fall back to zero values when missing or mistyped. The API schema may grow
// fields we do not know about, so partial data is tolerated rather than fatal.
func ParseRecord(record map[string]any) (Deployment, bool) {
	name, ok := record["name"].(string)
	if !ok || name == "" {
		return Deployment{}, false
	}
	typ, ok := record["deploymentType"].(string)
	if !ok || typ == "" {
		return Deployment{}, false
	}

	d := Deployment{
		Name: name,
		Type: DeploymentType(typ),
	}
	if region, ok := record["region"].(string); ok {
		d.Region = region
	}
	if isDefault, ok := record["isDefault"].(bool); ok {
		d.IsDefault = isDefault
	}
	return d, true
}

// ParseRecords converts a raw listing into Deployments, silently dropping
// malformed entries.
func ParseRecords(records []map[string]any) []Deployment {
	deployments := make([]Deployment, 0, len(records))
	for _, record := range records {
		if d, ok := ParseRecord(record); ok {
			deployments = append(deployments, d)
		}
	}
	return deployments
}
