// File: pkg/storage/model.go
package storage

import (
	"fmt"
	"wormbucket/pkg/common"
)

// Region that must not be sent as an explicit location constraint
const DefaultRegion = "us-east-1"

type RetentionMode string

const (
	// Retention that no principal can shorten or remove, root included
	Compliance RetentionMode = "COMPLIANCE"
	// Retention that principals holding the bypass permission may override
	Governance RetentionMode = "GOVERNANCE"
)

func (m RetentionMode) String() string {
	return string(m)
}

func (m RetentionMode) IsValid() bool {
	return m == Compliance || m == Governance
}

// Returns the supported retention modes in display order
func RetentionModes() []RetentionMode {
	return []RetentionMode{Compliance, Governance}
}

// Parses a retention mode. Matching is case-sensitive
func ParseRetentionMode(s string) (RetentionMode, error) {
	m := RetentionMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid retention mode %q: must be one of %v", s, RetentionModes())
	}
	return m, nil
}

type RetentionPolicy struct {
	Mode RetentionMode
	// Not range-checked locally; the provider decides what it accepts
	Days int32
}

// Reports whether a create-bucket request for the region carries a location constraint
func NeedsLocationConstraint(region string) bool {
	return region != DefaultRegion
}

// Describes a bucket that went through the full provisioning sequence
type ProvisionResult struct {
	Bucket             string          `json:"bucket" yaml:"bucket"`
	Provider           common.Provider `json:"provider" yaml:"provider"`
	Endpoint           string          `json:"endpoint" yaml:"endpoint"`
	Region             string          `json:"region" yaml:"region"`
	LocationConstraint bool            `json:"locationConstraint" yaml:"locationConstraint"`
	VersioningEnabled  bool            `json:"versioningEnabled" yaml:"versioningEnabled"`
	RetentionMode      RetentionMode   `json:"retentionMode" yaml:"retentionMode"`
	RetentionDays      int32           `json:"retentionDays" yaml:"retentionDays"`
}
