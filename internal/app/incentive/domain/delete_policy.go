package domain

import "fmt"

// DeletePolicy decides what happens to programs when their brand is deleted.
type DeletePolicy string

const (
	// DeleteOrphan removes the brand and leaves its programs pointing at the
	// missing id. Joins resolve them to UnknownBrandName.
	DeleteOrphan DeletePolicy = "orphan"
	// DeleteReject refuses to delete a brand that still has programs.
	DeleteReject DeletePolicy = "reject"
	// DeleteCascade removes the brand together with its programs.
	DeleteCascade DeletePolicy = "cascade"
)

// DeletePolicies lists the accepted policies.
var DeletePolicies = []DeletePolicy{DeleteOrphan, DeleteReject, DeleteCascade}

// Valid reports whether p is a known policy.
func (p DeletePolicy) Valid() bool {
	for _, v := range DeletePolicies {
		if p == v {
			return true
		}
	}
	return false
}

// ParseDeletePolicy parses a policy name. The empty string selects DeleteOrphan.
func ParseDeletePolicy(raw string) (DeletePolicy, error) {
	if raw == "" {
		return DeleteOrphan, nil
	}
	if p, ok := parseEnum(raw, DeletePolicies); ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown delete policy %q (want one of %s)", raw, joinValues(DeletePolicies))
}
