// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Node Permissions

// Permission is a grant the upstream API reports for the current viewer on a node.
type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"

	// PermissionAdmin is required to open the edit form of a preprint.
	PermissionAdmin Permission = "admin"
)

// Permissions is the permission set of the current viewer on a node.
type Permissions []Permission

// Has reports whether target is a member of the set.
func (p Permissions) Has(target Permission) bool {
	for _, permission := range p {
		if permission == target {
			return true
		}
	}
	return false
}
