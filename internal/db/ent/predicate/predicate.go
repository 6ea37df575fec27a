// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Tunnel is the predicate function for tunnel builders.
type Tunnel func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
