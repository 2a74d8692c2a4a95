// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Alert is the predicate function for alert builders.
type Alert func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// DoctorContact is the predicate function for doctorcontact builders.
type DoctorContact func(*sql.Selector)

// HealthRecord is the predicate function for healthrecord builders.
type HealthRecord func(*sql.Selector)

// KnownPerson is the predicate function for knownperson builders.
type KnownPerson func(*sql.Selector)

// LocationPing is the predicate function for locationping builders.
type LocationPing func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Routine is the predicate function for routine builders.
type Routine func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
