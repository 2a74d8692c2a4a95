// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/repo/user"
	"github.com/sumit1004/neurolink_backend/internal/schema"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → users.id (the managing caregiver)
	UserID uuid.UUID `json:"user_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// DateOfBirth holds the value of the "date_of_birth" field.
	DateOfBirth time.Time `json:"date_of_birth,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// PhotoURL holds the value of the "photo_url" field.
	PhotoURL *string `json:"photo_url,omitempty"`
	// ConditionNotes holds the value of the "condition_notes" field.
	ConditionNotes *string `json:"condition_notes,omitempty"`
	// EmergencyContact holds the value of the "emergency_contact" field.
	EmergencyContact *schema.EmergencyContact `json:"emergency_contact,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Routines holds the value of the routines edge.
	Routines []*Routine `json:"routines,omitempty"`
	// KnownPeople holds the value of the known_people edge.
	KnownPeople []*KnownPerson `json:"known_people,omitempty"`
	// DoctorContacts holds the value of the doctor_contacts edge.
	DoctorContacts []*DoctorContact `json:"doctor_contacts,omitempty"`
	// HealthRecords holds the value of the health_records edge.
	HealthRecords []*HealthRecord `json:"health_records,omitempty"`
	// Conversations holds the value of the conversations edge.
	Conversations []*Conversation `json:"conversations,omitempty"`
	// Alerts holds the value of the alerts edge.
	Alerts []*Alert `json:"alerts,omitempty"`
	// LocationPings holds the value of the location_pings edge.
	LocationPings []*LocationPing `json:"location_pings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [8]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PatientEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// RoutinesOrErr returns the Routines value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) RoutinesOrErr() ([]*Routine, error) {
	if e.loadedTypes[1] {
		return e.Routines, nil
	}
	return nil, &NotLoadedError{edge: "routines"}
}

// KnownPeopleOrErr returns the KnownPeople value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) KnownPeopleOrErr() ([]*KnownPerson, error) {
	if e.loadedTypes[2] {
		return e.KnownPeople, nil
	}
	return nil, &NotLoadedError{edge: "known_people"}
}

// DoctorContactsOrErr returns the DoctorContacts value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) DoctorContactsOrErr() ([]*DoctorContact, error) {
	if e.loadedTypes[3] {
		return e.DoctorContacts, nil
	}
	return nil, &NotLoadedError{edge: "doctor_contacts"}
}

// HealthRecordsOrErr returns the HealthRecords value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) HealthRecordsOrErr() ([]*HealthRecord, error) {
	if e.loadedTypes[4] {
		return e.HealthRecords, nil
	}
	return nil, &NotLoadedError{edge: "health_records"}
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) ConversationsOrErr() ([]*Conversation, error) {
	if e.loadedTypes[5] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// AlertsOrErr returns the Alerts value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) AlertsOrErr() ([]*Alert, error) {
	if e.loadedTypes[6] {
		return e.Alerts, nil
	}
	return nil, &NotLoadedError{edge: "alerts"}
}

// LocationPingsOrErr returns the LocationPings value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) LocationPingsOrErr() ([]*LocationPing, error) {
	if e.loadedTypes[7] {
		return e.LocationPings, nil
	}
	return nil, &NotLoadedError{edge: "location_pings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldEmergencyContact:
			values[i] = new([]byte)
		case patient.FieldDisplayName, patient.FieldAddress, patient.FieldPhotoURL, patient.FieldConditionNotes:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt, patient.FieldDateOfBirth:
			values[i] = new(sql.NullTime)
		case patient.FieldID, patient.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case patient.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case patient.FieldDateOfBirth:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date_of_birth", values[i])
			} else if value.Valid {
				_m.DateOfBirth = value.Time
			}
		case patient.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case patient.FieldPhotoURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field photo_url", values[i])
			} else if value.Valid {
				_m.PhotoURL = new(string)
				*_m.PhotoURL = value.String
			}
		case patient.FieldConditionNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field condition_notes", values[i])
			} else if value.Valid {
				_m.ConditionNotes = new(string)
				*_m.ConditionNotes = value.String
			}
		case patient.FieldEmergencyContact:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field emergency_contact", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EmergencyContact); err != nil {
					return fmt.Errorf("unmarshal field emergency_contact: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the Patient entity.
func (_m *Patient) QueryUser() *UserQuery {
	return NewPatientClient(_m.config).QueryUser(_m)
}

// QueryRoutines queries the "routines" edge of the Patient entity.
func (_m *Patient) QueryRoutines() *RoutineQuery {
	return NewPatientClient(_m.config).QueryRoutines(_m)
}

// QueryKnownPeople queries the "known_people" edge of the Patient entity.
func (_m *Patient) QueryKnownPeople() *KnownPersonQuery {
	return NewPatientClient(_m.config).QueryKnownPeople(_m)
}

// QueryDoctorContacts queries the "doctor_contacts" edge of the Patient entity.
func (_m *Patient) QueryDoctorContacts() *DoctorContactQuery {
	return NewPatientClient(_m.config).QueryDoctorContacts(_m)
}

// QueryHealthRecords queries the "health_records" edge of the Patient entity.
func (_m *Patient) QueryHealthRecords() *HealthRecordQuery {
	return NewPatientClient(_m.config).QueryHealthRecords(_m)
}

// QueryConversations queries the "conversations" edge of the Patient entity.
func (_m *Patient) QueryConversations() *ConversationQuery {
	return NewPatientClient(_m.config).QueryConversations(_m)
}

// QueryAlerts queries the "alerts" edge of the Patient entity.
func (_m *Patient) QueryAlerts() *AlertQuery {
	return NewPatientClient(_m.config).QueryAlerts(_m)
}

// QueryLocationPings queries the "location_pings" edge of the Patient entity.
func (_m *Patient) QueryLocationPings() *LocationPingQuery {
	return NewPatientClient(_m.config).QueryLocationPings(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	builder.WriteString("date_of_birth=")
	builder.WriteString(_m.DateOfBirth.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PhotoURL; v != nil {
		builder.WriteString("photo_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConditionNotes; v != nil {
		builder.WriteString("condition_notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("emergency_contact=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmergencyContact))
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
