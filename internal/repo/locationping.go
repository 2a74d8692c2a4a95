// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sumit1004/neurolink_backend/internal/repo/locationping"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
)

// LocationPing is the model entity for the LocationPing schema.
type LocationPing struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FK → patients.id
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat float64 `json:"lat,omitempty"`
	// Lon holds the value of the "lon" field.
	Lon float64 `json:"lon,omitempty"`
	// reported accuracy radius in meters
	Accuracy *float64 `json:"accuracy,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LocationPingQuery when eager-loading is set.
	Edges        LocationPingEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LocationPingEdges holds the relations/edges for other nodes in the graph.
type LocationPingEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LocationPingEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LocationPing) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case locationping.FieldLat, locationping.FieldLon, locationping.FieldAccuracy:
			values[i] = new(sql.NullFloat64)
		case locationping.FieldCreatedAt, locationping.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		case locationping.FieldID, locationping.FieldPatientID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LocationPing fields.
func (_m *LocationPing) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case locationping.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case locationping.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case locationping.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case locationping.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = value.Float64
			}
		case locationping.FieldLon:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lon", values[i])
			} else if value.Valid {
				_m.Lon = value.Float64
			}
		case locationping.FieldAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field accuracy", values[i])
			} else if value.Valid {
				_m.Accuracy = new(float64)
				*_m.Accuracy = value.Float64
			}
		case locationping.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LocationPing.
// This includes values selected through modifiers, order, etc.
func (_m *LocationPing) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the LocationPing entity.
func (_m *LocationPing) QueryPatient() *PatientQuery {
	return NewLocationPingClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this LocationPing.
// Note that you need to call LocationPing.Unwrap() before calling this method if this LocationPing
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LocationPing) Update() *LocationPingUpdateOne {
	return NewLocationPingClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LocationPing entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LocationPing) Unwrap() *LocationPing {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: LocationPing is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LocationPing) String() string {
	var builder strings.Builder
	builder.WriteString("LocationPing(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("lat=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lat))
	builder.WriteString(", ")
	builder.WriteString("lon=")
	builder.WriteString(fmt.Sprintf("%v", _m.Lon))
	builder.WriteString(", ")
	if v := _m.Accuracy; v != nil {
		builder.WriteString("accuracy=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LocationPings is a parsable slice of LocationPing.
type LocationPings []*LocationPing
