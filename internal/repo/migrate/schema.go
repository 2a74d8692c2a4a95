// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AlertsColumns holds the columns for the "alerts" table.
	AlertsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"unknown_person", "fall", "wandering", "sos", "other"}, Default: "other"},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AlertsTable holds the schema information for the "alerts" table.
	AlertsTable = &schema.Table{
		Name:       "alerts",
		Columns:    AlertsColumns,
		PrimaryKey: []*schema.Column{AlertsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "alerts_patients_alerts",
				Columns:    []*schema.Column{AlertsColumns[4]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "alert_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[4], AlertsColumns[1]},
			},
			{
				Name:    "alert_patient_id_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{AlertsColumns[4], AlertsColumns[2], AlertsColumns[1]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "person_name", Type: field.TypeString, Size: 100},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "transcript", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "audio_url", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_patients_conversations",
				Columns:    []*schema.Column{ConversationsColumns[7]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_patient_id_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[7], ConversationsColumns[6]},
			},
		},
	}
	// DoctorContactsColumns holds the columns for the "doctor_contacts" table.
	DoctorContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "speciality", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// DoctorContactsTable holds the schema information for the "doctor_contacts" table.
	DoctorContactsTable = &schema.Table{
		Name:       "doctor_contacts",
		Columns:    DoctorContactsColumns,
		PrimaryKey: []*schema.Column{DoctorContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doctor_contacts_patients_doctor_contacts",
				Columns:    []*schema.Column{DoctorContactsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "doctorcontact_patient_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorContactsColumns[8]},
			},
		},
	}
	// HealthRecordsColumns holds the columns for the "health_records" table.
	HealthRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "file_url", Type: field.TypeString, Size: 512},
		{Name: "file_key", Type: field.TypeString, Size: 512},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// HealthRecordsTable holds the schema information for the "health_records" table.
	HealthRecordsTable = &schema.Table{
		Name:       "health_records",
		Columns:    HealthRecordsColumns,
		PrimaryKey: []*schema.Column{HealthRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "health_records_patients_health_records",
				Columns:    []*schema.Column{HealthRecordsColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "healthrecord_patient_id",
				Unique:  false,
				Columns: []*schema.Column{HealthRecordsColumns[6]},
			},
		},
	}
	// KnownPersonsColumns holds the columns for the "known_persons" table.
	KnownPersonsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "relation", Type: field.TypeString, Size: 50},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "photo_url", Type: field.TypeString, Size: 512},
		{Name: "photo_key", Type: field.TypeString, Size: 512},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// KnownPersonsTable holds the schema information for the "known_persons" table.
	KnownPersonsTable = &schema.Table{
		Name:       "known_persons",
		Columns:    KnownPersonsColumns,
		PrimaryKey: []*schema.Column{KnownPersonsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "known_persons_patients_known_people",
				Columns:    []*schema.Column{KnownPersonsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "knownperson_patient_id",
				Unique:  false,
				Columns: []*schema.Column{KnownPersonsColumns[8]},
			},
		},
	}
	// LocationPingsColumns holds the columns for the "location_pings" table.
	LocationPingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "lat", Type: field.TypeFloat64},
		{Name: "lon", Type: field.TypeFloat64},
		{Name: "accuracy", Type: field.TypeFloat64, Nullable: true},
		{Name: "recorded_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// LocationPingsTable holds the schema information for the "location_pings" table.
	LocationPingsTable = &schema.Table{
		Name:       "location_pings",
		Columns:    LocationPingsColumns,
		PrimaryKey: []*schema.Column{LocationPingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "location_pings_patients_location_pings",
				Columns:    []*schema.Column{LocationPingsColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "locationping_patient_id_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{LocationPingsColumns[6], LocationPingsColumns[5]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "display_name", Type: field.TypeString, Size: 100},
		{Name: "date_of_birth", Type: field.TypeTime},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "photo_url", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "condition_notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "emergency_contact", Type: field.TypeJSON, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patients",
				Columns:    []*schema.Column{PatientsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[9]},
			},
		},
	}
	// RoutinesColumns holds the columns for the "routines" table.
	RoutinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "schedule", Type: field.TypeJSON},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// RoutinesTable holds the schema information for the "routines" table.
	RoutinesTable = &schema.Table{
		Name:       "routines",
		Columns:    RoutinesColumns,
		PrimaryKey: []*schema.Column{RoutinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "routines_patients_routines",
				Columns:    []*schema.Column{RoutinesColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "routine_patient_id",
				Unique:  false,
				Columns: []*schema.Column{RoutinesColumns[6]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "routine_id", Type: field.TypeUUID},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_routines_tasks",
				Columns:    []*schema.Column{TasksColumns[7]},
				RefColumns: []*schema.Column{RoutinesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_routine_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
			{
				Name:    "task_routine_id_completed",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "email_confirmed", Type: field.TypeBool, Default: false},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "suspended"}, Default: "active"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AlertsTable,
		ConversationsTable,
		DoctorContactsTable,
		HealthRecordsTable,
		KnownPersonsTable,
		LocationPingsTable,
		PatientsTable,
		RoutinesTable,
		TasksTable,
		UsersTable,
	}
)

func init() {
	AlertsTable.ForeignKeys[0].RefTable = PatientsTable
	ConversationsTable.ForeignKeys[0].RefTable = PatientsTable
	DoctorContactsTable.ForeignKeys[0].RefTable = PatientsTable
	HealthRecordsTable.ForeignKeys[0].RefTable = PatientsTable
	KnownPersonsTable.ForeignKeys[0].RefTable = PatientsTable
	LocationPingsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	RoutinesTable.ForeignKeys[0].RefTable = PatientsTable
	TasksTable.ForeignKeys[0].RefTable = RoutinesTable
}
