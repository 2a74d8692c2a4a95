// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/sumit1004/neurolink_backend/internal/repo/alert"
	"github.com/sumit1004/neurolink_backend/internal/repo/conversation"
	"github.com/sumit1004/neurolink_backend/internal/repo/doctorcontact"
	"github.com/sumit1004/neurolink_backend/internal/repo/healthrecord"
	"github.com/sumit1004/neurolink_backend/internal/repo/knownperson"
	"github.com/sumit1004/neurolink_backend/internal/repo/locationping"
	"github.com/sumit1004/neurolink_backend/internal/repo/patient"
	"github.com/sumit1004/neurolink_backend/internal/repo/routine"
	"github.com/sumit1004/neurolink_backend/internal/repo/task"
	"github.com/sumit1004/neurolink_backend/internal/repo/user"
	"github.com/sumit1004/neurolink_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	alertMixin := schema.Alert{}.Mixin()
	alertMixinFields0 := alertMixin[0].Fields()
	_ = alertMixinFields0
	alertMixinFields1 := alertMixin[1].Fields()
	_ = alertMixinFields1
	alertFields := schema.Alert{}.Fields()
	_ = alertFields
	// alertDescCreatedAt is the schema descriptor for created_at field.
	alertDescCreatedAt := alertMixinFields1[0].Descriptor()
	// alert.DefaultCreatedAt holds the default value on creation for the created_at field.
	alert.DefaultCreatedAt = alertDescCreatedAt.Default.(func() time.Time)
	// alertDescID is the schema descriptor for id field.
	alertDescID := alertMixinFields0[0].Descriptor()
	// alert.DefaultID holds the default value on creation for the id field.
	alert.DefaultID = alertDescID.Default.(func() uuid.UUID)
	conversationMixin := schema.Conversation{}.Mixin()
	conversationMixinFields0 := conversationMixin[0].Fields()
	_ = conversationMixinFields0
	conversationMixinFields1 := conversationMixin[1].Fields()
	_ = conversationMixinFields1
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationMixinFields1[0].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescPersonName is the schema descriptor for person_name field.
	conversationDescPersonName := conversationFields[1].Descriptor()
	// conversation.PersonNameValidator is a validator for the "person_name" field. It is called by the builders before save.
	conversation.PersonNameValidator = conversationDescPersonName.Validators[0].(func(string) error)
	// conversationDescAudioURL is the schema descriptor for audio_url field.
	conversationDescAudioURL := conversationFields[4].Descriptor()
	// conversation.AudioURLValidator is a validator for the "audio_url" field. It is called by the builders before save.
	conversation.AudioURLValidator = conversationDescAudioURL.Validators[0].(func(string) error)
	// conversationDescOccurredAt is the schema descriptor for occurred_at field.
	conversationDescOccurredAt := conversationFields[5].Descriptor()
	// conversation.DefaultOccurredAt holds the default value on creation for the occurred_at field.
	conversation.DefaultOccurredAt = conversationDescOccurredAt.Default.(func() time.Time)
	// conversationDescID is the schema descriptor for id field.
	conversationDescID := conversationMixinFields0[0].Descriptor()
	// conversation.DefaultID holds the default value on creation for the id field.
	conversation.DefaultID = conversationDescID.Default.(func() uuid.UUID)
	doctorcontactMixin := schema.DoctorContact{}.Mixin()
	doctorcontactMixinFields0 := doctorcontactMixin[0].Fields()
	_ = doctorcontactMixinFields0
	doctorcontactMixinFields1 := doctorcontactMixin[1].Fields()
	_ = doctorcontactMixinFields1
	doctorcontactFields := schema.DoctorContact{}.Fields()
	_ = doctorcontactFields
	// doctorcontactDescCreatedAt is the schema descriptor for created_at field.
	doctorcontactDescCreatedAt := doctorcontactMixinFields1[0].Descriptor()
	// doctorcontact.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctorcontact.DefaultCreatedAt = doctorcontactDescCreatedAt.Default.(func() time.Time)
	// doctorcontactDescUpdatedAt is the schema descriptor for updated_at field.
	doctorcontactDescUpdatedAt := doctorcontactMixinFields1[1].Descriptor()
	// doctorcontact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctorcontact.DefaultUpdatedAt = doctorcontactDescUpdatedAt.Default.(func() time.Time)
	// doctorcontact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctorcontact.UpdateDefaultUpdatedAt = doctorcontactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorcontactDescName is the schema descriptor for name field.
	doctorcontactDescName := doctorcontactFields[1].Descriptor()
	// doctorcontact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	doctorcontact.NameValidator = doctorcontactDescName.Validators[0].(func(string) error)
	// doctorcontactDescSpeciality is the schema descriptor for speciality field.
	doctorcontactDescSpeciality := doctorcontactFields[2].Descriptor()
	// doctorcontact.SpecialityValidator is a validator for the "speciality" field. It is called by the builders before save.
	doctorcontact.SpecialityValidator = doctorcontactDescSpeciality.Validators[0].(func(string) error)
	// doctorcontactDescPhone is the schema descriptor for phone field.
	doctorcontactDescPhone := doctorcontactFields[3].Descriptor()
	// doctorcontact.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	doctorcontact.PhoneValidator = doctorcontactDescPhone.Validators[0].(func(string) error)
	// doctorcontactDescEmail is the schema descriptor for email field.
	doctorcontactDescEmail := doctorcontactFields[4].Descriptor()
	// doctorcontact.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	doctorcontact.EmailValidator = doctorcontactDescEmail.Validators[0].(func(string) error)
	// doctorcontactDescID is the schema descriptor for id field.
	doctorcontactDescID := doctorcontactMixinFields0[0].Descriptor()
	// doctorcontact.DefaultID holds the default value on creation for the id field.
	doctorcontact.DefaultID = doctorcontactDescID.Default.(func() uuid.UUID)
	healthrecordMixin := schema.HealthRecord{}.Mixin()
	healthrecordMixinFields0 := healthrecordMixin[0].Fields()
	_ = healthrecordMixinFields0
	healthrecordMixinFields1 := healthrecordMixin[1].Fields()
	_ = healthrecordMixinFields1
	healthrecordFields := schema.HealthRecord{}.Fields()
	_ = healthrecordFields
	// healthrecordDescCreatedAt is the schema descriptor for created_at field.
	healthrecordDescCreatedAt := healthrecordMixinFields1[0].Descriptor()
	// healthrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	healthrecord.DefaultCreatedAt = healthrecordDescCreatedAt.Default.(func() time.Time)
	// healthrecordDescUpdatedAt is the schema descriptor for updated_at field.
	healthrecordDescUpdatedAt := healthrecordMixinFields1[1].Descriptor()
	// healthrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	healthrecord.DefaultUpdatedAt = healthrecordDescUpdatedAt.Default.(func() time.Time)
	// healthrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	healthrecord.UpdateDefaultUpdatedAt = healthrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	// healthrecordDescTitle is the schema descriptor for title field.
	healthrecordDescTitle := healthrecordFields[1].Descriptor()
	// healthrecord.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	healthrecord.TitleValidator = healthrecordDescTitle.Validators[0].(func(string) error)
	// healthrecordDescFileURL is the schema descriptor for file_url field.
	healthrecordDescFileURL := healthrecordFields[2].Descriptor()
	// healthrecord.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	healthrecord.FileURLValidator = healthrecordDescFileURL.Validators[0].(func(string) error)
	// healthrecordDescFileKey is the schema descriptor for file_key field.
	healthrecordDescFileKey := healthrecordFields[3].Descriptor()
	// healthrecord.FileKeyValidator is a validator for the "file_key" field. It is called by the builders before save.
	healthrecord.FileKeyValidator = healthrecordDescFileKey.Validators[0].(func(string) error)
	// healthrecordDescID is the schema descriptor for id field.
	healthrecordDescID := healthrecordMixinFields0[0].Descriptor()
	// healthrecord.DefaultID holds the default value on creation for the id field.
	healthrecord.DefaultID = healthrecordDescID.Default.(func() uuid.UUID)
	knownpersonMixin := schema.KnownPerson{}.Mixin()
	knownpersonMixinFields0 := knownpersonMixin[0].Fields()
	_ = knownpersonMixinFields0
	knownpersonMixinFields1 := knownpersonMixin[1].Fields()
	_ = knownpersonMixinFields1
	knownpersonFields := schema.KnownPerson{}.Fields()
	_ = knownpersonFields
	// knownpersonDescCreatedAt is the schema descriptor for created_at field.
	knownpersonDescCreatedAt := knownpersonMixinFields1[0].Descriptor()
	// knownperson.DefaultCreatedAt holds the default value on creation for the created_at field.
	knownperson.DefaultCreatedAt = knownpersonDescCreatedAt.Default.(func() time.Time)
	// knownpersonDescUpdatedAt is the schema descriptor for updated_at field.
	knownpersonDescUpdatedAt := knownpersonMixinFields1[1].Descriptor()
	// knownperson.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	knownperson.DefaultUpdatedAt = knownpersonDescUpdatedAt.Default.(func() time.Time)
	// knownperson.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	knownperson.UpdateDefaultUpdatedAt = knownpersonDescUpdatedAt.UpdateDefault.(func() time.Time)
	// knownpersonDescName is the schema descriptor for name field.
	knownpersonDescName := knownpersonFields[1].Descriptor()
	// knownperson.NameValidator is a validator for the "name" field. It is called by the builders before save.
	knownperson.NameValidator = knownpersonDescName.Validators[0].(func(string) error)
	// knownpersonDescRelation is the schema descriptor for relation field.
	knownpersonDescRelation := knownpersonFields[2].Descriptor()
	// knownperson.RelationValidator is a validator for the "relation" field. It is called by the builders before save.
	knownperson.RelationValidator = knownpersonDescRelation.Validators[0].(func(string) error)
	// knownpersonDescPhotoURL is the schema descriptor for photo_url field.
	knownpersonDescPhotoURL := knownpersonFields[4].Descriptor()
	// knownperson.PhotoURLValidator is a validator for the "photo_url" field. It is called by the builders before save.
	knownperson.PhotoURLValidator = knownpersonDescPhotoURL.Validators[0].(func(string) error)
	// knownpersonDescPhotoKey is the schema descriptor for photo_key field.
	knownpersonDescPhotoKey := knownpersonFields[5].Descriptor()
	// knownperson.PhotoKeyValidator is a validator for the "photo_key" field. It is called by the builders before save.
	knownperson.PhotoKeyValidator = knownpersonDescPhotoKey.Validators[0].(func(string) error)
	// knownpersonDescID is the schema descriptor for id field.
	knownpersonDescID := knownpersonMixinFields0[0].Descriptor()
	// knownperson.DefaultID holds the default value on creation for the id field.
	knownperson.DefaultID = knownpersonDescID.Default.(func() uuid.UUID)
	locationpingMixin := schema.LocationPing{}.Mixin()
	locationpingMixinFields0 := locationpingMixin[0].Fields()
	_ = locationpingMixinFields0
	locationpingMixinFields1 := locationpingMixin[1].Fields()
	_ = locationpingMixinFields1
	locationpingFields := schema.LocationPing{}.Fields()
	_ = locationpingFields
	// locationpingDescCreatedAt is the schema descriptor for created_at field.
	locationpingDescCreatedAt := locationpingMixinFields1[0].Descriptor()
	// locationping.DefaultCreatedAt holds the default value on creation for the created_at field.
	locationping.DefaultCreatedAt = locationpingDescCreatedAt.Default.(func() time.Time)
	// locationpingDescRecordedAt is the schema descriptor for recorded_at field.
	locationpingDescRecordedAt := locationpingFields[4].Descriptor()
	// locationping.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	locationping.DefaultRecordedAt = locationpingDescRecordedAt.Default.(func() time.Time)
	// locationpingDescID is the schema descriptor for id field.
	locationpingDescID := locationpingMixinFields0[0].Descriptor()
	// locationping.DefaultID holds the default value on creation for the id field.
	locationping.DefaultID = locationpingDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescDisplayName is the schema descriptor for display_name field.
	patientDescDisplayName := patientFields[1].Descriptor()
	// patient.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	patient.DisplayNameValidator = patientDescDisplayName.Validators[0].(func(string) error)
	// patientDescAddress is the schema descriptor for address field.
	patientDescAddress := patientFields[3].Descriptor()
	// patient.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	patient.AddressValidator = patientDescAddress.Validators[0].(func(string) error)
	// patientDescPhotoURL is the schema descriptor for photo_url field.
	patientDescPhotoURL := patientFields[4].Descriptor()
	// patient.PhotoURLValidator is a validator for the "photo_url" field. It is called by the builders before save.
	patient.PhotoURLValidator = patientDescPhotoURL.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	routineMixin := schema.Routine{}.Mixin()
	routineMixinFields0 := routineMixin[0].Fields()
	_ = routineMixinFields0
	routineMixinFields1 := routineMixin[1].Fields()
	_ = routineMixinFields1
	routineFields := schema.Routine{}.Fields()
	_ = routineFields
	// routineDescCreatedAt is the schema descriptor for created_at field.
	routineDescCreatedAt := routineMixinFields1[0].Descriptor()
	// routine.DefaultCreatedAt holds the default value on creation for the created_at field.
	routine.DefaultCreatedAt = routineDescCreatedAt.Default.(func() time.Time)
	// routineDescUpdatedAt is the schema descriptor for updated_at field.
	routineDescUpdatedAt := routineMixinFields1[1].Descriptor()
	// routine.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	routine.DefaultUpdatedAt = routineDescUpdatedAt.Default.(func() time.Time)
	// routine.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	routine.UpdateDefaultUpdatedAt = routineDescUpdatedAt.UpdateDefault.(func() time.Time)
	// routineDescTitle is the schema descriptor for title field.
	routineDescTitle := routineFields[1].Descriptor()
	// routine.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	routine.TitleValidator = routineDescTitle.Validators[0].(func(string) error)
	// routineDescActive is the schema descriptor for active field.
	routineDescActive := routineFields[3].Descriptor()
	// routine.DefaultActive holds the default value on creation for the active field.
	routine.DefaultActive = routineDescActive.Default.(bool)
	// routineDescID is the schema descriptor for id field.
	routineDescID := routineMixinFields0[0].Descriptor()
	// routine.DefaultID holds the default value on creation for the id field.
	routine.DefaultID = routineDescID.Default.(func() uuid.UUID)
	taskMixin := schema.Task{}.Mixin()
	taskMixinFields0 := taskMixin[0].Fields()
	_ = taskMixinFields0
	taskMixinFields1 := taskMixin[1].Fields()
	_ = taskMixinFields1
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskMixinFields1[0].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskMixinFields1[1].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[1].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = taskDescTitle.Validators[0].(func(string) error)
	// taskDescCompleted is the schema descriptor for completed field.
	taskDescCompleted := taskFields[3].Descriptor()
	// task.DefaultCompleted holds the default value on creation for the completed field.
	task.DefaultCompleted = taskDescCompleted.Default.(bool)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskMixinFields0[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[0].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescEmailConfirmed is the schema descriptor for email_confirmed field.
	userDescEmailConfirmed := userFields[3].Descriptor()
	// user.DefaultEmailConfirmed holds the default value on creation for the email_confirmed field.
	user.DefaultEmailConfirmed = userDescEmailConfirmed.Default.(bool)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
