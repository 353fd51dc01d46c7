// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/research-agent/db/ent/schema"
	"github.com/joseph-ayodele/research-agent/gen/ent/checkpoint"
	"github.com/joseph-ayodele/research-agent/gen/ent/job"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	checkpointFields := schema.Checkpoint{}.Fields()
	_ = checkpointFields
	// checkpointDescPosition is the schema descriptor for position field.
	checkpointDescPosition := checkpointFields[2].Descriptor()
	// checkpoint.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	checkpoint.PositionValidator = checkpointDescPosition.Validators[0].(func(string) error)
	// checkpointDescUpdatedAt is the schema descriptor for updated_at field.
	checkpointDescUpdatedAt := checkpointFields[4].Descriptor()
	// checkpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	checkpoint.DefaultUpdatedAt = checkpointDescUpdatedAt.Default.(func() time.Time)
	// checkpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	checkpoint.UpdateDefaultUpdatedAt = checkpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	// checkpointDescID is the schema descriptor for id field.
	checkpointDescID := checkpointFields[0].Descriptor()
	// checkpoint.DefaultID holds the default value on creation for the id field.
	checkpoint.DefaultID = checkpointDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescQuery is the schema descriptor for query field.
	jobDescQuery := jobFields[1].Descriptor()
	// job.QueryValidator is a validator for the "query" field. It is called by the builders before save.
	job.QueryValidator = jobDescQuery.Validators[0].(func(string) error)
	// jobDescExportFormat is the schema descriptor for export_format field.
	jobDescExportFormat := jobFields[2].Descriptor()
	// job.ExportFormatValidator is a validator for the "export_format" field. It is called by the builders before save.
	job.ExportFormatValidator = jobDescExportFormat.Validators[0].(func(string) error)
	// jobDescTone is the schema descriptor for tone field.
	jobDescTone := jobFields[3].Descriptor()
	// job.ToneValidator is a validator for the "tone" field. It is called by the builders before save.
	job.ToneValidator = jobDescTone.Validators[0].(func(string) error)
	// jobDescWordCount is the schema descriptor for word_count field.
	jobDescWordCount := jobFields[4].Descriptor()
	// job.WordCountValidator is a validator for the "word_count" field. It is called by the builders before save.
	job.WordCountValidator = jobDescWordCount.Validators[0].(func(int) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[5].Descriptor()
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[9].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[10].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
}
