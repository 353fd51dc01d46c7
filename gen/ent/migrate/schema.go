// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CheckpointColumns holds the columns for the "checkpoint" table.
	CheckpointColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
		{Name: "position", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CheckpointTable holds the schema information for the "checkpoint" table.
	CheckpointTable = &schema.Table{
		Name:       "checkpoint",
		Columns:    CheckpointColumns,
		PrimaryKey: []*schema.Column{CheckpointColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "checkpoint_job_id",
				Unique:  true,
				Columns: []*schema.Column{CheckpointColumns[1]},
			},
		},
	}
	// JobColumns holds the columns for the "job" table.
	JobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "query", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "export_format", Type: field.TypeString},
		{Name: "tone", Type: field.TypeString},
		{Name: "word_count", Type: field.TypeInt},
		{Name: "status", Type: field.TypeString},
		{Name: "current_stage", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// JobTable holds the schema information for the "job" table.
	JobTable = &schema.Table{
		Name:       "job",
		Columns:    JobColumns,
		PrimaryKey: []*schema.Column{JobColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobColumns[5], JobColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CheckpointTable,
		JobTable,
	}
)

func init() {
	CheckpointTable.Annotation = &entsql.Annotation{
		Table: "checkpoint",
	}
	JobTable.Annotation = &entsql.Annotation{
		Table: "job",
	}
}
