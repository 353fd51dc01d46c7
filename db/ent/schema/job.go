package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/joseph-ayodele/research-agent/constants"
	"github.com/joseph-ayodele/research-agent/db/ent/schema/utils"
)

// Job is the durable record of one research run: the request, the lifecycle
// status, and the terminal outcome. The live state travels in the checkpoint
// row; the job row keeps only what status and result queries need.
type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("query").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("export_format").
			Validate(utils.EnumValidator(
				string(constants.FormatMarkdown),
				string(constants.FormatDocx),
				string(constants.FormatNotion),
			)),
		field.String("tone").
			Validate(utils.EnumValidator(
				string(constants.ToneProfessional),
				string(constants.ToneCasual),
				string(constants.ToneTechnical),
			)),
		field.Int("word_count").Range(constants.MinWordCount, constants.MaxWordCount),
		field.String("status").
			Validate(utils.EnumValidator(
				string(constants.JobStatusPending),
				string(constants.JobStatusProcessing),
				string(constants.JobStatusHITLReview),
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
			)),
		field.String("current_stage").Optional().Nillable(),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
	}
}
