package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Checkpoint holds the continuation for a suspended or in-flight job: the
// graph position plus the full pipeline state as JSON. One row per job,
// replaced wholesale on every advance. Deliberately not FK-bound to the job
// table so checkpoint persistence works with or without job archiving.
type Checkpoint struct{ ent.Schema }

func (Checkpoint) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "checkpoint"},
	}
}

func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("job_id", uuid.UUID{}).Unique(),
		field.String("position").NotEmpty(),
		field.JSON("state", json.RawMessage{}),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Checkpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id").Unique(),
	}
}
