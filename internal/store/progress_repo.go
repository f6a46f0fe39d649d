package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/mpelletier/liaison/internal/progress"
)

// DefaultProgressKey is the storage key for the single-learner desktop
// deployment. Multi-user hosts supply their own keys.
const DefaultProgressKey = "user-progress"

// ProgressRepo loads and saves UserProgress documents.
type ProgressRepo interface {
	// Load returns the stored progress for key, or (nil, nil) when no
	// progress exists yet or the stored document is corrupt — callers
	// start fresh in both cases.
	Load(ctx context.Context, key string) (*progress.UserProgress, error)

	// Save stores the progress document under key, replacing any
	// previous version.
	Save(ctx context.Context, key string, p *progress.UserProgress) error

	// Delete removes the stored progress for key.
	Delete(ctx context.Context, key string) error
}

// progressSchema validates stored documents before unmarshalling, so a
// corrupted or foreign payload is detected up front instead of surfacing
// as half-initialized state.
const progressSchema = `{
	"type": "object",
	"properties": {
		"rulesMastery": {
			"type": "object",
			"additionalProperties": {
				"type": "object",
				"properties": {
					"ruleId": {"type": "string"},
					"attempts": {"type": "integer", "minimum": 0},
					"correct": {"type": "integer", "minimum": 0},
					"level": {"type": "integer", "minimum": 1, "maximum": 4},
					"totalPoints": {"type": "integer", "minimum": 0}
				},
				"required": ["ruleId", "attempts", "correct", "level"]
			}
		},
		"totalQuizzes": {"type": "integer", "minimum": 0},
		"totalCorrect": {"type": "integer", "minimum": 0},
		"streakDays": {"type": "integer", "minimum": 0},
		"level": {"type": "integer", "minimum": 1},
		"experience": {"type": "integer", "minimum": 0}
	},
	"required": ["rulesMastery", "totalQuizzes", "totalCorrect", "level", "experience"]
}`

var (
	compiledSchema     *jsonschema.Schema
	compileSchemaOnce  sync.Once
	compileSchemaError error
)

func getProgressSchema() (*jsonschema.Schema, error) {
	compileSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(progressSchema), &doc); err != nil {
			compileSchemaError = fmt.Errorf("parse progress schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://user-progress.json", doc); err != nil {
			compileSchemaError = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileSchemaError = c.Compile("schema://user-progress.json")
	})
	return compiledSchema, compileSchemaError
}

// progressRepo implements ProgressRepo over the progress table.
type progressRepo struct {
	db *sqlx.DB
}

func (r *progressRepo) Load(ctx context.Context, key string) (*progress.UserProgress, error) {
	var data string
	err := r.db.GetContext(ctx, &data, `SELECT data FROM progress WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress %q: %w", key, err)
	}

	p, err := decodeProgress([]byte(data))
	if err != nil {
		// Corrupt state is recoverable: warn and start fresh rather
		// than propagating the parse failure.
		fmt.Fprintf(os.Stderr, "warning: stored progress %q is corrupt, starting fresh: %v\n", key, err)
		return nil, nil
	}
	return p, nil
}

func (r *progressRepo) Save(ctx context.Context, key string, p *progress.UserProgress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO progress (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save progress %q: %w", key, err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM progress WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete progress %q: %w", key, err)
	}
	return nil
}

// decodeProgress validates raw JSON against the progress schema and
// unmarshals it.
func decodeProgress(raw []byte) (*progress.UserProgress, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := getProgressSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	var p progress.UserProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("unmarshal progress: %w", err)
	}
	return &p, nil
}
