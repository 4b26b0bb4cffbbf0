package repository

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LogEntryDocument is the stored form of a request or audit log entry.
type LogEntryDocument struct {
	ID             primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Timestamp      time.Time              `bson:"timestamp" json:"timestamp"`
	Level          string                 `bson:"level" json:"level"`
	Message        string                 `bson:"message" json:"message"`
	RequestID      string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method         string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path           string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode     int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration       int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP             string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent      string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error          string                 `bson:"error,omitempty" json:"error,omitempty"`
	InspectorID    string                 `bson:"inspector_id,omitempty" json:"inspector_id,omitempty"`
	InspectorEmail string                 `bson:"inspector_email,omitempty" json:"inspector_email,omitempty"`
	ReportID       string                 `bson:"report_id,omitempty" json:"report_id,omitempty"`
	ActionType     string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields         map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// maxLogPage caps a single Query so an unfiltered audit search cannot pull
// the whole collection.
const maxLogPage = 500

// LogsRepository stores request and audit entries in the logs collection.
type LogsRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

// NewLogsRepository creates a new logs repository.
func NewLogsRepository(db *MongoDB) *LogsRepository {
	return &LogsRepository{collection: db.Logs, now: time.Now}
}

// stamp fills the ID and timestamp the caller left empty.
func (r *LogsRepository) stamp(entry *LogEntryDocument) {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.now()
	}
}

// Create inserts one entry.
func (r *LogsRepository) Create(ctx context.Context, entry *LogEntryDocument) error {
	r.stamp(entry)
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert log entry: %w", err)
	}
	return nil
}

// CreateMany inserts entries in one unordered batch.
func (r *LogsRepository) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	if len(entries) == 0 {
		return nil
	}
	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		r.stamp(entry)
		docs[i] = entry
	}
	if _, err := r.collection.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false)); err != nil {
		return fmt.Errorf("insert %d log entries: %w", len(entries), err)
	}
	return nil
}

// LogQueryOptions narrows an audit search. Empty fields match everything.
type LogQueryOptions struct {
	RequestID  string
	ReportID   string
	ActionType string
	// AuditOnly keeps entries that carry an action type.
	AuditOnly bool
	Level     string
	Method    string
	// Path matches case-insensitively anywhere in the request path.
	Path      string
	StartTime *time.Time
	EndTime   *time.Time
	// Limit is capped at 500; zero means the cap.
	Limit int
	Skip  int
}

// filter builds the query document shared by Query and Count.
func (opts LogQueryOptions) filter() bson.D {
	filter := bson.D{}
	for _, f := range []struct{ key, value string }{
		{"request_id", opts.RequestID},
		{"report_id", opts.ReportID},
		{"action_type", opts.ActionType},
		{"level", opts.Level},
		{"method", opts.Method},
	} {
		if f.value != "" {
			filter = append(filter, bson.E{Key: f.key, Value: f.value})
		}
	}
	if opts.AuditOnly && opts.ActionType == "" {
		filter = append(filter, bson.E{Key: "action_type", Value: bson.D{{Key: "$exists", Value: true}}})
	}
	if opts.Path != "" {
		filter = append(filter, bson.E{Key: "path", Value: primitive.Regex{Pattern: regexp.QuoteMeta(opts.Path), Options: "i"}})
	}

	window := bson.D{}
	if opts.StartTime != nil {
		window = append(window, bson.E{Key: "$gte", Value: *opts.StartTime})
	}
	if opts.EndTime != nil {
		window = append(window, bson.E{Key: "$lte", Value: *opts.EndTime})
	}
	if len(window) > 0 {
		filter = append(filter, bson.E{Key: "timestamp", Value: window})
	}
	return filter
}

func (opts LogQueryOptions) pageSize() int64 {
	if opts.Limit <= 0 || opts.Limit > maxLogPage {
		return maxLogPage
	}
	return int64(opts.Limit)
}

// Query returns matching entries, newest first.
func (r *LogsRepository) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	find := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(opts.pageSize())
	if opts.Skip > 0 {
		find.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), find)
	if err != nil {
		return nil, fmt.Errorf("query logs: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	entries := []*LogEntryDocument{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode logs: %w", err)
	}
	return entries, nil
}

// Count returns the number of matching entries, ignoring Limit and Skip.
func (r *LogsRepository) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, opts.filter())
	if err != nil {
		return 0, fmt.Errorf("count logs: %w", err)
	}
	return n, nil
}
