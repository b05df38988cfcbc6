package logger

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoQueueSize = 1024
	mongoBatchSize = 50
	mongoFlushTick = 2 * time.Second
)

type logDocument struct {
	Time  time.Time `bson:"time"`
	Level string    `bson:"level"`
	Msg   string    `bson:"msg"`
	Attrs bson.M    `bson:"attrs,omitempty"`
}

// MongoHandler is an slog.Handler that forwards every record to an inner
// handler and additionally stores it in a MongoDB collection. Writes are
// queued and batched off the request path; when the queue is full the record
// is dropped rather than blocking.
type MongoHandler struct {
	inner  slog.Handler
	client *mongo.Client
	col    *mongo.Collection
	queue  chan logDocument
	done   chan struct{}
}

// NewMongoHandler connects to uri and starts the background writer.
// The caller should call Close on shutdown to flush pending records.
func NewMongoHandler(uri, db, collection string, inner slog.Handler) (*MongoHandler, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	h := &MongoHandler{
		inner:  inner,
		client: client,
		col:    client.Database(db).Collection(collection),
		queue:  make(chan logDocument, mongoQueueSize),
		done:   make(chan struct{}),
	}
	go h.drain()
	return h, nil
}

func (h *MongoHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *MongoHandler) Handle(ctx context.Context, rec slog.Record) error {
	doc := logDocument{
		Time:  rec.Time,
		Level: rec.Level.String(),
		Msg:   rec.Message,
		Attrs: bson.M{},
	}
	rec.Attrs(func(a slog.Attr) bool {
		doc.Attrs[a.Key] = a.Value.String()
		return true
	})

	select {
	case h.queue <- doc:
	default: // queue full; logging must never block the request path
	}

	return h.inner.Handle(ctx, rec)
}

func (h *MongoHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &MongoHandler{
		inner:  h.inner.WithAttrs(attrs),
		client: h.client,
		col:    h.col,
		queue:  h.queue,
		done:   h.done,
	}
}

func (h *MongoHandler) WithGroup(name string) slog.Handler {
	return &MongoHandler{
		inner:  h.inner.WithGroup(name),
		client: h.client,
		col:    h.col,
		queue:  h.queue,
		done:   h.done,
	}
}

// Close flushes pending documents and disconnects.
func (h *MongoHandler) Close() error {
	close(h.done)
	h.flush(h.pending())
	return h.client.Disconnect(context.Background())
}

func (h *MongoHandler) drain() {
	ticker := time.NewTicker(mongoFlushTick)
	defer ticker.Stop()

	var batch []interface{}
	for {
		select {
		case doc := <-h.queue:
			batch = append(batch, doc)
			if len(batch) >= mongoBatchSize {
				h.flush(batch)
				batch = nil
			}
		case <-ticker.C:
			if len(batch) > 0 {
				h.flush(batch)
				batch = nil
			}
		case <-h.done:
			h.flush(batch)
			return
		}
	}
}

func (h *MongoHandler) pending() []interface{} {
	var batch []interface{}
	for {
		select {
		case doc := <-h.queue:
			batch = append(batch, doc)
		default:
			return batch
		}
	}
}

func (h *MongoHandler) flush(batch []interface{}) {
	if len(batch) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = h.col.InsertMany(ctx, batch)
}
