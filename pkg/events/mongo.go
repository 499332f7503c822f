package events

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/andynu/bujo-pdf/pkg/errors"
)

// MongoSource queries events from a MongoDB collection. Documents carry the
// day as a "2006-01-02" string plus the Event fields:
//
//	{ "date": "2026-03-09", "label": "Dentist", "icon": "star",
//	  "color": "#5b8dd9", "order": 0 }
//
// Within a day, events sort by their "order" field, then label.
type MongoSource struct {
	client *mongo.Client
	coll   *mongo.Collection
}

type mongoEvent struct {
	Date  string `bson:"date"`
	Label string `bson:"label"`
	Icon  string `bson:"icon"`
	Color string `bson:"color"`
	Order int    `bson:"order"`
}

// NewMongoSource connects to uri and reads events from db.collection. The
// connection is verified with a ping so a bad URI fails at startup.
func NewMongoSource(ctx context.Context, uri, db, collection string) (*MongoSource, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEventsSource, err, "connect to %s", uri)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeEventsSource, err, "ping %s", uri)
	}
	return &MongoSource{
		client: client,
		coll:   client.Database(db).Collection(collection),
	}, nil
}

// EventsForDate queries one day's events.
func (s *MongoSource) EventsForDate(ctx context.Context, date time.Time, limit int) ([]Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "label", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cur, err := s.coll.Find(ctx, bson.M{"date": dayKey(date)}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEventsSource, err, "query events for %s", dayKey(date))
	}
	defer cur.Close(ctx)

	var out []Event
	for cur.Next(ctx) {
		var doc mongoEvent
		if err := cur.Decode(&doc); err != nil {
			return nil, errors.Wrap(errors.ErrCodeEventsSource, err, "decode event for %s", dayKey(date))
		}
		out = append(out, Event{Color: doc.Color, Icon: doc.Icon, Label: doc.Label})
	}
	if err := cur.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEventsSource, err, "iterate events for %s", dayKey(date))
	}
	return out, nil
}

// Close disconnects from the database.
func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
