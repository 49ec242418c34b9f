package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/i474232898/weather-lookup/internal/daterange"
	"github.com/i474232898/weather-lookup/internal/records"
	"github.com/i474232898/weather-lookup/internal/weather"
)

// MongoStore keeps records in a MongoDB collection. Calendar dates are stored
// as UTC midnights so range filters can use native date comparisons.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and verifies the connection with a ping.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	log.Printf("INFO: connected to mongodb database %q collection %q", database, collection)

	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(collection),
	}, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type dateRangeDocument struct {
	Start time.Time `bson:"start"`
	End   time.Time `bson:"end"`
}

type temperatureDocument struct {
	Current       float64 `bson:"current"`
	Min           float64 `bson:"min"`
	Max           float64 `bson:"max"`
	FeelsLike     float64 `bson:"feelsLike"`
	Humidity      float64 `bson:"humidity"`
	Pressure      float64 `bson:"pressure"`
	WindSpeed     float64 `bson:"windSpeed"`
	WindDirection int     `bson:"windDirection"`
	Description   string  `bson:"description"`
	Icon          string  `bson:"icon"`
}

type forecastDocument struct {
	Date        time.Time `bson:"date"`
	Min         float64   `bson:"min"`
	Max         float64   `bson:"max"`
	Description string    `bson:"description"`
	Icon        string    `bson:"icon"`
}

type dailyDocument struct {
	Date          time.Time `bson:"date"`
	Current       float64   `bson:"current"`
	Min           float64   `bson:"min"`
	Max           float64   `bson:"max"`
	FeelsLike     float64   `bson:"feelsLike"`
	Humidity      float64   `bson:"humidity"`
	Pressure      float64   `bson:"pressure"`
	WindSpeed     float64   `bson:"windSpeed"`
	WindDirection int       `bson:"windDirection"`
	Description   string    `bson:"description"`
	Icon          string    `bson:"icon"`
}

type recordDocument struct {
	ID              string              `bson:"_id"`
	Location        string              `bson:"location"`
	Latitude        float64             `bson:"latitude"`
	Longitude       float64             `bson:"longitude"`
	DateRange       dateRangeDocument   `bson:"dateRange"`
	TemperatureData temperatureDocument `bson:"temperatureData"`
	Forecast        []forecastDocument  `bson:"forecast"`
	DailyData       []dailyDocument     `bson:"dailyData,omitempty"`
	IsHistorical    bool                `bson:"isHistorical"`
	CreatedAt       time.Time           `bson:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt"`
}

func utcMidnight(d daterange.Date) time.Time {
	return d.Midnight(time.UTC)
}

func toDocument(r records.Record) recordDocument {
	doc := recordDocument{
		ID:        r.ID,
		Location:  r.Location,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		DateRange: dateRangeDocument{
			Start: utcMidnight(r.DateRange.Start),
			End:   utcMidnight(r.DateRange.End),
		},
		TemperatureData: temperatureDocument(r.TemperatureData),
		IsHistorical:    r.IsHistorical,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	for _, f := range r.Forecast {
		doc.Forecast = append(doc.Forecast, forecastDocument{
			Date:        utcMidnight(f.Date),
			Min:         f.Temperature.Min,
			Max:         f.Temperature.Max,
			Description: f.Description,
			Icon:        f.Icon,
		})
	}
	for _, d := range r.DailyData {
		doc.DailyData = append(doc.DailyData, dailyDocument{
			Date:          utcMidnight(d.Date),
			Current:       d.Temperature.Current,
			Min:           d.Temperature.Min,
			Max:           d.Temperature.Max,
			FeelsLike:     d.Temperature.FeelsLike,
			Humidity:      d.Humidity,
			Pressure:      d.Pressure,
			WindSpeed:     d.WindSpeed,
			WindDirection: d.WindDirection,
			Description:   d.Description,
			Icon:          d.Icon,
		})
	}
	return doc
}

func (doc recordDocument) toRecord() records.Record {
	r := records.Record{
		ID:        doc.ID,
		Location:  doc.Location,
		Latitude:  doc.Latitude,
		Longitude: doc.Longitude,
		DateRange: daterange.Range{
			Start: daterange.DateOf(doc.DateRange.Start.UTC()),
			End:   daterange.DateOf(doc.DateRange.End.UTC()),
		},
		TemperatureData: records.TemperatureData(doc.TemperatureData),
		Forecast:        make([]weather.ForecastDay, 0, len(doc.Forecast)),
		IsHistorical:    doc.IsHistorical,
		CreatedAt:       doc.CreatedAt.UTC(),
		UpdatedAt:       doc.UpdatedAt.UTC(),
	}
	for _, f := range doc.Forecast {
		r.Forecast = append(r.Forecast, weather.ForecastDay{
			Date:        daterange.DateOf(f.Date.UTC()),
			Temperature: weather.TemperatureRange{Min: f.Min, Max: f.Max},
			Description: f.Description,
			Icon:        f.Icon,
		})
	}
	for _, d := range doc.DailyData {
		r.DailyData = append(r.DailyData, weather.HistoricalDay{
			Date: daterange.DateOf(d.Date.UTC()),
			Temperature: weather.DayTemperature{
				Current:   d.Current,
				Min:       d.Min,
				Max:       d.Max,
				FeelsLike: d.FeelsLike,
			},
			Humidity:      d.Humidity,
			Pressure:      d.Pressure,
			WindSpeed:     d.WindSpeed,
			WindDirection: d.WindDirection,
			Description:   d.Description,
			Icon:          d.Icon,
		})
	}
	return r
}

func (s *MongoStore) Insert(ctx context.Context, rec records.Record) error {
	if _, err := s.coll.InsertOne(ctx, toDocument(rec)); err != nil {
		return fmt.Errorf("insert record %s: %w", rec.ID, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (records.Record, error) {
	var doc recordDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return records.Record{}, records.ErrNotFound
	}
	if err != nil {
		return records.Record{}, fmt.Errorf("find record %s: %w", id, err)
	}
	return doc.toRecord(), nil
}

func (s *MongoStore) Replace(ctx context.Context, rec records.Record) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": rec.ID}, toDocument(rec))
	if err != nil {
		return fmt.Errorf("replace record %s: %w", rec.ID, err)
	}
	if res.MatchedCount == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return records.ErrNotFound
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, f records.Filter) ([]records.Record, int, error) {
	f = f.Normalized()
	filter := buildFilter(f)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	cur, err := s.coll.Find(ctx, filter, findOptions(f))
	if err != nil {
		return nil, 0, fmt.Errorf("find records: %w", err)
	}
	defer cur.Close(ctx)

	var docs []recordDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode records: %w", err)
	}

	out := make([]records.Record, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc.toRecord())
	}
	return out, int(total), nil
}

// buildFilter translates a Filter into a query document. The location match
// is a case-insensitive substring; user input is escaped, never run as a
// pattern.
func buildFilter(f records.Filter) bson.M {
	filter := bson.M{}
	if f.Location != "" {
		filter["location"] = bson.M{"$regex": regexp.QuoteMeta(f.Location), "$options": "i"}
	}
	if !f.From.IsZero() || !f.To.IsZero() {
		start := bson.M{}
		if !f.From.IsZero() {
			start["$gte"] = utcMidnight(f.From)
		}
		if !f.To.IsZero() {
			start["$lte"] = utcMidnight(f.To)
		}
		filter["dateRange.start"] = start
	}
	if f.Historical != nil {
		filter["isHistorical"] = *f.Historical
	}
	return filter
}

func findOptions(f records.Filter) *options.FindOptions {
	dir := -1
	if f.Ascending {
		dir = 1
	}
	return options.Find().
		SetSort(bson.D{{Key: sortField(f.SortBy), Value: dir}, {Key: "_id", Value: dir}}).
		SetSkip(int64(f.Skip())).
		SetLimit(int64(f.Limit))
}

func sortField(field string) string {
	switch field {
	case records.SortUpdatedAt:
		return "updatedAt"
	case records.SortLocation:
		return "location"
	case records.SortStartDate:
		return "dateRange.start"
	case records.SortEndDate:
		return "dateRange.end"
	default:
		return "createdAt"
	}
}

var _ records.Store = (*MongoStore)(nil)
