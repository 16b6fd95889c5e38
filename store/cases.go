package store

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/corona-loader/schema"
)

var (
	ErrNoTotals         = fmt.Errorf("no totals loaded")
	ErrLocationNotFound = fmt.Errorf("location not found")
	ErrEmptyLocations   = fmt.Errorf("empty locations")
)

// CasesStore - persisted output of the loader
type CasesStore interface {
	ReplaceCases(totals schema.Totals, locations []schema.LocationCases) error
	GetTotals() (*schema.Totals, error)
	GetLocations(country string) ([]schema.LocationCases, error)
	GetLocation(idKey string) (*schema.LocationCases, error)
}

// ReplaceCases - swap both collections for the result of a run. Deletes and
// inserts share one transaction so readers see either the previous run or
// this one.
func (m *mongoDB) ReplaceCases(totals schema.Totals, locations []schema.LocationCases) error {
	if len(locations) == 0 {
		return ErrEmptyLocations
	}

	ctx, cancel := context.WithTimeout(context.Background(), replaceTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(locations))
	for _, l := range locations {
		docs = append(docs, l)
	}

	session, err := m.client.StartSession()
	if nil != err {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("start session")
		return err
	}
	defer session.EndSession(ctx)

	db := m.client.Database(m.database)
	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if _, err := db.Collection(schema.TotalsCollection).DeleteMany(sessCtx, bson.M{}); nil != err {
			return nil, err
		}
		if _, err := db.Collection(schema.TotalsCollection).InsertOne(sessCtx, totals); nil != err {
			return nil, err
		}
		if _, err := db.Collection(schema.CasesByLocationCollection).DeleteMany(sessCtx, bson.M{}); nil != err {
			return nil, err
		}
		return db.Collection(schema.CasesByLocationCollection).InsertMany(sessCtx, docs)
	})
	if nil != err {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("replace cases")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":    mongoLogPrefix,
		"locations": len(locations),
	}).Info("cases replaced")

	return nil
}

// GetTotals - the totals document of the last run
func (m *mongoDB) GetTotals() (*schema.Totals, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var totals schema.Totals
	err := m.client.Database(m.database).Collection(schema.TotalsCollection).FindOne(ctx, bson.M{}).Decode(&totals)
	if nil != err {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoTotals
		}
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("get totals")
		return nil, err
	}

	return &totals, nil
}

// GetLocations - locations ordered by confirmed cases, optionally of one
// country only
func (m *mongoDB) GetLocations(country string) ([]schema.LocationCases, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if country != "" {
		filter["country"] = country
	}

	opts := options.Find().SetSort(bson.D{{Key: "confirmed", Value: -1}, {Key: "idKey", Value: 1}})
	cursor, err := m.client.Database(m.database).Collection(schema.CasesByLocationCollection).Find(ctx, filter, opts)
	if nil != err {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("find locations")
		return nil, err
	}

	locations := make([]schema.LocationCases, 0)
	if err := cursor.All(ctx, &locations); nil != err {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "error": err}).Error("decode locations")
		return nil, err
	}

	return locations, nil
}

// GetLocation - one location by its idKey
func (m *mongoDB) GetLocation(idKey string) (*schema.LocationCases, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var location schema.LocationCases
	err := m.client.Database(m.database).Collection(schema.CasesByLocationCollection).FindOne(ctx, bson.M{"idKey": idKey}).Decode(&location)
	if nil != err {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrLocationNotFound
		}
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "idKey": idKey, "error": err}).Error("get location")
		return nil, err
	}

	return &location, nil
}
