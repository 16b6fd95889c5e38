package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/corona-loader/schema"
)

const testMongoEnv = "CORONA_TEST_MONGO"

type CasesTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewCasesTestSuite(connURI, dbName string) *CasesTestSuite {
	return &CasesTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *CasesTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}

	// transactions need the collections to exist
	for _, c := range []string{schema.TotalsCollection, schema.CasesByLocationCollection} {
		if err := s.testDatabase.RunCommand(context.Background(), bson.D{{Key: "create", Value: c}}).Err(); nil != err {
			s.T().Fatal(err)
		}
	}

	indexer := schema.NewMongoDBIndexer(s.connURI, s.testDBName)
	defer indexer.Close()
	if err := indexer.IndexCasesByLocationCollection(); nil != err {
		s.T().Fatal(err)
	}
}

func (s *CasesTestSuite) TearDownSuite() {
	_ = s.CleanMongoDB()
	_ = s.mongoClient.Disconnect(context.Background())
}

// CleanMongoDB drop the whole test mongodb
func (s *CasesTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func str(s string) *string {
	return &s
}

func (s *CasesTestSuite) fixture(confirmed int64) (schema.Totals, []schema.LocationCases) {
	locations := []schema.LocationCases{
		{IDKey: "france-mainland", Country: "France", Province: str("mainland"), CountryCode: "FRA", Confirmed: confirmed},
		{IDKey: "france-guadeloupe", Country: "France", Province: str("Guadeloupe"), CountryCode: "FRA", Confirmed: 12},
		{IDKey: "italy", Country: "Italy", CountryCode: "ITA", Confirmed: 100, CasesByDate: []schema.DailyCount{
			{Day: "3/1/20", Confirmed: 50, Deaths: 1},
		}},
		{IDKey: "france", Country: "France", CountryCode: "FRA", Confirmed: confirmed + 12, HasProvince: true, ProvincesList: []schema.ProvinceRef{
			{IDKey: "france-mainland", Province: "mainland"},
			{IDKey: "france-guadeloupe", Province: "Guadeloupe"},
		}},
	}
	totals := schema.Totals{
		Confirmed:    confirmed + 112,
		AllCountries: []string{"France", "Italy"},
		TimeStamp:    time.Date(2020, 3, 4, 12, 0, 0, 0, time.UTC),
	}
	return totals, locations
}

func (s *CasesTestSuite) TestReplaceCases() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	totals, locations := s.fixture(120)
	s.NoError(store.ReplaceCases(totals, locations))

	// a second run replaces the first one
	totals, locations = s.fixture(150)
	s.NoError(store.ReplaceCases(totals, locations))

	count, err := s.testDatabase.Collection(schema.CasesByLocationCollection).CountDocuments(context.Background(), bson.M{})
	s.NoError(err)
	s.Equal(int64(4), count)

	count, err = s.testDatabase.Collection(schema.TotalsCollection).CountDocuments(context.Background(), bson.M{})
	s.NoError(err)
	s.Equal(int64(1), count)

	t, err := store.GetTotals()
	s.NoError(err)
	s.Equal(int64(262), t.Confirmed)
	s.Equal([]string{"France", "Italy"}, t.AllCountries)
	s.True(totals.TimeStamp.Equal(t.TimeStamp))
}

func (s *CasesTestSuite) TestReplaceCasesEmpty() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	s.Equal(ErrEmptyLocations, store.ReplaceCases(schema.Totals{}, nil))
}

func (s *CasesTestSuite) TestGetLocations() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	totals, locations := s.fixture(120)
	s.NoError(store.ReplaceCases(totals, locations))

	all, err := store.GetLocations("")
	s.NoError(err)
	s.Len(all, 4)
	s.Equal("france", all[0].IDKey)
	s.Equal("france-mainland", all[1].IDKey)

	france, err := store.GetLocations("France")
	s.NoError(err)
	s.Len(france, 3)

	none, err := store.GetLocations("Atlantis")
	s.NoError(err)
	s.Len(none, 0)
}

func (s *CasesTestSuite) TestGetLocation() {
	store := NewMongoStore(s.mongoClient, s.testDBName)
	totals, locations := s.fixture(120)
	s.NoError(store.ReplaceCases(totals, locations))

	italy, err := store.GetLocation("italy")
	s.NoError(err)
	s.Nil(italy.Province)
	s.Equal("ITA", italy.CountryCode)
	s.Equal([]schema.DailyCount{{Day: "3/1/20", Confirmed: 50, Deaths: 1}}, italy.CasesByDate)

	france, err := store.GetLocation("france")
	s.NoError(err)
	s.True(france.HasProvince)
	s.Len(france.ProvincesList, 2)

	_, err = store.GetLocation("atlantis")
	s.Equal(ErrLocationNotFound, err)
}

func TestCasesTestSuite(t *testing.T) {
	uri := os.Getenv(testMongoEnv)
	if uri == "" {
		t.Skipf("%s not set, transactions need a replica set", testMongoEnv)
	}
	suite.Run(t, NewCasesTestSuite(uri, "corona-test-db"))
}
