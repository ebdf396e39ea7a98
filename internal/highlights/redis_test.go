package highlights

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/types"
)

const testTTL = time.Hour

type RedisCacheTestSuite struct {
	suite.Suite
	mock    redismock.ClientMock
	backing *MemoryStore
	cache   *RedisCache
	payload string
}

func (s *RedisCacheTestSuite) SetupTest() {
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.backing = NewMemoryStore()
	s.cache = NewRedisCache(client, s.backing, testTTL, logging.NewNop())

	data, err := json.Marshal(sample)
	require.NoError(s.T(), err)
	s.payload = string(data)
}

func (s *RedisCacheTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

func (s *RedisCacheTestSuite) TestGet_CacheHit() {
	s.mock.ExpectGet("highlights:w1").SetVal(s.payload)

	got, err := s.cache.Get(context.Background(), "w1")
	s.Require().NoError(err)
	s.Equal(sample, got)
}

func (s *RedisCacheTestSuite) TestGet_MissReadsThrough() {
	s.Require().NoError(s.backing.Put(context.Background(), "w1", sample))
	s.mock.ExpectGet("highlights:w1").RedisNil()
	s.mock.ExpectSet("highlights:w1", s.payload, testTTL).SetVal("OK")

	got, err := s.cache.Get(context.Background(), "w1")
	s.Require().NoError(err)
	s.Equal(sample, got)
}

func (s *RedisCacheTestSuite) TestGet_RedisDownFallsBack() {
	s.Require().NoError(s.backing.Put(context.Background(), "w1", sample))
	s.mock.ExpectGet("highlights:w1").SetErr(errors.New("connection refused"))

	got, err := s.cache.Get(context.Background(), "w1")
	s.Require().NoError(err)
	s.Equal(sample, got)
}

func (s *RedisCacheTestSuite) TestPut_WritesThrough() {
	s.mock.ExpectSet("highlights:w1", s.payload, testTTL).SetVal("OK")

	s.Require().NoError(s.cache.Put(context.Background(), "w1", sample))

	stored, err := s.backing.Get(context.Background(), "w1")
	s.Require().NoError(err)
	s.Equal(sample, stored)
}

func (s *RedisCacheTestSuite) TestPut_CacheFailureIsNotFatal() {
	s.mock.ExpectSet("highlights:w1", s.payload, testTTL).SetErr(errors.New("readonly"))

	s.NoError(s.cache.Put(context.Background(), "w1", sample))
}

func TestRedisCacheSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func TestRedisCache_StandaloneStore(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewRedisCache(client, nil, 0, nil)
	ctx := context.Background()

	mock.ExpectSet("highlights:w2", "[]", 0).SetVal("OK")
	require.NoError(t, cache.Put(ctx, "w2", nil))

	mock.ExpectGet("highlights:w2").RedisNil()
	got, err := cache.Get(ctx, "w2")
	require.NoError(t, err)
	assert.Equal(t, []types.Highlight{}, got)

	mock.ExpectGet("highlights:w2").SetErr(errors.New("down"))
	_, err = cache.Get(ctx, "w2")
	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)

	mock.ExpectSet("highlights:w2", "[]", 0).SetErr(errors.New("down"))
	assert.ErrorAs(t, cache.Put(ctx, "w2", []types.Highlight{}), &storeErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCache_EmptyID(t *testing.T) {
	client, _ := redismock.NewClientMock()
	cache := NewRedisCache(client, nil, 0, nil)

	_, err := cache.Get(context.Background(), "")
	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
}
