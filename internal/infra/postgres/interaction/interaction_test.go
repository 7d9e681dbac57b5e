package infra_postgres_interaction

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/moviematch/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type InteractionInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	mock   sqlmock.Sqlmock
	driver *Driver
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	return &resources{
		mock:   mock,
		driver: New(sqlx.NewDb(db, "postgres")),
		ctx:    context.Background(),
	}
}

func expectLockAndInsert(r *resources, viewer, movie int64, reaction int, inserted int64) {
	r.mock.ExpectBegin()
	r.mock.ExpectExec(regexp.QuoteMeta(lockMovieQuery)).
		WithArgs(movie).
		WillReturnResult(sqlmock.NewResult(0, 0))
	r.mock.ExpectExec(regexp.QuoteMeta(insertInteractionQuery)).
		WithArgs(viewer, movie, reaction).
		WillReturnResult(sqlmock.NewResult(0, inserted))
}

func likesRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func (s *InteractionInfraUnitSuite) TestRecord(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		in          model.Interaction
		counterpart model.ViewerID
		setupMocks  func(r *resources)
		expect      model.Recorded
		expectError bool
	}{
		{
			name:        "pass never checks for a match",
			in:          model.Interaction{Viewer: 1, Movie: 42, Reaction: model.PassReaction},
			counterpart: 2,
			setupMocks: func(r *resources) {
				expectLockAndInsert(r, 1, 42, 0, 1)
				r.mock.ExpectCommit()
			},
			expect: model.Recorded{Stored: true},
		},
		{
			name:        "replayed pass is not stored again",
			in:          model.Interaction{Viewer: 1, Movie: 42, Reaction: model.PassReaction},
			counterpart: 2,
			setupMocks: func(r *resources) {
				expectLockAndInsert(r, 1, 42, 0, 0)
				r.mock.ExpectCommit()
			},
			expect: model.Recorded{},
		},
		{
			name:        "unknown reaction code is stored without matching",
			in:          model.Interaction{Viewer: 1, Movie: 42, Reaction: 5},
			counterpart: 2,
			setupMocks: func(r *resources) {
				expectLockAndInsert(r, 1, 42, 5, 1)
				r.mock.ExpectCommit()
			},
			expect: model.Recorded{Stored: true},
		},
		{
			name:        "like without counterpart like",
			in:          model.Interaction{Viewer: 1, Movie: 42, Reaction: model.LikeReaction},
			counterpart: 2,
			setupMocks: func(r *resources) {
				expectLockAndInsert(r, 1, 42, 1, 1)
				r.mock.ExpectQuery(regexp.QuoteMeta(mutualLikesQuery)).
					WithArgs(int64(42), 1, int64(1), int64(2)).
					WillReturnRows(likesRows(1))
				r.mock.ExpectCommit()
			},
			expect: model.Recorded{Stored: true},
		},
		{
			name:        "mutual like stores the pair in canonical order",
			in:          model.Interaction{Viewer: 2, Movie: 42, Reaction: model.LikeReaction},
			counterpart: 1,
			setupMocks: func(r *resources) {
				expectLockAndInsert(r, 2, 42, 1, 1)
				r.mock.ExpectQuery(regexp.QuoteMeta(mutualLikesQuery)).
					WithArgs(int64(42), 1, int64(2), int64(1)).
					WillReturnRows(likesRows(2))
				r.mock.ExpectExec(regexp.QuoteMeta(insertMatchQuery)).
					WithArgs(int64(42), int64(1), int64(2)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				r.mock.ExpectCommit()
			},
			expect: model.Recorded{Stored: true, Match: true},
		},
		{
			name:        "replayed mutual like still reports the match",
			in:          model.Interaction{Viewer: 1, Movie: 42, Reaction: model.LikeReaction},
			counterpart: 2,
			setupMocks: func(r *resources) {
				expectLockAndInsert(r, 1, 42, 1, 0)
				r.mock.ExpectQuery(regexp.QuoteMeta(mutualLikesQuery)).
					WillReturnRows(likesRows(2))
				r.mock.ExpectExec(regexp.QuoteMeta(insertMatchQuery)).
					WillReturnResult(sqlmock.NewResult(0, 0))
				r.mock.ExpectCommit()
			},
			expect: model.Recorded{Match: true},
		},
		{
			name:        "match insert failure rolls back",
			in:          model.Interaction{Viewer: 1, Movie: 42, Reaction: model.LikeReaction},
			counterpart: 2,
			setupMocks: func(r *resources) {
				expectLockAndInsert(r, 1, 42, 1, 1)
				r.mock.ExpectQuery(regexp.QuoteMeta(mutualLikesQuery)).
					WillReturnRows(likesRows(2))
				r.mock.ExpectExec(regexp.QuoteMeta(insertMatchQuery)).
					WillReturnError(errors.New("foreign key violation"))
				r.mock.ExpectRollback()
			},
			expectError: true,
		},
		{
			name:        "commit failure reports no match",
			in:          model.Interaction{Viewer: 1, Movie: 42, Reaction: model.LikeReaction},
			counterpart: 2,
			setupMocks: func(r *resources) {
				expectLockAndInsert(r, 1, 42, 1, 1)
				r.mock.ExpectQuery(regexp.QuoteMeta(mutualLikesQuery)).
					WillReturnRows(likesRows(2))
				r.mock.ExpectExec(regexp.QuoteMeta(insertMatchQuery)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				r.mock.ExpectCommit().WillReturnError(errors.New("connection reset"))
			},
			expectError: true,
		},
		{
			name:        "begin failure",
			in:          model.Interaction{Viewer: 1, Movie: 42, Reaction: model.LikeReaction},
			counterpart: 2,
			setupMocks: func(r *resources) {
				r.mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			rec, err := r.driver.Record(r.ctx, tc.in, tc.counterpart)

			if tc.expectError {
				assert.Error(t, err)
				assert.Equal(t, model.Recorded{}, rec)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expect, rec)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(InteractionInfraUnitSuite))
}
