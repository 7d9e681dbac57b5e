package usecase_catalog

import (
	"context"
	"errors"

	"github.com/moviematch/core/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func (s *UsecaseCatalogUnitSuite) TestBackfillPlatforms(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		batch        int
		setupMocks   func(r *resources)
		expectReport PlatformReport
		expectErr    error
	}{
		{
			name:  "pages through every batch",
			batch: 2,
			setupMocks: func(r *resources) {
				r.repository.On("MissingPlatform", r.ctx, model.MovieID(0), 2).
					Return([]model.MovieRef{{ID: 1, TMDBID: 550}, {ID: 4, TMDBID: 680}}, nil).Once()
				r.repository.On("MissingPlatform", r.ctx, model.MovieID(4), 2).
					Return([]model.MovieRef{{ID: 9, TMDBID: 13}}, nil).Once()
				r.repository.On("MissingPlatform", r.ctx, model.MovieID(9), 2).
					Return([]model.MovieRef{}, nil).Once()

				r.source.On("WatchProvider", r.ctx, int64(550)).Return("Netflix", nil).Once()
				r.source.On("WatchProvider", r.ctx, int64(680)).Return("", nil).Once()
				r.source.On("WatchProvider", r.ctx, int64(13)).Return("Disney Plus", nil).Once()

				r.repository.On("SetPlatform", r.ctx, model.MovieID(1), "Netflix").Return(nil).Once()
				r.repository.On("SetPlatform", r.ctx, model.MovieID(4), model.DefaultPlatform).Return(nil).Once()
				r.repository.On("SetPlatform", r.ctx, model.MovieID(9), "Disney Plus").Return(nil).Once()
			},
			expectReport: PlatformReport{Checked: 3, Streaming: 2, Fallback: 1},
		},
		{
			name:  "failed lookup is skipped and left unset",
			batch: 10,
			setupMocks: func(r *resources) {
				r.repository.On("MissingPlatform", r.ctx, model.MovieID(0), 10).
					Return([]model.MovieRef{{ID: 1, TMDBID: 550}, {ID: 2, TMDBID: 551}}, nil).Once()
				r.repository.On("MissingPlatform", r.ctx, model.MovieID(2), 10).
					Return([]model.MovieRef{}, nil).Once()

				r.source.On("WatchProvider", r.ctx, int64(550)).Return("", errors.New("429")).Once()
				r.source.On("WatchProvider", r.ctx, int64(551)).Return("MUBI", nil).Once()
				r.repository.On("SetPlatform", r.ctx, model.MovieID(2), "MUBI").
					Return(errors.New("movie not found")).Once()
			},
			expectReport: PlatformReport{Checked: 2, Failed: 2},
		},
		{
			name:  "listing failure aborts",
			batch: 10,
			setupMocks: func(r *resources) {
				r.repository.On("MissingPlatform", r.ctx, model.MovieID(0), 10).
					Return(nil, errors.New("connection refused")).Once()
			},
			expectErr: ErrFailedToListMovies,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			report, err := r.usecase.BackfillPlatforms(r.ctx, tc.batch)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectReport, report)
		})
	}
}

func (s *UsecaseCatalogUnitSuite) TestBackfillPlatformsDefaultsBatch(t provider.T) {
	t.Parallel()

	r := initResources(t)
	r.repository.On("MissingPlatform", r.ctx, model.MovieID(0), DefaultPlatformBatch).
		Return([]model.MovieRef{}, nil).Once()

	report, err := r.usecase.BackfillPlatforms(r.ctx, 0)

	assert.NoError(t, err)
	assert.Zero(t, report.Checked)
	r.source.AssertNotCalled(t, "WatchProvider", mock.Anything, mock.Anything)
}

func (s *UsecaseCatalogUnitSuite) TestBackfillPlatformsStopsOnCanceledContext(t provider.T) {
	t.Parallel()

	r := initResources(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.usecase.BackfillPlatforms(ctx, 5)

	assert.ErrorIs(t, err, context.Canceled)
}
