package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
)

func newWatchliveServiceForTest(streams []watchlive.Stream) (*WatchliveService, *stubWatchliveRepository) {
	repo := &stubWatchliveRepository{byID: map[string]watchlive.Stream{}}
	for _, stream := range streams {
		repo.byID[stream.ID] = stream
		repo.order = append(repo.order, stream.ID)
	}

	service := NewWatchliveService(repo, &stubIDGenerator{})
	service.now = fixedNow
	return service, repo
}

func TestWatchliveService_Active_PrefersLatestUpdated(t *testing.T) {
	t.Parallel()

	older := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	newer := older.Add(48 * time.Hour)
	service, _ := newWatchliveServiceForTest([]watchlive.Stream{
		{ID: "ws-1", VideoURL: "https://youtu.be/aaaaaaaaaaa", VideoID: "aaaaaaaaaaa", IsActive: true, UpdatedAt: older},
		{ID: "ws-2", VideoURL: "https://youtu.be/bbbbbbbbbbb", VideoID: "bbbbbbbbbbb", IsActive: false, UpdatedAt: newer.Add(time.Hour)},
		{ID: "ws-3", VideoURL: "https://youtu.be/ccccccccccc", VideoID: "ccccccccccc", IsActive: true, UpdatedAt: newer},
	})

	stream, active, err := service.Active(context.Background())
	require.NoError(t, err)
	require.True(t, active)
	require.Equal(t, "ws-3", stream.ID)
}

func TestWatchliveService_Active_NoneFlagged(t *testing.T) {
	t.Parallel()

	service, _ := newWatchliveServiceForTest([]watchlive.Stream{
		{ID: "ws-1", VideoURL: "https://youtu.be/aaaaaaaaaaa", VideoID: "aaaaaaaaaaa", UpdatedAt: fixedNow()},
	})

	_, active, err := service.Active(context.Background())
	require.NoError(t, err)
	require.False(t, active)
}

func TestWatchliveService_Create_DerivesVideoID(t *testing.T) {
	t.Parallel()

	service, repo := newWatchliveServiceForTest(nil)

	created, err := service.Create(context.Background(), watchlive.Stream{
		VideoURL: "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		IsActive: true,
	})
	require.NoError(t, err)
	require.Equal(t, "dQw4w9WgXcQ", created.VideoID)
	require.NotEmpty(t, created.ID)

	stored, ok := repo.byID[created.ID]
	require.True(t, ok)
	require.True(t, stored.IsActive)
}

func TestWatchliveService_Create_RejectsInvalidVideoURL(t *testing.T) {
	t.Parallel()

	service, repo := newWatchliveServiceForTest(nil)

	_, err := service.Create(context.Background(), watchlive.Stream{
		VideoURL: "https://example.com/live/42",
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Empty(t, repo.byID)
}

func TestWatchliveService_Delete_UnknownStream(t *testing.T) {
	t.Parallel()

	service, _ := newWatchliveServiceForTest(nil)

	err := service.Delete(context.Background(), "ws-missing")
	require.ErrorIs(t, err, ErrNotFound)
}

type stubWatchliveRepository struct {
	byID  map[string]watchlive.Stream
	order []string
}

func (s *stubWatchliveRepository) List(_ context.Context) ([]watchlive.Stream, error) {
	out := make([]watchlive.Stream, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out, nil
}

func (s *stubWatchliveRepository) GetByID(_ context.Context, id string) (watchlive.Stream, bool, error) {
	stream, ok := s.byID[id]
	return stream, ok, nil
}

func (s *stubWatchliveRepository) Create(_ context.Context, stream watchlive.Stream) error {
	s.byID[stream.ID] = stream
	s.order = append(s.order, stream.ID)
	return nil
}

func (s *stubWatchliveRepository) Update(_ context.Context, stream watchlive.Stream) error {
	s.byID[stream.ID] = stream
	return nil
}

func (s *stubWatchliveRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}
