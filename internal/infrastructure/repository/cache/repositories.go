// Package cache wraps the persistent repositories with a TTL read cache.
// Only the public read surface is cached; staff-only collections go
// straight to storage.
package cache

import (
	"context"

	"github.com/nsflhq/nsfl-api/internal/domain/blog"
	"github.com/nsflhq/nsfl-api/internal/domain/highlight"
	"github.com/nsflhq/nsfl-api/internal/domain/match"
	"github.com/nsflhq/nsfl-api/internal/domain/player"
	"github.com/nsflhq/nsfl-api/internal/domain/sponsor"
	"github.com/nsflhq/nsfl-api/internal/domain/standings"
	"github.com/nsflhq/nsfl-api/internal/domain/team"
	"github.com/nsflhq/nsfl-api/internal/domain/watchlive"
	basecache "github.com/nsflhq/nsfl-api/internal/platform/cache"
)

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, "match:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "match:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedMatch{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatch)
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	if err := r.next.Create(ctx, m); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	if err := r.next.Update(ctx, m); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "match:")
	}
	return deleted, nil
}

type cachedMatch struct {
	value  match.Match
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "team:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedTeam{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeam)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	if err := r.next.Create(ctx, t); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	if err := r.next.Update(ctx, t); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "team:")
	}
	return deleted, nil
}

type cachedTeam struct {
	value  team.Team
	exists bool
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:list:team:"+teamID, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByTeam(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "player:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedPlayer{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}

	cached, _ := v.(cachedPlayer)
	return cached.value, cached.exists, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player:")
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "player:")
	}
	return deleted, nil
}

type cachedPlayer struct {
	value  player.Player
	exists bool
}

type StandingsRepository struct {
	next  standings.Repository
	cache *basecache.Store
}

func NewStandingsRepository(next standings.Repository, cache *basecache.Store) *StandingsRepository {
	return &StandingsRepository{next: next, cache: cache}
}

func (r *StandingsRepository) List(ctx context.Context) ([]standings.Row, error) {
	v, err := r.cache.GetOrLoad(ctx, "standings:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]standings.Row(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]standings.Row)
	return append([]standings.Row(nil), items...), nil
}

func (r *StandingsRepository) GetByID(ctx context.Context, id string) (standings.Row, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "standings:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedStandingsRow{value: item, exists: exists}, nil
	})
	if err != nil {
		return standings.Row{}, false, err
	}

	cached, _ := v.(cachedStandingsRow)
	return cached.value, cached.exists, nil
}

func (r *StandingsRepository) GetByTeamID(ctx context.Context, teamID string) (standings.Row, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "standings:team:"+teamID, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByTeamID(ctx, teamID)
		if err != nil {
			return nil, err
		}
		return cachedStandingsRow{value: item, exists: exists}, nil
	})
	if err != nil {
		return standings.Row{}, false, err
	}

	cached, _ := v.(cachedStandingsRow)
	return cached.value, cached.exists, nil
}

func (r *StandingsRepository) Create(ctx context.Context, row standings.Row) error {
	if err := r.next.Create(ctx, row); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "standings:")
	return nil
}

func (r *StandingsRepository) Update(ctx context.Context, row standings.Row) error {
	if err := r.next.Update(ctx, row); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "standings:")
	return nil
}

func (r *StandingsRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "standings:")
	}
	return deleted, nil
}

type cachedStandingsRow struct {
	value  standings.Row
	exists bool
}

type BlogRepository struct {
	next  blog.Repository
	cache *basecache.Store
}

func NewBlogRepository(next blog.Repository, cache *basecache.Store) *BlogRepository {
	return &BlogRepository{next: next, cache: cache}
}

func (r *BlogRepository) List(ctx context.Context) ([]blog.Post, error) {
	v, err := r.cache.GetOrLoad(ctx, "blog:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]blog.Post(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]blog.Post)
	return append([]blog.Post(nil), items...), nil
}

func (r *BlogRepository) ListByCategory(ctx context.Context, category string) ([]blog.Post, error) {
	v, err := r.cache.GetOrLoad(ctx, "blog:list:category:"+category, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		return append([]blog.Post(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]blog.Post)
	return append([]blog.Post(nil), items...), nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (blog.Post, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "blog:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedBlogPost{value: item, exists: exists}, nil
	})
	if err != nil {
		return blog.Post{}, false, err
	}

	cached, _ := v.(cachedBlogPost)
	return cached.value, cached.exists, nil
}

func (r *BlogRepository) Create(ctx context.Context, p blog.Post) error {
	if err := r.next.Create(ctx, p); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "blog:")
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, p blog.Post) error {
	if err := r.next.Update(ctx, p); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "blog:")
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "blog:")
	}
	return deleted, nil
}

type cachedBlogPost struct {
	value  blog.Post
	exists bool
}

type HighlightRepository struct {
	next  highlight.Repository
	cache *basecache.Store
}

func NewHighlightRepository(next highlight.Repository, cache *basecache.Store) *HighlightRepository {
	return &HighlightRepository{next: next, cache: cache}
}

func (r *HighlightRepository) List(ctx context.Context) ([]highlight.Highlight, error) {
	v, err := r.cache.GetOrLoad(ctx, "highlight:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]highlight.Highlight(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]highlight.Highlight)
	return append([]highlight.Highlight(nil), items...), nil
}

func (r *HighlightRepository) GetByID(ctx context.Context, id string) (highlight.Highlight, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "highlight:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedHighlight{value: item, exists: exists}, nil
	})
	if err != nil {
		return highlight.Highlight{}, false, err
	}

	cached, _ := v.(cachedHighlight)
	return cached.value, cached.exists, nil
}

func (r *HighlightRepository) Create(ctx context.Context, h highlight.Highlight) error {
	if err := r.next.Create(ctx, h); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "highlight:")
	return nil
}

func (r *HighlightRepository) Update(ctx context.Context, h highlight.Highlight) error {
	if err := r.next.Update(ctx, h); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "highlight:")
	return nil
}

func (r *HighlightRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "highlight:")
	}
	return deleted, nil
}

type cachedHighlight struct {
	value  highlight.Highlight
	exists bool
}

type WatchliveRepository struct {
	next  watchlive.Repository
	cache *basecache.Store
}

func NewWatchliveRepository(next watchlive.Repository, cache *basecache.Store) *WatchliveRepository {
	return &WatchliveRepository{next: next, cache: cache}
}

func (r *WatchliveRepository) List(ctx context.Context) ([]watchlive.Stream, error) {
	v, err := r.cache.GetOrLoad(ctx, "watchlive:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]watchlive.Stream(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]watchlive.Stream)
	return append([]watchlive.Stream(nil), items...), nil
}

func (r *WatchliveRepository) GetByID(ctx context.Context, id string) (watchlive.Stream, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "watchlive:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedStream{value: item, exists: exists}, nil
	})
	if err != nil {
		return watchlive.Stream{}, false, err
	}

	cached, _ := v.(cachedStream)
	return cached.value, cached.exists, nil
}

func (r *WatchliveRepository) Create(ctx context.Context, s watchlive.Stream) error {
	if err := r.next.Create(ctx, s); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "watchlive:")
	return nil
}

func (r *WatchliveRepository) Update(ctx context.Context, s watchlive.Stream) error {
	if err := r.next.Update(ctx, s); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "watchlive:")
	return nil
}

func (r *WatchliveRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "watchlive:")
	}
	return deleted, nil
}

type cachedStream struct {
	value  watchlive.Stream
	exists bool
}

type SponsorRepository struct {
	next  sponsor.Repository
	cache *basecache.Store
}

func NewSponsorRepository(next sponsor.Repository, cache *basecache.Store) *SponsorRepository {
	return &SponsorRepository{next: next, cache: cache}
}

func (r *SponsorRepository) List(ctx context.Context) ([]sponsor.Sponsor, error) {
	v, err := r.cache.GetOrLoad(ctx, "sponsor:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]sponsor.Sponsor(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]sponsor.Sponsor)
	return append([]sponsor.Sponsor(nil), items...), nil
}

func (r *SponsorRepository) GetByID(ctx context.Context, id string) (sponsor.Sponsor, bool, error) {
	v, err := r.cache.GetOrLoad(ctx, "sponsor:id:"+id, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedSponsor{value: item, exists: exists}, nil
	})
	if err != nil {
		return sponsor.Sponsor{}, false, err
	}

	cached, _ := v.(cachedSponsor)
	return cached.value, cached.exists, nil
}

func (r *SponsorRepository) Create(ctx context.Context, s sponsor.Sponsor) error {
	if err := r.next.Create(ctx, s); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "sponsor:")
	return nil
}

func (r *SponsorRepository) Update(ctx context.Context, s sponsor.Sponsor) error {
	if err := r.next.Update(ctx, s); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "sponsor:")
	return nil
}

func (r *SponsorRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.next.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, "sponsor:")
	}
	return deleted, nil
}

type cachedSponsor struct {
	value  sponsor.Sponsor
	exists bool
}
