package usecase

import (
	"context"
	"sort"
	"time"

	"cinemax-api/internal/data/entity"
	"cinemax-api/internal/data/repository"
)

type fakeMovieRepo struct {
	movies    map[int64]*entity.Movie
	nextID    int64
	creates   int
	deletes   int
	err       error
	deleteErr error
}

func newFakeMovieRepo(movies ...*entity.Movie) *fakeMovieRepo {
	f := &fakeMovieRepo{movies: map[int64]*entity.Movie{}}
	for _, m := range movies {
		f.movies[m.ID] = m
		f.nextID = max(f.nextID, m.ID)
	}
	return f
}

func (f *fakeMovieRepo) Create(_ context.Context, movie *entity.Movie) error {
	if f.err != nil {
		return f.err
	}
	f.creates++
	f.nextID++
	movie.ID = f.nextID
	movie.Active = true
	movie.CreatedAt = time.Now()
	movie.UpdatedAt = movie.CreatedAt
	stored := *movie
	f.movies[movie.ID] = &stored
	return nil
}

func (f *fakeMovieRepo) FindByID(_ context.Context, id int64) (*entity.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMovieRepo) FindAll(_ context.Context, filter entity.MovieFilter) ([]*entity.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := []*entity.Movie{}
	for _, m := range f.movies {
		if !filter.IncludeInactive && !m.Active {
			continue
		}
		if filter.Genre != nil && m.Genre != *filter.Genre {
			continue
		}
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (f *fakeMovieRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes++
	if _, ok := f.movies[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(f.movies, id)
	return nil
}

type fakeRoomRepo struct {
	rooms   map[int64]*entity.Room
	nextID  int64
	creates int
	err     error
}

func newFakeRoomRepo(rooms ...*entity.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{rooms: map[int64]*entity.Room{}}
	for _, r := range rooms {
		f.rooms[r.ID] = r
		f.nextID = max(f.nextID, r.ID)
	}
	return f
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	if f.err != nil {
		return f.err
	}
	f.creates++
	f.nextID++
	room.ID = f.nextID
	room.Active = true
	stored := *room
	f.rooms[room.ID] = &stored
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id int64) (*entity.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.rooms[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := []*entity.Room{}
	for _, r := range f.rooms {
		if r.Active {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// fakeSessionRepo joins against the movie and room fakes the way the SQL does.
type fakeSessionRepo struct {
	movies   *fakeMovieRepo
	rooms    *fakeRoomRepo
	sessions []*entity.Session
	creates  int
	err      error
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	if f.err != nil {
		return f.err
	}
	f.creates++
	session.ID = int64(len(f.sessions) + 1)
	session.Active = true
	stored := *session
	f.sessions = append(f.sessions, &stored)
	return nil
}

func (f *fakeSessionRepo) detail(s *entity.Session) *entity.SessionDetail {
	return &entity.SessionDetail{
		Session: *s,
		Movie:   *f.movies.movies[s.MovieID],
		Room:    *f.rooms.rooms[s.RoomID],
	}
}

func (f *fakeSessionRepo) FindDetailByID(_ context.Context, id int64) (*entity.SessionDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.sessions {
		if s.ID == id {
			return f.detail(s), nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) FindAllDetails(_ context.Context, filter entity.SessionFilter) ([]*entity.SessionDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := []*entity.SessionDetail{}
	for _, s := range f.sessions {
		if !s.Active {
			continue
		}
		if filter.MovieID != nil && s.MovieID != *filter.MovieID {
			continue
		}
		if filter.Date != nil && !s.SessionDate.Equal(*filter.Date) {
			continue
		}
		result = append(result, f.detail(s))
	}
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.SessionDate.Equal(b.SessionDate) {
			return a.SessionDate.Before(b.SessionDate)
		}
		if a.SessionTime.Microseconds != b.SessionTime.Microseconds {
			return a.SessionTime.Microseconds < b.SessionTime.Microseconds
		}
		return a.ID < b.ID
	})
	return result, nil
}

func newFakeRepository(movies *fakeMovieRepo, rooms *fakeRoomRepo) (*repository.Repository, *fakeSessionRepo) {
	sessions := &fakeSessionRepo{movies: movies, rooms: rooms}
	return &repository.Repository{Movie: movies, Room: rooms, Session: sessions}, sessions
}
