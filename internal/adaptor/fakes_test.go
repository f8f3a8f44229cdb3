package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinemax-api/internal/dto/request"
	"cinemax-api/internal/dto/response"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

type fakeMovieService struct {
	getMovies    func(query request.MovieQuery) ([]response.MovieResponse, error)
	getMovieByID func(id int64) (*response.MovieResponse, error)
	createMovie  func(req *request.MovieRequest) (*response.MovieResponse, error)
	deleteMovie  func(id int64) error
	calls        int
}

func (f *fakeMovieService) GetMovies(_ context.Context, query request.MovieQuery) ([]response.MovieResponse, error) {
	f.calls++
	return f.getMovies(query)
}

func (f *fakeMovieService) GetMovieByID(_ context.Context, id int64) (*response.MovieResponse, error) {
	f.calls++
	return f.getMovieByID(id)
}

func (f *fakeMovieService) CreateMovie(_ context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	f.calls++
	return f.createMovie(req)
}

func (f *fakeMovieService) DeleteMovie(_ context.Context, id int64) error {
	f.calls++
	return f.deleteMovie(id)
}

type fakeSessionService struct {
	getSessions    func(query request.SessionQuery) ([]response.SessionResponse, error)
	getSessionByID func(id int64) (*response.SessionResponse, error)
	createSession  func(req *request.SessionRequest) (*response.SessionResponse, error)
	calls          int
}

func (f *fakeSessionService) GetSessions(_ context.Context, query request.SessionQuery) ([]response.SessionResponse, error) {
	f.calls++
	return f.getSessions(query)
}

func (f *fakeSessionService) GetSessionByID(_ context.Context, id int64) (*response.SessionResponse, error) {
	f.calls++
	return f.getSessionByID(id)
}

func (f *fakeSessionService) CreateSession(_ context.Context, req *request.SessionRequest) (*response.SessionResponse, error) {
	f.calls++
	return f.createSession(req)
}

type fakeRoomService struct {
	getRooms    func() ([]response.RoomResponse, error)
	getRoomByID func(id int64) (*response.RoomResponse, error)
	createRoom  func(req *request.RoomRequest) (*response.RoomResponse, error)
}

func (f *fakeRoomService) GetRooms(_ context.Context) ([]response.RoomResponse, error) {
	return f.getRooms()
}

func (f *fakeRoomService) GetRoomByID(_ context.Context, id int64) (*response.RoomResponse, error) {
	return f.getRoomByID(id)
}

func (f *fakeRoomService) CreateRoom(_ context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	return f.createRoom(req)
}

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Total   *int              `json:"total"`
	Errors  map[string]string `json:"errors"`
}

// serve runs one request through a chi router so URL params resolve as in production.
func serve(t *testing.T, method, pattern string, h http.HandlerFunc, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

