package http

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/zthechelon/portfolio/adapters/cache"
	"github.com/zthechelon/portfolio/adapters/event"
	"github.com/zthechelon/portfolio/adapters/persistence/sqlite"
	contactUC "github.com/zthechelon/portfolio/internal/application/usecase/contact"
	contentUC "github.com/zthechelon/portfolio/internal/application/usecase/content"
	seedUC "github.com/zthechelon/portfolio/internal/application/usecase/seed"
	showcaseUC "github.com/zthechelon/portfolio/internal/application/usecase/showcase"
	"github.com/zthechelon/portfolio/internal/domain/contact"
	"github.com/zthechelon/portfolio/internal/domain/seed"
	"github.com/zthechelon/portfolio/pkg/logger"
)

type RouterTestSuite struct {
	suite.Suite
	db          *sql.DB
	router      *gin.Engine
	contactRepo contact.Repository
	seedUseCase *seedUC.SeedUseCase
}

func (s *RouterTestSuite) SetupTest() {
	db, err := sqlite.Open(filepath.Join(s.T().TempDir(), "api.db"))
	s.Require().NoError(err)
	s.db = db

	appLogger := logger.NewNopLogger()
	contentCache := cache.NewNopCache()
	s.contactRepo = sqlite.NewContactRepo(db)

	contentUseCase := contentUC.NewContentUseCase(contentUC.Repositories{
		Profile:     sqlite.NewProfileRepo(db),
		Experiences: sqlite.NewExperienceRepo(db),
		Education:   sqlite.NewEducationRepo(db),
		Projects:    sqlite.NewProjectRepo(db),
		Skills:      sqlite.NewSkillRepo(db),
	}, contentCache, time.Minute, appLogger)
	s.seedUseCase = seedUC.NewSeedUseCase(sqlite.NewSeedStore(db), seed.Baseline(), contentCache, appLogger)

	gin.SetMode(gin.TestMode)
	s.router = NewRouter(Handlers{
		Content:  NewContentHandler(contentUseCase, appLogger),
		Contact:  NewContactHandler(contactUC.NewSubmitContactUseCase(s.contactRepo, event.NewNopPublisher(), appLogger), appLogger),
		Showcase: NewShowcaseHandler(showcaseUC.NewShowcaseUseCase(contentUseCase, appLogger), appLogger),
		RSS:      NewRSSHandler(contentUC.NewRSSUseCase(contentUseCase, "https://site.example", appLogger), appLogger),
	}, "portfolio-api-test", appLogger)
}

func (s *RouterTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *RouterTestSuite) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *RouterTestSuite) contactCount() int {
	n, err := s.contactRepo.Count(context.Background())
	s.Require().NoError(err)
	return n
}

func (s *RouterTestSuite) TestEmptyStoreReads() {
	w := s.do(http.MethodGet, "/api/profile", nil)
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{}`, w.Body.String())

	for _, path := range []string{"/api/projects", "/api/experiences", "/api/education", "/api/skills"} {
		w = s.do(http.MethodGet, path, nil)
		s.Equal(http.StatusOK, w.Code, path)
		s.JSONEq(`[]`, w.Body.String(), path)
	}
}

func (s *RouterTestSuite) TestContactSubmissionSuccess() {
	w := s.do(http.MethodPost, "/api/contact", []byte(`{"name":"A","email":"a@example.com","message":"hi"}`))

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"success":true}`, w.Body.String())
	s.Equal(1, s.contactCount())
}

func (s *RouterTestSuite) TestContactSubmissionInvalid() {
	bodies := []string{
		`{"name":"A","message":"hi"}`,
		`{"name":"A","email":"nope","message":"hi"}`,
		`{"email":"a@example.com","message":"hi"}`,
		`not json`,
	}
	for _, body := range bodies {
		w := s.do(http.MethodPost, "/api/contact", []byte(body))
		s.Equal(http.StatusBadRequest, w.Code, body)
		s.JSONEq(`{"message":"Invalid input"}`, w.Body.String(), body)
	}
	s.Zero(s.contactCount())
}

func (s *RouterTestSuite) TestContactFieldLimits() {
	submit := func(fields map[string]string) int {
		body, err := json.Marshal(fields)
		s.Require().NoError(err)
		return s.do(http.MethodPost, "/api/contact", body).Code
	}
	valid := func() map[string]string {
		return map[string]string{"name": "A", "email": "a@example.com", "subject": "Hello", "message": "hi"}
	}

	atLimit := valid()
	atLimit["name"] = strings.Repeat("n", 200)
	atLimit["subject"] = strings.Repeat("s", 300)
	atLimit["message"] = strings.Repeat("m", 5000)
	s.Equal(http.StatusOK, submit(atLimit))

	for field, n := range map[string]int{"name": 201, "subject": 301, "message": 5001} {
		over := valid()
		over[field] = strings.Repeat("x", n)
		s.Equal(http.StatusBadRequest, submit(over), field)
	}
	s.Equal(1, s.contactCount())
}

func (s *RouterTestSuite) TestPanicIsGenericInternalError() {
	s.router.GET("/api/panics", func(*gin.Context) { panic("nil map write") })

	w := s.do(http.MethodGet, "/api/panics", nil)
	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"message":"Internal server error"}`, w.Body.String())
}

func (s *RouterTestSuite) TestContactStorageFailureIsGeneric() {
	_, err := s.db.Exec(`DROP TABLE contact_messages`)
	s.Require().NoError(err)

	w := s.do(http.MethodPost, "/api/contact", []byte(`{"name":"A","email":"a@example.com","message":"hi"}`))
	s.Equal(http.StatusInternalServerError, w.Code)
	s.JSONEq(`{"message":"Internal server error"}`, w.Body.String())
}

func (s *RouterTestSuite) TestReadsAfterSeeding() {
	_, err := s.seedUseCase.Execute(context.Background(), seedUC.SeedInput{})
	s.Require().NoError(err)
	def := seed.Baseline()

	w := s.do(http.MethodGet, "/api/experiences", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	var exps []ExperienceDTO
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &exps))
	s.Require().Len(exps, len(def.Experiences))
	for i, e := range exps {
		s.Equal(def.Experiences[i].Company, e.Company)
		s.Equal(def.Experiences[i].Role, e.Role)
	}

	w = s.do(http.MethodGet, "/api/profile", nil)
	var p ProfileDTO
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &p))
	s.Equal(def.ExpectedTitle(), p.Title)
	s.Contains(w.Body.String(), `"linkedinUrl"`)
}

func (s *RouterTestSuite) TestShowcaseOnEmptyStoreUsesDefaults() {
	w := s.do(http.MethodGet, "/api/showcase", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var dto ShowcaseDTO
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &dto))
	s.Len(dto.Fallbacks, 5)
	s.NotEmpty(dto.SkillGroups)
	s.True(dto.Projects[0].Featured)
}

func (s *RouterTestSuite) TestProjectsRSS() {
	_, err := s.seedUseCase.Execute(context.Background(), seedUC.SeedInput{})
	s.Require().NoError(err)

	w := s.do(http.MethodGet, "/api/projects/rss", nil)
	s.Equal(http.StatusOK, w.Code)
	s.True(strings.HasPrefix(w.Header().Get("Content-Type"), "application/xml"))
	s.Contains(w.Body.String(), "<rss")
	s.Contains(w.Body.String(), seed.Baseline().Projects[0].Title)
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
