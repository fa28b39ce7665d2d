package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/domain/account"
	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/chat"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/resume"
	"career-guide/internal/pkg/randsrc"
	"career-guide/internal/pkg/response"
	"career-guide/internal/repository"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAccounts struct{ err error }

func (s stubAccounts) SignUp(_ context.Context, in usecase.SignUpInput) (account.Account, error) {
	return account.Account{Email: in.Email, Name: in.Name}, s.err
}

func (s stubAccounts) SignIn(_ context.Context, in usecase.SignInInput) (account.Account, error) {
	return account.Account{Email: in.Email}, s.err
}

type stubProfiles struct {
	gotEmail string
}

func (s *stubProfiles) GetProfile(_ context.Context, email string) (profile.Profile, error) {
	s.gotEmail = email
	return profile.Profile{Skills: "python"}, nil
}

func (s *stubProfiles) SaveProfile(_ context.Context, _ string, in usecase.SaveProfileInput) (profile.Profile, error) {
	edu, err := profile.ParseEducation(in.Education)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	return profile.Profile{Education: edu}, nil
}

func (s *stubProfiles) GetProfilePicture(context.Context, string) (profile.Picture, error) {
	return profile.Picture{}, usecase.ErrPictureNotFound
}

func (s *stubProfiles) SaveProfilePicture(_ context.Context, _, fileName, contentType string, data []byte) (profile.Picture, error) {
	if err := profile.ValidatePicture(contentType, int64(len(data))); err != nil {
		return profile.Picture{}, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	return profile.Picture{FileName: fileName, ContentType: contentType, Data: data}, nil
}

type stubRecommendations struct{ err error }

func (s stubRecommendations) Generate(context.Context, string) ([]usecase.Recommendation, error) {
	return nil, s.err
}

func (s stubRecommendations) ForProfile(profile.Profile, *resume.Result) []usecase.Recommendation {
	return nil
}

func (s stubRecommendations) CatalogCard(_ context.Context, title string) (usecase.Recommendation, error) {
	e, ok := catalog.FindByTitle(catalog.Fixture(), title)
	if !ok {
		return usecase.Recommendation{}, usecase.ErrJobNotFound
	}
	return usecase.CatalogCardFor(e), nil
}

type stubResumes struct {
	name string
	size int64
}

func (s *stubResumes) Analyze(_ context.Context, _, fileName string, size int64) (usecase.ResumeReport, error) {
	s.name, s.size = fileName, size
	if err := resume.ValidateFile(fileName, size); err != nil {
		return usecase.ResumeReport{}, fmt.Errorf("%w: %w", usecase.ErrInvalidInput, err)
	}
	return usecase.ResumeReport{Analysis: resume.Analysis{Result: resume.Result{FileName: fileName, Skills: []string{"Python"}}}}, nil
}

func (s *stubResumes) Latest(context.Context, string) (resume.Result, error) {
	return resume.Result{}, usecase.ErrResumeNotFound
}

type fixtureCatalog struct{}

func (fixtureCatalog) List(context.Context) ([]catalog.Entry, error) { return catalog.Fixture(), nil }

func (fixtureCatalog) ListByCategory(_ context.Context, c catalog.Category) ([]catalog.Entry, error) {
	return catalog.ByCategory(catalog.Fixture(), c), nil
}

func (fixtureCatalog) FindByTitle(context.Context, string) (catalog.Entry, error) {
	return catalog.Entry{}, repository.ErrCatalogEntryNotFound
}

type testServer struct {
	app      *fiber.App
	profiles *stubProfiles
	resumes  *stubResumes
}

func newTestServer(accountErr, recErr error) testServer {
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(zerolog.Nop()).Middleware())

	profiles := &stubProfiles{}
	resumes := &stubResumes{}
	acct := middleware.NewAccountMiddleware().Middleware()
	accounts := app.Group("/accounts/:email")
	jobs := app.Group("/jobs")

	NewAccountHandler(stubAccounts{err: accountErr}).RegisterRoutes(app.Group("/accounts"))
	NewProfileHandler(profiles).RegisterRoutes(accounts, acct)
	NewResumeHandler(resumes).RegisterRoutes(accounts, acct)
	NewRecommendationHandler(stubRecommendations{err: recErr}).RegisterRoutes(accounts, acct, jobs)
	NewCatalogHandler(usecase.NewCatalogUsecase(fixtureCatalog{}, nil, zerolog.Nop())).RegisterRoutes(jobs)
	NewChatHandler(usecase.NewChatUsecase(chat.NewResponder(randsrc.Fixed{}))).RegisterRoutes(app)

	return testServer{app: app, profiles: profiles, resumes: resumes}
}

func (s testServer) do(t *testing.T, req *http.Request) (int, response.SemanticResponse) {
	t.Helper()
	resp, err := s.app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var env response.SemanticResponse
	require.NoError(t, json.Unmarshal(body, &env), string(body))
	return resp.StatusCode, env
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func uploadRequest(t *testing.T, method, path, fileName, contentType string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestAccountHandler_StatusMapping(t *testing.T) {
	status, env := newTestServer(nil, nil).do(t, jsonRequest(fiber.MethodPost, "/accounts/signup", `{"name":"A","email":"a@b.c","password":"secret12"}`))
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, response.MessageCreated, env.Message)

	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{usecase.ErrEmailAlreadyRegistered, fiber.StatusConflict, "Email already registered"},
		{usecase.ErrInvalidCredentials, fiber.StatusUnauthorized, "Invalid email or password"},
		{usecase.ErrAccountNotFound, fiber.StatusNotFound, "Account not found"},
		{fmt.Errorf("%w: db down", usecase.ErrInternal), fiber.StatusInternalServerError, response.MessageInternalServerError},
	}
	for _, tc := range cases {
		status, env := newTestServer(tc.err, nil).do(t, jsonRequest(fiber.MethodPost, "/accounts/signin", `{"email":"a@b.c","password":"x"}`))
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.msg, env.Message)
	}
}

func TestProfileHandler(t *testing.T) {
	s := newTestServer(nil, nil)

	status, env := s.do(t, httptest.NewRequest(fiber.MethodGet, "/accounts/A@B.C/profile", nil))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "a@b.c", s.profiles.gotEmail)
	data := env.Data.(map[string]any)
	assert.Equal(t, true, data["complete"])
	assert.Equal(t, profile.DefaultLanguage, data["lang"])

	status, _ = s.do(t, httptest.NewRequest(fiber.MethodGet, "/accounts/not-an-email/profile", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = s.do(t, jsonRequest(fiber.MethodPut, "/accounts/a@b.c/profile", `{"edu":"PhD"}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, profile.ErrUnknownEducation.Error(), env.Message)
}

func TestProfileHandler_Picture(t *testing.T) {
	s := newTestServer(nil, nil)

	status, env := s.do(t, uploadRequest(t, fiber.MethodPut, "/accounts/a@b.c/profile/picture", "me.png", "image/png", []byte{1, 2, 3}))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "data:image/png;base64,AQID", env.Data.(map[string]any)["data_url"])

	status, env = s.do(t, uploadRequest(t, fiber.MethodPut, "/accounts/a@b.c/profile/picture", "cv.pdf", "application/pdf", []byte{1}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, profile.ErrPictureNotImage.Error(), env.Message)

	big := make([]byte, profile.MaxPictureBytes+10)
	status, _ = s.do(t, uploadRequest(t, fiber.MethodPut, "/accounts/a@b.c/profile/picture", "big.png", "image/png", big))
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, status)

	status, _ = s.do(t, httptest.NewRequest(fiber.MethodGet, "/accounts/a@b.c/profile/picture", nil))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestResumeHandler(t *testing.T) {
	s := newTestServer(nil, nil)

	status, env := s.do(t, uploadRequest(t, fiber.MethodPost, "/accounts/a@b.c/resume", "cv.pdf", "application/pdf", []byte("%PDF")))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "cv.pdf", s.resumes.name)
	assert.Equal(t, int64(4), s.resumes.size)
	assert.Equal(t, "cv.pdf", env.Data.(map[string]any)["file_name"])

	status, env = s.do(t, httptest.NewRequest(fiber.MethodPost, "/accounts/a@b.c/resume", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, resume.ErrNoFile.Error(), env.Message)

	status, env = s.do(t, uploadRequest(t, fiber.MethodPost, "/accounts/a@b.c/resume", "cv.txt", "text/plain", []byte("x")))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, resume.ErrUnsupportedFormat.Error(), env.Message)

	status, _ = s.do(t, httptest.NewRequest(fiber.MethodGet, "/accounts/a@b.c/resume", nil))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRecommendationHandler(t *testing.T) {
	status, env := newTestServer(nil, usecase.ErrProfileIncomplete).do(t, httptest.NewRequest(fiber.MethodGet, "/accounts/a@b.c/recommendations", nil))
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Equal(t, "Complete your profile first", env.Message)

	s := newTestServer(nil, nil)
	status, env = s.do(t, httptest.NewRequest(fiber.MethodGet, "/jobs/card?title=Photographer", nil))
	require.Equal(t, fiber.StatusOK, status)
	card := env.Data.(map[string]any)
	assert.Equal(t, "Match", card["score"])
	assert.Equal(t, "Picture Perfect Studios", card["company"])

	status, _ = s.do(t, httptest.NewRequest(fiber.MethodGet, "/jobs/card?title=Astronaut", nil))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestCatalogHandler(t *testing.T) {
	s := newTestServer(nil, nil)

	status, env := s.do(t, httptest.NewRequest(fiber.MethodGet, "/jobs/search?q=ITI", nil))
	require.Equal(t, fiber.StatusOK, status)
	data := env.Data.(map[string]any)
	assert.Equal(t, float64(12), data["count"])
	assert.Len(t, data["results"], 12)

	status, env = s.do(t, httptest.NewRequest(fiber.MethodGet, "/jobs/search?q=", nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, env.Data.(map[string]any)["results"])

	status, env = s.do(t, httptest.NewRequest(fiber.MethodGet, "/jobs/catalog?category=ITI%2FDiploma", nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, env.Data, 10)

	status, env = s.do(t, httptest.NewRequest(fiber.MethodGet, "/jobs/catalog?category=space", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, catalog.ErrUnknownCategory.Error(), env.Message)
}

func TestChatHandler(t *testing.T) {
	s := newTestServer(nil, nil)

	status, env := s.do(t, jsonRequest(fiber.MethodPost, "/chat", `{"message":"What is gravity?"}`))
	require.Equal(t, fiber.StatusOK, status)
	data := env.Data.(map[string]any)
	assert.Equal(t, "what-is", data["topic"])
	assert.Contains(t, data["reply"], `"What is gravity?"`)

	status, _ = s.do(t, jsonRequest(fiber.MethodPost, "/chat", `{"message":"   "}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
}
