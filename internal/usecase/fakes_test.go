package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"career-guide/internal/domain/account"
	"career-guide/internal/domain/application"
	"career-guide/internal/domain/catalog"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/resume"
	"career-guide/internal/repository"
)

var errBoom = errors.New("boom")

type memAccounts struct {
	mu      sync.Mutex
	byID    map[string]account.Account
	err     error
	nameErr error
}

func newMemAccounts(emails ...string) *memAccounts {
	m := &memAccounts{byID: map[string]account.Account{}}
	for _, e := range emails {
		m.byID[e] = account.Account{Email: e}
	}
	return m
}

func (m *memAccounts) Create(_ context.Context, a account.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[a.Email]; ok {
		return account.ErrEmailTaken
	}
	m.byID[a.Email] = a
	return nil
}

func (m *memAccounts) GetByEmail(_ context.Context, email string) (account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return account.Account{}, m.err
	}
	a, ok := m.byID[email]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return a, nil
}

func (m *memAccounts) UpdateName(_ context.Context, email, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nameErr != nil {
		return m.nameErr
	}
	a, ok := m.byID[email]
	if !ok {
		return account.ErrNotFound
	}
	a.Name = name
	m.byID[email] = a
	return nil
}

type memProfiles struct {
	profiles map[string]profile.Profile
	pictures map[string]profile.Picture
}

func newMemProfiles() *memProfiles {
	return &memProfiles{profiles: map[string]profile.Profile{}, pictures: map[string]profile.Picture{}}
}

func (m *memProfiles) Get(_ context.Context, email string) (profile.Profile, error) {
	p, ok := m.profiles[email]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m *memProfiles) Upsert(_ context.Context, email string, p profile.Profile) error {
	m.profiles[email] = p
	return nil
}

func (m *memProfiles) GetPicture(_ context.Context, email string) (profile.Picture, error) {
	p, ok := m.pictures[email]
	if !ok {
		return profile.Picture{}, profile.ErrPictureNotFound
	}
	return p, nil
}

func (m *memProfiles) UpsertPicture(_ context.Context, email string, pic profile.Picture) error {
	m.pictures[email] = pic
	return nil
}

type memResumes struct {
	byEmail map[string]resume.Result
}

func newMemResumes() *memResumes { return &memResumes{byEmail: map[string]resume.Result{}} }

func (m *memResumes) Get(_ context.Context, email string) (resume.Result, error) {
	r, ok := m.byEmail[email]
	if !ok {
		return resume.Result{}, resume.ErrNotFound
	}
	return r, nil
}

func (m *memResumes) Upsert(_ context.Context, email string, r resume.Result) error {
	m.byEmail[email] = r
	return nil
}

type memCatalog struct {
	entries []catalog.Entry
	lists   int
	err     error
}

func (m *memCatalog) List(context.Context) ([]catalog.Entry, error) {
	m.lists++
	if m.err != nil {
		return nil, m.err
	}
	return append([]catalog.Entry(nil), m.entries...), nil
}

func (m *memCatalog) ListByCategory(_ context.Context, c catalog.Category) ([]catalog.Entry, error) {
	m.lists++
	return catalog.ByCategory(m.entries, c), nil
}

func (m *memCatalog) FindByTitle(_ context.Context, title string) (catalog.Entry, error) {
	e, ok := catalog.FindByTitle(m.entries, title)
	if !ok {
		return catalog.Entry{}, repository.ErrCatalogEntryNotFound
	}
	return e, nil
}

type memApplications struct {
	items []application.Application
}

func (m *memApplications) Create(_ context.Context, a application.Application) error {
	m.items = append(m.items, a)
	return nil
}

func (m *memApplications) ListByAccount(_ context.Context, email string) ([]application.Application, error) {
	var out []application.Application
	for _, a := range m.items {
		if a.AccountEmail == email {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out, nil
}

// memCache stores JSON like the redis cache does, so decoding paths are exercised.
type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) (int, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	n := 0
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
			n++
		}
	}
	return n, nil
}

type recordingNotifier struct {
	got []application.Application
}

func (r *recordingNotifier) NotifyApplication(_ string, a application.Application) {
	r.got = append(r.got, a)
}
