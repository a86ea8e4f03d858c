package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/dbx"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/repositories/checkins"
	"github.com/lifeos/lifeos/internal/server/repositories/documents"
	"github.com/lifeos/lifeos/internal/server/repositories/expenses"
	"github.com/lifeos/lifeos/internal/server/repositories/habits"
	"github.com/lifeos/lifeos/internal/server/repositories/notes"
	"github.com/lifeos/lifeos/internal/server/repositories/tasks"
	"github.com/lifeos/lifeos/internal/server/repositories/upgrades"
	"github.com/lifeos/lifeos/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

// --- users ---

type fakeUsersRepo struct {
	user      *models.User
	existsErr error
	createErr error
	getErr    error
	lastLogin time.Time
}

func (f *fakeUsersRepo) Create(ctx context.Context, pinHash string) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.user != nil {
		return nil, common.ErrConflict
	}
	f.user = &models.User{ID: uuid.NewString(), PinHash: pinHash, CreatedAt: time.Now()}
	return f.user, nil
}

func (f *fakeUsersRepo) Get(ctx context.Context) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.user == nil {
		return nil, common.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeUsersRepo) Exists(ctx context.Context) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.user != nil, nil
}

func (f *fakeUsersRepo) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	f.lastLogin = at
	ts := at
	f.user.LastLogin = &ts
	return nil
}

// --- tasks ---

type fakeTasksRepo struct {
	items      map[string]*models.Task
	lastFilter models.TaskFilter
}

func newFakeTasksRepo() *fakeTasksRepo { return &fakeTasksRepo{items: map[string]*models.Task{}} }

func (f *fakeTasksRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	cp := *t
	f.items[t.ID] = &cp
	return t, nil
}

func (f *fakeTasksRepo) List(ctx context.Context, userID string, filter models.TaskFilter) ([]*models.Task, error) {
	f.lastFilter = filter
	out := []*models.Task{}
	for _, t := range f.items {
		if t.UserID != userID || !inRange(t.Date, filter.From, filter.To) {
			continue
		}
		if filter.Completed != nil && t.Completed != *filter.Completed {
			continue
		}
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out, nil
}

func (f *fakeTasksRepo) GetForUpdate(ctx context.Context, userID, id string) (*models.Task, error) {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, t *models.Task) error {
	if _, ok := f.items[t.ID]; !ok {
		return common.ErrNotFound
	}
	cp := *t
	f.items[t.ID] = &cp
	return nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, userID, id string) error {
	t, ok := f.items[id]
	if !ok || t.UserID != userID {
		return common.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// --- expenses ---

type fakeExpensesRepo struct {
	items   map[string]*models.Expense
	sumFrom time.Time
	sumTo   time.Time
}

func newFakeExpensesRepo() *fakeExpensesRepo {
	return &fakeExpensesRepo{items: map[string]*models.Expense{}}
}

func (f *fakeExpensesRepo) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	e.ID = uuid.NewString()
	cp := *e
	f.items[e.ID] = &cp
	return e, nil
}

func (f *fakeExpensesRepo) List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]*models.Expense, error) {
	out := []*models.Expense{}
	for _, e := range f.items {
		if e.UserID == userID && inRange(e.Date, filter.From, filter.To) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpensesRepo) SumByCategory(ctx context.Context, userID string, from, to time.Time) (map[string]models.CategoryTotal, error) {
	f.sumFrom, f.sumTo = from, to
	out := map[string]models.CategoryTotal{}
	for _, e := range f.items {
		if e.UserID != userID || e.Date.Before(from) || !e.Date.Before(to) {
			continue
		}
		c := out[e.Category]
		c.Total = c.Total.Add(e.Amount)
		c.Count++
		out[e.Category] = c
	}
	return out, nil
}

func (f *fakeExpensesRepo) Delete(ctx context.Context, userID, id string) error {
	e, ok := f.items[id]
	if !ok || e.UserID != userID {
		return common.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// --- check-ins ---

type fakeCheckInsRepo struct {
	items      []*models.CheckIn
	skipExists bool
	lastFilter models.CheckInFilter
}

func sameDay(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func (f *fakeCheckInsRepo) Create(ctx context.Context, c *models.CheckIn) (*models.CheckIn, error) {
	for _, e := range f.items {
		if e.UserID == c.UserID && sameDay(e.Date, c.Date) {
			return nil, common.ErrConflict
		}
	}
	c.ID = uuid.NewString()
	f.items = append(f.items, c)
	return c, nil
}

func (f *fakeCheckInsRepo) ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	if f.skipExists {
		return false, nil
	}
	for _, e := range f.items {
		if e.UserID == userID && sameDay(e.Date, day) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCheckInsRepo) List(ctx context.Context, userID string, filter models.CheckInFilter) ([]*models.CheckIn, error) {
	f.lastFilter = filter
	out := []*models.CheckIn{}
	for _, e := range f.items {
		if e.UserID == userID && inRange(e.Date, filter.From, filter.To) {
			out = append(out, e)
		}
	}
	return out, nil
}

// --- documents ---

type fakeDocumentsRepo struct {
	items     map[string]*models.Document
	createErr error
}

func newFakeDocumentsRepo() *fakeDocumentsRepo {
	return &fakeDocumentsRepo{items: map[string]*models.Document{}}
}

func (f *fakeDocumentsRepo) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	d.ID = uuid.NewString()
	f.items[d.ID] = d
	return d, nil
}

func (f *fakeDocumentsRepo) List(ctx context.Context, userID string, category models.DocumentCategory) ([]*models.Document, error) {
	out := []*models.Document{}
	for _, d := range f.items {
		if d.UserID == userID && (category == "" || d.Category == category) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentsRepo) Get(ctx context.Context, userID, id string) (*models.Document, error) {
	d, ok := f.items[id]
	if !ok || d.UserID != userID {
		return nil, common.ErrNotFound
	}
	return d, nil
}

func (f *fakeDocumentsRepo) Delete(ctx context.Context, userID, id string) (*models.Document, error) {
	d, err := f.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	delete(f.items, id)
	return d, nil
}

// --- notes ---

type fakeNotesRepo struct {
	items map[string]*models.Note
}

func newFakeNotesRepo() *fakeNotesRepo { return &fakeNotesRepo{items: map[string]*models.Note{}} }

func (f *fakeNotesRepo) Create(ctx context.Context, n *models.Note) (*models.Note, error) {
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	f.items[n.ID] = n
	return n, nil
}

func (f *fakeNotesRepo) List(ctx context.Context, userID string) ([]*models.Note, error) {
	out := []*models.Note{}
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, userID, id string, patch models.NotePatch, at time.Time) (*models.Note, error) {
	n, ok := f.items[id]
	if !ok || n.UserID != userID {
		return nil, common.ErrNotFound
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	n.UpdatedAt = at
	return n, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, userID, id string) error {
	n, ok := f.items[id]
	if !ok || n.UserID != userID {
		return common.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

// --- storage ---

type fakeStorage struct {
	objects   map[string]string
	putErr    error
	deleteErr error
	presigned time.Duration
}

func newFakeStorage() *fakeStorage { return &fakeStorage{objects: map[string]string{}} }

func (f *fakeStorage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	f.objects[key] = string(b)
	return "http://files/" + key, nil
}

func (f *fakeStorage) Delete(ctx context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	if _, ok := f.objects[key]; !ok {
		return "", fmt.Errorf("no such key %s", key)
	}
	f.presigned = ttl
	return "http://signed/" + key, nil
}

// --- repository manager ---

type fakeRepoManager struct {
	users     *fakeUsersRepo
	tasks     *fakeTasksRepo
	expenses  *fakeExpensesRepo
	checkins  *fakeCheckInsRepo
	documents *fakeDocumentsRepo
	notes     *fakeNotesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:     &fakeUsersRepo{},
		tasks:     newFakeTasksRepo(),
		expenses:  newFakeExpensesRepo(),
		checkins:  &fakeCheckInsRepo{},
		documents: newFakeDocumentsRepo(),
		notes:     newFakeNotesRepo(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return m.users }
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository             { return m.tasks }
func (m *fakeRepoManager) Expenses(dbx.DBTX) expenses.Repository       { return m.expenses }
func (m *fakeRepoManager) CheckIns(dbx.DBTX) checkins.Repository       { return m.checkins }
func (m *fakeRepoManager) Documents(dbx.DBTX) documents.Repository     { return m.documents }
func (m *fakeRepoManager) Notes(dbx.DBTX) notes.Repository             { return m.notes }
func (m *fakeRepoManager) Habits(dbx.DBTX) habits.Repository           { return nil }
func (m *fakeRepoManager) Upgrades(dbx.DBTX) upgrades.Repository       { return nil }
