package httpapi

import (
	"context"
	"io"

	"github.com/lifeos/lifeos/internal/common"
	"github.com/lifeos/lifeos/internal/server/auth"
	"github.com/lifeos/lifeos/internal/server/models"
	"github.com/lifeos/lifeos/internal/server/services"
)

const (
	testUserID = "3f1c6a8e-0d6b-4c39-9a57-1f0a1e2b3c4d"
	goodToken  = "good-token"
)

type fakeAuth struct {
	createToken string
	createErr   error
	loginToken  string
	loginErr    error
	exists      bool
	existsErr   error
	authErr     error
	gotPin      string
}

func (f *fakeAuth) CreatePin(ctx context.Context, pin string) (string, *models.User, error) {
	f.gotPin = pin
	if f.createErr != nil {
		return "", nil, f.createErr
	}
	return f.createToken, &models.User{ID: testUserID}, nil
}

func (f *fakeAuth) Login(ctx context.Context, pin string) (string, error) {
	f.gotPin = pin
	return f.loginToken, f.loginErr
}

func (f *fakeAuth) CheckPinExists(ctx context.Context) (bool, error) { return f.exists, f.existsErr }

func (f *fakeAuth) Authenticate(token string) (auth.Identity, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	if token != goodToken {
		return nil, common.ErrInvalidToken
	}
	return auth.NewIdentity(testUserID), nil
}

type fakeTasks struct {
	list     []*models.Task
	gotQuery services.TaskQuery
	gotUser  string
	gotTask  *models.Task
	gotPatch models.TaskPatch
	err      error
	panics   bool
}

func (f *fakeTasks) List(ctx context.Context, userID string, q services.TaskQuery) ([]*models.Task, error) {
	if f.panics {
		panic("boom")
	}
	f.gotUser, f.gotQuery = userID, q
	return f.list, f.err
}

func (f *fakeTasks) Create(ctx context.Context, userID string, task *models.Task) (*models.Task, error) {
	f.gotUser, f.gotTask = userID, task
	if f.err != nil {
		return nil, f.err
	}
	task.ID = "t1"
	task.UserID = userID
	return task, nil
}

func (f *fakeTasks) Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error) {
	f.gotPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return &models.Task{ID: id, UserID: userID}, nil
}

func (f *fakeTasks) Toggle(ctx context.Context, userID, id string) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Task{ID: id, UserID: userID, Completed: true}, nil
}

func (f *fakeTasks) Delete(ctx context.Context, userID, id string) error { return f.err }

type fakeExpenses struct {
	gotFilter models.ExpenseFilter
	gotYear   int
	gotMonth  int
	summary   *models.MonthlySummary
	err       error
}

func (f *fakeExpenses) List(ctx context.Context, userID string, filter models.ExpenseFilter) ([]*models.Expense, error) {
	f.gotFilter = filter
	return []*models.Expense{}, f.err
}

func (f *fakeExpenses) Create(ctx context.Context, userID string, e *models.Expense) (*models.Expense, error) {
	if f.err != nil {
		return nil, f.err
	}
	e.ID = "e1"
	return e, nil
}

func (f *fakeExpenses) MonthlySummary(ctx context.Context, userID string, year, month int) (*models.MonthlySummary, error) {
	f.gotYear, f.gotMonth = year, month
	return f.summary, f.err
}

func (f *fakeExpenses) Delete(ctx context.Context, userID, id string) error { return f.err }

type fakeCheckIns struct {
	gotQuery services.CheckInQuery
	created  *models.CheckIn
	err      error
}

func (f *fakeCheckIns) List(ctx context.Context, userID string, q services.CheckInQuery) ([]*models.CheckIn, error) {
	f.gotQuery = q
	return []*models.CheckIn{}, f.err
}

func (f *fakeCheckIns) Create(ctx context.Context, userID string, c *models.CheckIn) (*models.CheckIn, error) {
	f.created = c
	if f.err != nil {
		return nil, f.err
	}
	return c, nil
}

func (f *fakeCheckIns) WeeklySummary(ctx context.Context, userID string) (*models.WeeklySummary, error) {
	return &models.WeeklySummary{
		TotalDays:               1,
		MoodDistribution:        map[models.Mood]int{models.MoodGood: 1},
		TaskFeelingDistribution: map[models.TaskFeeling]int{models.TaskFeelingSmooth: 1},
	}, f.err
}

type fakeDocuments struct {
	gotInput    services.UploadInput
	gotBody     string
	gotCategory models.DocumentCategory
	url         string
	err         error
}

func (f *fakeDocuments) Upload(ctx context.Context, userID string, in services.UploadInput) (*models.Document, error) {
	f.gotInput = in
	b, _ := io.ReadAll(in.Body)
	f.gotBody = string(b)
	if f.err != nil {
		return nil, f.err
	}
	return &models.Document{ID: "d1", UserID: userID, Title: in.Title, Category: in.Category, Tags: services.ParseTags(in.Tags)}, nil
}

func (f *fakeDocuments) List(ctx context.Context, userID string, category models.DocumentCategory) ([]*models.Document, error) {
	f.gotCategory = category
	return []*models.Document{}, f.err
}

func (f *fakeDocuments) Delete(ctx context.Context, userID, id string) error { return f.err }

func (f *fakeDocuments) DownloadURL(ctx context.Context, userID, id string) (string, error) {
	return f.url, f.err
}

type fakeNotes struct {
	gotPatch models.NotePatch
	err      error
}

func (f *fakeNotes) List(ctx context.Context, userID string) ([]*models.Note, error) {
	return []*models.Note{}, f.err
}

func (f *fakeNotes) Create(ctx context.Context, userID string, n *models.Note) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	n.ID = "n1"
	return n, nil
}

func (f *fakeNotes) Update(ctx context.Context, userID, id string, patch models.NotePatch) (*models.Note, error) {
	f.gotPatch = patch
	if f.err != nil {
		return nil, f.err
	}
	return &models.Note{ID: id}, nil
}

func (f *fakeNotes) Delete(ctx context.Context, userID, id string) error { return f.err }
