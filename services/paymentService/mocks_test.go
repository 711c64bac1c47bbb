package paymentService

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"studynotion/config"
	"studynotion/database"
	"studynotion/models"
	"studynotion/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var errMockGateway = errors.New("gateway unavailable")

// MockGateway implements Gateway for testing
type MockGateway struct {
	mu              sync.Mutex
	CreateOrderFunc func(ctx context.Context, req utils.OrderRequest) (*utils.GatewayOrder, error)
	Requests        []utils.OrderRequest
}

func (m *MockGateway) CreateOrder(ctx context.Context, req utils.OrderRequest) (*utils.GatewayOrder, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	m.mu.Unlock()

	if m.CreateOrderFunc != nil {
		return m.CreateOrderFunc(ctx, req)
	}
	return &utils.GatewayOrder{
		ID:       "order_1",
		Entity:   "order",
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Status:   "created",
	}, nil
}

// MockNotifier implements Notifier for testing
type MockNotifier struct {
	mu   sync.Mutex
	Err  error
	Sent []utils.Mail
}

func (m *MockNotifier) Send(ctx context.Context, mail utils.Mail) utils.MailResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, mail)
	if m.Err != nil {
		return utils.MailResult{Err: m.Err}
	}
	return utils.MailResult{MessageID: "<test@mail>"}
}

// MockRenderer implements InvoiceRenderer for testing
type MockRenderer struct {
	Err  error
	Last utils.InvoiceData
}

func (m *MockRenderer) Render(data utils.InvoiceData) ([]byte, error) {
	m.Last = data
	if m.Err != nil {
		return nil, m.Err
	}
	return []byte("%PDF-test"), nil
}

type testEnv struct {
	db       *gorm.DB
	svc      *Service
	gateway  *MockGateway
	notifier *MockNotifier
	renderer *MockRenderer
	now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		DBDriver:       "sqlite",
		DBName:         ":memory:",
		RazorpaySecret: "s3cr3t",
		Currency:       "INR",
	}
	db, err := database.ConnectDb(cfg, zap.NewNop())
	require.NoError(t, err)

	env := &testEnv{
		db:       db,
		gateway:  &MockGateway{},
		notifier: &MockNotifier{},
		renderer: &MockRenderer{},
		now:      time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
	}
	env.svc = NewPaymentService(db, cfg, env.gateway, env.notifier, env.renderer, zap.NewNop())
	env.svc.now = func() time.Time { return env.now }
	return env
}

func (e *testEnv) createUser(t *testing.T, first, last, email string) models.User {
	t.Helper()
	user := models.User{FirstName: first, LastName: last, Email: email, Role: models.RoleStudent}
	require.NoError(t, e.db.Create(&user).Error)
	return user
}

func (e *testEnv) createCourse(t *testing.T, name, price string) models.Course {
	t.Helper()
	course := models.Course{CourseName: name, Price: decimal.RequireFromString(price)}
	require.NoError(t, e.db.Create(&course).Error)
	return course
}

func (e *testEnv) progressCount(t *testing.T, userID, courseID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(&models.CourseProgress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).Count(&count).Error)
	return count
}
