package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"coachmarket.backend/internal/domain/entities"
	"coachmarket.backend/internal/domain/gateway"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetBySlug(ctx context.Context, slug string) (*entities.User, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpsertByEmail(ctx context.Context, input *entities.UpsertUserInput) (*entities.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) SetGatewayAccount(ctx context.Context, id uuid.UUID, accountID string) error {
	args := m.Called(ctx, id, accountID)
	return args.Error(0)
}

func (m *MockUserRepository) SetGatewayReady(ctx context.Context, accountID string, ready bool) error {
	args := m.Called(ctx, accountID, ready)
	return args.Error(0)
}

func (m *MockUserRepository) SetLinkedinURL(ctx context.Context, id uuid.UUID, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func (m *MockUserRepository) SetRole(ctx context.Context, id uuid.UUID, role entities.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) ListCoaches(ctx context.Context) ([]*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) InsertIfAbsent(ctx context.Context, payment *entities.Payment) (bool, error) {
	args := m.Called(ctx, payment)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) GetBySessionID(ctx context.Context, sessionID string) (*entities.Payment, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Payment), args.Error(1)
}

func (m *MockPaymentRepository) GetByCoachID(ctx context.Context, coachID uuid.UUID, limit, offset int) ([]*entities.Payment, int, error) {
	args := m.Called(ctx, coachID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Payment), args.Int(1), args.Error(2)
}

// Mock WebhookEventRepository
type MockWebhookEventRepository struct {
	mock.Mock
}

func (m *MockWebhookEventRepository) MarkProcessed(ctx context.Context, eventID, eventType string) error {
	args := m.Called(ctx, eventID, eventType)
	return args.Error(0)
}

func (m *MockWebhookEventRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

// Mock CoachApplicationRepository
type MockCoachApplicationRepository struct {
	mock.Mock
}

func (m *MockCoachApplicationRepository) Upsert(ctx context.Context, app *entities.CoachApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockCoachApplicationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.CoachApplication, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CoachApplication), args.Error(1)
}

func (m *MockCoachApplicationRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status entities.ApplicationStatus) error {
	args := m.Called(ctx, userID, status)
	return args.Error(0)
}

// Mock ClientIntakeRepository
type MockClientIntakeRepository struct {
	mock.Mock
}

func (m *MockClientIntakeRepository) Create(ctx context.Context, intake *entities.ClientIntake) error {
	args := m.Called(ctx, intake)
	return args.Error(0)
}

func (m *MockClientIntakeRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.ClientIntake, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ClientIntake), args.Error(1)
}

// Mock Gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateAccount(ctx context.Context, params *gateway.CreateAccountParams) (*gateway.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Account), args.Error(1)
}

func (m *MockGateway) CreateAccountLink(ctx context.Context, params *gateway.AccountLinkParams) (*gateway.AccountLink, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.AccountLink), args.Error(1)
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, params *gateway.CheckoutSessionParams) (*gateway.CheckoutSession, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.CheckoutSession), args.Error(1)
}

func (m *MockGateway) GetPaymentIntent(ctx context.Context, id string) (*gateway.PaymentIntent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.PaymentIntent), args.Error(1)
}
