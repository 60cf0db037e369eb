package usecase

import (
	"context"
	"sync"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/gateway"

	"github.com/google/uuid"
)

// Func-field mocks for the repository and gateway boundaries. Unset fields
// return zero values.

type mockPackageRepo struct {
	CreateFunc      func(ctx context.Context, pkg *entity.TourPackage) error
	FindByIDFunc    func(ctx context.Context, id uuid.UUID) (*entity.TourPackage, error)
	FindBySlugFunc  func(ctx context.Context, slug string) (*entity.TourPackage, error)
	FindActiveFunc  func(ctx context.Context, packageType string, limit, offset int) ([]*entity.TourPackage, error)
	CountActiveFunc func(ctx context.Context, packageType string) (int64, error)
	FindAllFunc     func(ctx context.Context, limit, offset int) ([]*entity.TourPackage, error)
	CountAllFunc    func(ctx context.Context) (int64, error)
	UpdateFunc      func(ctx context.Context, pkg *entity.TourPackage) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPackageRepo) Create(ctx context.Context, pkg *entity.TourPackage) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pkg)
	}
	return nil
}

func (m *mockPackageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourPackage, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPackageRepo) FindBySlug(ctx context.Context, slug string) (*entity.TourPackage, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockPackageRepo) FindActive(ctx context.Context, packageType string, limit, offset int) ([]*entity.TourPackage, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, packageType, limit, offset)
	}
	return nil, nil
}

func (m *mockPackageRepo) CountActive(ctx context.Context, packageType string) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx, packageType)
	}
	return 0, nil
}

func (m *mockPackageRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.TourPackage, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockPackageRepo) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *mockPackageRepo) Update(ctx context.Context, pkg *entity.TourPackage) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, pkg)
	}
	return nil
}

func (m *mockPackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockBookingRepo struct {
	CreateFunc          func(ctx context.Context, booking *entity.Booking) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReferenceFunc func(ctx context.Context, reference string) (*entity.Booking, error)
	FindAllFunc         func(ctx context.Context, status string, limit, offset int) ([]*entity.Booking, error)
	CountAllFunc        func(ctx context.Context, status string) (int64, error)
	UpdateFunc          func(ctx context.Context, booking *entity.Booking) error
	UpdateStatusFunc    func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error

	StatusUpdates []entity.BookingStatus
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	if m.FindByReferenceFunc != nil {
		return m.FindByReferenceFunc(ctx, reference)
	}
	return nil, nil
}

func (m *mockBookingRepo) FindAll(ctx context.Context, status string, limit, offset int) ([]*entity.Booking, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, status, limit, offset)
	}
	return nil, nil
}

func (m *mockBookingRepo) CountAll(ctx context.Context, status string) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx, status)
	}
	return 0, nil
}

func (m *mockBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, booking)
	}
	return nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	m.StatusUpdates = append(m.StatusUpdates, status)
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, bookingID, status)
	}
	return nil
}

type mockPaymentRepo struct {
	CreateFunc            func(ctx context.Context, payment *entity.Payment) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByBookingIDFunc   func(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error)
	FindByTrackingIDFunc  func(ctx context.Context, trackingID string) (*entity.Payment, error)
	FindByMerchantRefFunc func(ctx context.Context, merchantRef string) (*entity.Payment, error)
	MarkCompletedFunc     func(ctx context.Context, paymentID uuid.UUID, method string, paidAt time.Time) (bool, error)
	MarkFailedFunc        func(ctx context.Context, paymentID uuid.UUID) (bool, error)

	Created        []*entity.Payment
	CompletedCalls int
	FailedCalls    int
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	m.Created = append(m.Created, payment)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payment)
	}
	return nil
}

func (m *mockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	if m.FindByBookingIDFunc != nil {
		return m.FindByBookingIDFunc(ctx, bookingID)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindByTrackingID(ctx context.Context, trackingID string) (*entity.Payment, error) {
	if m.FindByTrackingIDFunc != nil {
		return m.FindByTrackingIDFunc(ctx, trackingID)
	}
	return nil, nil
}

func (m *mockPaymentRepo) FindByMerchantRef(ctx context.Context, merchantRef string) (*entity.Payment, error) {
	if m.FindByMerchantRefFunc != nil {
		return m.FindByMerchantRefFunc(ctx, merchantRef)
	}
	return nil, nil
}

func (m *mockPaymentRepo) MarkCompleted(ctx context.Context, paymentID uuid.UUID, method string, paidAt time.Time) (bool, error) {
	m.CompletedCalls++
	if m.MarkCompletedFunc != nil {
		return m.MarkCompletedFunc(ctx, paymentID, method, paidAt)
	}
	return true, nil
}

func (m *mockPaymentRepo) MarkFailed(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	m.FailedCalls++
	if m.MarkFailedFunc != nil {
		return m.MarkFailedFunc(ctx, paymentID)
	}
	return true, nil
}

type mockTranslationRepo struct {
	UpsertFunc          func(ctx context.Context, translation *entity.Translation) error
	FindByEntityFunc    func(ctx context.Context, entityType entity.TranslatedEntity, entityID uuid.UUID) ([]*entity.Translation, error)
	FindForEntitiesFunc func(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTranslationRepo) Upsert(ctx context.Context, translation *entity.Translation) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, translation)
	}
	return nil
}

func (m *mockTranslationRepo) FindByEntity(ctx context.Context, entityType entity.TranslatedEntity, entityID uuid.UUID) ([]*entity.Translation, error) {
	if m.FindByEntityFunc != nil {
		return m.FindByEntityFunc(ctx, entityType, entityID)
	}
	return nil, nil
}

func (m *mockTranslationRepo) FindForEntities(ctx context.Context, entityType entity.TranslatedEntity, entityIDs []uuid.UUID, locale string) (map[uuid.UUID]map[string]string, error) {
	if m.FindForEntitiesFunc != nil {
		return m.FindForEntitiesFunc(ctx, entityType, entityIDs, locale)
	}
	return map[uuid.UUID]map[string]string{}, nil
}

func (m *mockTranslationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockReviewRepo struct {
	CreateFunc          func(ctx context.Context, review *entity.Review) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindBySourceRefFunc func(ctx context.Context, sourceRef string) (*entity.Review, error)
	FindActiveFunc      func(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	CountActiveFunc     func(ctx context.Context) (int64, error)
	FindAllFunc         func(ctx context.Context, limit, offset int) ([]*entity.Review, error)
	CountAllFunc        func(ctx context.Context) (int64, error)
	UpdateFunc          func(ctx context.Context, review *entity.Review) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error

	Created []*entity.Review
	Updated []*entity.Review
}

func (m *mockReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	m.Created = append(m.Created, review)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockReviewRepo) FindBySourceRef(ctx context.Context, sourceRef string) (*entity.Review, error) {
	if m.FindBySourceRefFunc != nil {
		return m.FindBySourceRefFunc(ctx, sourceRef)
	}
	return nil, nil
}

func (m *mockReviewRepo) FindActive(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	if m.FindActiveFunc != nil {
		return m.FindActiveFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockReviewRepo) CountActive(ctx context.Context) (int64, error) {
	if m.CountActiveFunc != nil {
		return m.CountActiveFunc(ctx)
	}
	return 0, nil
}

func (m *mockReviewRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Review, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockReviewRepo) CountAll(ctx context.Context) (int64, error) {
	if m.CountAllFunc != nil {
		return m.CountAllFunc(ctx)
	}
	return 0, nil
}

func (m *mockReviewRepo) Update(ctx context.Context, review *entity.Review) error {
	m.Updated = append(m.Updated, review)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, review)
	}
	return nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockSettingRepo struct {
	GetFunc    func(ctx context.Context, key string) (*entity.Setting, error)
	GetAllFunc func(ctx context.Context) ([]*entity.Setting, error)
	UpsertFunc func(ctx context.Context, setting *entity.Setting) error
	DeleteFunc func(ctx context.Context, key string) error

	Upserted []*entity.Setting
}

func (m *mockSettingRepo) Get(ctx context.Context, key string) (*entity.Setting, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockSettingRepo) GetAll(ctx context.Context) ([]*entity.Setting, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSettingRepo) Upsert(ctx context.Context, setting *entity.Setting) error {
	m.Upserted = append(m.Upserted, setting)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, setting)
	}
	return nil
}

func (m *mockSettingRepo) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

type mockGateway struct {
	SubmitOrderFunc          func(ctx context.Context, order *gateway.OrderRequest) (*gateway.OrderResponse, error)
	GetTransactionStatusFunc func(ctx context.Context, trackingID string) (*gateway.TransactionStatus, error)

	SubmitCalls int
	StatusCalls int
}

func (m *mockGateway) SubmitOrder(ctx context.Context, order *gateway.OrderRequest) (*gateway.OrderResponse, error) {
	m.SubmitCalls++
	if m.SubmitOrderFunc != nil {
		return m.SubmitOrderFunc(ctx, order)
	}
	return &gateway.OrderResponse{}, nil
}

func (m *mockGateway) GetTransactionStatus(ctx context.Context, trackingID string) (*gateway.TransactionStatus, error) {
	m.StatusCalls++
	if m.GetTransactionStatusFunc != nil {
		return m.GetTransactionStatusFunc(ctx, trackingID)
	}
	return &gateway.TransactionStatus{Status: "PENDING"}, nil
}

type mockUserRepo struct {
	CreateFunc         func(ctx context.Context, user *entity.User) error
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	UpdateFunc         func(ctx context.Context, user *entity.User) error

	Updated []*entity.User
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	m.Updated = append(m.Updated, user)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

type mockSessionRepo struct {
	CreateFunc           func(ctx context.Context, session *entity.Session) error
	FindValidSessionFunc func(ctx context.Context, token string) (*entity.Session, error)
	DeleteFunc           func(ctx context.Context, token string) error

	Created []*entity.Session
	Deleted []string
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	m.Created = append(m.Created, session)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if m.FindValidSessionFunc != nil {
		return m.FindValidSessionFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	m.Deleted = append(m.Deleted, token)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token)
	}
	return nil
}

type mockMailer struct {
	mu   sync.Mutex
	Sent []string // recipients in send order
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, to)
	return nil
}

func (m *mockMailer) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
