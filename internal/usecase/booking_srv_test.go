package usecase

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func testTourPackage() *entity.TourPackage {
	return &entity.TourPackage{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Type:         entity.PackageTypeSafari,
		Name:         "Serengeti Classic",
		Slug:         "serengeti-classic",
		Price:        350,
		Currency:     "USD",
		DurationDays: 5,
		IsActive:     true,
	}
}

func newBookingFixture(t *testing.T, bookings *mockBookingRepo, packages *mockPackageRepo, payments *mockPaymentRepo) BookingService {
	t.Helper()

	repo := &repository.Repository{
		Booking: bookings,
		Package: packages,
		Payment: payments,
	}

	return NewBookingService(repo, zaptest.NewLogger(t))
}

func TestCreateBookingQuotesTotalFromPackagePrice(t *testing.T) {
	pkg := testTourPackage()
	packages := &mockPackageRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.TourPackage, error) {
			return pkg, nil
		},
	}

	var created *entity.Booking
	bookings := &mockBookingRepo{
		CreateFunc: func(ctx context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		},
	}
	srv := newBookingFixture(t, bookings, packages, &mockPaymentRepo{})

	resp, err := srv.CreateBooking(context.Background(), &request.CreateBookingRequest{
		PackageID:     pkg.ID.String(),
		CustomerName:  "Asha Mrema",
		CustomerEmail: "asha@example.com",
		Travelers:     2,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.TotalAmount)
	assert.Equal(t, 700.0, *created.TotalAmount)
	assert.Equal(t, "USD", created.Currency)
	assert.Equal(t, entity.BookingStatusInquiry, created.Status)
	assert.NotEmpty(t, created.Reference)
	assert.Equal(t, created.Reference, resp.Reference)
	assert.Equal(t, pkg.Name, resp.PackageName)
}

func TestCreateBookingWithoutPackageHasNoTotal(t *testing.T) {
	var created *entity.Booking
	bookings := &mockBookingRepo{
		CreateFunc: func(ctx context.Context, booking *entity.Booking) error {
			created = booking
			return nil
		},
	}
	srv := newBookingFixture(t, bookings, &mockPackageRepo{}, &mockPaymentRepo{})

	_, err := srv.CreateBooking(context.Background(), &request.CreateBookingRequest{
		CustomerName:  "Asha Mrema",
		CustomerEmail: "asha@example.com",
		Travelers:     4,
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Nil(t, created.TotalAmount)
	assert.Nil(t, created.PackageID)
}

func TestCreateBookingRejectsInactivePackage(t *testing.T) {
	pkg := testTourPackage()
	pkg.IsActive = false
	packages := &mockPackageRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.TourPackage, error) {
			return pkg, nil
		},
	}
	srv := newBookingFixture(t, &mockBookingRepo{}, packages, &mockPaymentRepo{})

	_, err := srv.CreateBooking(context.Background(), &request.CreateBookingRequest{
		PackageID:     pkg.ID.String(),
		CustomerName:  "Asha Mrema",
		CustomerEmail: "asha@example.com",
		Travelers:     2,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateBookingStatusAllowsAnyMemberTransition(t *testing.T) {
	// No transition table: even CANCELLED can be overwritten
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		Reference:     "TRB-20260828-101500-0042",
		CustomerName:  "Asha Mrema",
		CustomerEmail: "asha@example.com",
		Travelers:     2,
		Status:        entity.BookingStatusCancelled,
	}
	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	srv := newBookingFixture(t, bookings, &mockPackageRepo{}, &mockPaymentRepo{})

	resp, err := srv.UpdateBookingStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{
		Status: "INQUIRY",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusInquiry, resp.Status)
	require.Len(t, bookings.StatusUpdates, 1)
	assert.Equal(t, entity.BookingStatusInquiry, bookings.StatusUpdates[0])
}

func TestUpdateBookingStatusRejectsNonMember(t *testing.T) {
	booking := &entity.Booking{
		Base:          entity.Base{ID: uuid.New()},
		CustomerName:  "Asha Mrema",
		CustomerEmail: "asha@example.com",
		Travelers:     2,
		Status:        entity.BookingStatusPending,
	}
	bookings := &mockBookingRepo{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
			return booking, nil
		},
	}
	srv := newBookingFixture(t, bookings, &mockPackageRepo{}, &mockPaymentRepo{})

	_, err := srv.UpdateBookingStatus(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{
		Status: "SHIPPED",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, bookings.StatusUpdates)
}
