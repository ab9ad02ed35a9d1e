package usecase

import (
	"context"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory fakes backing the service tests. Only the behavior the
// services rely on is modeled.

type fakeVenueRepo struct {
	venues map[uuid.UUID]*entity.Venue
}

func newFakeVenueRepo() *fakeVenueRepo {
	return &fakeVenueRepo{venues: make(map[uuid.UUID]*entity.Venue)}
}

func (f *fakeVenueRepo) Create(ctx context.Context, venue *entity.Venue) error {
	f.venues[venue.ID] = venue
	return nil
}

func (f *fakeVenueRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Venue, error) {
	venue, ok := f.venues[id]
	if !ok || venue.DeletedAt != nil {
		return nil, nil
	}
	return venue, nil
}

func (f *fakeVenueRepo) FindAll(ctx context.Context, limit, offset int, categoryFilter *string) ([]*entity.Venue, error) {
	var venues []*entity.Venue
	for _, venue := range f.venues {
		if venue.DeletedAt != nil {
			continue
		}
		if categoryFilter != nil && venue.Category != *categoryFilter {
			continue
		}
		venues = append(venues, venue)
	}
	return venues, nil
}

func (f *fakeVenueRepo) CountAll(ctx context.Context, categoryFilter *string) (int64, error) {
	venues, _ := f.FindAll(ctx, 0, 0, categoryFilter)
	return int64(len(venues)), nil
}

func (f *fakeVenueRepo) Update(ctx context.Context, venue *entity.Venue) error {
	f.venues[venue.ID] = venue
	return nil
}

func (f *fakeVenueRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if venue, ok := f.venues[id]; ok {
		now := time.Now()
		venue.DeletedAt = &now
	}
	return nil
}

type fakeBookingRepo struct {
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.bookings = append(f.bookings, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingRepo) FindApprovedByVenueID(ctx context.Context, venueID uuid.UUID) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for _, b := range f.bookings {
		if b.VenueID == venueID && b.Status == entity.BookingStatusApproved {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	for _, b := range f.bookings {
		if b.ID == bookingID {
			b.Status = status
			return nil
		}
	}
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	return user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email && user.DeletedAt == nil {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username && user.DeletedAt == nil {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range f.users {
		if user.DeletedAt == nil {
			users = append(users, user)
		}
	}
	return users, nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	users, _ := f.FindAll(ctx, 0, 0)
	return int64(len(users)), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if user, ok := f.users[id]; ok {
		now := time.Now()
		user.DeletedAt = &now
	}
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

type fakeSavedVenueRepo struct {
	venues *fakeVenueRepo
	saved  map[uuid.UUID][]uuid.UUID // user -> venues, in save order
}

func newFakeSavedVenueRepo(venues *fakeVenueRepo) *fakeSavedVenueRepo {
	return &fakeSavedVenueRepo{
		venues: venues,
		saved:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeSavedVenueRepo) Save(ctx context.Context, saved *entity.SavedVenue) error {
	for _, id := range f.saved[saved.UserID] {
		if id == saved.VenueID {
			return repository.ErrDuplicateSave
		}
	}
	f.saved[saved.UserID] = append(f.saved[saved.UserID], saved.VenueID)
	return nil
}

func (f *fakeSavedVenueRepo) Remove(ctx context.Context, userID, venueID uuid.UUID) error {
	ids := f.saved[userID]
	for i, id := range ids {
		if id == venueID {
			f.saved[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("saved venue %s not found", venueID)
}

func (f *fakeSavedVenueRepo) FindVenuesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Venue, error) {
	var venues []*entity.Venue
	for _, id := range f.saved[userID] {
		if venue, _ := f.venues.FindByID(ctx, id); venue != nil {
			venues = append(venues, venue)
		}
	}
	return venues, nil
}

// newTestRepository assembles the aggregate over fakes
func newTestRepository() (*repository.Repository, *fakeVenueRepo, *fakeBookingRepo) {
	venues := newFakeVenueRepo()
	bookings := &fakeBookingRepo{}
	repo := &repository.Repository{
		User:       newFakeUserRepo(),
		Session:    newFakeSessionRepo(),
		Venue:      venues,
		Booking:    bookings,
		SavedVenue: newFakeSavedVenueRepo(venues),
	}
	return repo, venues, bookings
}
