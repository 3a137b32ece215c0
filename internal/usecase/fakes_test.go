package usecase

import (
	"context"
	"encoding/json"
	"time"

	"storage-rental/internal/data/entity"
	"storage-rental/internal/data/repository"
	"storage-rental/pkg/utils"
)

func testConfig() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{
			Name:     "storage-rental-test",
			Currency: "INR",
		},
		JWT: utils.JWTConfig{
			Secret:      "test-jwt-secret",
			ExpiryHours: 1,
		},
		Razorpay: utils.RazorpayConfig{
			KeyID:     "rzp_test_key",
			KeySecret: "s3cr3t",
		},
	}
}

// ---------------- booking repo fake ----------------

type fakeBookingRepo struct {
	bookings    map[string]*entity.Booking
	createErr   error
	findErr     error
	markPaidErr error
	createCalls int
	markCalls   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	copied := *booking
	f.bookings[booking.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id string) (*entity.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) FindByOrderID(_ context.Context, orderID string) (*entity.Booking, error) {
	for _, booking := range f.bookings {
		if booking.OrderID == orderID {
			copied := *booking
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(_ context.Context, userID string, _, _ int) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			copied := *booking
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) CountByUserID(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) FindByStorageID(_ context.Context, storageID string, _, _ int) ([]*entity.Booking, error) {
	var result []*entity.Booking
	for _, booking := range f.bookings {
		if booking.StorageID == storageID {
			copied := *booking
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) CountByStorageID(_ context.Context, storageID string) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if booking.StorageID == storageID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) MarkPaid(_ context.Context, id string, paidAt time.Time) error {
	f.markCalls++
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	booking, ok := f.bookings[id]
	if !ok {
		return nil
	}
	booking.Paid = true
	booking.PaidAt = &paidAt
	booking.UpdatedAt = paidAt
	return nil
}

// ---------------- storage repo fake ----------------

type fakeStorageRepo struct {
	storages  map[string]*entity.StorageFacility
	findErr   error
	upsertErr error
}

func newFakeStorageRepo() *fakeStorageRepo {
	return &fakeStorageRepo{storages: make(map[string]*entity.StorageFacility)}
}

func (f *fakeStorageRepo) Upsert(_ context.Context, storage *entity.StorageFacility) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	copied := *storage
	f.storages[storage.ID] = &copied
	return nil
}

func (f *fakeStorageRepo) FindByID(_ context.Context, providerUID string) (*entity.StorageFacility, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	storage, ok := f.storages[providerUID]
	if !ok {
		return nil, nil
	}
	copied := *storage
	return &copied, nil
}

func (f *fakeStorageRepo) Search(_ context.Context, filter repository.StorageFilter, _ string, _, _ int) ([]*entity.StorageFacility, error) {
	var result []*entity.StorageFacility
	for _, storage := range f.storages {
		if filter.City != "" && storage.City != filter.City {
			continue
		}
		if filter.StorageType != "" && storage.StorageType != filter.StorageType {
			continue
		}
		if filter.MaxPrice > 0 && storage.PricePerWeek > filter.MaxPrice {
			continue
		}
		copied := *storage
		result = append(result, &copied)
	}
	return result, nil
}

func (f *fakeStorageRepo) Count(ctx context.Context, filter repository.StorageFilter) (int64, error) {
	storages, err := f.Search(ctx, filter, "", 0, 0)
	return int64(len(storages)), err
}

// ---------------- user repo fake ----------------

type fakeUserRepo struct {
	users     map[string]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id, name, phone string) error {
	user, ok := f.users[id]
	if !ok {
		return nil
	}
	user.Name = name
	user.Phone = phone
	return nil
}

// ---------------- gateway fake ----------------

type fakeGateway struct {
	orderID      string
	err          error
	calls        int
	lastAmount   int64
	lastCurrency string
	lastReceipt  string
	receipts     []string
}

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, currency, receipt string) (string, error) {
	f.calls++
	f.lastAmount = amount
	f.lastCurrency = currency
	f.lastReceipt = receipt
	f.receipts = append(f.receipts, receipt)
	if f.err != nil {
		return "", f.err
	}
	return f.orderID, nil
}

// ---------------- cache fake ----------------

type fakeCache struct {
	entries map[string][]byte
	gets    int
	hits    int
	deletes []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dest any) bool {
	f.gets++
	raw, ok := f.entries[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	f.hits++
	return true
}

func (f *fakeCache) SetJSON(_ context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	f.entries[key] = raw
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) {
	for _, key := range keys {
		delete(f.entries, key)
		f.deletes = append(f.deletes, key)
	}
}
