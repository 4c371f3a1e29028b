package booking

import (
	"context"
	"sync"
	"time"

	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
	"github.com/samuelgomeslima/aibarber-sub001/internal/models"
)

// fakeStore guarda tudo em memória e reproduz a semântica de commit do
// repositório real: checagem de conflito e INSERT atômicos sob mutex.
type fakeStore struct {
	mu sync.Mutex

	shop     models.Barbershop
	services map[uint]models.Service
	hours    map[int]models.WorkingHours // por weekday

	nextBookingID uint
	nextClientID  uint
	bookings      []models.Booking
	clients       []models.Client
}

func newFakeStore() *fakeStore {
	fs := &fakeStore{
		shop: models.Barbershop{
			ID:                 1,
			Name:               "Barbearia Teste",
			Slug:               "barbearia-teste",
			Timezone:           "America/Sao_Paulo",
			SlotGranularityMin: 30,
			MinAdvanceMinutes:  120,
		},
		services: map[uint]models.Service{
			10: {ID: 10, BarbershopID: 1, Name: "Corte", DurationMin: 30, Active: true},
			11: {ID: 11, BarbershopID: 1, Name: "Corte + Barba", DurationMin: 60, Active: true},
		},
		hours:         map[int]models.WorkingHours{},
		nextBookingID: 100,
		nextClientID:  500,
	}

	for wd := 0; wd < 7; wd++ {
		fs.hours[wd] = models.WorkingHours{
			BarberID:  2,
			Weekday:   wd,
			StartTime: "09:00",
			EndTime:   "18:00",
			Active:    true,
		}
	}

	return fs
}

func (fs *fakeStore) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if id != fs.shop.ID {
		return nil, httperr.ErrBusiness("barbershop_not_found")
	}
	shop := fs.shop
	return &shop, nil
}

func (fs *fakeStore) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	svc, ok := fs.services[serviceID]
	if !ok || svc.BarbershopID != barbershopID {
		return nil, httperr.ErrBusiness("service_not_found")
	}
	return &svc, nil
}

func (fs *fakeStore) GetOrCreateClient(_ context.Context, barbershopID uint, name, phone, email string) (*models.Client, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for i := range fs.clients {
		if fs.clients[i].BarbershopID == barbershopID && fs.clients[i].Phone == phone {
			return &fs.clients[i], nil
		}
	}

	fs.nextClientID++
	c := models.Client{
		ID:           fs.nextClientID,
		BarbershopID: barbershopID,
		Name:         name,
		Phone:        phone,
		Email:        email,
	}
	fs.clients = append(fs.clients, c)
	return &c, nil
}

func (fs *fakeStore) CreateBookingIfFree(_ context.Context, b *models.Booking) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for i := range fs.bookings {
		ex := &fs.bookings[i]
		if ex.BarberID != b.BarberID || ex.Status != "active" {
			continue
		}
		if b.StartTime.Before(ex.EndTime) && ex.StartTime.Before(b.EndTime) {
			return httperr.ErrSlotConflict(ex.ID)
		}
	}

	fs.nextBookingID++
	b.ID = fs.nextBookingID
	fs.bookings = append(fs.bookings, *b)
	return nil
}

func (fs *fakeStore) GetBookingForBarber(_ context.Context, bookingID, barberID uint) (*models.Booking, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for i := range fs.bookings {
		if fs.bookings[i].ID == bookingID && fs.bookings[i].BarberID == barberID {
			b := fs.bookings[i]
			return &b, nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (fs *fakeStore) UpdateBooking(_ context.Context, b *models.Booking) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for i := range fs.bookings {
		if fs.bookings[i].ID == b.ID {
			fs.bookings[i] = *b
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func (fs *fakeStore) GetWorkingHours(_ context.Context, _ uint, weekday int) (*models.WorkingHours, error) {
	wh, ok := fs.hours[weekday]
	if !ok {
		return nil, httperr.ErrBusiness("working_hours_not_found")
	}
	return &wh, nil
}

func (fs *fakeStore) ListBookingsForDay(_ context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var out []models.Booking
	for _, b := range fs.bookings {
		if b.BarberID != barberID || b.Status != "active" {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (fs *fakeStore) ListBookingsForPeriod(_ context.Context, barberID uint, start, end time.Time) ([]models.Booking, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var out []models.Booking
	for _, b := range fs.bookings {
		if b.BarberID != barberID {
			continue
		}
		if b.StartTime.Before(end) && start.Before(b.EndTime) {
			out = append(out, b)
		}
	}
	return out, nil
}
