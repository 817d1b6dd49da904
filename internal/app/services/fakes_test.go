package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/repositories"
)

// In-memory store fakes mirroring the behavior of the pgx repositories:
// lookups return (nil, nil) when nothing matches, AcquireSeat enforces the
// guarded-update semantics, ReleaseSeat keeps damaged and maintenance states
// sticky. Every method takes the store mutex so concurrent allocation tests
// see the same per-statement atomicity the database gives the real repos.

type fakeStudentStore struct {
	mu       sync.Mutex
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student), nextID: 1}
}

func (f *fakeStudentStore) add(s *models.Student) *models.Student {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s.ID == 0 {
		s.ID = f.nextID
		f.nextID++
	} else if s.ID >= f.nextID {
		f.nextID = s.ID + 1
	}
	if s.ApplicationStatus == "" {
		s.ApplicationStatus = models.StatusNotApplied
	}
	s.IsActive = true
	cp := *s
	f.students[s.ID] = &cp
	return s
}

func copyStudent(s *models.Student) *models.Student {
	if s == nil {
		return nil
	}
	cp := *s
	if s.AssignedRoomID != nil {
		id := *s.AssignedRoomID
		cp.AssignedRoomID = &id
	}
	return &cp
}

func (f *fakeStudentStore) Create(_ context.Context, s *models.Student) error {
	f.add(s)
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyStudent(f.students[id]), nil
}

func (f *fakeStudentStore) GetByIdentifier(_ context.Context, identifier string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.students {
		if s.Email == identifier || s.PNR == identifier {
			return copyStudent(s), nil
		}
	}
	return nil, nil
}

func (f *fakeStudentStore) GetByPNR(_ context.Context, pnr string) (*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.students {
		if s.PNR == pnr {
			return copyStudent(s), nil
		}
	}
	return nil, nil
}

func (f *fakeStudentStore) ExistsByEmailOrPNR(_ context.Context, email, pnr string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.students {
		if s.Email == email || s.PNR == pnr {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context, status, year string) ([]*models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Student
	for _, s := range f.students {
		if status != "" && string(s.ApplicationStatus) != status {
			continue
		}
		if year != "" && s.Year != year {
			continue
		}
		out = append(out, copyStudent(s))
	}
	return out, nil
}

func (f *fakeStudentStore) UpdateProfile(_ context.Context, s *models.Student) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.students[s.ID]
	if !ok {
		return errors.New("student not found")
	}
	existing.Name = s.Name
	existing.Year = s.Year
	existing.Phone = s.Phone
	existing.Address = s.Address
	existing.ParentName = s.ParentName
	existing.ParentPhone = s.ParentPhone
	return nil
}

func (f *fakeStudentStore) SetApplicationStatus(_ context.Context, studentID int64, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[studentID]
	if !ok {
		return errors.New("student not found")
	}
	s.ApplicationStatus = status
	return nil
}

func (f *fakeStudentStore) SetRoomAssignment(_ context.Context, studentID, roomID int64, roomNumber, floor, hostelName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[studentID]
	if !ok {
		return errors.New("student not found")
	}
	id := roomID
	s.AssignedRoomID = &id
	s.RoomNumber = roomNumber
	s.Floor = floor
	s.HostelName = hostelName
	return nil
}

func (f *fakeStudentStore) ClearRoomAssignment(_ context.Context, studentID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[studentID]
	if !ok {
		return errors.New("student not found")
	}
	s.AssignedRoomID = nil
	s.RoomNumber = ""
	s.Floor = ""
	s.HostelName = ""
	return nil
}

func (f *fakeStudentStore) SetBlacklisted(_ context.Context, studentID int64, blacklisted bool, remarks string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[studentID]
	if !ok {
		return errors.New("student not found")
	}
	s.IsBlacklisted = blacklisted
	s.Remarks = remarks
	return nil
}

func (f *fakeStudentStore) SetRemarks(_ context.Context, studentID int64, remarks string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.students[studentID]
	if !ok {
		return errors.New("student not found")
	}
	s.Remarks = remarks
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) CountAll(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.students), nil
}

func (f *fakeStudentStore) CountHoused(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.students {
		if s.AssignedRoomID != nil {
			n++
		}
	}
	return n, nil
}

func (f *fakeStudentStore) CountBlacklisted(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.students {
		if s.IsBlacklisted {
			n++
		}
	}
	return n, nil
}

type fakeRoomStore struct {
	mu        sync.Mutex
	rooms     map[int64]*models.Room
	occupants map[int64][]models.Occupant
	nextID    int64

	// failAddOccupant makes the next AddOccupant call fail, for testing the
	// compensating seat release.
	failAddOccupant bool
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: make(map[int64]*models.Room), occupants: make(map[int64][]models.Occupant), nextID: 1}
}

func (f *fakeRoomStore) add(r *models.Room) *models.Room {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r.ID == 0 {
		r.ID = f.nextID
		f.nextID++
	} else if r.ID >= f.nextID {
		f.nextID = r.ID + 1
	}
	if r.Status == "" {
		r.Status = models.RoomEmpty
	}
	cp := *r
	f.rooms[r.ID] = &cp
	return r
}

func copyRoom(r *models.Room) *models.Room {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

func (f *fakeRoomStore) Create(_ context.Context, r *models.Room) error {
	f.add(r)
	return nil
}

func (f *fakeRoomStore) GetByID(_ context.Context, id int64) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyRoom(f.rooms[id]), nil
}

func (f *fakeRoomStore) findByNaturalKey(hostelID int64, roomNumber, floor string) *models.Room {
	for _, r := range f.rooms {
		if r.HostelID == hostelID && r.RoomNumber == roomNumber && r.Floor == floor {
			return r
		}
	}
	return nil
}

func (f *fakeRoomStore) GetByNaturalKey(_ context.Context, hostelID int64, roomNumber, floor string) (*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyRoom(f.findByNaturalKey(hostelID, roomNumber, floor)), nil
}

func (f *fakeRoomStore) ExistsByNaturalKey(_ context.Context, hostelID int64, roomNumber, floor string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findByNaturalKey(hostelID, roomNumber, floor) != nil, nil
}

func (f *fakeRoomStore) GetByHostelID(_ context.Context, hostelID int64) ([]*models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Room
	for _, r := range f.rooms {
		if r.HostelID == hostelID {
			out = append(out, copyRoom(r))
		}
	}
	return out, nil
}

func (f *fakeRoomStore) AcquireSeat(_ context.Context, roomID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok {
		return repositories.ErrNoFreeSeat
	}
	if r.OccupiedSpaces >= r.Capacity || (r.Status != models.RoomEmpty && r.Status != models.RoomFilled) {
		return repositories.ErrNoFreeSeat
	}
	r.OccupiedSpaces++
	if r.OccupiedSpaces >= r.Capacity {
		r.Status = models.RoomFilled
	}
	return nil
}

func (f *fakeRoomStore) ReleaseSeat(_ context.Context, roomID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok {
		return errors.New("room not found")
	}
	if r.OccupiedSpaces > 0 {
		r.OccupiedSpaces--
	}
	if r.Status != models.RoomDamaged && r.Status != models.RoomMaintenance {
		if r.OccupiedSpaces >= r.Capacity {
			r.Status = models.RoomFilled
		} else {
			r.Status = models.RoomEmpty
		}
	}
	return nil
}

func (f *fakeRoomStore) AddOccupant(_ context.Context, o *models.Occupant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAddOccupant {
		f.failAddOccupant = false
		return errors.New("occupant insert failed")
	}
	// Mirrors the unique constraint on room_occupants.student_id.
	for _, rows := range f.occupants {
		for _, existing := range rows {
			if existing.StudentID == o.StudentID {
				return errors.New("duplicate key value violates unique constraint \"room_occupants_student_id_key\" (SQLSTATE 23505)")
			}
		}
	}
	o.AssignedAt = time.Now()
	f.occupants[o.RoomID] = append(f.occupants[o.RoomID], *o)
	return nil
}

func (f *fakeRoomStore) RemoveOccupant(_ context.Context, roomID, studentID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	occ := f.occupants[roomID]
	for i, o := range occ {
		if o.StudentID == studentID {
			f.occupants[roomID] = append(occ[:i], occ[i+1:]...)
			return nil
		}
	}
	return errors.New("occupant not found")
}

func (f *fakeRoomStore) GetOccupants(_ context.Context, roomID int64) ([]models.Occupant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Occupant(nil), f.occupants[roomID]...), nil
}

func (f *fakeRoomStore) UpdateOccupantDetails(_ context.Context, studentID int64, name, pnr string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for roomID, occ := range f.occupants {
		for i, o := range occ {
			if o.StudentID == studentID {
				f.occupants[roomID][i].Name = name
				f.occupants[roomID][i].PNR = pnr
			}
		}
	}
	return nil
}

func (f *fakeRoomStore) Update(_ context.Context, r *models.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.rooms[r.ID]
	if !ok {
		return errors.New("room not found")
	}
	existing.Capacity = r.Capacity
	existing.Notes = r.Notes
	return nil
}

func (f *fakeRoomStore) SetStatus(_ context.Context, roomID int64, status models.RoomStatus, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.rooms[roomID]
	if !ok {
		return errors.New("room not found")
	}
	r.Status = status
	r.Notes = notes
	now := time.Now()
	r.LastInspection = &now
	return nil
}

func (f *fakeRoomStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rooms, id)
	delete(f.occupants, id)
	return nil
}

func (f *fakeRoomStore) DeleteByHostelID(_ context.Context, hostelID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, r := range f.rooms {
		if r.HostelID == hostelID {
			delete(f.rooms, id)
			delete(f.occupants, id)
		}
	}
	return nil
}

func (f *fakeRoomStore) HasOccupiedRooms(_ context.Context, hostelID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.rooms {
		if r.HostelID == hostelID && r.OccupiedSpaces > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRoomStore) CountAll(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rooms), nil
}

func (f *fakeRoomStore) CountAvailable(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.rooms {
		if r.OccupiedSpaces < r.Capacity && (r.Status == models.RoomEmpty || r.Status == models.RoomFilled) {
			n++
		}
	}
	return n, nil
}

type fakeHostelStore struct {
	mu      sync.Mutex
	hostels map[int64]*models.Hostel
	rooms   *fakeRoomStore
	nextID  int64

	recomputed []int64
}

func newFakeHostelStore(rooms *fakeRoomStore) *fakeHostelStore {
	return &fakeHostelStore{hostels: make(map[int64]*models.Hostel), rooms: rooms, nextID: 1}
}

func (f *fakeHostelStore) add(h *models.Hostel) *models.Hostel {
	f.mu.Lock()
	defer f.mu.Unlock()
	if h.ID == 0 {
		h.ID = f.nextID
		f.nextID++
	} else if h.ID >= f.nextID {
		f.nextID = h.ID + 1
	}
	h.IsActive = true
	cp := *h
	f.hostels[h.ID] = &cp
	return h
}

func copyHostel(h *models.Hostel) *models.Hostel {
	if h == nil {
		return nil
	}
	cp := *h
	if h.AdminID != nil {
		id := *h.AdminID
		cp.AdminID = &id
	}
	return &cp
}

func (f *fakeHostelStore) Create(_ context.Context, h *models.Hostel) error {
	f.add(h)
	return nil
}

func (f *fakeHostelStore) GetByID(_ context.Context, id int64) (*models.Hostel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyHostel(f.hostels[id]), nil
}

func (f *fakeHostelStore) ExistsByName(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, h := range f.hostels {
		if strings.EqualFold(h.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHostelStore) GetAll(_ context.Context) ([]*models.Hostel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Hostel
	for _, h := range f.hostels {
		out = append(out, copyHostel(h))
	}
	return out, nil
}

func (f *fakeHostelStore) GetByAdminID(_ context.Context, adminID int64) ([]*models.Hostel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Hostel
	for _, h := range f.hostels {
		if h.AdminID != nil && *h.AdminID == adminID {
			out = append(out, copyHostel(h))
		}
	}
	return out, nil
}

func (f *fakeHostelStore) Update(_ context.Context, h *models.Hostel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.hostels[h.ID]
	if !ok {
		return errors.New("hostel not found")
	}
	*existing = *h
	return nil
}

func (f *fakeHostelStore) SetAdmin(_ context.Context, hostelID int64, adminID *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hostels[hostelID]
	if !ok {
		return errors.New("hostel not found")
	}
	if adminID == nil {
		h.AdminID = nil
	} else {
		id := *adminID
		h.AdminID = &id
	}
	return nil
}

func (f *fakeHostelStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.hostels, id)
	return nil
}

// RecomputeAvailability mirrors the repository's derived counters: capacity
// is the room count, availability the count of rooms that can still seat a
// student.
func (f *fakeHostelStore) RecomputeAvailability(ctx context.Context, hostelID int64) error {
	rooms, _ := f.rooms.GetByHostelID(ctx, hostelID)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.recomputed = append(f.recomputed, hostelID)
	h, ok := f.hostels[hostelID]
	if !ok {
		return errors.New("hostel not found")
	}
	total, available := 0, 0
	for _, r := range rooms {
		total++
		if r.OccupiedSpaces < r.Capacity && (r.Status == models.RoomEmpty || r.Status == models.RoomFilled) {
			available++
		}
	}
	h.Capacity = total
	h.AvailableRooms = available
	return nil
}

func (f *fakeHostelStore) GetInventory(ctx context.Context, hostelID int64) (*dto.HostelInventoryResponse, error) {
	rooms, _ := f.rooms.GetByHostelID(ctx, hostelID)

	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.hostels[hostelID]
	if !ok {
		return nil, nil
	}
	inv := &dto.HostelInventoryResponse{HostelID: hostelID, HostelName: h.Name}
	floors := make(map[string]*dto.FloorSeatMap)
	for _, r := range rooms {
		inv.TotalRooms++
		inv.TotalSeats += r.Capacity
		inv.OccupiedSeats += r.OccupiedSpaces
		switch {
		case r.Status == models.RoomDamaged:
			inv.DamagedRooms++
		case r.Status == models.RoomMaintenance:
			inv.MaintenanceRooms++
		case r.OccupiedSpaces < r.Capacity:
			inv.AvailableRooms++
		}
		fl, ok := floors[r.Floor]
		if !ok {
			fl = &dto.FloorSeatMap{Floor: r.Floor}
			floors[r.Floor] = fl
		}
		fl.TotalRooms++
		fl.TotalSeats += r.Capacity
		fl.OccupiedSeats += r.OccupiedSpaces
	}
	for _, fl := range floors {
		inv.Floors = append(inv.Floors, *fl)
	}
	return inv, nil
}

func (f *fakeHostelStore) GetDashboardEntries(ctx context.Context) ([]dto.HostelDashboardEntry, error) {
	f.mu.Lock()
	ids := make([]int64, 0, len(f.hostels))
	for id := range f.hostels {
		ids = append(ids, id)
	}
	f.mu.Unlock()

	var out []dto.HostelDashboardEntry
	for _, id := range ids {
		rooms, _ := f.rooms.GetByHostelID(ctx, id)

		f.mu.Lock()
		h, ok := f.hostels[id]
		if !ok {
			f.mu.Unlock()
			continue
		}
		entry := dto.HostelDashboardEntry{HostelID: id, HostelName: h.Name, Gender: string(h.Gender)}
		f.mu.Unlock()

		for _, r := range rooms {
			entry.TotalRooms++
			entry.TotalSeats += r.Capacity
			entry.OccupiedSeats += r.OccupiedSpaces
			switch r.Status {
			case models.RoomDamaged:
				entry.DamagedRooms++
			case models.RoomMaintenance:
				entry.MaintenanceRooms++
			}
			if r.OccupiedSpaces < r.Capacity && (r.Status == models.RoomEmpty || r.Status == models.RoomFilled) {
				entry.AvailableRooms++
			}
		}
		entry.HousedStudents = entry.OccupiedSeats
		out = append(out, entry)
	}
	return out, nil
}

func (f *fakeHostelStore) CountAll(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.hostels), nil
}

type fakeApplicationStore struct {
	mu     sync.Mutex
	apps   map[int64]*models.Application
	nextID int64
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[int64]*models.Application), nextID: 1}
}

func (f *fakeApplicationStore) add(a *models.Application) *models.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == 0 {
		a.ID = f.nextID
		f.nextID++
	} else if a.ID >= f.nextID {
		f.nextID = a.ID + 1
	}
	if a.AppliedOn.IsZero() {
		a.AppliedOn = time.Now()
	}
	cp := *a
	f.apps[a.ID] = &cp
	return a
}

func copyApplication(a *models.Application) *models.Application {
	if a == nil {
		return nil
	}
	cp := *a
	if a.ApprovedOn != nil {
		t := *a.ApprovedOn
		cp.ApprovedOn = &t
	}
	return &cp
}

func (f *fakeApplicationStore) Create(_ context.Context, a *models.Application) error {
	f.add(a)
	return nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id int64) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyApplication(f.apps[id]), nil
}

func (f *fakeApplicationStore) GetByStudentID(_ context.Context, studentID int64) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.StudentID == studentID {
			return copyApplication(a), nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationStore) GetByStudentPNR(_ context.Context, pnr string) (*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.apps {
		if a.StudentPNR == pnr {
			return copyApplication(a), nil
		}
	}
	return nil, nil
}

func (f *fakeApplicationStore) GetAll(_ context.Context, status, year string, hostelID int64) ([]*models.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Application
	for _, a := range f.apps {
		if status != "" && string(a.Status) != status {
			continue
		}
		if year != "" && a.StudentYear != year {
			continue
		}
		if hostelID != 0 && a.HostelID != hostelID {
			continue
		}
		out = append(out, copyApplication(a))
	}
	return out, nil
}

func (f *fakeApplicationStore) Approve(_ context.Context, id int64, roomNumber, floor string, approvedOn time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return errors.New("application not found")
	}
	a.Status = models.StatusApproved
	a.RoomNumber = roomNumber
	a.Floor = floor
	t := approvedOn
	a.ApprovedOn = &t
	a.RejectionReason = ""
	return nil
}

func (f *fakeApplicationStore) Reject(_ context.Context, id int64, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return errors.New("application not found")
	}
	a.Status = models.StatusRejected
	a.RejectionReason = reason
	return nil
}

func (f *fakeApplicationStore) SetStatus(_ context.Context, id int64, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return errors.New("application not found")
	}
	a.Status = status
	return nil
}

func (f *fakeApplicationStore) Disallocate(_ context.Context, id int64, remarks string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return errors.New("application not found")
	}
	a.Status = models.StatusDisallocated
	a.RoomNumber = ""
	a.Floor = ""
	a.ApprovedOn = nil
	a.Remarks = remarks
	return nil
}

func (f *fakeApplicationStore) SetRoomMirror(_ context.Context, id, hostelID int64, roomNumber, floor string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return errors.New("application not found")
	}
	a.HostelID = hostelID
	a.RoomNumber = roomNumber
	a.Floor = floor
	return nil
}

func (f *fakeApplicationStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.apps, id)
	return nil
}

func (f *fakeApplicationStore) DeleteByHostelID(_ context.Context, hostelID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, a := range f.apps {
		if a.HostelID == hostelID {
			delete(f.apps, id)
		}
	}
	return nil
}

func (f *fakeApplicationStore) CountByStatus(_ context.Context) (*dto.ApplicationStatusCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := &dto.ApplicationStatusCounts{}
	for _, a := range f.apps {
		switch a.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusApproved:
			counts.Approved++
		case models.StatusRejected:
			counts.Rejected++
		case models.StatusCancelled:
			counts.Cancelled++
		case models.StatusDisallocated:
			counts.Disallocated++
		}
	}
	return counts, nil
}

type fakeAdminStore struct {
	mu     sync.Mutex
	admins map[int64]*models.Admin
	nextID int64
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[int64]*models.Admin), nextID: 1}
}

func (f *fakeAdminStore) add(a *models.Admin) *models.Admin {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == 0 {
		a.ID = f.nextID
		f.nextID++
	} else if a.ID >= f.nextID {
		f.nextID = a.ID + 1
	}
	a.IsActive = true
	cp := *a
	f.admins[a.ID] = &cp
	return a
}

func copyAdmin(a *models.Admin) *models.Admin {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

func (f *fakeAdminStore) Create(_ context.Context, a *models.Admin) error {
	f.add(a)
	return nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyAdmin(f.admins[id]), nil
}

func (f *fakeAdminStore) GetByIdentifier(_ context.Context, identifier string) (*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Email == identifier || a.AdminID == identifier {
			return copyAdmin(a), nil
		}
	}
	return nil, nil
}

func (f *fakeAdminStore) ExistsByEmailOrAdminID(_ context.Context, email, adminID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Email == email || a.AdminID == adminID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdminStore) GetAll(_ context.Context, role string) ([]*models.Admin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.Admin
	for _, a := range f.admins {
		if role != "" && string(a.Role) != role {
			continue
		}
		out = append(out, copyAdmin(a))
	}
	return out, nil
}

func (f *fakeAdminStore) Update(_ context.Context, a *models.Admin) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.admins[a.ID]
	if !ok {
		return errors.New("admin not found")
	}
	existing.Name = a.Name
	existing.Phone = a.Phone
	existing.IsActive = a.IsActive
	return nil
}

func (f *fakeAdminStore) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.admins, id)
	return nil
}

func (f *fakeAdminStore) HasSuperadmin(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.admins {
		if a.Role == models.RoleSuperadmin {
			return true, nil
		}
	}
	return false, nil
}
