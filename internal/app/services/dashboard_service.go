package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/app/models/dto"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/cache"
	"github.com/sopanmasure-ws/hostel-mgmt-backend/internal/pkg/logger"
)

const (
	dashboardOverviewKey = "dashboard:overview"
	dashboardDataKey     = "dashboard:data"
	dashboardDetailedKey = "dashboard:detailed"
)

// DashboardService aggregates the staff dashboards. Results are served from
// the cache until the TTL lapses or an allocation invalidates them; refresh
// forces a recompute.
type DashboardService struct {
	studentStore     StudentStore
	adminStore       AdminStore
	hostelStore      HostelStore
	roomStore        RoomStore
	applicationStore ApplicationStore
	cache            cache.Cache
	ttl              time.Duration
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(studentStore StudentStore, adminStore AdminStore, hostelStore HostelStore, roomStore RoomStore, applicationStore ApplicationStore, c cache.Cache, ttl time.Duration) *DashboardService {
	return &DashboardService{
		studentStore:     studentStore,
		adminStore:       adminStore,
		hostelStore:      hostelStore,
		roomStore:        roomStore,
		applicationStore: applicationStore,
		cache:            c,
		ttl:              ttl,
	}
}

// GetOverview returns the headline counts. The second return value reports
// whether the payload came from the cache.
func (s *DashboardService) GetOverview(ctx context.Context, refresh bool) (*dto.DashboardOverview, bool, error) {
	if !refresh && s.cache != nil {
		var cached dto.DashboardOverview
		hit, err := s.cache.Get(ctx, dashboardOverviewKey, &cached)
		if err != nil {
			logger.Warn().Err(err).Msg("Dashboard cache read failed")
		} else if hit {
			return &cached, true, nil
		}
	}

	overview, err := s.buildOverview(ctx)
	if err != nil {
		return nil, false, err
	}

	s.store(ctx, dashboardOverviewKey, overview)
	return overview, false, nil
}

// GetData returns the full listings of admins, students and hostels with
// their headline totals
func (s *DashboardService) GetData(ctx context.Context, refresh bool) (*dto.DashboardData, bool, error) {
	if !refresh && s.cache != nil {
		var cached dto.DashboardData
		hit, err := s.cache.Get(ctx, dashboardDataKey, &cached)
		if err != nil {
			logger.Warn().Err(err).Msg("Dashboard cache read failed")
		} else if hit {
			return &cached, true, nil
		}
	}

	admins, err := s.adminStore.GetAll(ctx, "")
	if err != nil {
		return nil, false, fmt.Errorf("error listing admins: %w", err)
	}
	students, err := s.studentStore.GetAll(ctx, "", "")
	if err != nil {
		return nil, false, fmt.Errorf("error listing students: %w", err)
	}
	hostels, err := s.hostelStore.GetAll(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("error listing hostels: %w", err)
	}

	data := &dto.DashboardData{
		Totals: dto.DashboardDataTotals{
			Admins:   len(admins),
			Students: len(students),
			Hostels:  len(hostels),
		},
		Admins:   admins,
		Students: students,
		Hostels:  hostels,
	}

	s.store(ctx, dashboardDataKey, data)
	return data, false, nil
}

// GetDetailed returns the full dashboard with per-hostel breakdowns
func (s *DashboardService) GetDetailed(ctx context.Context, refresh bool) (*dto.DetailedDashboard, bool, error) {
	if !refresh && s.cache != nil {
		var cached dto.DetailedDashboard
		hit, err := s.cache.Get(ctx, dashboardDetailedKey, &cached)
		if err != nil {
			logger.Warn().Err(err).Msg("Dashboard cache read failed")
		} else if hit {
			return &cached, true, nil
		}
	}

	overview, err := s.buildOverview(ctx)
	if err != nil {
		return nil, false, err
	}

	entries, err := s.hostelStore.GetDashboardEntries(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("error aggregating hostels: %w", err)
	}

	appCounts, err := s.applicationStore.CountByStatus(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("error counting applications: %w", err)
	}

	blacklisted, err := s.studentStore.CountBlacklisted(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("error counting blacklisted students: %w", err)
	}

	dashboard := &dto.DetailedDashboard{
		Overview:     *overview,
		Hostels:      entries,
		Applications: *appCounts,
		Blacklisted:  blacklisted,
	}

	s.store(ctx, dashboardDetailedKey, dashboard)
	return dashboard, false, nil
}

func (s *DashboardService) buildOverview(ctx context.Context) (*dto.DashboardOverview, error) {
	totalStudents, err := s.studentStore.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	housed, err := s.studentStore.CountHoused(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting housed students: %w", err)
	}

	totalHostels, err := s.hostelStore.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting hostels: %w", err)
	}

	totalRooms, err := s.roomStore.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting rooms: %w", err)
	}

	availableRooms, err := s.roomStore.CountAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting available rooms: %w", err)
	}

	appCounts, err := s.applicationStore.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting applications: %w", err)
	}

	return &dto.DashboardOverview{
		TotalStudents:       totalStudents,
		HousedStudents:      housed,
		TotalHostels:        totalHostels,
		TotalRooms:          totalRooms,
		AvailableRooms:      availableRooms,
		PendingApplications: appCounts.Pending,
	}, nil
}

func (s *DashboardService) store(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Dashboard cache write failed")
	}
}
