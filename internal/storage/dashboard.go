package storage

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/coliride/backend/internal/repository"
)

const (
	recentPerEntity  = 5
	activityFeedSize = 10
	overviewLimit    = 100
)

type DashboardStats struct {
	TotalUsers          int     `json:"totalUsers"`
	TotalPackages       int     `json:"totalPackages"`
	TotalRides          int     `json:"totalRides"`
	TotalMatches        int     `json:"totalMatches"`
	PendingPackages     int     `json:"pendingPackages"`
	AvailableRides      int     `json:"availableRides"`
	CompletedDeliveries int     `json:"completedDeliveries"`
	TotalRevenue        float64 `json:"totalRevenue"`
}

// ActivityItem tags an entity row with its kind so the merged feed stays
// sortable and self-describing.
type ActivityItem struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	CreatedAt time.Time   `json:"createdAt"`
}

type DashboardActivity struct {
	RecentActivity  []ActivityItem        `json:"recentActivity"`
	PendingPackages []*repository.Package `json:"pendingPackages"`
	AvailableRides  []*repository.Ride    `json:"availableRides"`
}

type AdminOverview struct {
	Users         []*repository.User         `json:"users"`
	Packages      []*repository.Package      `json:"packages"`
	Rides         []*repository.Ride         `json:"rides"`
	Matches       []*repository.Match        `json:"matches"`
	Payments      []*repository.Payment      `json:"payments"`
	Messages      []*repository.Message      `json:"messages"`
	Notifications []*repository.Notification `json:"notifications"`
}

// DashboardStats runs the eight aggregate queries concurrently; one pool
// connection each, all cancelled together on first failure.
func (s *PostgresStorage) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalUsers, err = s.users.CountAll(gCtx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalPackages, err = s.packages.Count(gCtx, repository.ListParams{})
		return err
	})
	g.Go(func() (err error) {
		stats.TotalRides, err = s.rides.Count(gCtx, repository.ListParams{})
		return err
	})
	g.Go(func() (err error) {
		stats.TotalMatches, err = s.matches.Count(gCtx, repository.ListParams{})
		return err
	})
	g.Go(func() (err error) {
		stats.PendingPackages, err = s.packages.CountByStatus(gCtx, repository.PackagePending)
		return err
	})
	g.Go(func() (err error) {
		stats.AvailableRides, err = s.rides.CountByStatus(gCtx, repository.RideAvailable)
		return err
	})
	g.Go(func() (err error) {
		stats.CompletedDeliveries, err = s.matches.CountByStatus(gCtx, repository.MatchConfirmed)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalRevenue, err = s.payments.SumCompleted(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// DashboardActivity builds the merged recent-events feed plus the pending
// packages and available rides panes. Available rides come from the in-memory
// cache, not the database.
func (s *PostgresStorage) DashboardActivity(ctx context.Context) (*DashboardActivity, error) {
	var (
		recentPackages []*repository.Package
		recentRides    []*repository.Ride
		recentMatches  []*repository.Match
		recentPayments []*repository.Payment
		pending        []*repository.Package
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		recentPackages, err = s.packages.GetRecent(gCtx, recentPerEntity)
		return err
	})
	g.Go(func() (err error) {
		recentRides, err = s.rides.GetRecent(gCtx, recentPerEntity)
		return err
	})
	g.Go(func() (err error) {
		recentMatches, err = s.matches.GetRecent(gCtx, recentPerEntity)
		return err
	})
	g.Go(func() (err error) {
		recentPayments, err = s.payments.GetRecent(gCtx, recentPerEntity)
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.packages.GetRecentByStatus(gCtx, repository.PackagePending, recentPerEntity)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	feed := make([]ActivityItem, 0, 4*recentPerEntity)
	for _, p := range recentPackages {
		feed = append(feed, ActivityItem{Type: "package", Data: p, CreatedAt: p.CreatedAt})
	}
	for _, r := range recentRides {
		feed = append(feed, ActivityItem{Type: "ride", Data: r, CreatedAt: r.CreatedAt})
	}
	for _, m := range recentMatches {
		feed = append(feed, ActivityItem{Type: "match", Data: m, CreatedAt: m.CreatedAt})
	}
	for _, p := range recentPayments {
		feed = append(feed, ActivityItem{Type: "payment", Data: p, CreatedAt: p.CreatedAt})
	}
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].CreatedAt.After(feed[j].CreatedAt)
	})
	if len(feed) > activityFeedSize {
		feed = feed[:activityFeedSize]
	}

	return &DashboardActivity{
		RecentActivity:  feed,
		PendingPackages: pending,
		AvailableRides:  s.rideCache.Available(recentPerEntity),
	}, nil
}

// AdminOverview returns the most recent rows of every collection for the
// admin dashboard, capped per entity.
func (s *PostgresStorage) AdminOverview(ctx context.Context) (*AdminOverview, error) {
	var ov AdminOverview
	params := repository.ListParams{Page: 1, Limit: overviewLimit}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		ov.Users, err = s.users.List(gCtx, params)
		return err
	})
	g.Go(func() (err error) {
		ov.Packages, err = s.packages.List(gCtx, params)
		return err
	})
	g.Go(func() (err error) {
		ov.Rides, err = s.rides.List(gCtx, params)
		return err
	})
	g.Go(func() (err error) {
		ov.Matches, err = s.matches.List(gCtx, params)
		return err
	})
	g.Go(func() (err error) {
		ov.Payments, err = s.payments.List(gCtx, params)
		return err
	})
	g.Go(func() (err error) {
		ov.Messages, err = s.messages.List(gCtx, params)
		return err
	})
	g.Go(func() (err error) {
		ov.Notifications, err = s.notifications.List(gCtx, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &ov, nil
}
