package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/lastmile/backend/internal/pkg/logger"
	"github.com/lastmile/backend/internal/pkg/models"
	"github.com/lastmile/backend/internal/utils"
)

// findDriver scans drivers serving the pickup station in listing order and
// returns the first eligible one with the fare computed for it. exclude skips
// a driver that just declined. found=false when nobody qualifies.
func (uc *MatchUC) findDriver(ctx context.Context, pickupStation, destination, exclude string) (driverID string, fare int, found bool, err error) {
	drivers, err := uc.matchGW.ListDrivers(ctx, pickupStation)
	if err != nil {
		return "", 0, false, err
	}

	for _, d := range drivers {
		if d.DriverID == exclude {
			continue
		}
		if !uc.destinationCompatible(d.Destination, destination) {
			continue
		}

		seats, err := uc.effectiveSeats(ctx, d)
		if err != nil {
			return "", 0, false, err
		}
		if seats <= 0 {
			continue
		}

		return d.DriverID, uc.computeFare(ctx, pickupStation, d.Location), true, nil
	}

	return "", 0, false, nil
}

// effectiveSeats is the driver's stored seat count minus tentative
// assignments not yet settled by a reservation. Keeps the matcher from
// piling every queued request onto one driver.
func (uc *MatchUC) effectiveSeats(ctx context.Context, d models.DriverInfo) (int, error) {
	matched, err := uc.matchRepo.CountMatchedByDriver(ctx, d.DriverID)
	if err != nil {
		return 0, err
	}
	return d.AvailableSeats - matched, nil
}

// destinationCompatible applies the containment policy: either destination
// string containing the other (case-insensitive) is a hit. Exact
// case-insensitive equality when loose matching is disabled.
func (uc *MatchUC) destinationCompatible(driverDest, riderDest string) bool {
	if !uc.cfg.Match.LooseDestination {
		return strings.EqualFold(driverDest, riderDest)
	}
	a := strings.ToLower(strings.TrimSpace(driverDest))
	b := strings.ToLower(strings.TrimSpace(riderDest))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// computeFare prices the leg from the driver's last position to the pickup
// station on coordinate degrees, floored at the minimum fare. Falls back to
// the default fare when the driver has no known position or the station
// oracle cannot resolve the station.
func (uc *MatchUC) computeFare(ctx context.Context, pickupStation string, loc *models.Location) int {
	if loc == nil {
		return uc.cfg.Fare.DefaultFare
	}

	station, err := uc.matchGW.GetStationCoords(ctx, pickupStation)
	if err != nil {
		logger.Warn("Station oracle lookup failed, using default fare",
			logger.String("station", pickupStation),
			logger.Err(err))
		return uc.cfg.Fare.DefaultFare
	}

	degrees := utils.ManhattanDegrees(
		utils.GeoPoint{Latitude: loc.Latitude, Longitude: loc.Longitude},
		utils.GeoPoint{Latitude: station.Latitude, Longitude: station.Longitude},
	)
	fare := int(math.Round(float64(uc.cfg.Fare.RatePerDegree) * degrees))
	if fare < uc.cfg.Fare.MinimumFare {
		fare = uc.cfg.Fare.MinimumFare
	}
	return fare
}
