package federation

import (
	"context"
	"fmt"

	"catering_backend/internal/datastore"
	"catering_backend/internal/models"
)

func (r *Router) GetStaffAvailability(ctx context.Context, userID int64) ([]models.StaffAvailability, error) {
	return gatherScoped(ctx, r, "staff availability", userID, datastore.DataService.GetStaffAvailability)
}

func (r *Router) AddStaffAvailability(ctx context.Context, availability models.StaffAvailability) (*models.StaffAvailability, error) {
	return create(ctx, r, "staff availability", availability, datastore.DataService.AddStaffAvailability)
}

func (r *Router) UpdateStaffAvailability(ctx context.Context, id int64, patch models.StaffAvailabilityPatch) (*models.StaffAvailability, error) {
	return update(ctx, r, "staff availability", id, patch, datastore.DataService.UpdateStaffAvailability)
}

func (r *Router) DeleteStaffAvailability(ctx context.Context, id int64) error {
	return remove(ctx, r, "staff availability", "delete", id, datastore.DataService.DeleteStaffAvailability)
}

func (r *Router) GetBlackoutDates(ctx context.Context, userID int64) ([]models.BlackoutDate, error) {
	return gatherScoped(ctx, r, "blackout date", userID, datastore.DataService.GetBlackoutDates)
}

func (r *Router) AddBlackoutDate(ctx context.Context, blackout models.BlackoutDate) (*models.BlackoutDate, error) {
	return create(ctx, r, "blackout date", blackout, datastore.DataService.AddBlackoutDate)
}

func (r *Router) DeleteBlackoutDate(ctx context.Context, id int64) error {
	return remove(ctx, r, "blackout date", "delete", id, datastore.DataService.DeleteBlackoutDate)
}

func (r *Router) GetOpenShifts(ctx context.Context) ([]models.OpenShift, error) {
	return gatherAll(ctx, r, "open shift", r.remote.GetOpenShifts, r.local.GetOpenShifts)
}

func (r *Router) GetOpenShift(ctx context.Context, id int64) (*models.OpenShift, error) {
	return fetchOne(ctx, r, "open shift", id, datastore.DataService.GetOpenShift)
}

func (r *Router) AddOpenShift(ctx context.Context, shift models.OpenShift) (*models.OpenShift, error) {
	return create(ctx, r, "open shift", shift, datastore.DataService.AddOpenShift)
}

func (r *Router) UpdateOpenShift(ctx context.Context, id int64, patch models.OpenShiftPatch) (*models.OpenShift, error) {
	return update(ctx, r, "open shift", id, patch, datastore.DataService.UpdateOpenShift)
}

func (r *Router) DeleteOpenShift(ctx context.Context, id int64) error {
	return remove(ctx, r, "open shift", "delete", id, datastore.DataService.DeleteOpenShift)
}

func (r *Router) GetShiftBids(ctx context.Context, shiftID int64) ([]models.ShiftBid, error) {
	return gatherScoped(ctx, r, "shift bid", shiftID, datastore.DataService.GetShiftBids)
}

func (r *Router) AddShiftBid(ctx context.Context, bid models.ShiftBid) (*models.ShiftBid, error) {
	return create(ctx, r, "shift bid", bid, datastore.DataService.AddShiftBid)
}

func (r *Router) UpdateShiftBidStatus(ctx context.Context, id int64, status string) (*models.ShiftBid, error) {
	ref, err := ParseRef(id)
	if err != nil {
		return nil, invalidID("shift bid", "update status", err)
	}
	bid, err := r.store(ref.Origin).UpdateShiftBidStatus(ctx, ref.Native, status)
	if err != nil {
		return nil, err
	}
	if ref.Origin == OriginLocal {
		flipLocal(bid)
	}
	return bid, nil
}

// UpdateShiftBidStatusUnqualified serves callers that only hold a store-native
// bid id with no provenance. It tries the remote store and falls back to the
// local one when the remote has no such bid or cannot answer. This is a
// guess: if both stores hold a bid with that native id, the remote one wins.
// Prefer UpdateShiftBidStatus with a signed id.
func (r *Router) UpdateShiftBidStatusUnqualified(ctx context.Context, nativeID int64, status string) (*models.ShiftBid, error) {
	if nativeID <= 0 {
		return nil, invalidID("shift bid", "update status", fmt.Errorf("%w: native id %d", datastore.ErrInvalidID, nativeID))
	}
	bid, err := r.remote.UpdateShiftBidStatus(ctx, nativeID, status)
	if err == nil {
		return bid, nil
	}
	if !fallbackWorthy(err) {
		return nil, err
	}
	r.log.Warn().Err(err).Int64("native_id", nativeID).
		Msg("shift bid provenance unknown; retrying against the local store")
	bid, err = r.local.UpdateShiftBidStatus(ctx, nativeID, status)
	if err != nil {
		return nil, err
	}
	flipLocal(bid)
	return bid, nil
}
