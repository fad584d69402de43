package repositories

import (
	"presence-lab/domain/presence"
	"presence-lab/errors"
	"sync"
	"time"
)

var _ IPresenceRepository = (*MemoryPresenceRepository)(nil)

type MemoryPresenceRepository struct {
	mu        sync.Mutex
	checkouts map[presence.UserID]presence.CheckoutRecord
	pings     map[presence.UserID][]presence.PingRecord
}

func NewMemoryPresenceRepository() *MemoryPresenceRepository {
	return &MemoryPresenceRepository{
		checkouts: make(map[presence.UserID]presence.CheckoutRecord),
		pings:     make(map[presence.UserID][]presence.PingRecord),
	}
}

func (r *MemoryPresenceRepository) CheckOut(userID presence.UserID, at time.Time) (presence.CheckoutRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record, ok := r.checkouts[userID]; ok {
		return record, errors.ErrAlreadyCheckedOut
	}
	record := presence.CheckoutRecord{UserID: userID, Since: presence.Truncate(at)}
	r.checkouts[userID] = record
	return record, nil
}

func (r *MemoryPresenceRepository) CheckIn(userID presence.UserID) (presence.CheckoutRecord, []presence.PingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.checkouts[userID]
	if !ok {
		return presence.CheckoutRecord{}, nil, errors.ErrAlreadyCheckedIn
	}
	pings := r.pings[userID]
	delete(r.checkouts, userID)
	delete(r.pings, userID)
	return record, pings, nil
}

func (r *MemoryPresenceRepository) CheckedOutSince(userID presence.UserID) (presence.CheckoutRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.checkouts[userID]
	return record, ok, nil
}

func (r *MemoryPresenceRepository) RecordPing(userID presence.UserID, ping presence.PingRecord) (presence.CheckoutRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.checkouts[userID]
	if !ok {
		return presence.CheckoutRecord{}, false, nil
	}
	r.pings[userID] = append(r.pings[userID], ping)
	return record, true, nil
}

func (r *MemoryPresenceRepository) CountCheckedOut() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.checkouts), nil
}

func (r *MemoryPresenceRepository) Close() error {
	return nil
}
