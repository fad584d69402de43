//go:generate go run go.uber.org/mock/mockgen -source=presence.go -destination=../mocks/mock_presence_repository.go -package=mocks
package repositories

import (
	"presence-lab/domain/presence"
	"time"
)

// IPresenceRepository owns checkout records and the ping log.
// Every method is atomic: no caller can observe a half-applied transition.
type IPresenceRepository interface {
	// CheckOut fails with errors.ErrAlreadyCheckedOut and keeps the original record.
	CheckOut(userID presence.UserID, at time.Time) (presence.CheckoutRecord, error)
	// CheckIn removes the record and takes the whole ping log of the user.
	// It fails with errors.ErrAlreadyCheckedIn when no record exists.
	CheckIn(userID presence.UserID) (presence.CheckoutRecord, []presence.PingRecord, error)
	CheckedOutSince(userID presence.UserID) (presence.CheckoutRecord, bool, error)
	// RecordPing appends to the ping log only while the user is checked out.
	RecordPing(userID presence.UserID, ping presence.PingRecord) (presence.CheckoutRecord, bool, error)
	CountCheckedOut() (int, error)
	Close() error
}
