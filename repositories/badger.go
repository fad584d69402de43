package repositories

import (
	"fmt"
	"log/slog"
	"presence-lab/domain/presence"
	"presence-lab/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

const (
	checkoutPrefix = "checkout:"
	pingPrefix     = "ping:"
	pingSequence   = "seq:ping"
)

var _ IPresenceRepository = (*BadgerPresenceRepository)(nil)

// BadgerPresenceRepository keeps presence state in an in-memory BadgerDB.
// Nothing is written to disk, state is lost on restart like the map backend.
type BadgerPresenceRepository struct {
	db  *badger.DB
	seq *badger.Sequence
	log *slog.Logger
}

type diskCheckout struct {
	UserID string `cbor:"1,keyasint"`
	Since  int64  `cbor:"2,keyasint"`
}

type diskPing struct {
	ID      string `cbor:"1,keyasint"`
	By      string `cbor:"2,keyasint"`
	Content string `cbor:"3,keyasint"`
	Link    string `cbor:"4,keyasint"`
	At      int64  `cbor:"5,keyasint"`
}

func NewBadgerPresenceRepository(log *slog.Logger) (*BadgerPresenceRepository, error) {
	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	seq, err := db.GetSequence([]byte(pingSequence), 100)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sequence: %w", err)
	}
	return &BadgerPresenceRepository{db: db, seq: seq, log: log}, nil
}

func checkoutKey(userID presence.UserID) []byte {
	return []byte(checkoutPrefix + string(userID))
}

func pingUserPrefix(userID presence.UserID) []byte {
	return []byte(fmt.Sprintf("%s%s:", pingPrefix, userID))
}

// pingKey is formatted as "ping:{user_id}:{sequence_padded}" so a prefix scan
// returns the pings of a user in insertion order, even within the same second.
func pingKey(userID presence.UserID, seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%s:%020d", pingPrefix, userID, seq))
}

func (r *BadgerPresenceRepository) CheckOut(userID presence.UserID, at time.Time) (presence.CheckoutRecord, error) {
	record := presence.CheckoutRecord{UserID: userID, Since: presence.Truncate(at)}
	err := r.db.Update(func(txn *badger.Txn) error {
		existing, ok, err := getCheckout(txn, userID)
		if err != nil {
			return err
		}
		if ok {
			record = existing
			return errors.ErrAlreadyCheckedOut
		}
		data, err := cbor.Marshal(diskCheckout{UserID: string(userID), Since: record.Since.Unix()})
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		return txn.Set(checkoutKey(userID), data)
	})
	return record, err
}

func (r *BadgerPresenceRepository) CheckIn(userID presence.UserID) (presence.CheckoutRecord, []presence.PingRecord, error) {
	var record presence.CheckoutRecord
	var pings []presence.PingRecord
	err := r.db.Update(func(txn *badger.Txn) error {
		existing, ok, err := getCheckout(txn, userID)
		if err != nil {
			return err
		}
		if !ok {
			return errors.ErrAlreadyCheckedIn
		}
		record = existing

		keys, values, err := scanPrefix(txn, pingUserPrefix(userID))
		if err != nil {
			return err
		}
		for i, value := range values {
			ping, err := toPingRecord(value)
			if err != nil {
				return err
			}
			pings = append(pings, ping)
			if err = txn.Delete(keys[i]); err != nil {
				return err
			}
		}
		return txn.Delete(checkoutKey(userID))
	})
	if err != nil {
		return presence.CheckoutRecord{}, nil, err
	}
	r.log.Debug("Ping log drained", "user_id", userID, "pings", len(pings))
	return record, pings, nil
}

func (r *BadgerPresenceRepository) CheckedOutSince(userID presence.UserID) (presence.CheckoutRecord, bool, error) {
	var record presence.CheckoutRecord
	var found bool
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		record, found, err = getCheckout(txn, userID)
		return err
	})
	return record, found, err
}

func (r *BadgerPresenceRepository) RecordPing(userID presence.UserID, ping presence.PingRecord) (presence.CheckoutRecord, bool, error) {
	seq, err := r.seq.Next()
	if err != nil {
		return presence.CheckoutRecord{}, false, fmt.Errorf("ping sequence: %w", err)
	}
	data, err := cbor.Marshal(fromPingRecord(ping))
	if err != nil {
		return presence.CheckoutRecord{}, false, fmt.Errorf("marshal failed: %w", err)
	}

	var record presence.CheckoutRecord
	var recorded bool
	err = r.db.Update(func(txn *badger.Txn) error {
		existing, ok, err := getCheckout(txn, userID)
		if err != nil || !ok {
			return err
		}
		record, recorded = existing, true
		return txn.Set(pingKey(userID, seq), data)
	})
	if err != nil {
		return presence.CheckoutRecord{}, false, err
	}
	return record, recorded, nil
}

func (r *BadgerPresenceRepository) CountCheckedOut() (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		options.Prefix = []byte(checkoutPrefix)
		it := txn.NewIterator(options)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

func (r *BadgerPresenceRepository) Close() error {
	if err := r.seq.Release(); err != nil {
		r.log.Warn("Unable to release ping sequence", "error", err)
	}
	return r.db.Close()
}

func getCheckout(txn *badger.Txn, userID presence.UserID) (presence.CheckoutRecord, bool, error) {
	item, err := txn.Get(checkoutKey(userID))
	if err == badger.ErrKeyNotFound {
		return presence.CheckoutRecord{}, false, nil
	}
	if err != nil {
		return presence.CheckoutRecord{}, false, err
	}
	var dc diskCheckout
	err = item.Value(func(val []byte) error {
		return cbor.Unmarshal(val, &dc)
	})
	if err != nil {
		return presence.CheckoutRecord{}, false, err
	}
	return presence.CheckoutRecord{
		UserID: presence.UserID(dc.UserID),
		Since:  time.Unix(dc.Since, 0).UTC(),
	}, true, nil
}

// scanPrefix copies keys and values so they stay valid after the iterator closes.
func scanPrefix(txn *badger.Txn, prefix []byte) ([][]byte, [][]byte, error) {
	var keys, values [][]byte
	options := badger.DefaultIteratorOptions
	options.Prefix = prefix
	it := txn.NewIterator(options)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		value, err := item.ValueCopy(nil)
		if err != nil {
			return nil, nil, err
		}
		keys = append(keys, item.KeyCopy(nil))
		values = append(values, value)
	}
	return keys, values, nil
}

func fromPingRecord(ping presence.PingRecord) diskPing {
	return diskPing{
		ID:      ping.ID.String(),
		By:      ping.By,
		Content: ping.Content,
		Link:    ping.Link,
		At:      ping.At.Unix(),
	}
}

func toPingRecord(data []byte) (presence.PingRecord, error) {
	var dp diskPing
	if err := cbor.Unmarshal(data, &dp); err != nil {
		return presence.PingRecord{}, err
	}
	parsedID, err := uuid.Parse(dp.ID)
	if err != nil {
		return presence.PingRecord{}, err
	}
	return presence.PingRecord{
		ID:      parsedID,
		By:      dp.By,
		Content: dp.Content,
		Link:    dp.Link,
		At:      time.Unix(dp.At, 0).UTC(),
	}, nil
}
