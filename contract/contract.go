//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"presence-lab/domain/presence"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// MessageHandler consumes one inbound message event.
type MessageHandler interface {
	HandleMessage(ctx context.Context, evt presence.MessageEvent) error
}

// Messenger emits outbound messages on the channel the event came from.
type Messenger interface {
	Reply(ctx context.Context, evt presence.MessageEvent, content string) error
	Send(ctx context.Context, channelID, content string) error
	SendSummary(ctx context.Context, channelID string, summary presence.Summary) error
}

// RoleResolver answers staff capability questions for a guild.
type RoleResolver interface {
	// StaffRoleID returns false when no role carries the given name in the guild.
	StaffRoleID(ctx context.Context, guildID, roleName string) (string, bool, error)
	HasRole(ctx context.Context, guildID string, userID presence.UserID, roleID string) (bool, error)
}
