package tcp

import (
	"time"

	"github.com/vovakirdan/linechat-server/internal/core"
	"github.com/vovakirdan/linechat-server/internal/proto"
)

// commandFromAction maps a parsed inbound action to a hub command.
// Actions answered locally by the session (quit, unknown, invalid) have
// no command and return false.
func commandFromAction(act proto.Action) (*core.Command, bool) {
	switch act.Kind {
	case proto.ActionMessage:
		return &core.Command{
			Kind: core.CommandSendMessage,
			Message: core.Message{
				Text:      act.Text,
				CreatedAt: time.Now(),
			},
		}, true
	case proto.ActionJoin:
		return &core.Command{
			Kind: core.CommandJoinRoom,
			Room: act.Room,
		}, true
	case proto.ActionListRooms:
		return &core.Command{
			Kind: core.CommandListRooms,
		}, true
	default:
		return nil, false
	}
}

// lineFromEvent renders a hub event as one outbound line.
func lineFromEvent(ev *core.Event) (string, bool) {
	switch ev.Kind {
	case core.EventRoomMessage:
		return proto.FormatMessage(ev.Message.From, ev.Message.Text, ev.Message.CreatedAt), true
	case core.EventUserJoined:
		return proto.FormatJoined(ev.User, ev.Room), true
	case core.EventUserLeft:
		return proto.FormatLeft(ev.User, ev.Room), true
	case core.EventRoomList:
		return proto.FormatRoomList(ev.Rooms), true
	case core.EventError:
		if ev.Error == nil {
			return proto.FormatError("unknown error"), true
		}
		return proto.FormatError(ev.Error.Message), true
	case core.EventShutdown:
		return proto.LineShutdown, true
	default:
		return "", false
	}
}
