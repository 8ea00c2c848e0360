package supabase

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const eventsTable = "order_events"

// RealtimeClient pushes order lifecycle events toward the staff dashboard.
// Each event is inserted as a row into order_events; Supabase Realtime
// streams row changes on that table to subscribed dashboards, so an insert
// is a broadcast.
type RealtimeClient struct {
	client *Client
}

func NewRealtimeClient(client *Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

type eventRow struct {
	Channel string          `json:"channel"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	row := eventRow{Channel: channel, Event: event, Payload: body}
	_, _, err = r.client.Supabase.From(eventsTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to publish event %s on channel %s: %w", event, channel, err)
	}

	return nil
}

func (r *RealtimeClient) PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("order:%s", orderID.String())
	return r.PublishEvent(channel, event, payload)
}

// Event payloads
func OrderReceivedPayload(orderID uuid.UUID, customerEmail string) map[string]interface{} {
	return map[string]interface{}{
		"order_id":       orderID.String(),
		"status":         "PENDING",
		"customer_email": customerEmail,
	}
}

func StatusChangedPayload(orderID uuid.UUID, status string) map[string]interface{} {
	return map[string]interface{}{
		"order_id": orderID.String(),
		"status":   status,
	}
}
