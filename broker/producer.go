package broker

import (
	"encoding/json"
	"log"
	"time"

	"taskdeck/taskdeck/models"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Producer publishes domain events to NATS. A nil or disconnected producer
// degrades to a no-op so the API keeps serving when the broker is down.
type Producer struct {
	conn *nats.Conn
}

func NewProducer(url string) (*Producer, error) {
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &Producer{conn: conn}, nil
}

// Publish serializes a StandardMessage and sends it on the event subject.
// Failures are logged, not returned: event delivery is best effort and must
// never fail the originating request.
func (p *Producer) Publish(event string, userID uuid.UUID, payload map[string]interface{}) {
	if p == nil || p.conn == nil {
		return
	}

	message := models.NewStandardMessage(event, userID.String(), payload)
	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("Failed to serialize event %s: %v", event, err)
		return
	}

	if err := p.conn.Publish(event, data); err != nil {
		log.Printf("Failed to publish event %s: %v", event, err)
	}
}

func (p *Producer) Conn() *nats.Conn {
	if p == nil {
		return nil
	}
	return p.conn
}

func (p *Producer) Close() {
	if p == nil || p.conn == nil {
		return
	}
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
	}
}
